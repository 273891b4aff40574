package assistant

import "context"

// Part adalah satu bagian konten multimodal yang dikirim ke provider.
type Part struct {
	Text       string
	InlineData []byte
	MIMEType   string
}

// GenerateConfig membawa konfigurasi khusus modality gambar.
type GenerateConfig struct {
	ImageSize   string
	AspectRatio string
}

// GenerateResult adalah hasil satu panggilan generate: teks dan/atau
// payload gambar inline pertama (nil bila provider tidak mengembalikan).
type GenerateResult struct {
	Text  string
	Image []byte
}

// VideoRequest mendeskripsikan job video yang diajukan ke provider.
type VideoRequest struct {
	Prompt      string
	AspectRatio string
	ImageBytes  []byte
	MIMEType    string
}

// VideoJob adalah status job video asinkron. Field op dipegang adapter
// sebagai handle milik SDK dan tidak dipakai di luar paket ini.
type VideoJob struct {
	Done bool
	URI  string

	op any
}

// Client adalah kontrak sempit ke provider generative-AI. Service hanya
// bergantung pada interface ini sehingga bisa dites dengan mock.
//
//go:generate mockgen -source=genai_client.go -destination=mock/genai_client_mock.go -package=mock
type Client interface {
	GenerateContent(ctx context.Context, model string, parts []Part, cfg *GenerateConfig) (*GenerateResult, error)
	StartVideo(ctx context.Context, model string, req VideoRequest) (*VideoJob, error)
	PollVideo(ctx context.Context, job *VideoJob) (*VideoJob, error)
}

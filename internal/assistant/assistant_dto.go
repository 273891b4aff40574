package assistant

type InsightRequest struct {
	Department string `json:"department" binding:"required,oneof=Engineering Sales Marketing HR Executive Product"`
}

type CreateImageRequest struct {
	Prompt      string `json:"prompt" binding:"required"`
	Size        string `json:"size" binding:"required,oneof=1K 2K 4K"`
	AspectRatio string `json:"aspect_ratio" binding:"required,oneof=1:1 2:3 3:2 3:4 4:3 9:16 16:9 21:9"`
}

type EditImageRequest struct {
	Image  string `json:"image" binding:"required"`
	Prompt string `json:"prompt" binding:"required"`
}

type AnalyzeImageRequest struct {
	Image    string `json:"image" binding:"required"`
	Question string `json:"question"`
}

type CreateVideoRequest struct {
	Prompt         string `json:"prompt" binding:"required"`
	AspectRatio    string `json:"aspect_ratio" binding:"required,oneof=16:9 9:16"`
	ReferenceImage string `json:"reference_image"`
}

type TextResponse struct {
	Text string `json:"text"`
}

// ImageResponse.Image kosong berarti provider selesai tanpa menghasilkan
// payload gambar; ini bukan error.
type ImageResponse struct {
	Image string `json:"image,omitempty"`
}

type VideoResponse struct {
	URI string `json:"uri,omitempty"`
}

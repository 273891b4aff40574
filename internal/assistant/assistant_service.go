package assistant

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	assistanterrors "hr-admin/internal/assistant/errors"
	"hr-admin/internal/employee"
	"hr-admin/internal/shared/apperror"

	"go.uber.org/zap"
)

const (
	textModel         = "gemini-3-flash-preview"
	imageModel        = "gemini-3-pro-image-preview"
	imageEditModel    = "gemini-2.5-flash-image"
	imageAnalyzeModel = "gemini-3-pro-preview"
	videoModel        = "veo-3.1-fast-generate-preview"
)

const (
	defaultPollInterval = 5 * time.Second
	defaultMaxPolls     = 120 // dengan interval 5 detik: batas 10 menit
)

const reviewPromptTemplate = `You are an expert HR assistant.
Write a professional performance review draft for the following employee.

Name: %s %s
Position: %s
Department: %s
Status: %s
Hire Date: %s
Key Notes: %s

The review should be balanced, encouraging, and professional.
Structure it with:
1. Summary
2. Strengths
3. Areas for Growth
4. Goal Setting

Keep it under 300 words.`

const insightPromptTemplate = `Analyze the following anonymized data for the %s department:
%s

Provide a brief strategic insight regarding:
1. Team composition balance.
2. Potential risks (e.g., turnover if many are on leave/probation).
3. Salary distribution fairness (general observation).

Keep it concise and actionable for an executive.`

//go:generate mockgen -source=assistant_service.go -destination=mock/assistant_service_mock.go -package=mock
type Service interface {
	GenerateReview(ctx context.Context, employeeID string) (string, error)
	DepartmentInsight(ctx context.Context, department string) (string, error)
	CreateImage(ctx context.Context, prompt, size, aspectRatio string) (string, error)
	EditImage(ctx context.Context, imageDataURI, prompt string) (string, error)
	AnalyzeImage(ctx context.Context, imageDataURI, question string) (string, error)
	CreateVideo(ctx context.Context, prompt, aspectRatio, referenceImage string) (string, error)
}

type service struct {
	client       Client
	employees    employee.Service
	apiKey       string
	pollInterval time.Duration
	maxPolls     int
	logger       *zap.Logger
}

type Option func(*service)

// WithPolling mengubah interval dan batas polling video; dipakai di test.
func WithPolling(interval time.Duration, maxPolls int) Option {
	return func(s *service) {
		s.pollInterval = interval
		s.maxPolls = maxPolls
	}
}

func NewService(client Client, employees employee.Service, apiKey string, opts ...Option) Service {
	s := &service{
		client:       client,
		employees:    employees,
		apiKey:       apiKey,
		pollInterval: defaultPollInterval,
		maxPolls:     defaultMaxPolls,
		logger:       zap.L().Named("assistant.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) GenerateReview(ctx context.Context, employeeID string) (string, error) {
	s.logger.Debug("generate review requested", zap.String("employee_id", employeeID))

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return "", err
	}

	notes := emp.PerformanceNotes
	if notes == "" {
		notes = "No specific notes provided."
	}
	prompt := fmt.Sprintf(reviewPromptTemplate,
		emp.FirstName, emp.LastName,
		emp.Position, emp.Department, emp.Status, emp.HireDate,
		notes,
	)

	result, err := s.client.GenerateContent(ctx, textModel, []Part{{Text: prompt}}, nil)
	if err != nil {
		s.logger.Error("generate review provider call failed", zap.Error(err))
		return "", s.wrapProviderError(err)
	}

	return result.Text, nil
}

// DepartmentInsight mengirim proyeksi anonim (role, salary, status) dari
// departemen yang diminta, bukan record lengkap.
func (s *service) DepartmentInsight(ctx context.Context, department string) (string, error) {
	s.logger.Debug("department insight requested", zap.String("department", department))

	all, err := s.employees.GetAll(ctx, "")
	if err != nil {
		return "", err
	}

	type projection struct {
		Role   string  `json:"role"`
		Salary float64 `json:"salary"`
		Status string  `json:"status"`
	}
	rows := make([]projection, 0)
	for _, e := range all {
		if e.Department == department {
			rows = append(rows, projection{Role: e.Position, Salary: e.Salary, Status: e.Status})
		}
	}

	summary, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(insightPromptTemplate, department, string(summary))

	result, err := s.client.GenerateContent(ctx, textModel, []Part{{Text: prompt}}, nil)
	if err != nil {
		s.logger.Error("department insight provider call failed", zap.Error(err))
		return "", s.wrapProviderError(err)
	}

	return result.Text, nil
}

// CreateImage mengembalikan data URI PNG, atau string kosong tanpa error
// bila provider selesai tanpa payload gambar.
func (s *service) CreateImage(ctx context.Context, prompt, size, aspectRatio string) (string, error) {
	s.logger.Debug("create image requested",
		zap.String("size", size),
		zap.String("aspect_ratio", aspectRatio),
	)

	result, err := s.client.GenerateContent(ctx, imageModel,
		[]Part{{Text: prompt}},
		&GenerateConfig{ImageSize: size, AspectRatio: aspectRatio},
	)
	if err != nil {
		s.logger.Error("create image provider call failed", zap.Error(err))
		return "", s.wrapProviderError(err)
	}

	return encodeImageDataURI(result.Image), nil
}

func (s *service) EditImage(ctx context.Context, imageDataURI, prompt string) (string, error) {
	imageBytes, err := decodeImageDataURI(imageDataURI)
	if err != nil {
		return "", err
	}

	result, err := s.client.GenerateContent(ctx, imageEditModel,
		[]Part{
			{InlineData: imageBytes, MIMEType: "image/png"},
			{Text: prompt},
		},
		nil,
	)
	if err != nil {
		s.logger.Error("edit image provider call failed", zap.Error(err))
		return "", s.wrapProviderError(err)
	}

	return encodeImageDataURI(result.Image), nil
}

func (s *service) AnalyzeImage(ctx context.Context, imageDataURI, question string) (string, error) {
	imageBytes, err := decodeImageDataURI(imageDataURI)
	if err != nil {
		return "", err
	}

	if question == "" {
		question = "Analyze this image."
	}

	result, err := s.client.GenerateContent(ctx, imageAnalyzeModel,
		[]Part{
			{InlineData: imageBytes, MIMEType: "image/jpeg"},
			{Text: question},
		},
		nil,
	)
	if err != nil {
		s.logger.Error("analyze image provider call failed", zap.Error(err))
		return "", s.wrapProviderError(err)
	}

	return result.Text, nil
}

// CreateVideo mengajukan job lalu polling dengan interval tetap sampai
// selesai, dibatasi maxPolls dan pembatalan context. URI hasil diberi
// kredensial akses provider. Job yang selesai tanpa hasil mengembalikan
// string kosong tanpa error.
func (s *service) CreateVideo(ctx context.Context, prompt, aspectRatio, referenceImage string) (string, error) {
	s.logger.Debug("create video requested", zap.String("aspect_ratio", aspectRatio))

	req := VideoRequest{
		Prompt:      prompt,
		AspectRatio: aspectRatio,
	}
	if referenceImage != "" {
		imageBytes, err := decodeImageDataURI(referenceImage)
		if err != nil {
			return "", err
		}
		req.ImageBytes = imageBytes
		req.MIMEType = "image/png"
	}

	job, err := s.client.StartVideo(ctx, videoModel, req)
	if err != nil {
		s.logger.Error("start video provider call failed", zap.Error(err))
		return "", s.wrapProviderError(err)
	}

	for attempt := 0; !job.Done; attempt++ {
		if attempt >= s.maxPolls {
			s.logger.Warn("video polling exceeded max attempts", zap.Int("max_polls", s.maxPolls))
			return "", assistanterrors.ErrVideoTimeout
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.pollInterval):
		}

		job, err = s.client.PollVideo(ctx, job)
		if err != nil {
			s.logger.Error("poll video provider call failed", zap.Error(err))
			return "", s.wrapProviderError(err)
		}
	}

	if job.URI == "" {
		s.logger.Warn("video job completed without result")
		return "", nil
	}

	return job.URI + "&key=" + s.apiKey, nil
}

func (s *service) wrapProviderError(err error) error {
	return apperror.Wrap(err,
		apperror.CodeUpstreamError,
		assistanterrors.ErrProviderFailed.Message,
		assistanterrors.ErrProviderFailed.HTTPStatus,
	)
}

// decodeImageDataURI menerima data URI maupun base64 polos; prefix
// sebelum koma dibuang seperti perilaku klien aslinya.
func decodeImageDataURI(dataURI string) ([]byte, error) {
	payload := dataURI
	if idx := strings.Index(dataURI, ","); idx >= 0 {
		payload = dataURI[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, assistanterrors.ErrInvalidImageData
	}
	return raw, nil
}

func encodeImageDataURI(image []byte) string {
	if len(image) == 0 {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(image)
}

package assistant_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"testing"
	"time"

	"hr-admin/internal/assistant"
	assistanterrors "hr-admin/internal/assistant/errors"
	"hr-admin/internal/employee"
	employeeerrors "hr-admin/internal/employee/errors"
	"hr-admin/internal/shared/apperror"

	assistantMock "hr-admin/internal/assistant/mock"
	employeeMock "hr-admin/internal/employee/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-api-key"

type assistantDeps struct {
	service   assistant.Service
	client    *assistantMock.MockClient
	employees *employeeMock.MockService
}

func setupAssistantTest(t *testing.T, opts ...assistant.Option) *assistantDeps {
	ctrl := gomock.NewController(t)

	client := assistantMock.NewMockClient(ctrl)
	employees := employeeMock.NewMockService(ctrl)

	svc := assistant.NewService(client, employees, testAPIKey, opts...)

	return &assistantDeps{
		service:   svc,
		client:    client,
		employees: employees,
	}
}

func pngDataURI(payload string) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestAssistantService_GenerateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("prompt carries the employee profile", func(t *testing.T) {
		deps := setupAssistantTest(t)

		deps.employees.EXPECT().
			GetByID(ctx, "emp_1").
			Return(employee.EmployeeResponse{
				ID:               "emp_1",
				FirstName:        "Budi",
				LastName:         "Santoso",
				Position:         "Engineer",
				Department:       "Engineering",
				Status:           "Active",
				HireDate:         "2024-03-01",
				PerformanceNotes: "Strong ownership of the billing migration.",
			}, nil)

		deps.client.EXPECT().
			GenerateContent(ctx, gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, model string, parts []assistant.Part, _ *assistant.GenerateConfig) (*assistant.GenerateResult, error) {
				assert.Len(t, parts, 1)
				assert.Contains(t, parts[0].Text, "Budi Santoso")
				assert.Contains(t, parts[0].Text, "Strong ownership of the billing migration.")
				return &assistant.GenerateResult{Text: "Review draft."}, nil
			})

		text, err := deps.service.GenerateReview(ctx, "emp_1")
		assert.NoError(t, err)
		assert.Equal(t, "Review draft.", text)
	})

	t.Run("missing notes get a placeholder", func(t *testing.T) {
		deps := setupAssistantTest(t)

		deps.employees.EXPECT().
			GetByID(ctx, "emp_1").
			Return(employee.EmployeeResponse{ID: "emp_1", FirstName: "Budi"}, nil)

		deps.client.EXPECT().
			GenerateContent(ctx, gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, _ string, parts []assistant.Part, _ *assistant.GenerateConfig) (*assistant.GenerateResult, error) {
				assert.Contains(t, parts[0].Text, "No specific notes provided.")
				return &assistant.GenerateResult{Text: "ok"}, nil
			})

		_, err := deps.service.GenerateReview(ctx, "emp_1")
		assert.NoError(t, err)
	})

	t.Run("unknown employee short-circuits before the provider", func(t *testing.T) {
		deps := setupAssistantTest(t)

		deps.employees.EXPECT().
			GetByID(ctx, "emp_ghost").
			Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound)

		_, err := deps.service.GenerateReview(ctx, "emp_ghost")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("provider failure is wrapped as an upstream error", func(t *testing.T) {
		deps := setupAssistantTest(t)

		deps.employees.EXPECT().
			GetByID(ctx, "emp_1").
			Return(employee.EmployeeResponse{ID: "emp_1"}, nil)
		deps.client.EXPECT().
			GenerateContent(ctx, gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(nil, assert.AnError)

		_, err := deps.service.GenerateReview(ctx, "emp_1")
		assert.Error(t, err)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadGateway, httpErr.Status)
		assert.Equal(t, apperror.CodeUpstreamError, httpErr.Code)
	})
}

func TestAssistantService_DepartmentInsight(t *testing.T) {
	ctx := context.Background()

	t.Run("sends only anonymized projections of the department", func(t *testing.T) {
		deps := setupAssistantTest(t)

		deps.employees.EXPECT().
			GetAll(ctx, "").
			Return([]employee.EmployeeResponse{
				{ID: "emp_1", Email: "budi@example.com", Position: "Engineer", Department: "Engineering", Status: "Active", Salary: 75000},
				{ID: "emp_2", Email: "siti@example.com", Position: "Designer", Department: "Product", Status: "Active", Salary: 82000},
			}, nil)

		deps.client.EXPECT().
			GenerateContent(ctx, gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, _ string, parts []assistant.Part, _ *assistant.GenerateConfig) (*assistant.GenerateResult, error) {
				prompt := parts[0].Text
				assert.Contains(t, prompt, "Engineering")
				assert.Contains(t, prompt, `"role":"Engineer"`)
				// Identitas tidak ikut terkirim
				assert.NotContains(t, prompt, "budi@example.com")
				assert.NotContains(t, prompt, "emp_1")
				// Departemen lain tersaring
				assert.NotContains(t, prompt, "Designer")
				return &assistant.GenerateResult{Text: "Insight."}, nil
			})

		text, err := deps.service.DepartmentInsight(ctx, "Engineering")
		assert.NoError(t, err)
		assert.Equal(t, "Insight.", text)
	})
}

func TestAssistantService_CreateImage(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a png data uri", func(t *testing.T) {
		deps := setupAssistantTest(t)

		deps.client.EXPECT().
			GenerateContent(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, parts []assistant.Part, cfg *assistant.GenerateConfig) (*assistant.GenerateResult, error) {
				assert.Equal(t, "A team offsite photo", parts[0].Text)
				assert.Equal(t, "2K", cfg.ImageSize)
				assert.Equal(t, "16:9", cfg.AspectRatio)
				return &assistant.GenerateResult{Image: []byte("fake-png")}, nil
			})

		uri, err := deps.service.CreateImage(ctx, "A team offsite photo", "2K", "16:9")
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

		decoded, _ := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
		assert.Equal(t, []byte("fake-png"), decoded)
	})

	t.Run("no image payload yields empty string without error", func(t *testing.T) {
		deps := setupAssistantTest(t)

		deps.client.EXPECT().
			GenerateContent(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&assistant.GenerateResult{Text: "refused"}, nil)

		uri, err := deps.service.CreateImage(ctx, "prompt", "1K", "1:1")
		assert.NoError(t, err)
		assert.Empty(t, uri)
	})
}

func TestAssistantService_EditImage(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the data uri and sends image plus instruction", func(t *testing.T) {
		deps := setupAssistantTest(t)

		deps.client.EXPECT().
			GenerateContent(ctx, gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, _ string, parts []assistant.Part, _ *assistant.GenerateConfig) (*assistant.GenerateResult, error) {
				assert.Len(t, parts, 2)
				assert.Equal(t, []byte("original"), parts[0].InlineData)
				assert.Equal(t, "image/png", parts[0].MIMEType)
				assert.Equal(t, "Remove the background", parts[1].Text)
				return &assistant.GenerateResult{Image: []byte("edited")}, nil
			})

		uri, err := deps.service.EditImage(ctx, pngDataURI("original"), "Remove the background")
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	})

	t.Run("plain base64 without a prefix also works", func(t *testing.T) {
		deps := setupAssistantTest(t)

		deps.client.EXPECT().
			GenerateContent(ctx, gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(&assistant.GenerateResult{Image: []byte("edited")}, nil)

		raw := base64.StdEncoding.EncodeToString([]byte("original"))
		_, err := deps.service.EditImage(ctx, raw, "prompt")
		assert.NoError(t, err)
	})

	t.Run("invalid base64 is rejected before the provider", func(t *testing.T) {
		deps := setupAssistantTest(t)

		_, err := deps.service.EditImage(ctx, "data:image/png;base64,!!not-base64!!", "prompt")
		assert.ErrorIs(t, err, assistanterrors.ErrInvalidImageData)
	})
}

func TestAssistantService_AnalyzeImage(t *testing.T) {
	ctx := context.Background()

	t.Run("empty question gets a default", func(t *testing.T) {
		deps := setupAssistantTest(t)

		deps.client.EXPECT().
			GenerateContent(ctx, gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, _ string, parts []assistant.Part, _ *assistant.GenerateConfig) (*assistant.GenerateResult, error) {
				assert.Equal(t, "Analyze this image.", parts[1].Text)
				assert.Equal(t, "image/jpeg", parts[0].MIMEType)
				return &assistant.GenerateResult{Text: "A whiteboard."}, nil
			})

		text, err := deps.service.AnalyzeImage(ctx, pngDataURI("photo"), "")
		assert.NoError(t, err)
		assert.Equal(t, "A whiteboard.", text)
	})
}

func TestAssistantService_CreateVideo(t *testing.T) {
	ctx := context.Background()
	fastPolling := assistant.WithPolling(time.Millisecond, 3)

	t.Run("job done on submit returns uri with the access key", func(t *testing.T) {
		deps := setupAssistantTest(t, fastPolling)

		deps.client.EXPECT().
			StartVideo(ctx, gomock.Any(), gomock.Any()).
			Return(&assistant.VideoJob{Done: true, URI: "https://video.example/v1?alt=media"}, nil)

		uri, err := deps.service.CreateVideo(ctx, "A welcome video", "16:9", "")
		assert.NoError(t, err)
		assert.Equal(t, "https://video.example/v1?alt=media&key="+testAPIKey, uri)
	})

	t.Run("polls until the job completes", func(t *testing.T) {
		deps := setupAssistantTest(t, fastPolling)

		pending := &assistant.VideoJob{Done: false}
		deps.client.EXPECT().
			StartVideo(ctx, gomock.Any(), gomock.Any()).
			Return(pending, nil)
		deps.client.EXPECT().
			PollVideo(ctx, pending).
			Return(pending, nil)
		deps.client.EXPECT().
			PollVideo(ctx, pending).
			Return(&assistant.VideoJob{Done: true, URI: "https://video.example/v2"}, nil)

		uri, err := deps.service.CreateVideo(ctx, "prompt", "16:9", "")
		assert.NoError(t, err)
		assert.Equal(t, "https://video.example/v2&key="+testAPIKey, uri)
	})

	t.Run("reference image is decoded and attached", func(t *testing.T) {
		deps := setupAssistantTest(t, fastPolling)

		deps.client.EXPECT().
			StartVideo(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req assistant.VideoRequest) (*assistant.VideoJob, error) {
				assert.Equal(t, []byte("still-frame"), req.ImageBytes)
				assert.Equal(t, "image/png", req.MIMEType)
				return &assistant.VideoJob{Done: true, URI: "https://video.example/v3"}, nil
			})

		_, err := deps.service.CreateVideo(ctx, "prompt", "9:16", pngDataURI("still-frame"))
		assert.NoError(t, err)
	})

	t.Run("polling gives up after the configured attempts", func(t *testing.T) {
		deps := setupAssistantTest(t, assistant.WithPolling(time.Millisecond, 2))

		pending := &assistant.VideoJob{Done: false}
		deps.client.EXPECT().StartVideo(ctx, gomock.Any(), gomock.Any()).Return(pending, nil)
		deps.client.EXPECT().PollVideo(ctx, pending).Return(pending, nil).Times(2)

		_, err := deps.service.CreateVideo(ctx, "prompt", "16:9", "")
		assert.ErrorIs(t, err, assistanterrors.ErrVideoTimeout)
	})

	t.Run("context cancellation stops the wait", func(t *testing.T) {
		deps := setupAssistantTest(t, assistant.WithPolling(time.Hour, 10))

		cancelCtx, cancel := context.WithCancel(context.Background())

		pending := &assistant.VideoJob{Done: false}
		deps.client.EXPECT().StartVideo(cancelCtx, gomock.Any(), gomock.Any()).Return(pending, nil)

		cancel()
		_, err := deps.service.CreateVideo(cancelCtx, "prompt", "16:9", "")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("completed job without a uri returns empty string", func(t *testing.T) {
		deps := setupAssistantTest(t, fastPolling)

		deps.client.EXPECT().
			StartVideo(ctx, gomock.Any(), gomock.Any()).
			Return(&assistant.VideoJob{Done: true}, nil)

		uri, err := deps.service.CreateVideo(ctx, "prompt", "16:9", "")
		assert.NoError(t, err)
		assert.Empty(t, uri)
	})
}

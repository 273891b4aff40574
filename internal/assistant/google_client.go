package assistant

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// GoogleClient mengadaptasi SDK resmi Gemini ke interface Client.
type GoogleClient struct {
	client *genai.Client
}

func NewGoogleClient(ctx context.Context, apiKey string) (*GoogleClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GoogleClient{client: client}, nil
}

func (g *GoogleClient) GenerateContent(ctx context.Context, model string, parts []Part, cfg *GenerateConfig) (*GenerateResult, error) {
	sdkParts := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		if len(p.InlineData) > 0 {
			sdkParts = append(sdkParts, genai.NewPartFromBytes(p.InlineData, p.MIMEType))
			continue
		}
		sdkParts = append(sdkParts, genai.NewPartFromText(p.Text))
	}

	contents := []*genai.Content{genai.NewContentFromParts(sdkParts, genai.RoleUser)}

	var sdkCfg *genai.GenerateContentConfig
	if cfg != nil {
		sdkCfg = &genai.GenerateContentConfig{
			ImageConfig: &genai.ImageConfig{
				AspectRatio: cfg.AspectRatio,
				ImageSize:   cfg.ImageSize,
			},
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, sdkCfg)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{Text: resp.Text()}
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				result.Image = part.InlineData.Data
				break
			}
		}
	}
	return result, nil
}

func (g *GoogleClient) StartVideo(ctx context.Context, model string, req VideoRequest) (*VideoJob, error) {
	var image *genai.Image
	if len(req.ImageBytes) > 0 {
		image = &genai.Image{
			ImageBytes: req.ImageBytes,
			MIMEType:   req.MIMEType,
		}
	}

	op, err := g.client.Models.GenerateVideos(ctx, model, req.Prompt, image, &genai.GenerateVideosConfig{
		NumberOfVideos: 1,
		Resolution:     "720p",
		AspectRatio:    req.AspectRatio,
	})
	if err != nil {
		return nil, err
	}

	return videoJobFromOperation(op), nil
}

func (g *GoogleClient) PollVideo(ctx context.Context, job *VideoJob) (*VideoJob, error) {
	op, ok := job.op.(*genai.GenerateVideosOperation)
	if !ok {
		return nil, errors.New("assistant: video job handle is not a genai operation")
	}

	refreshed, err := g.client.Operations.GetVideosOperation(ctx, op, nil)
	if err != nil {
		return nil, err
	}

	return videoJobFromOperation(refreshed), nil
}

func videoJobFromOperation(op *genai.GenerateVideosOperation) *VideoJob {
	job := &VideoJob{Done: op.Done, op: op}
	if op.Done && op.Response != nil && len(op.Response.GeneratedVideos) > 0 {
		if video := op.Response.GeneratedVideos[0].Video; video != nil {
			job.URI = video.URI
		}
	}
	return job
}

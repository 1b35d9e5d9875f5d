package gateway

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"machsight/internal/diagnostics"
)

// GeminiClient implements Client over Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  string
	policy RetryPolicy
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
		policy: DefaultRetryPolicy(),
	}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string, attachment *diagnostics.Attachment) (string, error) {

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	parts := []genai.Part{genai.Text(prompt)}
	if attachment != nil {
		raw, err := base64.StdEncoding.DecodeString(attachment.Data)
		if err != nil {
			return "", fmt.Errorf("decode attachment: %w", err)
		}
		parts = append(parts, genai.Blob{MIMEType: attachment.MIMEType, Data: raw})
	}

	return c.policy.Do(ctx, func(ctx context.Context) (string, error) {
		resp, err := m.GenerateContent(ctx, parts...)
		if err != nil {
			return "", fmt.Errorf("gemini: %w", err)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("gemini: no content generated")
		}

		var b strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
		return b.String(), nil
	})
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

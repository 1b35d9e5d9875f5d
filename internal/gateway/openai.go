package gateway

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"machsight/internal/diagnostics"
)

// OpenAIClient implements Client over OpenAI chat completions. Attachments
// ride along as a base64 data-URL image part.
type OpenAIClient struct {
	client *openai.Client
	model  string
	policy RetryPolicy
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
		policy: DefaultRetryPolicy(),
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string, attachment *diagnostics.Attachment) (string, error) {

	var message openai.ChatCompletionMessage
	if attachment != nil {
		message = openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: prompt},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL: fmt.Sprintf("data:%s;base64,%s", attachment.MIMEType, attachment.Data),
					},
				},
			},
		}
	} else {
		message = openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}
	}

	return c.policy.Do(ctx, func(ctx context.Context) (string, error) {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       c.model,
			Temperature: 0.1,
			Messages:    []openai.ChatCompletionMessage{message},
		})
		if err != nil {
			return "", fmt.Errorf("openai: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("openai: no content generated")
		}
		return resp.Choices[0].Message.Content, nil
	})
}

func (c *OpenAIClient) Close() error {
	return nil
}

package llm

import (
	"context"
	"fmt"

	"sevai/sevai/utils/logging"
	"sevai/sevai/utils/types"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient is the OpenAI-backed provider. It speaks the same structured
// contract as Gemini: the system prompt demands JSON and parseReply rejects
// anything that does not satisfy it.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Chat implements Provider.
func (c *OpenAIClient) Chat(ctx context.Context, req Request) (*types.Reply, error) {
	defer logging.LogDuration(ctx, "openai_chat")()

	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, msg := range req.History {
		role := openai.ChatMessageRoleUser
		if msg.Role == "assistant" || msg.Role == "model" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Text})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: annotate(req),
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.3,
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrUnavailable)
	}

	return parseReply(resp.Choices[0].Message.Content)
}

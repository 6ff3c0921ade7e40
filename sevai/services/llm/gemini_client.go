package llm

import (
	"context"
	"encoding/json"
	"fmt"

	httputils "sevai/sevai/utils/http"
	"sevai/sevai/utils/logging"
	"sevai/sevai/utils/types"

	"go.uber.org/zap"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient calls the Gemini generateContent REST endpoint.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent  `json:"contents"`
	SystemInstruction geminiContent    `json:"system_instruction"`
	GenerationConfig  geminiGenConfig  `json:"generationConfig"`
}

type geminiGenConfig struct {
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"topP"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type geminiResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Chat implements Provider. Any transport error, non-success status,
// provider error payload or malformed body collapses into ErrUnavailable.
func (c *GeminiClient) Chat(ctx context.Context, req Request) (*types.Reply, error) {
	defer logging.LogDuration(ctx, "gemini_chat")()

	body := c.buildRequest(req)
	url := fmt.Sprintf("%s/v1/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	status, raw, err := httputils.PostJSONRaw(ctx, url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: bad envelope: %v", ErrUnavailable, err)
	}
	if parsed.Error != nil {
		logging.ErrorLogger.Error("gemini api error",
			zap.Int("status", status),
			zap.String("message", parsed.Error.Message),
		)
		return nil, fmt.Errorf("%w: provider error: %s", ErrUnavailable, parsed.Error.Message)
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, status)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrUnavailable)
	}

	return parseReply(parsed.Candidates[0].Content.Parts[0].Text)
}

func (c *GeminiClient) buildRequest(req Request) geminiRequest {
	contents := make([]geminiContent, 0, len(req.History)+1)
	for _, msg := range req.History {
		role := msg.Role
		// Gemini expects "model" for assistant turns.
		if role == "assistant" {
			role = "model"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: annotate(req)}},
	})

	return geminiRequest{
		Contents:          contents,
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		GenerationConfig: geminiGenConfig{
			Temperature:      0.3,
			TopP:             0.8,
			MaxOutputTokens:  1024,
			ResponseMimeType: "application/json",
		},
	}
}

package converter

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Vovarama1992/voice_converter/internal/voice"
)

// OpenAIService — альтернативный бэкенд: переписывание делает модель OpenAI,
// оркестратор про это не знает.
type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(apiKey, baseURL, model string) *OpenAIService {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func systemPrompt(d voice.Direction) string {
	target := "passive"
	if d == voice.PassiveToActive {
		target = "active"
	}
	return fmt.Sprintf(`You rewrite English sentences into the %s voice.
Keep the meaning, tense and punctuation.
Reply with the rewritten text only, without quotes or explanations.`, target)
}

func (s *OpenAIService) Convert(ctx context.Context, req Request) (string, error) {
	if !req.Direction.Valid() {
		return "", fmt.Errorf("unknown direction %q", req.Direction)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(req.Direction)},
			{Role: openai.ChatMessageRoleUser, Content: req.Text},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", ErrMalformedResponse)
	}
	return text, nil
}

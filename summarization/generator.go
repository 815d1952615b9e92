package summarization

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"go-healthwatch/config"
)

const defaultGeminiModel = "gemini-2.5-flash"

var errEmptyResponse = errors.New("model returned an empty response")

// Generator turns one prompt into Markdown text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGenerator builds the generator for the configured provider. It returns
// nil, nil when no API key is configured.
func NewGenerator(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	key := cfg.APIKey()
	if key == "" {
		log.Warn("API key not set. AI functionality will be disabled.")
		return nil, nil
	}

	switch cfg.Provider {
	case "openai":
		return NewOpenAIGenerator(openai.NewClient(key), cfg.Model), nil
	case "", "gemini":
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create GenAI client: %w", err)
		}
		return NewGeminiGenerator(client, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(client *genai.Client, model string) *GeminiGenerator {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiGenerator{client: client, model: model}
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content error: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errEmptyResponse
	}
	return text, nil
}

type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(client *openai.Client, model string) *OpenAIGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerator{client: client, model: model}
}

func (o *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that analyzes public health surveillance data for district health officials.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   1024,
			N:           1,
			Temperature: 0.5,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errEmptyResponse
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

package remote

import (
	"context"
	"fmt"
	"strings"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIClient is the chat-completions remote backend.
type OpenAIClient struct {
	client oai.Client
	model  string
}

// OpenAIOption configures optional client behavior.
type OpenAIOption func(*openaiConfig)

type openaiConfig struct {
	baseURL string
}

// WithOpenAIBaseURL overrides the API base URL (tests point this at httptest).
func WithOpenAIBaseURL(url string) OpenAIOption {
	return func(c *openaiConfig) {
		c.baseURL = url
	}
}

// NewOpenAIClient constructs the backend. An empty apiKey means the backend is
// unavailable; callers should pass nil to the chain instead.
func NewOpenAIClient(apiKey, model string, opts ...OpenAIOption) (*OpenAIClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai: apiKey must not be empty")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultOpenAIModel
	}

	cfg := &openaiConfig{}
	for _, o := range opts {
		o(cfg)
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &OpenAIClient{client: oai.NewClient(reqOpts...), model: model}, nil
}

// Name implements Generator.
func (c *OpenAIClient) Name() string { return "openai" }

// Generate implements Generator via a single chat-completion call.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	params := oai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(SystemInstruction),
			oai.UserMessage(prompt),
		},
		Temperature:         param.NewOpt(0.8),
		MaxCompletionTokens: param.NewOpt(int64(500)),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

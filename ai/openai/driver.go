package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/csvmind-ai/csvmind/ai"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const OpenAIBaseURL = "https://api.openai.com/v1"

// NewModel creates an OpenAI-backed model. An empty baseURL means the public
// OpenAI endpoint; any OpenAI-compatible endpoint can be passed instead.
func NewModel(modelName string, apiKey string, baseURLs ...string) *ai.Model {
	url := OpenAIBaseURL
	if len(baseURLs) > 0 && baseURLs[0] != "" {
		url = baseURLs[0]
	}

	model := &ai.Model{
		ModelName: modelName,
		APIKey:    apiKey,
		BaseURL:   url,
	}
	model.SetGenerateFunc(openaiGenerate)
	return model
}

func openaiGenerate(ctx context.Context, model *ai.Model, messages []ai.Message, tools []ai.Tool) (ai.AIMessage, error) {
	client := createClient(model)

	chatMsgs, err := toChatMessages(messages)
	if err != nil {
		return ai.AIMessage{}, fmt.Errorf("failed to convert messages: %w", err)
	}

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(model.ModelName),
		Messages: chatMsgs,
	}

	if len(tools) > 0 {
		params.Tools = toChatTools(tools)
	}
	if model.Temperature != nil {
		params.Temperature = openai.Opt(*model.Temperature)
	}
	if model.MaxTokens != nil {
		params.MaxTokens = openai.Opt(int64(*model.MaxTokens))
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return ai.AIMessage{}, isRetryableError(err)
	}

	return fromChatResponse(resp, 0), nil
}

func createClient(model *ai.Model) openai.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(model.APIKey),
	}
	if model.BaseURL != "" && model.BaseURL != OpenAIBaseURL {
		opts = append(opts, option.WithBaseURL(model.BaseURL))
	}
	return openai.NewClient(opts...)
}

func isRetryableError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	if strings.Contains(errStr, "status: 502") ||
		strings.Contains(errStr, "status: 503") ||
		strings.Contains(errStr, "status: 504") ||
		strings.Contains(errStr, "status: 429") {
		return fmt.Errorf("%w: %v", ai.ErrTemporary, err)
	}

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "network") ||
		strings.Contains(errStr, "temporary") {
		return fmt.Errorf("%w: %v", ai.ErrTemporary, err)
	}

	var apiErr interface {
		StatusCode() int
	}
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode() >= 500 || apiErr.StatusCode() == 429 {
			return fmt.Errorf("%w: %v", ai.ErrTemporary, err)
		}
	}

	return err
}

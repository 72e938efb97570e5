package ai

import (
	"context"
	"errors"
	"time"
)

// ErrTemporary marks provider failures that are worth retrying: rate limits,
// gateway errors, transient network trouble. Drivers wrap such errors with it.
var ErrTemporary = errors.New("temporary model error")

const defaultRetryDelay = 2 * time.Second

// Model is a provider-agnostic model container. Provider packages (ai/openai)
// supply the callFunc; everything else is configuration.
type Model struct {
	ModelName string
	APIKey    string
	BaseURL   string

	// callFunc is the implementation for each provider
	callFunc func(ctx context.Context, model *Model, messages []Message, tools []Tool) (AIMessage, error)

	// Option pointer variables - nil means option not set
	Temperature *float64
	MaxTokens   *int
	MaxRetries  *int
	RetryDelay  time.Duration
}

// Call makes a single call to the model. It does not execute any tool calls;
// the requested ToolCalls come back on the AIMessage for the caller's loop to
// run. Calls failing with ErrTemporary are retried up to MaxRetries times.
func (m *Model) Call(ctx context.Context, messages []Message, tools []Tool) (AIMessage, error) {
	if m.callFunc == nil {
		return AIMessage{}, errors.New("model has no call function")
	}

	retries := 0
	if m.MaxRetries != nil {
		retries = *m.MaxRetries
	}
	delay := m.RetryDelay
	if delay == 0 {
		delay = defaultRetryDelay
	}

	var response AIMessage
	var err error
	for attempt := 0; ; attempt++ {
		response, err = m.callFunc(ctx, m, messages, tools)
		if err == nil || !errors.Is(err, ErrTemporary) || attempt >= retries-1 {
			return response, err
		}
		select {
		case <-ctx.Done():
			return AIMessage{}, ctx.Err()
		case <-time.After(delay):
		}
	}
}

// WithTemperature sets the temperature for the model and returns the model for chaining
func (m *Model) WithTemperature(temperature float64) *Model {
	m.Temperature = &temperature
	return m
}

// WithMaxTokens sets the maximum tokens for the model and returns the model for chaining
func (m *Model) WithMaxTokens(maxTokens int) *Model {
	m.MaxTokens = &maxTokens
	return m
}

// WithMaxRetries sets how many attempts are made for temporary failures
func (m *Model) WithMaxRetries(maxRetries int) *Model {
	m.MaxRetries = &maxRetries
	return m
}

// SetGenerateFunc sets the provider call function. Only needed when wiring a
// non-standard provider.
func (m *Model) SetGenerateFunc(generateFunc func(ctx context.Context, model *Model, messages []Message, tools []Tool) (AIMessage, error)) {
	m.callFunc = generateFunc
}

package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallRetriesTemporaryErrors(t *testing.T) {
	attempts := 0
	model := NewDummyModel(func(ctx context.Context, messages []Message, tools []Tool) (AIMessage, error) {
		attempts++
		if attempts < 3 {
			return AIMessage{}, fmt.Errorf("rate limited: %w", ErrTemporary)
		}
		return AIMessage{Role: AssistantRole, Content: "recovered"}, nil
	})
	model.WithMaxRetries(3)
	model.RetryDelay = time.Millisecond

	response, err := model.Call(context.Background(), []Message{UserMessage{Content: "hi"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "recovered", response.Content)
	assert.Equal(t, 3, attempts)
}

func TestCallGivesUpAfterMaxRetries(t *testing.T) {
	attempts := 0
	model := NewDummyModel(func(ctx context.Context, messages []Message, tools []Tool) (AIMessage, error) {
		attempts++
		return AIMessage{}, fmt.Errorf("gateway timeout: %w", ErrTemporary)
	})
	model.WithMaxRetries(2)
	model.RetryDelay = time.Millisecond

	_, err := model.Call(context.Background(), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemporary)
	assert.Equal(t, 2, attempts)
}

func TestCallDoesNotRetryPermanentErrors(t *testing.T) {
	attempts := 0
	permanent := errors.New("invalid api key")
	model := NewDummyModel(func(ctx context.Context, messages []Message, tools []Tool) (AIMessage, error) {
		attempts++
		return AIMessage{}, permanent
	})
	model.WithMaxRetries(5)
	model.RetryDelay = time.Millisecond

	_, err := model.Call(context.Background(), nil, nil)
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, attempts)
}

func TestCallStopsWhenContextCancelled(t *testing.T) {
	model := NewDummyModel(func(ctx context.Context, messages []Message, tools []Tool) (AIMessage, error) {
		return AIMessage{}, fmt.Errorf("flaky: %w", ErrTemporary)
	})
	model.WithMaxRetries(10)
	model.RetryDelay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := model.Call(ctx, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCallWithoutCallFunc(t *testing.T) {
	model := &Model{ModelName: "unset"}

	_, err := model.Call(context.Background(), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no call function")
}

func TestModelOptionChaining(t *testing.T) {
	model := (&Model{ModelName: "gpt-4o"}).
		WithTemperature(0).
		WithMaxTokens(2048).
		WithMaxRetries(3)

	require.NotNil(t, model.Temperature)
	assert.Equal(t, 0.0, *model.Temperature)
	require.NotNil(t, model.MaxTokens)
	assert.Equal(t, 2048, *model.MaxTokens)
	require.NotNil(t, model.MaxRetries)
	assert.Equal(t, 3, *model.MaxRetries)
}

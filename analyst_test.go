package csvmind

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// engineFunc adapts a function to the Engine interface for tests
type engineFunc func(ctx context.Context, req AnalysisRequest) (string, error)

func (f engineFunc) Answer(ctx context.Context, req AnalysisRequest) (string, error) {
	return f(ctx, req)
}

func TestProcessSuccessRecordsTurn(t *testing.T) {
	engine := engineFunc(func(ctx context.Context, req AnalysisRequest) (string, error) {
		return "Mean age is 29.7", nil
	})
	analyst := NewAnalyst(engine, "data.csv")

	answer := analyst.Process(context.Background(), "show me basic statistics")

	assert.Equal(t, "Mean age is 29.7", answer)
	turns := analyst.History().Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, "show me basic statistics", turns[0].Question)
	assert.Equal(t, "Mean age is 29.7", turns[0].Answer)
}

func TestProcessFailureReturnsDiagnostic(t *testing.T) {
	engine := engineFunc(func(ctx context.Context, req AnalysisRequest) (string, error) {
		return "", errors.New("rate limit exceeded")
	})
	analyst := NewAnalyst(engine, "data.csv")

	answer := analyst.Process(context.Background(), "mean age?")

	assert.Equal(t, "Execution error: rate limit exceeded", answer)

	// the failure is recorded as exactly one turn, visible in later context
	turns := analyst.History().Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, "mean age?", turns[0].Question)
	assert.Equal(t, "Execution error: rate limit exceeded", turns[0].Answer)
}

func TestProcessAssemblesRequest(t *testing.T) {
	var captured AnalysisRequest
	engine := engineFunc(func(ctx context.Context, req AnalysisRequest) (string, error) {
		captured = req
		return "ok", nil
	})
	analyst := NewAnalyst(engine, "titanic.csv",
		WithToolDescriptors("python_repl: A Python shell."))

	analyst.Process(context.Background(), "first question")
	analyst.Process(context.Background(), "second question")

	assert.Equal(t, "titanic.csv", captured.DatasetPath)
	assert.Equal(t, "python_repl: A Python shell.", captured.ToolDescriptors)
	assert.Equal(t, "second question", captured.Question)

	// the snapshot carries prior turns only, not the in-flight question
	require.Len(t, captured.History, 1)
	assert.Equal(t, "first question", captured.History[0].Question)
	assert.Equal(t, "ok", captured.History[0].Answer)
}

func TestHistoryGrowsOncePerCall(t *testing.T) {
	calls := 0
	engine := engineFunc(func(ctx context.Context, req AnalysisRequest) (string, error) {
		calls++
		if calls%2 == 0 {
			return "", errors.New("boom")
		}
		return fmt.Sprintf("answer %d", calls), nil
	})
	analyst := NewAnalyst(engine, "data.csv")

	for i := 0; i < 6; i++ {
		analyst.Process(context.Background(), fmt.Sprintf("question %d", i))
	}

	// success or failure, exactly one turn per call, in call order
	turns := analyst.History().Turns()
	require.Len(t, turns, 6)
	for i, turn := range turns {
		assert.Equal(t, fmt.Sprintf("question %d", i), turn.Question)
	}
	assert.Equal(t, "answer 1", turns[0].Answer)
	assert.Equal(t, "Execution error: boom", turns[1].Answer)
}

func TestClearHistory(t *testing.T) {
	engine := engineFunc(func(ctx context.Context, req AnalysisRequest) (string, error) {
		return "ok", nil
	})
	analyst := NewAnalyst(engine, "data.csv")

	analyst.Process(context.Background(), "one")
	analyst.Process(context.Background(), "two")
	assert.Equal(t, 2, analyst.History().Len())

	analyst.ClearHistory()
	assert.Equal(t, 0, analyst.History().Len())
}

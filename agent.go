package csvmind

import (
	"context"
	"io"
	"log/slog"

	"github.com/csvmind-ai/csvmind/ai"
)

// DefaultMaxModelCalls bounds the reason/act/observe loop. Once the budget is
// spent the run stops and returns whatever answer it has.
const DefaultMaxModelCalls = 10

// Agent is the production reasoning engine. It drives a model through a
// bounded tool-calling loop: ask the model, execute any tool calls it
// requests, feed the observations back, repeat until the model answers
// without tools or the call budget runs out.
type Agent struct {
	Model *ai.Model
	Tools []ai.Tool
	Name  string

	// MaxModelCalls overrides DefaultMaxModelCalls when non-zero.
	MaxModelCalls int

	// Trace receives human-readable progress text during a run.
	// Observability only; nil disables it.
	Trace io.Writer

	LogLevel slog.Level
}

var _ Engine = (*Agent)(nil)

// Answer runs the reasoning loop for one request. Each call is independent;
// conversational memory arrives on the request, never on the Agent.
func (a *Agent) Answer(ctx context.Context, req AnalysisRequest) (string, error) {
	run := newAgentRun(a, req)
	return run.execute(ctx)
}

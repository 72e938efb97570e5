package csvmind

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Analyst is the query orchestrator. It owns the session history, assembles an
// AnalysisRequest per question and delegates to the engine. Process never
// fails: engine errors come back as an "Execution error:" diagnostic string
// and are recorded into history like any other answer, so the model sees its
// own failures in later context.
type Analyst struct {
	engine          Engine
	datasetPath     string
	toolDescriptors string
	history         *ConversationHistory
	logger          *slog.Logger
}

type AnalystOption func(*Analyst)

// WithToolDescriptors sets the tool descriptor text placed on every request.
func WithToolDescriptors(descriptors string) AnalystOption {
	return func(a *Analyst) {
		a.toolDescriptors = descriptors
	}
}

func WithLogger(logger *slog.Logger) AnalystOption {
	return func(a *Analyst) {
		a.logger = logger
	}
}

func NewAnalyst(engine Engine, datasetPath string, opts ...AnalystOption) *Analyst {
	a := &Analyst{
		engine:      engine,
		datasetPath: datasetPath,
		history:     NewConversationHistory(),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Process answers one question. It always returns a display string: the
// engine's answer on success, an "Execution error:" diagnostic on any
// failure. Exactly one turn is appended per call, after the engine resolves.
func (a *Analyst) Process(ctx context.Context, question string) string {
	runID := uuid.New().String()

	req := AnalysisRequest{
		DatasetPath:     a.datasetPath,
		ToolDescriptors: a.toolDescriptors,
		History:         a.history.Turns(),
		Question:        question,
	}

	answer, err := a.engine.Answer(ctx, req)
	if err != nil {
		diagnostic := fmt.Sprintf("Execution error: %v", err)
		a.logger.Error("query failed", "run", runID, "error", err)
		a.history.AppendTurn(NewConversationTurn(question, diagnostic, runID))
		return diagnostic
	}

	a.history.AppendTurn(NewConversationTurn(question, answer, runID))
	return answer
}

// History exposes the session state for display and clearing.
func (a *Analyst) History() *ConversationHistory {
	return a.history
}

func (a *Analyst) ClearHistory() {
	a.history.Clear()
}

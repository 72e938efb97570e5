package csvmind

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/csvmind-ai/csvmind/ai"
	"github.com/google/uuid"
)

// agentRun holds the state of one reasoning loop: the running message list,
// the call counter and the trace. One run per question; never reused.
type agentRun struct {
	id    string
	agent *Agent
	req   AnalysisRequest

	msgHistory []ai.Message
	modelCalls int

	trace  *RunTrace
	logger *slog.Logger
}

func newAgentRun(a *Agent, req AnalysisRequest) *agentRun {
	runID := uuid.New().String()

	name := a.Name
	if name == "" {
		name = runID
	}

	traceOut := a.Trace
	if traceOut == nil {
		traceOut = io.Discard
	}

	run := &agentRun{
		id:     runID,
		agent:  a,
		req:    req,
		trace:  NewRunTrace(traceOut),
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: a.LogLevel})).With("agent", name),
	}
	run.msgHistory = run.buildMessages()
	return run
}

func (r *agentRun) maxModelCalls() int {
	if r.agent.MaxModelCalls > 0 {
		return r.agent.MaxModelCalls
	}
	return DefaultMaxModelCalls
}

// execute runs the loop to completion. Tool failures are fed back to the
// model as observations so it can self-correct; only model failures and an
// exhausted call budget without any answer end the run with an error.
func (r *agentRun) execute(ctx context.Context) (string, error) {
	limit := r.maxModelCalls()
	r.trace.Question(r.req.Question)

	lastContent := ""
	for r.modelCalls < limit {
		r.modelCalls++

		r.logger.Debug("calling model", "model", r.agent.Model.ModelName, "call", r.modelCalls, "messages", len(r.msgHistory))
		r.trace.ModelCall(r.modelCalls, limit)

		msg, err := r.agent.Model.Call(ctx, r.msgHistory, r.agent.Tools)
		if err != nil {
			r.logger.Error("model call failed", "error", err)
			r.trace.Failure(err)
			return "", err
		}
		r.msgHistory = append(r.msgHistory, msg)

		if msg.Content != "" {
			lastContent = msg.Content
			r.trace.Thought(msg.Content)
		}

		if len(msg.ToolCalls) == 0 {
			r.trace.FinalAnswer(msg.Content)
			return msg.Content, nil
		}

		for _, tc := range msg.ToolCalls {
			observation := r.runToolCall(tc)
			r.msgHistory = append(r.msgHistory, ai.ToolMessage{
				Role:       ai.ToolRole,
				Content:    observation,
				ToolCallID: tc.ID,
				ToolName:   tc.Name,
			})
		}
	}

	// Budget spent: stop and hand back the best answer available.
	if lastContent != "" {
		r.trace.FinalAnswer(lastContent)
		return lastContent, nil
	}
	err := fmt.Errorf("agent stopped after %d model calls without a final answer", limit)
	r.trace.Failure(err)
	return "", err
}

// runToolCall executes one requested tool call and returns the observation
// text for the model. Errors become observations, never run failures.
func (r *agentRun) runToolCall(tc ai.ToolCall) string {
	r.trace.ToolCall(tc.Name, tc.Args)

	tool := r.findTool(tc.Name)
	if tool == nil {
		return r.observe(tc, fmt.Sprintf("tool not found: %s", tc.Name))
	}

	var args map[string]interface{}
	if err := json.Unmarshal([]byte(tc.Args), &args); err != nil {
		return r.observe(tc, fmt.Sprintf("invalid tool parameters: %v", err))
	}

	result, err := tool.Call(args)
	if err != nil {
		r.logger.Debug("tool call failed", "tool", tc.Name, "error", err)
		return r.observe(tc, fmt.Sprintf("tool execution error: %v", err))
	}

	return r.observe(tc, formatToolResult(result))
}

func (r *agentRun) observe(tc ai.ToolCall, observation string) string {
	r.logger.Debug("tool call completed", "tool", tc.Name, "tool_call_id", tc.ID)
	r.trace.Observation(observation)
	return observation
}

func (r *agentRun) findTool(name string) *ai.Tool {
	for i := range r.agent.Tools {
		if r.agent.Tools[i].Name == name {
			return &r.agent.Tools[i]
		}
	}
	return nil
}

func formatToolResult(result *ai.ToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}

	parts := make([]string, 0, len(result.Content))
	for _, item := range result.Content {
		segment := stringifyToolContent(item.Content)
		if segment == "" {
			continue
		}
		if item.Type != "" && item.Type != "text" {
			segment = fmt.Sprintf("[%s] %s", item.Type, segment)
		}
		parts = append(parts, segment)
	}

	return strings.Join(parts, "\n")
}

func stringifyToolContent(content any) string {
	switch v := content.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		if utf8.Valid(v) {
			return string(v)
		}
		return fmt.Sprintf("0x%x", v)
	case fmt.Stringer:
		return v.String()
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}

package csvmind

import (
	"context"
	"fmt"
	"strings"

	"github.com/csvmind-ai/csvmind/ai"
)

// AnalysisRequest carries everything the reasoning engine needs for one
// question: the dataset location, the descriptors of the tools it may call,
// a snapshot of the conversation so far, and the question itself. Constructed
// fresh per query and never retained.
type AnalysisRequest struct {
	DatasetPath     string
	ToolDescriptors string
	History         []ConversationTurn
	Question        string
}

// Engine answers a single analysis request. The production implementation is
// Agent; tests substitute their own.
type Engine interface {
	Answer(ctx context.Context, req AnalysisRequest) (string, error)
}

// DescribeTools renders the descriptor text offered to the engine, one
// "name: description" line per tool.
func DescribeTools(tools []ai.Tool) string {
	lines := make([]string, 0, len(tools))
	for _, tool := range tools {
		lines = append(lines, fmt.Sprintf("%s: %s", tool.Name, tool.Description))
	}
	return strings.Join(lines, "\n")
}

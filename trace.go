package csvmind

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// keep trace observations readable when a tool dumps a lot of output
const traceBodyLimit = 2000

// RunTrace writes a human-readable account of one reasoning run to an output
// stream: the question, each model call, tool invocations and their
// observations, and the final answer. Observability only; nothing reads it
// back.
type RunTrace struct {
	w     io.Writer
	start time.Time
	mu    sync.Mutex
}

func NewRunTrace(w io.Writer) *RunTrace {
	return &RunTrace{
		w:     w,
		start: time.Now(),
	}
}

func (t *RunTrace) Question(question string) {
	t.write("question", question)
}

func (t *RunTrace) ModelCall(n, limit int) {
	t.write("model call", fmt.Sprintf("%d of %d", n, limit))
}

func (t *RunTrace) Thought(content string) {
	t.write("thought", content)
}

func (t *RunTrace) ToolCall(name, args string) {
	t.write("tool call", fmt.Sprintf("%s %s", name, args))
}

func (t *RunTrace) Observation(observation string) {
	t.write("observation", observation)
}

func (t *RunTrace) FinalAnswer(answer string) {
	t.write("final answer", answer)
}

func (t *RunTrace) Failure(err error) {
	t.write("error", err.Error())
}

func (t *RunTrace) write(label, body string) {
	body = strings.TrimSpace(body)
	if len(body) > traceBodyLimit {
		body = body[:traceBodyLimit] + "... (truncated)"
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	elapsed := time.Since(t.start).Round(time.Millisecond)
	fmt.Fprintf(t.w, "[%8s] %s: %s\n", elapsed, label, body)
}

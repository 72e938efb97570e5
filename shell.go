package csvmind

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// answers longer than this many characters are truncated in the history listing
const historyPreviewLimit = 100

// Shell is the interactive read loop. It reads one line at a time,
// classifies it as a control command or a question, and drives the Analyst.
// A single bad iteration never takes the loop down; only quit, interrupt or
// end of input end it.
type Shell struct {
	analyst *Analyst
	in      io.Reader
	out     io.Writer
}

func NewShell(analyst *Analyst, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		analyst: analyst,
		in:      in,
		out:     out,
	}
}

// Run blocks until the user quits, input ends, or ctx is cancelled. Cancelling
// ctx while waiting for input prints the farewell and returns nil, so an
// interrupt always exits cleanly.
func (s *Shell) Run(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(s.out, "\nEnter your question (type 'quit' to exit): ")

		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out, "\nGoodbye!")
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out, "\nGoodbye!")
				return nil
			}
			if done := s.dispatch(ctx, line); done {
				return nil
			}
		}
	}
}

// dispatch handles one input line and reports whether the loop should end.
// Panics from a single iteration are reported and swallowed.
func (s *Shell) dispatch(ctx context.Context, line string) (done bool) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintf(s.out, "\nUnexpected error: %v\n", rec)
			fmt.Fprintln(s.out, "Please try again or restart the application.")
			done = false
		}
	}()

	input := strings.TrimSpace(line)

	switch strings.ToLower(input) {
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Goodbye!")
		return true

	case "clear", "clear history":
		s.analyst.ClearHistory()
		fmt.Fprintln(s.out, "Chat history cleared.")
		return false

	case "history", "show history":
		s.printHistory()
		return false

	case "":
		fmt.Fprintln(s.out, "Please enter a valid question.")
		return false
	}

	answer := s.analyst.Process(ctx, input)
	fmt.Fprintf(s.out, "\nAgent response:\n%s\n", answer)
	return false
}

func (s *Shell) printHistory() {
	turns := s.analyst.History().Turns()
	if len(turns) == 0 {
		fmt.Fprintln(s.out, "No chat history yet.")
		return
	}

	fmt.Fprintln(s.out, "\nChat history:")
	for i, turn := range turns {
		fmt.Fprintf(s.out, "%d. Q: %s\n", i+1, turn.Question)
		answer := turn.Answer
		if runes := []rune(answer); len(runes) > historyPreviewLimit {
			answer = string(runes[:historyPreviewLimit]) + "..."
		}
		fmt.Fprintf(s.out, "   A: %s\n", answer)
	}
}

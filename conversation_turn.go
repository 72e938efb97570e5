package csvmind

import (
	"time"
)

// ConversationTurn is one question/answer exchange. Immutable once appended
// to a ConversationHistory. The answer half holds whatever was displayed to
// the user, including Execution error diagnostics, so failed turns remain
// visible to the model in later requests.
type ConversationTurn struct {
	Question  string
	Answer    string
	RunID     string
	Timestamp time.Time
}

// NewConversationTurn creates a turn stamped with the current time.
func NewConversationTurn(question, answer, runID string) ConversationTurn {
	return ConversationTurn{
		Question:  question,
		Answer:    answer,
		RunID:     runID,
		Timestamp: time.Now(),
	}
}

package csvmind

import (
	"sync"

	"github.com/csvmind-ai/csvmind/ai"
)

// ConversationHistory stores the ordered turns of one session. It is owned by
// a single Analyst and cleared only by explicit user command; lifetime equals
// process lifetime.
type ConversationHistory struct {
	turns []ConversationTurn
	mutex sync.RWMutex
}

// NewConversationHistory creates an empty conversation history
func NewConversationHistory() *ConversationHistory {
	return &ConversationHistory{
		turns: make([]ConversationTurn, 0),
	}
}

// AppendTurn adds a turn to the history
func (h *ConversationHistory) AppendTurn(turn ConversationTurn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.turns = append(h.turns, turn)
}

// Turns returns a copy of all turns in insertion order
func (h *ConversationHistory) Turns() []ConversationTurn {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	result := make([]ConversationTurn, len(h.turns))
	copy(result, h.turns)
	return result
}

// Messages returns all turns flattened for LLM context, oldest first
func (h *ConversationHistory) Messages() []ai.Message {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return turnMessages(h.turns)
}

// turnMessages flattens turns into user/assistant message pairs, oldest first.
func turnMessages(turns []ConversationTurn) []ai.Message {
	var messages []ai.Message
	for _, turn := range turns {
		messages = append(messages, ai.UserMessage{Role: ai.UserRole, Content: turn.Question})
		messages = append(messages, ai.AIMessage{Role: ai.AssistantRole, Content: turn.Answer})
	}
	return messages
}

// Clear removes all turns from the history
func (h *ConversationHistory) Clear() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.turns = make([]ConversationTurn, 0)
}

// Len returns the number of turns in the history
func (h *ConversationHistory) Len() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.turns)
}

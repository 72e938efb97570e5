package ai

type MessageRole string

const (
	UserRole      MessageRole = "user"
	AssistantRole MessageRole = "assistant"
	ToolRole      MessageRole = "tool"
	SystemRole    MessageRole = "system"
)

// Message is implemented by every message type exchanged with a model.
type Message interface {
	Value() (role MessageRole, content string)
}

var (
	_ Message = UserMessage{}
	_ Message = AIMessage{}
	_ Message = ToolMessage{}
	_ Message = SystemMessage{}
)

// ToolCall is a tool invocation requested by the model. Args is the raw JSON
// argument string exactly as the provider returned it.
type ToolCall struct {
	ID   string
	Type string
	Name string
	Args string
}

type AIMessage struct {
	Role      MessageRole
	Content   string
	ToolCalls []ToolCall
}

func (m AIMessage) Value() (MessageRole, string) {
	return m.Role, m.Content
}

type UserMessage struct {
	Role    MessageRole
	Content string
}

func (m UserMessage) Value() (MessageRole, string) {
	return m.Role, m.Content
}

type SystemMessage struct {
	Role    MessageRole
	Content string
}

func (m SystemMessage) Value() (MessageRole, string) {
	return m.Role, m.Content
}

type ToolMessage struct {
	Role       MessageRole
	Content    string
	ToolCallID string
	ToolName   string
}

func (m ToolMessage) Value() (MessageRole, string) {
	return m.Role, m.Content
}

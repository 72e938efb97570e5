package csvmind

import (
	"fmt"

	"github.com/csvmind-ai/csvmind/ai"
)

func (r *agentRun) createSystemPrompt() string {
	sysMsg := fmt.Sprintf("You are a data analysis agent. There is a CSV file located at %s.\n", r.req.DatasetPath)
	sysMsg += "Answer the user's questions about this data as best you can.\n\n"

	if r.req.ToolDescriptors != "" {
		sysMsg += "You have access to the following tools:\n"
		sysMsg += "<tools>\n" + r.req.ToolDescriptors + "\n</tools>\n\n"
		sysMsg += "Use the tools to load and analyse the data. Values are only visible when the code prints them.\n"
		sysMsg += "Analyse the previous messages before you decide the next step to prevent executing the same calls.\n"
		sysMsg += "When you have computed the result, reply with the final answer and no tool calls.\n"
	}

	return sysMsg
}

// buildMessages assembles the prompt for a run: system message, the prior
// conversation in chronological order, then the new question.
func (r *agentRun) buildMessages() []ai.Message {
	messages := []ai.Message{
		ai.SystemMessage{Role: ai.SystemRole, Content: r.createSystemPrompt()},
	}
	messages = append(messages, turnMessages(r.req.History)...)
	messages = append(messages, ai.UserMessage{Role: ai.UserRole, Content: r.req.Question})
	return messages
}

package openai

import (
	"fmt"

	"github.com/csvmind-ai/csvmind/ai"
	"github.com/openai/openai-go/v3"
)

func toChatMessages(msgs []ai.Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, msg := range msgs {
		switch m := msg.(type) {
		case ai.UserMessage:
			result = append(result, toChatUserMessage(m))
		case ai.SystemMessage:
			result = append(result, toChatSystemMessage(m))
		case ai.AIMessage:
			result = append(result, toChatAssistantMessage(m))
		case ai.ToolMessage:
			result = append(result, toChatToolMessage(m))
		default:
			return nil, fmt.Errorf("unsupported message type: %T", msg)
		}
	}
	return result, nil
}

func toChatUserMessage(msg ai.UserMessage) openai.ChatCompletionMessageParamUnion {
	return openai.ChatCompletionMessageParamUnion{
		OfUser: &openai.ChatCompletionUserMessageParam{
			Content: openai.ChatCompletionUserMessageParamContentUnion{
				OfString: openai.String(msg.Content),
			},
		},
	}
}

func toChatSystemMessage(msg ai.SystemMessage) openai.ChatCompletionMessageParamUnion {
	return openai.ChatCompletionMessageParamUnion{
		OfSystem: &openai.ChatCompletionSystemMessageParam{
			Content: openai.ChatCompletionSystemMessageParamContentUnion{
				OfString: openai.Opt(msg.Content),
			},
		},
	}
}

func toChatAssistantMessage(msg ai.AIMessage) openai.ChatCompletionMessageParamUnion {
	assistantMsg := &openai.ChatCompletionAssistantMessageParam{
		Content: openai.ChatCompletionAssistantMessageParamContentUnion{
			OfString: openai.Opt(msg.Content),
		},
	}
	if len(msg.ToolCalls) > 0 {
		toolCalls := make([]openai.ChatCompletionMessageToolCallUnionParam, len(msg.ToolCalls))
		for i, tc := range msg.ToolCalls {
			toolCalls[i] = openai.ChatCompletionMessageToolCallUnionParam{
				OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
					ID: tc.ID,
					Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
						Name:      tc.Name,
						Arguments: tc.Args,
					},
				},
			}
		}
		assistantMsg.ToolCalls = toolCalls
	}
	return openai.ChatCompletionMessageParamUnion{
		OfAssistant: assistantMsg,
	}
}

func toChatToolMessage(msg ai.ToolMessage) openai.ChatCompletionMessageParamUnion {
	return openai.ChatCompletionMessageParamUnion{
		OfTool: &openai.ChatCompletionToolMessageParam{
			Content: openai.ChatCompletionToolMessageParamContentUnion{
				OfString: openai.Opt(msg.Content),
			},
			ToolCallID: msg.ToolCallID,
		},
	}
}

func fromChatResponse(resp *openai.ChatCompletion, choiceIndex int) ai.AIMessage {
	if len(resp.Choices) <= choiceIndex {
		return ai.AIMessage{}
	}
	msg := resp.Choices[choiceIndex].Message

	aiMsg := ai.AIMessage{
		Role:    ai.AssistantRole,
		Content: msg.Content,
	}

	if len(msg.ToolCalls) > 0 {
		aiMsg.ToolCalls = make([]ai.ToolCall, len(msg.ToolCalls))
		for i, tc := range msg.ToolCalls {
			aiMsg.ToolCalls[i] = ai.ToolCall{
				ID:   tc.ID,
				Type: string(tc.Type),
				Name: tc.Function.Name,
				Args: tc.Function.Arguments,
			}
		}
	}

	return aiMsg
}

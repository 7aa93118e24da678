// Package assistant runs an LLM-backed research loop on top of
// LangChainGo's native tool calling: the model is offered a set of
// tools, its tool calls are validated and executed, and the results
// are fed back until the model produces a plain text answer.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

// DefaultMaxIterations bounds the tool-calling loop.
const DefaultMaxIterations = 10

// DefaultSystemPrompt is used when no custom prompt is configured.
const DefaultSystemPrompt = "You are a research assistant. Use the " +
	"available tools to look up facts before answering. When you have " +
	"enough information, answer the question directly in plain text."

// Assistant drives the model/tool loop.
//
// Example usage:
//
//	llm, _ := ollama.New(ollama.WithModel("llama3.2"))
//	asst := assistant.New(llm).
//	    WithTools(
//	        assistant.Wikipedia("percept (https://github.com/rickchristie/percept)"),
//	        assistant.Calculator(),
//	    )
//	answer, err := asst.Run(ctx, "When was the Eiffel Tower built?")
type Assistant struct {
	model         llms.Model
	tools         []*Tool
	systemPrompt  string
	maxIterations int
}

// New creates an Assistant with no tools, the default system prompt,
// and the default iteration cap.
func New(model llms.Model) *Assistant {
	return &Assistant{
		model:         model,
		systemPrompt:  DefaultSystemPrompt,
		maxIterations: DefaultMaxIterations,
	}
}

// WithTools adds tools the model may call. Returns the assistant for
// chaining.
func (a *Assistant) WithTools(tools ...*Tool) *Assistant {
	a.tools = append(a.tools, tools...)
	return a
}

// WithSystemPrompt replaces the default system prompt.
// Returns the assistant for chaining.
func (a *Assistant) WithSystemPrompt(prompt string) *Assistant {
	a.systemPrompt = prompt
	return a
}

// WithMaxIterations caps the number of model calls per Run.
// Returns the assistant for chaining.
func (a *Assistant) WithMaxIterations(n int) *Assistant {
	a.maxIterations = n
	return a
}

// Tools returns the registered tools.
func (a *Assistant) Tools() []*Tool {
	return a.tools
}

// Run answers the query, calling tools as the model requests, and
// returns the model's final plain text answer. It fails when the model
// errors, requests an unknown tool call shape, or the iteration cap is
// reached without a final answer.
func (a *Assistant) Run(ctx context.Context, query string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, a.systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, query),
	}

	defs := make([]llms.Tool, len(a.tools))
	for i, tool := range a.tools {
		defs[i] = tool.Definition()
	}

	for i := 0; i < a.maxIterations; i++ {
		response, err := a.model.GenerateContent(ctx, messages, llms.WithTools(defs))
		if err != nil {
			return "", fmt.Errorf("model call failed: %w", err)
		}
		if len(response.Choices) == 0 {
			return "", fmt.Errorf("model returned no choices")
		}

		choice := response.Choices[0]
		if len(choice.ToolCalls) == 0 {
			return choice.Content, nil
		}

		// Echo the tool calls back as the assistant turn, then answer
		// each with a tool message.
		assistantMsg := llms.MessageContent{Role: llms.ChatMessageTypeAI}
		for _, call := range choice.ToolCalls {
			assistantMsg.Parts = append(assistantMsg.Parts, call)
		}
		messages = append(messages, assistantMsg)

		for _, call := range choice.ToolCalls {
			messages = append(messages, a.answerToolCall(ctx, call))
		}
	}

	return "", fmt.Errorf("no final answer after %d iterations", a.maxIterations)
}

// answerToolCall executes one tool call and wraps the result, or the
// failure, as a tool message. Tool failures are reported to the model
// rather than aborting the run, so it can recover or rephrase.
func (a *Assistant) answerToolCall(
	ctx context.Context,
	call llms.ToolCall,
) llms.MessageContent {
	name := ""
	if call.FunctionCall != nil {
		name = call.FunctionCall.Name
	}

	content, err := a.executeToolCall(ctx, call)
	if err != nil {
		content = fmt.Sprintf("Error: %v", err)
	}

	return llms.MessageContent{
		Role: llms.ChatMessageTypeTool,
		Parts: []llms.ContentPart{
			llms.ToolCallResponse{
				ToolCallID: call.ID,
				Name:       name,
				Content:    content,
			},
		},
	}
}

// executeToolCall parses the call's arguments, validates them against
// the tool's schema, and runs the tool.
func (a *Assistant) executeToolCall(
	ctx context.Context,
	call llms.ToolCall,
) (string, error) {
	if call.FunctionCall == nil {
		return "", fmt.Errorf("tool call %s has no function call", call.ID)
	}

	tool := a.findTool(call.FunctionCall.Name)
	if tool == nil {
		return "", fmt.Errorf("unknown tool: %s", call.FunctionCall.Name)
	}

	args := map[string]any{}
	if call.FunctionCall.Arguments != "" {
		if err := json.Unmarshal([]byte(call.FunctionCall.Arguments), &args); err != nil {
			return "", fmt.Errorf("invalid arguments for %s: %w", tool.Name(), err)
		}
	}

	return tool.Execute(ctx, args)
}

func (a *Assistant) findTool(name string) *Tool {
	for _, tool := range a.tools {
		if tool.Name() == name {
			return tool
		}
	}
	return nil
}

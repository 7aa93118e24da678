// Package tt holds shared test doubles and assertion helpers.
package tt

import (
	"context"

	"github.com/tmc/langchaingo/llms"
)

// -----------------------------------------------------------------------------
// MockModel - implements llms.Model with scripted responses
// -----------------------------------------------------------------------------

// MockModel is a configurable mock that implements llms.Model. Queue
// responses and errors in call order; calls past the end of the queue
// return a plain "done" answer.
type MockModel struct {
	responses []*llms.ContentResponse
	errors    []error
	callCount int

	// CapturedMessages stores the messages passed to each
	// GenerateContent call. Populated automatically on every call.
	CapturedMessages [][]llms.MessageContent
}

// NewMockModel creates an empty MockModel.
func NewMockModel() *MockModel {
	return &MockModel{}
}

// AddTextResponse queues a plain text answer.
func (m *MockModel) AddTextResponse(content string) *MockModel {
	m.responses = append(m.responses, &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: content}},
	})
	return m
}

// AddToolCallResponse queues a response asking to invoke one tool with
// the given JSON argument payload.
func (m *MockModel) AddToolCallResponse(callID, tool, arguments string) *MockModel {
	m.responses = append(m.responses, &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			ToolCalls: []llms.ToolCall{{
				ID:   callID,
				Type: "function",
				FunctionCall: &llms.FunctionCall{
					Name:      tool,
					Arguments: arguments,
				},
			}},
		}},
	})
	return m
}

// AddRawResponse queues a raw ContentResponse. Use this when you need
// full control over the response structure (e.g. empty Choices slice).
func (m *MockModel) AddRawResponse(resp *llms.ContentResponse) *MockModel {
	m.responses = append(m.responses, resp)
	return m
}

// AddError queues an error for the next call.
func (m *MockModel) AddError(err error) *MockModel {
	// Extend responses slice if needed to match errors length
	for len(m.responses) <= len(m.errors) {
		m.responses = append(m.responses, nil)
	}
	m.errors = append(m.errors, err)
	return m
}

// CallCount returns the number of times GenerateContent has been called.
func (m *MockModel) CallCount() int {
	return m.callCount
}

// GenerateContent implements llms.Model.
func (m *MockModel) GenerateContent(
	_ context.Context,
	messages []llms.MessageContent,
	_ ...llms.CallOption,
) (*llms.ContentResponse, error) {
	idx := m.callCount
	m.callCount++

	m.CapturedMessages = append(m.CapturedMessages, messages)

	if idx < len(m.errors) && m.errors[idx] != nil {
		return nil, m.errors[idx]
	}

	if idx < len(m.responses) && m.responses[idx] != nil {
		return m.responses[idx], nil
	}

	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: "done"}},
	}, nil
}

// Call implements the single-prompt convenience method of llms.Model.
func (m *MockModel) Call(
	ctx context.Context,
	prompt string,
	options ...llms.CallOption,
) (string, error) {
	response, err := m.GenerateContent(
		ctx,
		[]llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)},
		options...,
	)
	if err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", nil
	}
	return response.Choices[0].Content, nil
}

// Compile-time check that MockModel implements llms.Model.
var _ llms.Model = (*MockModel)(nil)

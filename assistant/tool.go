package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"
	"github.com/tmc/langchaingo/tools/wikipedia"

	"github.com/rickchristie/percept"
	"github.com/rickchristie/percept/schema"
)

// RunFunc executes a tool with already-validated arguments and returns
// the observation text fed back to the model.
type RunFunc func(ctx context.Context, args map[string]any) (string, error)

// Tool is a named capability the model can call. Arguments are
// validated against the tool's JSON Schema before the run function
// executes.
type Tool struct {
	name        string
	description string
	schema      *schema.Schema
	run         RunFunc
}

// NewTool creates a tool from a raw JSON Schema map (see the schema
// package builders). A nil schema map skips argument validation.
func NewTool(name, description string, raw map[string]any, run RunFunc) (*Tool, error) {
	if name == "" {
		return nil, fmt.Errorf("tool name must not be empty")
	}
	if run == nil {
		return nil, fmt.Errorf("tool %s has no run function", name)
	}

	compiled, err := schema.Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("tool %s: %w", name, err)
	}

	return &Tool{
		name:        name,
		description: description,
		schema:      compiled,
		run:         run,
	}, nil
}

// MustNewTool is like NewTool but panics on error.
// Use this for tools defined at init time.
func MustNewTool(name, description string, raw map[string]any, run RunFunc) *Tool {
	tool, err := NewTool(name, description, raw, run)
	if err != nil {
		panic(err)
	}
	return tool
}

// Name returns the tool's name as exposed to the model.
func (t *Tool) Name() string {
	return t.name
}

// Description returns the tool's description as exposed to the model.
func (t *Tool) Description() string {
	return t.description
}

// Definition returns the tool in the form the model API expects.
func (t *Tool) Definition() llms.Tool {
	return llms.Tool{
		Type: "function",
		Function: &llms.FunctionDefinition{
			Name:        t.name,
			Description: t.description,
			Parameters:  t.schema.Raw(),
		},
	}
}

// Execute validates args against the tool's schema and runs the tool.
func (t *Tool) Execute(ctx context.Context, args map[string]any) (string, error) {
	if err := t.schema.Validate(args); err != nil {
		return "", err
	}
	return t.run(ctx, args)
}

// -----------------------------------------------------------------------------
// Built-in Tools
// -----------------------------------------------------------------------------

// inputSchema is the single-string-argument schema shared by the
// wrapped LangChainGo tools.
func inputSchema(description string) map[string]any {
	return schema.Object(map[string]*schema.Property{
		"input": schema.String(description),
	}, "input")
}

// wrapLangChain adapts a tools.Tool (single string in, string out) into
// a schema-validated Tool.
func wrapLangChain(t tools.Tool, inputDescription string) *Tool {
	return MustNewTool(
		t.Name(),
		t.Description(),
		inputSchema(inputDescription),
		func(ctx context.Context, args map[string]any) (string, error) {
			input, _ := args["input"].(string)
			return t.Call(ctx, input)
		},
	)
}

// Wikipedia returns a tool that searches Wikipedia and returns the
// top matching page extracts. The userAgent identifies the caller to
// the Wikipedia API, which rejects anonymous clients.
func Wikipedia(userAgent string) *Tool {
	wiki := wikipedia.New(userAgent)
	return wrapLangChain(&wiki, "Search term or topic to look up")
}

// Calculator returns a tool that evaluates arithmetic expressions.
func Calculator() *Tool {
	return wrapLangChain(tools.Calculator{}, "Arithmetic expression to evaluate")
}

// CurrentTime returns a tool that reports the current date and time,
// read from the given time provider.
func CurrentTime(tp percept.TimeProvider) *Tool {
	return MustNewTool(
		"current_time",
		"Returns the current date and time in RFC 3339 format.",
		nil,
		func(_ context.Context, _ map[string]any) (string, error) {
			return tp.Format(time.RFC3339), nil
		},
	)
}

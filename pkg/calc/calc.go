/*
calc implements two demonstration arithmetic tools which are computed
locally, without any upstream call.
*/
package calc

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	commerce "github.com/mutablelogic/go-commerce"
	tool "github.com/mutablelogic/go-commerce/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type AddRequest struct {
	A float64 `json:"a" jsonschema:"The first number"`
	B float64 `json:"b" jsonschema:"The second number"`
}

type CalculateRequest struct {
	Operation string  `json:"operation" jsonschema:"The operation to perform. One of add, subtract, multiply, divide"`
	A         float64 `json:"a" jsonschema:"The first operand"`
	B         float64 `json:"b" jsonschema:"The second operand"`
}

type add struct{}

type calculate struct{}

var _ tool.Tool = (*add)(nil)
var _ tool.Tool = (*calculate)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	operations = []any{"add", "subtract", "multiply", "divide"}
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the arithmetic tools
func NewTools() []tool.Tool {
	return []tool.Tool{
		&add{},
		&calculate{},
	}
}

///////////////////////////////////////////////////////////////////////////////
// ADD

func (*add) Name() string {
	return "add"
}

func (*add) Description() string {
	return "Add two numbers together and return the sum."
}

// Return the JSON schema for the tool input
func (*add) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[AddRequest](nil)
}

// Run the tool with the given input
func (*add) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req AddRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, commerce.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	return req.A + req.B, nil
}

///////////////////////////////////////////////////////////////////////////////
// CALCULATE

func (*calculate) Name() string {
	return "calculate"
}

func (*calculate) Description() string {
	return "Perform a basic arithmetic operation on two numbers."
}

// Return the JSON schema for the tool input
func (*calculate) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[CalculateRequest](nil)
	if err != nil {
		return nil, err
	}

	// Add enum constraint for operation
	if operation, ok := schema.Properties["operation"]; ok && operation != nil {
		operation.Enum = operations
	}

	return schema, nil
}

// Run the tool with the given input
func (*calculate) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req CalculateRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, commerce.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	switch req.Operation {
	case "add":
		return req.A + req.B, nil
	case "subtract":
		return req.A - req.B, nil
	case "multiply":
		return req.A * req.B, nil
	case "divide":
		// Checked before computation, returned as a normal tool error
		if req.B == 0 {
			return nil, commerce.ErrDivideByZero
		}
		return req.A / req.B, nil
	}
	return nil, commerce.ErrBadParameter.Withf("unknown operation: %q", req.Operation)
}

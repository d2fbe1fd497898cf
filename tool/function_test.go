package tool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/questhq/questagent/core"
	"github.com/questhq/questagent/internal/util"
)

// -------------------- Schema & Validation Tests --------------------

type sampleSchema struct {
	A string `json:"a" description:"Field A"`
	B *int   `json:"b" description:"Optional pointer field"`
	C int    `json:"c,omitempty" description:"Omit empty field"`
	D string `json:"d,omitempty" enum:"x,y"`
}

func TestCreateSchema(t *testing.T) {
	schema := util.CreateSchema(sampleSchema{})
	props, ok := schema["properties"].(map[string]any)
	assert.True(t, ok)
	assert.Contains(t, props, "a")
	assert.Contains(t, props, "b")
	assert.Contains(t, props, "c")
	// Required only includes non-pointer, non-omitempty exported fields
	req, _ := schema["required"].([]string)
	if req == nil { // reflection may produce []any
		ifaceReq, _ := schema["required"].([]any)
		for _, v := range ifaceReq {
			req = append(req, v.(string))
		}
	}
	assert.ElementsMatch(t, []string{"a"}, req)

	dSchema, _ := props["d"].(map[string]any)
	assert.Equal(t, []any{"x", "y"}, dSchema["enum"])
}

func TestValidateParameters(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"x": map[string]any{"type": "integer"},
		},
		// Use []any to mirror possible JSON decoded schema shape
		"required": []any{"x"},
	}

	// Success
	err := util.ValidateParameters(map[string]any{"x": 5}, schema)
	assert.NoError(t, err)

	// Missing required
	err = util.ValidateParameters(map[string]any{}, schema)
	assert.Error(t, err)
	if vErr, ok := err.(*ValidationError); ok {
		assert.Equal(t, "x", vErr.Field)
	} else {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	// Wrong type
	err = util.ValidateParameters(map[string]any{"x": "not-int"}, schema)
	assert.Error(t, err)
	if vErr, ok := err.(*ValidationError); ok {
		assert.Contains(t, vErr.Message, "expected type integer")
	} else {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestValidateParameters_Enum(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"stage": map[string]any{"type": "string", "enum": []string{"onboarding", "enrichment", "trinity"}},
		},
		"required": []string{"stage"},
	}

	assert.NoError(t, util.ValidateParameters(map[string]any{"stage": "trinity"}, schema))

	err := util.ValidateParameters(map[string]any{"stage": "retirement"}, schema)
	assert.Error(t, err)
	if vErr, ok := err.(*ValidationError); ok {
		assert.Equal(t, "stage", vErr.Field)
	} else {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

// -------------------- FunctionTool Tests --------------------

func TestFunctionTool_Success(t *testing.T) {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
		"required": []string{"name"},
	}

	ft := NewFunctionTool("greet", "Greets someone", params,
		func(_ *core.ToolContext, args map[string]any) (core.Result, error) {
			return core.DataResult("hello " + args["name"].(string)), nil
		})

	assert.Equal(t, "greet", ft.Name())
	assert.Equal(t, "Greets someone", ft.Description())
	assert.Equal(t, params, ft.Parameters())

	res, err := ft.Call(newTestContext(nil, core.Gateways{}), map[string]any{"name": "Ada"})
	assert.NoError(t, err)
	assert.Equal(t, "hello Ada", res.Value)
}

func TestFunctionTool_ValidationFailure(t *testing.T) {
	ft := NewFunctionTool("strict", "Requires x",
		map[string]any{
			"type":       "object",
			"properties": map[string]any{"x": map[string]any{"type": "string"}},
			"required":   []string{"x"},
		},
		func(_ *core.ToolContext, _ map[string]any) (core.Result, error) {
			return core.DataResult("never reached"), nil
		})

	_, err := ft.Call(newTestContext(nil, core.Gateways{}), map[string]any{})

	var toolErr *ToolError
	assert.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "VALIDATION_ERROR", toolErr.Code)
	assert.Equal(t, "strict", toolErr.Tool)
}

func TestFunctionTool_ExecutionError(t *testing.T) {
	ft := NewFunctionTool("broken", "Always fails",
		map[string]any{"type": "object", "properties": map[string]any{}},
		func(_ *core.ToolContext, _ map[string]any) (core.Result, error) {
			return core.Result{}, errors.New("boom")
		})

	_, err := ft.Call(newTestContext(nil, core.Gateways{}), map[string]any{})

	var toolErr *ToolError
	assert.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "EXECUTION_ERROR", toolErr.Code)
	assert.Equal(t, "boom", toolErr.Message)
}

func TestFunctionTool_CustomToolErrorPassedThrough(t *testing.T) {
	custom := NewToolError("custom", "rate limited", "RATE_LIMITED")
	ft := NewFunctionTool("custom", "Returns its own ToolError",
		map[string]any{"type": "object", "properties": map[string]any{}},
		func(_ *core.ToolContext, _ map[string]any) (core.Result, error) {
			return core.Result{}, custom
		})

	_, err := ft.Call(newTestContext(nil, core.Gateways{}), map[string]any{})

	var toolErr *ToolError
	assert.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "RATE_LIMITED", toolErr.Code)
}

func TestFunctionTool_FromStruct(t *testing.T) {
	ft := NewFunctionToolFromStruct("sample", "Schema from struct", sampleSchema{},
		func(_ *core.ToolContext, _ map[string]any) (core.Result, error) {
			return core.DataResult("ok"), nil
		})

	props, ok := ft.Parameters()["properties"].(map[string]any)
	assert.True(t, ok)
	assert.Contains(t, props, "a")
}

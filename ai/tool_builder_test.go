package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToolGeneratesSchema(t *testing.T) {
	type input struct {
		Code    string  `json:"code" description:"Python code to execute"`
		Timeout int     `json:"timeout,omitempty" description:"Timeout in seconds"`
		Verbose bool    `json:"verbose,omitempty"`
		Weight  float64 `json:"weight,omitempty"`
	}

	tool := NewTool("runner", "Runs code", func(in input) (string, error) {
		return "", nil
	})

	assert.Equal(t, "runner", tool.Name)
	assert.Equal(t, "Runs code", tool.Description)
	assert.Equal(t, "object", tool.InputSchema["type"])

	props, ok := tool.InputSchema["properties"].(map[string]interface{})
	require.True(t, ok)

	code, ok := props["code"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "string", code["type"])
	assert.Equal(t, "Python code to execute", code["description"])

	timeout := props["timeout"].(map[string]interface{})
	assert.Equal(t, "integer", timeout["type"])
	assert.Equal(t, "boolean", props["verbose"].(map[string]interface{})["type"])
	assert.Equal(t, "number", props["weight"].(map[string]interface{})["type"])

	// omitempty fields are optional
	assert.Equal(t, []string{"code"}, tool.InputSchema["required"])
}

func TestNewToolExecuteConvertsArguments(t *testing.T) {
	type input struct {
		Name  string `json:"name"`
		Count int    `json:"count,omitempty"`
	}

	tool := NewTool("greeter", "Greets", func(in input) (string, error) {
		if in.Count == 0 {
			in.Count = 1
		}
		out := ""
		for i := 0; i < in.Count; i++ {
			out += "hello " + in.Name + ";"
		}
		return out, nil
	})

	result, err := tool.Call(map[string]interface{}{
		"name":  "ada",
		"count": float64(2), // json numbers decode as float64
	})
	require.NoError(t, err)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	assert.Equal(t, "hello ada;hello ada;", result.Content[0].Content)
	assert.False(t, result.Error)
}

func TestNewToolExecutePropagatesErrors(t *testing.T) {
	type input struct {
		Code string `json:"code"`
	}

	failure := errors.New("interpreter crashed")
	tool := NewTool("broken", "Always fails", func(in input) (string, error) {
		return "", failure
	})

	_, err := tool.Call(map[string]interface{}{"code": "print(1)"})
	assert.ErrorIs(t, err, failure)
}

func TestNewToolPanicsOnMissingJSONTags(t *testing.T) {
	type badInput struct {
		Code string
	}

	assert.Panics(t, func() {
		NewTool("bad", "Missing tags", func(in badInput) (string, error) {
			return "", nil
		})
	})
}

func TestNewToolNestedTypes(t *testing.T) {
	type filter struct {
		Column string `json:"column"`
	}
	type input struct {
		Filters []filter          `json:"filters,omitempty"`
		Labels  map[string]string `json:"labels,omitempty"`
		Names   []string          `json:"names,omitempty"`
	}

	tool := NewTool("query", "Filters rows", func(in input) (string, error) {
		return "", nil
	})

	props := tool.InputSchema["properties"].(map[string]interface{})

	filters := props["filters"].(map[string]interface{})
	assert.Equal(t, "array", filters["type"])
	items := filters["items"].(map[string]interface{})
	assert.Equal(t, "object", items["type"])

	assert.Equal(t, "object", props["labels"].(map[string]interface{})["type"])

	names := props["names"].(map[string]interface{})
	assert.Equal(t, "array", names["type"])
	assert.Equal(t, map[string]interface{}{"type": "string"}, names["items"])
}

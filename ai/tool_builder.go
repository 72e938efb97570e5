package ai

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// NewTool creates a Tool with an auto-generated JSON schema from a typed
// function. The input parameter T must be a struct with json tags; a
// `description` tag on a field becomes the property description.
//
// Example:
//
//	type CalculatorInput struct {
//	    Expression string `json:"expression" description:"Expression to evaluate"`
//	}
//
//	tool := ai.NewTool(
//	    "calculator",
//	    "Performs mathematical calculations",
//	    func(input CalculatorInput) (string, error) {
//	        return evaluate(input.Expression)
//	    },
//	)
//
// Panics if the struct has exported fields without json tags.
func NewTool[T any](name, description string, fn func(T) (string, error)) *Tool {
	var zero T
	typ := reflect.TypeOf(zero)

	if err := validateStructTags(typ); err != nil {
		panic(fmt.Sprintf("NewTool(%s): %v", name, err))
	}

	return &Tool{
		Name:        name,
		Description: description,
		InputSchema: generateSchema(typ),
		Execute: func(args map[string]interface{}) (*ToolResult, error) {
			// Marshal args to JSON and back to get proper types
			jsonData, err := json.Marshal(args)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal arguments: %w", err)
			}

			var params T
			if err := json.Unmarshal(jsonData, &params); err != nil {
				return nil, fmt.Errorf("failed to unmarshal arguments: %w", err)
			}

			result, err := fn(params)
			if err != nil {
				return nil, err
			}

			return &ToolResult{
				Content: []ToolContent{{Type: "text", Content: result}},
			}, nil
		},
	}
}

// validateStructTags checks if all exported fields have json tags
func validateStructTags(typ reflect.Type) error {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil
	}

	var missingTags []string
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Tag.Get("json") == "" {
			missingTags = append(missingTags, field.Name)
		}
	}

	if len(missingTags) > 0 {
		return fmt.Errorf("struct %s has exported fields without json tags: %v", typ.Name(), missingTags)
	}
	return nil
}

// generateSchema creates a JSON schema from a reflect.Type
func generateSchema(typ reflect.Type) map[string]interface{} {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return map[string]interface{}{"type": "object"}
	}

	properties := make(map[string]interface{})
	var required []string

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "" || jsonTag == "-" {
			continue
		}

		// json tags look like "field_name,omitempty"
		parts := strings.Split(jsonTag, ",")
		fieldName := parts[0]
		omitempty := len(parts) > 1 && parts[1] == "omitempty"

		properties[fieldName] = buildPropertySchema(field)
		if !omitempty {
			required = append(required, fieldName)
		}
	}

	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// buildPropertySchema creates the schema for a single field
func buildPropertySchema(field reflect.StructField) map[string]interface{} {
	schema := make(map[string]interface{})

	if desc := field.Tag.Get("description"); desc != "" {
		schema["description"] = desc
	}

	fieldType := field.Type
	if fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}

	switch fieldType.Kind() {
	case reflect.String:
		schema["type"] = "string"

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		schema["type"] = "integer"

	case reflect.Float32, reflect.Float64:
		schema["type"] = "number"

	case reflect.Bool:
		schema["type"] = "boolean"

	case reflect.Slice, reflect.Array:
		schema["type"] = "array"
		if fieldType.Elem().Kind() == reflect.String {
			schema["items"] = map[string]interface{}{"type": "string"}
		} else if fieldType.Elem().Kind() == reflect.Struct {
			schema["items"] = generateSchema(fieldType.Elem())
		}

	case reflect.Map:
		schema["type"] = "object"

	case reflect.Struct:
		return generateSchema(fieldType)

	default:
		schema["type"] = "string"
	}

	return schema
}

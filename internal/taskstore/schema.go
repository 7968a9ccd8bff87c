package taskstore

import (
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const taskListSchemaURL = "todo://schemas/tasks.schema.json"

const taskListSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "status", "created_at", "updated_at"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "title": {"type": "string", "pattern": "\\S"},
      "description": {"type": ["string", "null"]},
      "status": {"enum": ["PENDING", "COMPLETE"]},
      "created_at": {"type": "string", "format": "date-time"},
      "updated_at": {"type": "string", "format": "date-time"}
    }
  }
}`

var taskListSchema = compileTaskListSchema()

func compileTaskListSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	compiler.Formats["date-time"] = isTimestamp
	if err := compiler.AddResource(taskListSchemaURL, strings.NewReader(taskListSchemaJSON)); err != nil {
		panic(fmt.Sprintf("taskstore: add schema resource: %v", err))
	}
	return compiler.MustCompile(taskListSchemaURL)
}

// isTimestamp widens the date-time format to the timestamps parseTimestamp reads.
func isTimestamp(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	_, err := parseTimestamp(s)
	return err == nil
}

// SchemaError describes the first schema violation found in a storage document.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid task file at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("invalid task file: %s", e.Message)
}

// validateDocument checks a JSON-decoded document against the task list schema.
func validateDocument(doc any) error {
	err := taskListSchema.Validate(doc)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &SchemaError{Message: err.Error()}
	}

	leaf := firstLeaf(ve)
	return &SchemaError{
		Path:    jsonPointerToPath(leaf.InstanceLocation),
		Message: leaf.Message,
	}
}

// firstLeaf walks the cause tree down its first branch.
func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

// jsonPointerToPath converts "/0/status" into "[0].status".
func jsonPointerToPath(ptr string) string {
	if ptr == "" || ptr == "/" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

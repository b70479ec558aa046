package stream

import (
	"fmt"

	"github.com/avashton/termstream/internal/styled"
)

// toolField names the input field a tool's summary reads and the character
// budget applied to it (0 = no truncation).
type toolField struct {
	field string
	limit int
}

// summaryFields maps tool names to the single field worth surfacing.
var summaryFields = map[string]toolField{
	"Read":         {field: "file_path"},
	"Edit":         {field: "file_path"},
	"Write":        {field: "file_path"},
	"Bash":         {field: "command", limit: styled.MaxCommandPreview},
	"Grep":         {field: "pattern"},
	"Glob":         {field: "pattern"},
	"Task":         {field: "description"},
	"WebFetch":     {field: "url"},
	"WebSearch":    {field: "query"},
	"NotebookEdit": {field: "notebook_path"},
}

// ToolSummary extracts a short human-readable descriptor from a tool call's
// input. The second return is false for unrecognized tools and for recognized
// tools whose expected field is absent or not a string; that is never an
// error, the caller just omits the summary.
func ToolSummary(name string, input map[string]any) (string, bool) {
	switch name {
	case "LSP":
		op, okOp := stringField(input, "operation")
		file, okFile := stringField(input, "filePath")
		if !okOp || !okFile {
			return "", false
		}
		return fmt.Sprintf("%s @ %s", op, file), true
	case "TodoWrite":
		return "updating todo list", true
	}

	spec, ok := summaryFields[name]
	if !ok {
		return "", false
	}
	value, ok := stringField(input, spec.field)
	if !ok {
		return "", false
	}
	if spec.limit > 0 {
		value = styled.Truncate(value, spec.limit)
	}
	return value, true
}

func stringField(input map[string]any, key string) (string, bool) {
	if input == nil {
		return "", false
	}
	s, ok := input[key].(string)
	return s, ok
}

package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/avashton/termstream/internal/logging"
)

// maxScanLine bounds a single JSON record; tool results carrying whole file
// contents can get large.
const maxScanLine = 10 * 1024 * 1024

var (
	eventSchemaLoader gojsonschema.JSONLoader
	eventSchemaOnce   sync.Once
)

// eventSchema describes the envelope every stream record must satisfy before
// dispatch. Payload fields stay loose on purpose; unknown record types are
// ignored, not rejected.
func eventSchema() gojsonschema.JSONLoader {
	eventSchemaOnce.Do(func() {
		eventSchemaLoader = gojsonschema.NewGoLoader(map[string]any{
			"type":     "object",
			"required": []any{"type"},
			"properties": map[string]any{
				"type": map[string]any{"type": "string", "minLength": 1},
			},
		})
	})
	return eventSchemaLoader
}

// Decoder reads the agent's JSON-lines output and dispatches each record to
// a Handler. Records that fail to parse or validate are logged and skipped;
// the stream keeps going.
type Decoder struct {
	handler Handler
	logger  logging.Logger
}

// NewDecoder creates a decoder dispatching to handler. A nil logger
// discards diagnostics.
func NewDecoder(handler Handler, logger logging.Logger) *Decoder {
	if logger == nil {
		logger = &logging.NoOpLogger{}
	}
	return &Decoder{handler: handler, logger: logger}
}

// Decode consumes r line by line until EOF or context cancellation. The
// reader is not closed; cancellation is observed between records.
func (d *Decoder) Decode(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxScanLine)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		evt, err := d.parseRecord(line)
		if err != nil {
			d.logger.Warn(ctx, "skipping malformed stream record", logging.Field("reason", err.Error()))
			continue
		}
		d.dispatch(ctx, evt)
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("stream: read: %w", err)
	}
	return nil
}

// parseRecord parses one JSON line into an event map and checks the
// envelope schema.
func (d *Decoder) parseRecord(line string) (map[string]any, error) {
	var evt map[string]any
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		preview := line
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return nil, fmt.Errorf("parse JSON record: %w (record: %q)", err, preview)
	}
	result, err := gojsonschema.Validate(eventSchema(), gojsonschema.NewGoLoader(evt))
	if err != nil {
		return nil, fmt.Errorf("validate record: %w", err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, fmt.Errorf("record failed validation: %s", strings.Join(issues, "; "))
	}
	return evt, nil
}

// dispatch routes one validated record to the handler.
func (d *Decoder) dispatch(ctx context.Context, evt map[string]any) {
	t, _ := evt["type"].(string)
	switch t {
	case "assistant":
		d.handleAssistant(evt)
	case "user":
		d.handleUser(evt)
	case "error":
		if msg, _ := evt["message"].(string); msg != "" {
			d.handler.OnError(msg)
		}
	case "result":
		d.handler.OnComplete(parseResult(evt))
	case "system":
		// init/config records carry no renderable content
	default:
		d.logger.Debug(ctx, "ignoring unknown record type", logging.Field("type", t))
	}
}

// handleAssistant walks the assistant message content blocks, emitting text
// and tool_use blocks in order.
func (d *Decoder) handleAssistant(evt map[string]any) {
	for _, block := range contentBlocks(evt) {
		switch blockType(block) {
		case "text":
			if s, _ := block["text"].(string); s != "" {
				d.handler.OnText(s)
			}
		case "tool_use":
			name, _ := block["name"].(string)
			id, _ := block["id"].(string)
			input, _ := block["input"].(map[string]any)
			if name != "" {
				d.handler.OnToolCall(name, id, input)
			}
		}
	}
}

// handleUser extracts tool_result blocks echoed back on the user channel.
func (d *Decoder) handleUser(evt map[string]any) {
	for _, block := range contentBlocks(evt) {
		if blockType(block) != "tool_result" {
			continue
		}
		id, _ := block["tool_use_id"].(string)
		d.handler.OnToolResult(id, resultText(block["content"]))
	}
}

func contentBlocks(evt map[string]any) []map[string]any {
	message, _ := evt["message"].(map[string]any)
	if message == nil {
		return nil
	}
	raw, _ := message["content"].([]any)
	blocks := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if block, ok := item.(map[string]any); ok {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func blockType(block map[string]any) string {
	t, _ := block["type"].(string)
	return t
}

// resultText flattens a tool_result content payload, which may be a plain
// string or a list of text blocks.
func resultText(content any) string {
	switch v := content.(type) {
	case string:
		return v
	case []any:
		var parts []string
		for _, item := range v {
			if block, ok := item.(map[string]any); ok {
				if s, _ := block["text"].(string); s != "" {
					parts = append(parts, s)
				}
			}
		}
		return strings.Join(parts, "\n")
	}
	return ""
}

func parseResult(evt map[string]any) SessionResult {
	var result SessionResult
	if v, ok := evt["duration_ms"].(float64); ok && v >= 0 {
		result.DurationMS = uint64(v)
	}
	if v, ok := evt["total_cost_usd"].(float64); ok {
		result.TotalCostUSD = v
	}
	if v, ok := evt["num_turns"].(float64); ok && v >= 0 {
		result.NumTurns = uint32(v)
	}
	if v, ok := evt["is_error"].(bool); ok {
		result.IsError = v
	}
	return result
}

package blueprint

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/kazz187/aisa/internal/task"
)

const schemaJSON = `{
  "type": "object",
  "required": ["steps"],
  "properties": {
    "summary": {
      "type": "object",
      "properties": {
        "goal": {"type": "string"},
        "target_application": {"type": "string"},
        "platform": {"type": "string"}
      }
    },
    "steps": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["step_id", "description", "action"],
        "properties": {
          "step_id": {"type": ["string", "integer"]},
          "screen_name": {"type": "string"},
          "description": {"type": "string"},
          "action": {"type": "string", "minLength": 1},
          "target_element_description": {"type": ["string", "null"]},
          "value_to_enter": {"type": ["string", "number", "boolean", "null"]},
          "associated_image": {"type": ["string", "null"]}
        }
      }
    }
  }
}`

var schema = gojsonschema.NewStringLoader(schemaJSON)

// ExtractJSON returns the text between the first '{' and the last '}' so
// prose around the object is tolerated.
func ExtractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", errors.New("no JSON object found in response")
	}
	return text[start : end+1], nil
}

// Parse turns generated text into a validated Blueprint. A summary platform
// that is missing or unsupported is replaced by platform.
func Parse(text string, platform task.Platform) (*Blueprint, error) {
	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	res, err := gojsonschema.Validate(schema, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("blueprint does not match schema: %s", strings.Join(msgs, "; "))
	}

	normalized, err := normalizeValues(raw)
	if err != nil {
		return nil, err
	}
	var bp Blueprint
	if err := json.Unmarshal(normalized, &bp); err != nil {
		return nil, fmt.Errorf("decode blueprint: %w", err)
	}

	seen := make(map[StepID]struct{}, len(bp.Steps))
	for i, s := range bp.Steps {
		if s.StepID == "" {
			return nil, fmt.Errorf("step %d has an empty step_id", i)
		}
		if _, ok := seen[s.StepID]; ok {
			return nil, fmt.Errorf("duplicate step_id %q", s.StepID)
		}
		seen[s.StepID] = struct{}{}
	}

	if !bp.Summary.Platform.Valid() {
		bp.Summary.Platform = platform
	}
	return &bp, nil
}

// normalizeValues turns non-string value_to_enter entries (numbers, booleans)
// into strings so they decode into Step.
func normalizeValues(raw string) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode blueprint: %w", err)
	}
	steps, _ := doc["steps"].([]any)
	changed := false
	for _, s := range steps {
		step, ok := s.(map[string]any)
		if !ok {
			continue
		}
		switch v := step["value_to_enter"].(type) {
		case nil, string:
		default:
			step["value_to_enter"] = fmt.Sprint(v)
			changed = true
		}
	}
	if !changed {
		return []byte(raw), nil
	}
	return json.Marshal(doc)
}

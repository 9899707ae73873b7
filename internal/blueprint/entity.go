package blueprint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kazz187/aisa/internal/task"
)

// Blueprint is the ordered automation plan derived from the instructions
// and the uploaded document. Steps are in execution order.
type Blueprint struct {
	Summary Summary `json:"summary"`
	Steps   []Step  `json:"steps"`
}

type Summary struct {
	Goal              string        `json:"goal"`
	TargetApplication string        `json:"target_application"`
	Platform          task.Platform `json:"platform"`
}

type Step struct {
	StepID                   StepID  `json:"step_id"`
	ScreenName               string  `json:"screen_name"`
	Description              string  `json:"description"`
	Action                   string  `json:"action"`
	TargetElementDescription string  `json:"target_element_description"`
	ValueToEnter             *string `json:"value_to_enter"`
	AssociatedImage          *string `json:"associated_image"`
}

// StepID accepts either a JSON number or a JSON string and is always written
// back as a string.
type StepID string

func (id *StepID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StepID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("step_id must be a string or a number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = StepID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = StepID(n.String())
	return nil
}

// Platform returns the platform the script has to target.
func (b *Blueprint) Platform() task.Platform {
	return b.Summary.Platform
}

package blueprint

import (
	"fmt"
	"strings"

	"github.com/kazz187/aisa/internal/task"
)

const systemPrompt = "You are a master test automation planner. Analyze user instructions, PDF text, and image filenames " +
	"to create a detailed JSON blueprint. Each step must include: 'step_id', 'screen_name', " +
	"'description', 'action' (e.g., 'click', 'type_text'), 'target_element_description', " +
	"'value_to_enter' (or null), and 'associated_image' (or null). " +
	"Start the object with a 'summary' containing 'goal', 'target_application' and 'platform', followed by the 'steps' array. " +
	"Respond with ONLY the JSON content."

func userPrompt(platform task.Platform, instructions, documentText string, imageNames []string) string {
	return fmt.Sprintf(`Platform: %s
User Instructions: --- %s ---
Extracted PDF Text: --- %s ---
Available Image Files for Context: --- %s ---
Generate the detailed JSON blueprint.
`, platform, instructions, documentText, strings.Join(imageNames, ", "))
}

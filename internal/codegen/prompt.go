package codegen

import "fmt"

func systemPrompt(p platformProfile) string {
	return fmt.Sprintf("You are an expert Python automation developer specializing in %s. Your task is to write a complete, "+
		"runnable Python script based on the provided JSON blueprint. \n"+
		"**CRITICAL INSTRUCTION:** You MUST use the provided setup code for driver/browser initialization. It is proven and reliable. "+
		"After the setup, implement the logic for the steps from the blueprint. Generate random, realistic data for inputs like emails, passwords, and names. "+
		"Import all necessary libraries. The final script should be self-contained and executable in a main block. "+
		"Respond with ONLY the Python code inside a markdown block.", p.framework)
}

func toolSystemPrompt(p platformProfile) string {
	return fmt.Sprintf("You are an expert Python automation developer specializing in %s. Your task is to write a complete, "+
		"runnable Python script based on the provided JSON blueprint. "+
		"You may call the available tools to plan the work, search for code examples and pick dependencies. "+
		"You MUST use the provided setup code for driver/browser initialization. "+
		"Generate random, realistic data for inputs like emails, passwords, and names. "+
		`When you are done, respond with ONLY a JSON object with exactly two string fields: "script" (the full Python source) `+
		`and "requirements" (the pip requirements, one specifier per line).`, p.framework)
}

func userPrompt(blueprintJSON string, p platformProfile) string {
	return fmt.Sprintf(`**JSON Blueprint:**
---
%s
---
**MANDATORY Setup Code (Use this to start your script):**
---
`+"```python"+`
%s
`+"```"+`
---
Generate the complete, runnable Python %s script now.
`, blueprintJSON, p.setup, p.framework)
}

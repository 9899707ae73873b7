package tools

import (
	"context"
	"fmt"

	"github.com/kazz187/aisa/internal/llm"
)

const todoList = "TODO List:\n" +
	"1. Understand the goal of the automation.\n" +
	"2. Identify the target application and platform.\n" +
	"3. List the main steps from the blueprint.\n" +
	"4. For each step, identify the action and target element.\n" +
	"5. Write the code for each step, using the appropriate framework.\n" +
	"6. Add error handling and logging.\n" +
	"7. Create the requirements.txt file.\n"

// NewDefaultRegistry registers code_search, dependency_suggester and
// create_todo_list. Search failures are returned to the model as text so a
// broken search backend does not end the generation.
func NewDefaultRegistry(search *TavilyClient) (*Registry, error) {
	r := NewRegistry()

	err := r.Register(llm.ToolDefinition{
		Name:        "code_search",
		Description: "Searches for code snippets and best practices online. Use this tool to find examples of how to implement a specific automation task.",
		Parameters:  stringParam("query", "search query"),
	}, func(ctx context.Context, args map[string]any) (string, error) {
		q, err := stringArg(args, "query")
		if err != nil {
			return "", err
		}
		results, err := search.Search(ctx, q, "advanced")
		if err != nil {
			return fmt.Sprintf("Error searching for code: %v", err), nil
		}
		return formatResults(results), nil
	})
	if err != nil {
		return nil, err
	}

	err = r.Register(llm.ToolDefinition{
		Name:        "dependency_suggester",
		Description: "Suggests Python libraries for a given automation task. Use this to find the right libraries for the job.",
		Parameters:  stringParam("task_description", "what the automation has to do"),
	}, func(ctx context.Context, args map[string]any) (string, error) {
		d, err := stringArg(args, "task_description")
		if err != nil {
			return "", err
		}
		results, err := search.Search(ctx, "python libraries for "+d, "basic")
		if err != nil {
			return fmt.Sprintf("Error suggesting dependencies: %v", err), nil
		}
		return formatResults(results), nil
	})
	if err != nil {
		return nil, err
	}

	err = r.Register(llm.ToolDefinition{
		Name:        "create_todo_list",
		Description: "Creates a step-by-step TODO list for implementing an automation script. Use this to break down the task into smaller, manageable steps.",
		Parameters:  stringParam("task_description", "what the automation has to do"),
	}, func(context.Context, map[string]any) (string, error) {
		return todoList, nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

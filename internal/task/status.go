package task

import "fmt"

type Status string

const (
	StatusCreated          Status = "created"
	StatusProcessing       Status = "processing"
	StatusBlueprintCreated Status = "blueprint_created"
	StatusReady            Status = "ready"
	StatusRunning          Status = "running"
	StatusSucceeded        Status = "succeeded"
	StatusFailed           Status = "failed"
)

var transitions = map[Status][]Status{
	StatusCreated:          {StatusProcessing},
	StatusProcessing:       {StatusBlueprintCreated, StatusFailed},
	StatusBlueprintCreated: {StatusReady},
	StatusReady:            {StatusRunning},
	StatusRunning:          {StatusSucceeded, StatusFailed},
}

func (s Status) Valid() bool {
	switch s {
	case StatusCreated, StatusProcessing, StatusBlueprintCreated, StatusReady,
		StatusRunning, StatusSucceeded, StatusFailed:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// CanTransition reports whether a task may move from one status to another.
// Staying in the same status is always allowed so updates stay idempotent.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition is CanTransition returning an error that wraps ErrInvalidState.
func ValidateTransition(from, to Status) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidState, from, to)
	}
	return nil
}

// ParseMarker turns the content of an execution result marker into a
// terminal status.
func ParseMarker(content string) (Status, bool) {
	switch Status(content) {
	case StatusSucceeded:
		return StatusSucceeded, true
	case StatusFailed:
		return StatusFailed, true
	}
	return "", false
}

package task

import (
	"maps"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type Platform string

const (
	PlatformWeb    Platform = "web"
	PlatformMobile Platform = "mobile"
)

func (p Platform) Valid() bool {
	return p == PlatformWeb || p == PlatformMobile
}

// Artifact names used as keys of Task.Artifacts.
const (
	ArtifactDocument     = "document"
	ArtifactBlueprint    = "blueprint"
	ArtifactScript       = "script"
	ArtifactRequirements = "requirements"
)

// StoragePrefix is the storage directory holding one subdirectory per task.
const StoragePrefix = "tasks"

// Dir returns the storage directory owned by a task. Stages write their
// artifacts below it.
func Dir(id string) string {
	return StoragePrefix + "/" + id
}

// Task is the persisted record of one pipeline run. ID, Platform and
// Instructions never change after creation.
type Task struct {
	ID           string            `json:"seq_no"`
	Status       Status            `json:"status"`
	Platform     Platform          `json:"platform"`
	Instructions string            `json:"instructions"`
	Artifacts    map[string]string `json:"artifacts"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// NewID returns a fresh, lexically sortable task id.
func NewID() string {
	return strings.ToLower(ulid.Make().String())
}

// New builds the initial record of a task: status created, no artifacts.
func New(id string, platform Platform, instructions string) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:           id,
		Status:       StatusCreated,
		Platform:     platform,
		Instructions: instructions,
		Artifacts:    map[string]string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Patch is a partial update. Only the mutable fields exist here.
// A nil field is left untouched; a non-nil Artifacts replaces the stored map.
type Patch struct {
	Status    *Status
	Artifacts map[string]string
}

// StatusPatch is a shorthand for a patch that only moves the status.
func StatusPatch(s Status) Patch {
	return Patch{Status: &s}
}

// Apply merges p into t (shallow, top-level fields only).
func (t *Task) Apply(p Patch) {
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Artifacts != nil {
		t.Artifacts = maps.Clone(p.Artifacts)
	}
	t.UpdatedAt = time.Now().UTC()
}

// ArtifactsWith returns a copy of the artifact map with kv added. Callers
// use it to build the complete map a Patch replaces.
func (t *Task) ArtifactsWith(kv map[string]string) map[string]string {
	out := make(map[string]string, len(t.Artifacts)+len(kv))
	maps.Copy(out, t.Artifacts)
	maps.Copy(out, kv)
	return out
}

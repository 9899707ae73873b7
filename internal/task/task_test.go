package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tk := New("01abc", PlatformWeb, "sign up")

	assert.Equal(t, StatusCreated, tk.Status)
	assert.Equal(t, PlatformWeb, tk.Platform)
	assert.Equal(t, "sign up", tk.Instructions)
	assert.NotNil(t, tk.Artifacts)
	assert.Empty(t, tk.Artifacts)
	assert.False(t, tk.CreatedAt.IsZero())
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 26)
	assert.Equal(t, a, toLowerASCII(a))
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func TestApply_IsShallowAndIdempotent(t *testing.T) {
	tk := New("01abc", PlatformMobile, "log in")
	tk.Artifacts = map[string]string{ArtifactDocument: "tasks/01abc/input.pdf"}

	p := Patch{Artifacts: map[string]string{ArtifactBlueprint: "tasks/01abc/blueprint/blueprint.json"}}
	tk.Apply(p)
	assert.Equal(t, map[string]string{ArtifactBlueprint: "tasks/01abc/blueprint/blueprint.json"}, tk.Artifacts)
	assert.Equal(t, StatusCreated, tk.Status)

	ready := StatusPatch(StatusReady)
	tk.Apply(ready)
	once := *tk
	tk.Apply(ready)
	assert.Equal(t, once.Status, tk.Status)
	assert.Equal(t, once.Artifacts, tk.Artifacts)

	p.Artifacts["x"] = "mutated after apply"
	assert.NotContains(t, tk.Artifacts, "x")
}

func TestArtifactsWith(t *testing.T) {
	tk := New("01abc", PlatformWeb, "x")
	tk.Artifacts[ArtifactDocument] = "doc"

	got := tk.ArtifactsWith(map[string]string{ArtifactScript: "script"})
	assert.Equal(t, map[string]string{ArtifactDocument: "doc", ArtifactScript: "script"}, got)
	assert.NotContains(t, tk.Artifacts, ArtifactScript)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusCreated, StatusProcessing, true},
		{StatusProcessing, StatusBlueprintCreated, true},
		{StatusProcessing, StatusFailed, true},
		{StatusBlueprintCreated, StatusReady, true},
		{StatusReady, StatusRunning, true},
		{StatusRunning, StatusSucceeded, true},
		{StatusRunning, StatusFailed, true},
		{StatusReady, StatusReady, true},
		{StatusCreated, StatusRunning, false},
		{StatusBlueprintCreated, StatusRunning, false},
		{StatusSucceeded, StatusRunning, false},
		{StatusFailed, StatusReady, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
			err := ValidateTransition(tt.from, tt.to)
			assert.Equal(t, !tt.want, errors.Is(err, ErrInvalidState))
		})
	}
}

func TestParseMarker(t *testing.T) {
	s, ok := ParseMarker("succeeded")
	assert.True(t, ok)
	assert.Equal(t, StatusSucceeded, s)

	s, ok = ParseMarker("failed")
	assert.True(t, ok)
	assert.Equal(t, StatusFailed, s)

	_, ok = ParseMarker("running")
	assert.False(t, ok)
}

func TestStatusAndPlatformValid(t *testing.T) {
	assert.True(t, StatusBlueprintCreated.Valid())
	assert.False(t, Status("done").Valid())
	assert.True(t, StatusFailed.Terminal())
	assert.False(t, StatusRunning.Terminal())
	assert.True(t, PlatformMobile.Valid())
	assert.False(t, Platform("desktop").Valid())
}

package color

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	assert.Equal(t, "succeeded", Status("succeeded"))
	assert.Equal(t, "whatever", Status("whatever"))
	assert.Same(t, fallback, ForStatus("whatever"))
	assert.NotSame(t, ForStatus("failed"), ForStatus("succeeded"))
}

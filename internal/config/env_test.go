package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "8000", env.HTTPPort)
	assert.Equal(t, "local", env.StorageEnv.Type)
	assert.Equal(t, "json", env.TaskStoreEnv.Type)
	assert.Equal(t, CodegenModeDirect, env.CodegenMode)
	assert.Equal(t, 10*time.Second, env.SupportGrace)
	assert.Equal(t, "openai/gpt-oss-20b", env.GroqModel)
	assert.True(t, env.WatchMarkers)
}

func TestLoadEnv_PrefixedAndBareNames(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "bare-key")
	t.Setenv("AISA_ANTHROPIC_API_KEY", "prefixed-key")
	t.Setenv("AISA_SUPPORT_GRACE_PERIOD", "3s")
	t.Setenv("AISA_TASK_STORE", "sqlite")

	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "bare-key", env.GroqAPIKey)
	assert.Equal(t, "prefixed-key", env.AnthropicAPIKey)
	assert.Equal(t, 3*time.Second, env.SupportGrace)
	assert.Equal(t, "sqlite", env.TaskStoreEnv.Type)
}

func TestLoadEnv_RejectsUnknownModes(t *testing.T) {
	t.Setenv("AISA_CODEGEN_MODE", "magic")
	_, err := LoadEnv()
	assert.ErrorContains(t, err, "CODEGEN_MODE")
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, (&BaseEnv{LogLevel: "warn"}).SlogLevel())
	assert.Equal(t, slog.LevelDebug, (&BaseEnv{LogLevel: "nonsense"}).SlogLevel())
	var nilEnv *BaseEnv
	assert.Equal(t, slog.LevelDebug, nilEnv.SlogLevel())
}

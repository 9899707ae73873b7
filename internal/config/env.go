package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type BaseEnv struct {
	Env      string `envconfig:"ENV" default:"local"`
	HTTPHost string `envconfig:"HTTP_HOST" default:""`
	HTTPPort string `envconfig:"HTTP_PORT" default:"8000"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"debug"`
	// APIKey is optional; when empty every request is accepted.
	APIKey string `envconfig:"API_KEY"`
}

type StorageEnv struct {
	Type    string `envconfig:"STORAGE_TYPE" default:"local"`
	BaseDir string `envconfig:"STORAGE_BASE_DIR" default:".aisa/data"`
	// S3 settings (used when Type == "s3")
	S3Bucket string `envconfig:"S3_BUCKET"`
	S3Prefix string `envconfig:"S3_PREFIX" default:"aisa/"`
	S3Region string `envconfig:"S3_REGION" default:"ap-northeast-1"`
}

type TaskStoreEnv struct {
	// Type is "json" (one status.json per task in Storage) or "sqlite".
	Type       string `envconfig:"TASK_STORE" default:"json"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:".aisa/tasks.db"`
}

type GenerationEnv struct {
	ProvidersFile     string        `envconfig:"PROVIDERS_FILE"`
	GroqAPIKey        string        `envconfig:"GROQ_API_KEY"`
	GroqModel         string        `envconfig:"GROQ_MODEL" default:"openai/gpt-oss-20b"`
	AnthropicAPIKey   string        `envconfig:"ANTHROPIC_API_KEY"`
	AnthropicModel    string        `envconfig:"ANTHROPIC_MODEL" default:"claude-3-haiku-20240307"`
	OpenAIAPIKey      string        `envconfig:"OPENAI_API_KEY"`
	OpenAIModel       string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	ClaudeCode        bool          `envconfig:"CLAUDE_CODE"`
	Timeout           time.Duration `envconfig:"GENERATION_TIMEOUT" default:"120s"`
	CodegenMode       string        `envconfig:"CODEGEN_MODE" default:"direct"`
	ToolMaxIterations int           `envconfig:"TOOL_MAX_ITERATIONS" default:"6"`
	TavilyAPIKey      string        `envconfig:"TAVILY_API_KEY"`
}

type ExecutionEnv struct {
	RuntimeDir        string        `envconfig:"RUNTIME_DIR" default:".aisa/runtime"`
	PythonBin         string        `envconfig:"PYTHON_BIN" default:"python3"`
	SupportServiceCmd string        `envconfig:"SUPPORT_SERVICE_CMD" default:"appium"`
	SupportGrace      time.Duration `envconfig:"SUPPORT_GRACE_PERIOD" default:"10s"`
	WatchMarkers      bool          `envconfig:"WATCH_MARKERS" default:"true"`
}

type VAPIDEnv struct {
	VAPIDPublicKey  string `envconfig:"VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey string `envconfig:"VAPID_PRIVATE_KEY"`
	VAPIDContact    string `envconfig:"VAPID_CONTACT" default:"mailto:admin@example.com"`
}

type Env struct {
	BaseEnv
	StorageEnv
	TaskStoreEnv
	GenerationEnv
	ExecutionEnv
	VAPIDEnv
}

// Every key is read as AISA_<NAME> first and falls back to the bare <NAME>,
// so GROQ_API_KEY and friends work unchanged.
const namespace = "AISA"

const (
	CodegenModeDirect = "direct"
	CodegenModeTools  = "tools"
)

// LoadEnv reads a .env file from the working directory when present and then
// processes the environment.
func LoadEnv() (*Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	var env Env
	if err := envconfig.Process(namespace, &env); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}
	if err := env.validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func (e *Env) validate() error {
	switch e.StorageEnv.Type {
	case "local", "s3":
	default:
		return fmt.Errorf("unsupported STORAGE_TYPE %q", e.StorageEnv.Type)
	}
	switch e.TaskStoreEnv.Type {
	case "json", "sqlite":
	default:
		return fmt.Errorf("unsupported TASK_STORE %q", e.TaskStoreEnv.Type)
	}
	switch e.CodegenMode {
	case CodegenModeDirect, CodegenModeTools:
	default:
		return fmt.Errorf("unsupported CODEGEN_MODE %q", e.CodegenMode)
	}
	return nil
}

func (e *BaseEnv) SlogLevel() slog.Level {
	if e == nil {
		return slog.LevelDebug
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(e.LogLevel)); err != nil {
		return slog.LevelDebug
	}
	return level
}

func VAPIDEnvFromEnv(env *Env) *VAPIDEnv {
	return &env.VAPIDEnv
}

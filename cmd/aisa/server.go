package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	server "github.com/kazz187/aisa/internal"
	"github.com/kazz187/aisa/internal/blueprint"
	"github.com/kazz187/aisa/internal/codegen"
	"github.com/kazz187/aisa/internal/config"
	"github.com/kazz187/aisa/internal/eventbus"
	"github.com/kazz187/aisa/internal/execution"
	"github.com/kazz187/aisa/internal/llm"
	"github.com/kazz187/aisa/internal/orchestrator"
	"github.com/kazz187/aisa/internal/pushnotification"
	pushsubrepo "github.com/kazz187/aisa/internal/pushsubscription/repositoryimpl"
	"github.com/kazz187/aisa/internal/task"
	taskrepo "github.com/kazz187/aisa/internal/task/repositoryimpl"
	"github.com/kazz187/aisa/internal/tools"
	"github.com/kazz187/aisa/pkg/clog"
	"github.com/kazz187/aisa/pkg/panicerr"
	"github.com/kazz187/aisa/pkg/storage"
)

func setupLogger(env *config.Env) {
	level := env.SlogLevel()
	var handler slog.Handler
	if env.Env == "local" {
		handler = clog.NewTextHandler(os.Stderr, clog.WithLevel(level))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(clog.NewAttributesHandler(handler)))
}

func newStorage(ctx context.Context, env *config.StorageEnv) (storage.Storage, error) {
	switch env.Type {
	case "s3":
		s, err := storage.NewS3Storage(ctx, env.S3Bucket, env.S3Prefix, env.S3Region)
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 storage: %w", err)
		}
		return s, nil
	default:
		s, err := storage.NewLocalStorage(env.BaseDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create local storage: %w", err)
		}
		return s, nil
	}
}

func newTaskRepository(env *config.TaskStoreEnv, store storage.Storage) (task.Repository, func(), error) {
	if env.Type == "sqlite" {
		r, err := taskrepo.NewSQLiteRepository(env.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	}
	return taskrepo.NewJSONRepository(store), func() {}, nil
}

func newCodegenStage(env *config.GenerationEnv, chain *llm.Chain, store storage.Storage) (*codegen.Stage, error) {
	stage := codegen.NewStage(chain, store)
	if env.CodegenMode != config.CodegenModeTools {
		return stage, nil
	}
	if env.TavilyAPIKey == "" {
		slog.Warn("TAVILY_API_KEY is not set, search tools will report errors to the model")
	}
	registry, err := tools.NewDefaultRegistry(tools.NewTavilyClient(env.TavilyAPIKey))
	if err != nil {
		return nil, err
	}
	return stage.WithTools(chain, registry, env.ToolMaxIterations), nil
}

func runServer() error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	setupLogger(env)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	store, err := newStorage(ctx, &env.StorageEnv)
	if err != nil {
		return err
	}
	taskRepo, closeRepo, err := newTaskRepository(&env.TaskStoreEnv, store)
	if err != nil {
		return err
	}
	defer closeRepo()

	chain, err := llm.NewChainFromEnv(&env.GenerationEnv)
	if err != nil {
		return err
	}
	if len(chain.Providers()) == 0 {
		slog.Warn("no generation provider configured, task creation will fail")
	} else {
		slog.Info("generation providers", "order", chain.Providers())
	}
	codegenStage, err := newCodegenStage(&env.GenerationEnv, chain, store)
	if err != nil {
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}
	executionStage := execution.NewStage(store, execution.ExecLauncher{}, execution.Config{
		RuntimeDir:     env.RuntimeDir,
		PythonBin:      env.PythonBin,
		SupportCommand: env.SupportServiceCmd,
		SupportGrace:   env.SupportGrace,
		RunnerArgv:     []string{exe, "exec-plan"},
	})

	bus := eventbus.New()
	orch := orchestrator.New(taskRepo, store, blueprint.NewStage(chain, store), codegenStage, executionStage, bus)

	if env.WatchMarkers {
		watcher, err := execution.NewWatcher(orch.ResolveMarker)
		if err != nil {
			return err
		}
		defer watcher.Close()
		orch.SetWatcher(watcher)
		panicerr.Go(ctx, "marker watcher", watcher.Run)
		if err := orch.ResumeWatches(ctx); err != nil {
			slog.Warn("failed to resume watches", "error", err)
		}
	}

	// Setup push notification
	vapidEnv := config.VAPIDEnvFromEnv(env)
	pushSubRepo := pushsubrepo.NewYAMLRepository(store)
	pushSender := pushnotification.NewSender(vapidEnv, pushSubRepo)
	pushDispatcher := pushnotification.NewDispatcher(bus, pushSender)
	panicerr.Go(ctx, "push dispatcher", pushDispatcher.Start)

	srv := server.NewServer(
		env,
		orchestrator.NewServer(orch),
		pushnotification.NewServer(vapidEnv, pushSubRepo, pushSender),
	)

	go func() {
		if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	return nil
}

// Package blueprint turns instructions and an uploaded document into an
// ordered automation plan.
package blueprint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kazz187/aisa/internal/document"
	"github.com/kazz187/aisa/internal/llm"
	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/cerr"
	"github.com/kazz187/aisa/pkg/storage"
)

var ErrGenerationFailed = errors.New("blueprint generation failed")

func generationError(err error) error {
	return cerr.NewError(cerr.Internal, "blueprint generation failed", fmt.Errorf("%w: %w", ErrGenerationFailed, err))
}

// Path is the storage location of a task's blueprint.
func Path(taskID string) string {
	return task.Dir(taskID) + "/blueprint/blueprint.json"
}

func imagePath(taskID, name string) string {
	return task.Dir(taskID) + "/blueprint/images/" + name
}

type Input struct {
	TaskID       string
	Platform     task.Platform
	Instructions string
	// DocumentPath is the storage path of the uploaded PDF. Empty means
	// there is no document.
	DocumentPath string
}

type Result struct {
	Blueprint *Blueprint
	Path      string
	Images    []string // storage paths of extracted images
}

type Stage struct {
	generator llm.Generator
	storage   storage.Storage
}

func NewStage(g llm.Generator, s storage.Storage) *Stage {
	return &Stage{generator: g, storage: s}
}

func (s *Stage) Generate(ctx context.Context, in Input) (*Result, error) {
	if in.Instructions == "" {
		return nil, cerr.NewError(cerr.InvalidArgument, "instructions are required", nil)
	}
	if !in.Platform.Valid() {
		return nil, cerr.NewError(cerr.InvalidArgument, fmt.Sprintf("unsupported platform %q", in.Platform), nil)
	}

	workDir, err := os.MkdirTemp("", "aisa-blueprint-")
	if err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("create work dir: %w", err))
	}
	defer os.RemoveAll(workDir)

	doc := s.extract(ctx, in.DocumentPath, workDir)
	images := s.storeImages(ctx, in.TaskID, doc.Images)

	text, err := s.generator.Generate(ctx, systemPrompt, userPrompt(in.Platform, in.Instructions, doc.Text, doc.ImageNames()))
	if err != nil {
		return nil, err
	}
	bp, err := Parse(text, in.Platform)
	if err != nil {
		slog.WarnContext(ctx, "generated blueprint is unusable", "error", err)
		return nil, generationError(err)
	}

	data, err := json.MarshalIndent(bp, "", "  ")
	if err != nil {
		return nil, generationError(err)
	}
	p := Path(in.TaskID)
	if err := s.storage.Write(ctx, p, data); err != nil {
		return nil, cerr.WrapStorageWriteError("blueprint", err)
	}
	slog.InfoContext(ctx, "blueprint created", "steps", len(bp.Steps), "path", p)
	return &Result{Blueprint: bp, Path: p, Images: images}, nil
}

// Load reads a persisted blueprint back.
func (s *Stage) Load(ctx context.Context, path string) (*Blueprint, error) {
	data, err := s.storage.Read(ctx, path)
	if err != nil {
		return nil, cerr.WrapStorageReadError("blueprint", err)
	}
	var bp Blueprint
	if err := json.Unmarshal(data, &bp); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("decode blueprint %s: %w", path, err))
	}
	return &bp, nil
}

func (s *Stage) extract(ctx context.Context, documentPath, workDir string) *document.Result {
	if documentPath == "" {
		slog.WarnContext(ctx, "no document attached, continuing with instructions only")
		return &document.Result{Text: document.FallbackText, Degraded: true}
	}
	data, err := s.storage.Read(ctx, documentPath)
	if err != nil {
		slog.WarnContext(ctx, "failed to read document", "path", documentPath, "error", err)
		return &document.Result{Text: document.FallbackText, Degraded: true}
	}
	local := filepath.Join(workDir, "input.pdf")
	if err := os.WriteFile(local, data, 0o600); err != nil {
		slog.WarnContext(ctx, "failed to stage document", "error", err)
		return &document.Result{Text: document.FallbackText, Degraded: true}
	}
	return document.Extract(ctx, local, filepath.Join(workDir, "images"))
}

// storeImages copies extracted images into storage. A failed copy drops that
// image and is logged.
func (s *Stage) storeImages(ctx context.Context, taskID string, images []document.Image) []string {
	var stored []string
	for _, img := range images {
		data, err := os.ReadFile(img.Path)
		if err != nil {
			slog.WarnContext(ctx, "failed to read extracted image", "image", img.Name, "error", err)
			continue
		}
		p := imagePath(taskID, img.Name)
		if err := s.storage.Write(ctx, p, data); err != nil {
			slog.WarnContext(ctx, "failed to store extracted image", "image", img.Name, "error", err)
			continue
		}
		stored = append(stored, p)
	}
	return stored
}

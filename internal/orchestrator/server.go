package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"mime"
	"net/http"
	"path"
	"slices"
	"strconv"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/cerr"
	aisav1 "github.com/kazz187/aisa/proto/gen/go/aisa/v1"
	"github.com/kazz187/aisa/proto/gen/go/aisa/v1/aisav1connect"
)

const (
	maxUploadMemory = 32 << 20
	// MaxUploadBytes bounds a whole task creation request, document included.
	MaxUploadBytes = 64 << 20
)

var _ aisav1connect.TaskServiceHandler = (*Server)(nil)

// Server exposes the orchestrator as the Connect TaskService and as plain
// HTTP routes. The HTTP handlers report through the cerr response receiver,
// so every router they are mounted on must run
// cerr.NewJSONResponseChiMiddleware.
type Server struct {
	orchestrator   *Orchestrator
	maxUploadBytes int64
}

func NewServer(o *Orchestrator) *Server {
	return &Server{orchestrator: o, maxUploadBytes: MaxUploadBytes}
}

// Routes mounts the task API below r (normally /api).
func (s *Server) Routes(r chi.Router) {
	r.Post("/tasks", s.handleCreateTask)
	r.Get("/tasks", s.handleListTasks)
	r.Get("/tasks/{id}", s.handleGetTask)
	r.Post("/tasks/{id}/run", s.handleRunTask)
	r.Get("/tasks/{id}/blueprint", s.handleGetBlueprint)
}

// RootRoutes mounts the artifact download route and the paths served by the
// first version of the service.
func (s *Server) RootRoutes(r chi.Router) {
	r.Get("/artifacts/{id}/{name}", s.handleGetArtifact)
	r.Post("/create_task", s.handleCreateTask)
	r.Post("/run/{id}", s.handleRunTask)
	r.Get("/task/{id}", s.handleGetTask)
}

func (s *Server) CreateTask(ctx context.Context, req *connect.Request[aisav1.CreateTaskRequest]) (*connect.Response[aisav1.CreateTaskResponse], error) {
	if err := cerr.Validate(req.Msg); err != nil {
		return nil, err
	}
	in := CreateTaskInput{
		Instructions: req.Msg.Instructions,
		Platform:     task.Platform(req.Msg.Platform),
	}
	if len(req.Msg.Document) > 0 {
		in.Document = bytes.NewReader(req.Msg.Document)
	}
	t, err := s.orchestrator.CreateTask(ctx, in)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&aisav1.CreateTaskResponse{Task: toProto(t)}), nil
}

func (s *Server) GetTask(ctx context.Context, req *connect.Request[aisav1.GetTaskRequest]) (*connect.Response[aisav1.GetTaskResponse], error) {
	if err := cerr.Validate(req.Msg); err != nil {
		return nil, err
	}
	t, err := s.orchestrator.GetTaskStatus(ctx, req.Msg.SeqNo)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&aisav1.GetTaskResponse{Task: toProto(t)}), nil
}

func (s *Server) RunTask(ctx context.Context, req *connect.Request[aisav1.RunTaskRequest]) (*connect.Response[aisav1.RunTaskResponse], error) {
	if err := cerr.Validate(req.Msg); err != nil {
		return nil, err
	}
	t, err := s.orchestrator.RunTask(ctx, req.Msg.SeqNo)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&aisav1.RunTaskResponse{Task: toProto(t)}), nil
}

func (s *Server) ListTasks(ctx context.Context, req *connect.Request[aisav1.ListTasksRequest]) (*connect.Response[aisav1.ListTasksResponse], error) {
	if err := cerr.Validate(req.Msg); err != nil {
		return nil, err
	}
	tasks, total, err := s.orchestrator.ListTasks(ctx, int(req.Msg.Limit), int(req.Msg.Offset))
	if err != nil {
		return nil, err
	}
	out := make([]*aisav1.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toProto(t))
	}
	return connect.NewResponse(&aisav1.ListTasksResponse{Tasks: out, Total: int32(total)}), nil
}

func (s *Server) GetBlueprint(ctx context.Context, req *connect.Request[aisav1.GetBlueprintRequest]) (*connect.Response[aisav1.GetBlueprintResponse], error) {
	if err := cerr.Validate(req.Msg); err != nil {
		return nil, err
	}
	bp, err := s.orchestrator.GetBlueprint(ctx, req.Msg.SeqNo)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(bp)
	if err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", err)
	}
	return connect.NewResponse(&aisav1.GetBlueprintResponse{BlueprintJson: string(data)}), nil
}

func toProto(t *task.Task) *aisav1.Task {
	names := slices.Sorted(maps.Keys(t.Artifacts))
	artifacts := make([]*aisav1.Artifact, 0, len(names))
	for _, name := range names {
		artifacts = append(artifacts, &aisav1.Artifact{Name: name, Path: t.Artifacts[name]})
	}
	return &aisav1.Task{
		SeqNo:        t.ID,
		Status:       string(t.Status),
		Platform:     string(t.Platform),
		Instructions: t.Instructions,
		Artifacts:    artifacts,
		CreatedAt:    timestamppb.New(t.CreatedAt),
		UpdatedAt:    timestamppb.New(t.UpdatedAt),
	}
}

type ListTasksResponse struct {
	Tasks []*task.Task `json:"tasks"`
	Total int          `json:"total"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			cerr.SetNewJSONError(ctx, cerr.InvalidArgument, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), err)
			return
		}
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "expected a multipart form", err)
		return
	}
	form := &aisav1.CreateTaskRequest{
		Instructions: r.FormValue("instructions"),
		Platform:     r.FormValue("platform"),
	}
	if err := cerr.Validate(form); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	file, _, err := r.FormFile("pdf")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "pdf is required", err)
			return
		}
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid pdf upload", err)
		return
	}
	defer file.Close()

	t, err := s.orchestrator.CreateTask(ctx, CreateTaskInput{
		Instructions: form.Instructions,
		Platform:     task.Platform(form.Platform),
		Document:     file,
	})
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponseWithStatus(ctx, http.StatusCreated, t)
}

func (s *Server) handleRunTask(_ http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t, err := s.orchestrator.RunTask(ctx, chi.URLParam(r, "id"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, t)
}

func (s *Server) handleGetTask(_ http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t, err := s.orchestrator.GetTaskStatus(ctx, chi.URLParam(r, "id"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, t)
}

func (s *Server) handleListTasks(_ http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, err := intQuery(r, "limit")
	if err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid limit", err)
		return
	}
	offset, err := intQuery(r, "offset")
	if err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid offset", err)
		return
	}
	tasks, total, err := s.orchestrator.ListTasks(ctx, limit, offset)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if tasks == nil {
		tasks = []*task.Task{}
	}
	cerr.SetJSONResponse(ctx, &ListTasksResponse{Tasks: tasks, Total: total})
}

func (s *Server) handleGetBlueprint(_ http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bp, err := s.orchestrator.GetBlueprint(ctx, chi.URLParam(r, "id"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, bp)
}

func (s *Server) handleGetArtifact(_ http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")
	data, err := s.orchestrator.ReadArtifact(ctx, chi.URLParam(r, "id"), name)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetRawResponse(ctx, artifactContentType(name, data), data)
}

var artifactExtensions = map[string]string{
	task.ArtifactDocument:     ".pdf",
	task.ArtifactBlueprint:    ".json",
	task.ArtifactScript:       ".py",
	task.ArtifactRequirements: ".txt",
}

func artifactContentType(name string, data []byte) string {
	ext := artifactExtensions[name]
	if ext == "" {
		ext = path.Ext(name)
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}

func intQuery(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"connectrpc.com/connect"

	"github.com/kazz187/aisa/internal/blueprint"
	"github.com/kazz187/aisa/internal/orchestrator"
	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/cerr"
	aisav1 "github.com/kazz187/aisa/proto/gen/go/aisa/v1"
	"github.com/kazz187/aisa/proto/gen/go/aisa/v1/aisav1connect"
)

// TaskClient talks to the task API of a running aisa server.
type TaskClient struct {
	rpc aisav1connect.TaskServiceClient
}

func NewTaskClient(baseURL, apiKey string) *TaskClient {
	return &TaskClient{
		rpc: aisav1connect.NewTaskServiceClient(
			http.DefaultClient,
			baseURL,
			connect.WithInterceptors(newAuthInterceptor(apiKey)),
		),
	}
}

// CreateTask uploads the PDF at pdfPath and waits until the blueprint and
// script are generated.
func (c *TaskClient) CreateTask(ctx context.Context, instructions string, platform task.Platform, pdfPath string) (*task.Task, error) {
	document, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}
	resp, err := c.rpc.CreateTask(ctx, connect.NewRequest(&aisav1.CreateTaskRequest{
		Instructions: instructions,
		Platform:     string(platform),
		Document:     document,
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", cerr.FromConnectError(err))
	}
	return fromProto(resp.Msg.GetTask()), nil
}

func (c *TaskClient) RunTask(ctx context.Context, id string) (*task.Task, error) {
	resp, err := c.rpc.RunTask(ctx, connect.NewRequest(&aisav1.RunTaskRequest{SeqNo: id}))
	if err != nil {
		return nil, fmt.Errorf("failed to run task: %w", cerr.FromConnectError(err))
	}
	return fromProto(resp.Msg.GetTask()), nil
}

func (c *TaskClient) GetTask(ctx context.Context, id string) (*task.Task, error) {
	resp, err := c.rpc.GetTask(ctx, connect.NewRequest(&aisav1.GetTaskRequest{SeqNo: id}))
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", cerr.FromConnectError(err))
	}
	return fromProto(resp.Msg.GetTask()), nil
}

func (c *TaskClient) ListTasks(ctx context.Context, limit, offset int) (*orchestrator.ListTasksResponse, error) {
	resp, err := c.rpc.ListTasks(ctx, connect.NewRequest(&aisav1.ListTasksRequest{
		Limit:  int32(limit),
		Offset: int32(offset),
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", cerr.FromConnectError(err))
	}
	tasks := make([]*task.Task, 0, len(resp.Msg.GetTasks()))
	for _, t := range resp.Msg.GetTasks() {
		tasks = append(tasks, fromProto(t))
	}
	return &orchestrator.ListTasksResponse{Tasks: tasks, Total: int(resp.Msg.GetTotal())}, nil
}

func (c *TaskClient) GetBlueprint(ctx context.Context, id string) (*blueprint.Blueprint, error) {
	resp, err := c.rpc.GetBlueprint(ctx, connect.NewRequest(&aisav1.GetBlueprintRequest{SeqNo: id}))
	if err != nil {
		return nil, fmt.Errorf("failed to get blueprint: %w", cerr.FromConnectError(err))
	}
	var bp blueprint.Blueprint
	if err := json.Unmarshal([]byte(resp.Msg.GetBlueprintJson()), &bp); err != nil {
		return nil, fmt.Errorf("failed to decode blueprint: %w", err)
	}
	return &bp, nil
}

func fromProto(t *aisav1.Task) *task.Task {
	artifacts := make(map[string]string, len(t.GetArtifacts()))
	for _, a := range t.GetArtifacts() {
		artifacts[a.GetName()] = a.GetPath()
	}
	return &task.Task{
		ID:           t.GetSeqNo(),
		Status:       task.Status(t.GetStatus()),
		Platform:     task.Platform(t.GetPlatform()),
		Instructions: t.GetInstructions(),
		Artifacts:    artifacts,
		CreatedAt:    t.GetCreatedAt().AsTime(),
		UpdatedAt:    t.GetUpdatedAt().AsTime(),
	}
}

type authInterceptor struct {
	apiKey string
}

func newAuthInterceptor(apiKey string) *authInterceptor {
	return &authInterceptor{apiKey: apiKey}
}

func (i *authInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if i.apiKey != "" {
			req.Header().Set("X-API-Key", i.apiKey)
		}
		return next(ctx, req)
	}
}

func (i *authInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return func(ctx context.Context, spec connect.Spec) connect.StreamingClientConn {
		conn := next(ctx, spec)
		if i.apiKey != "" {
			conn.RequestHeader().Set("X-API-Key", i.apiKey)
		}
		return conn
	}
}

func (i *authInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return next
}

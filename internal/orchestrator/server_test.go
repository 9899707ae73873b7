package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/cerr"
	aisav1 "github.com/kazz187/aisa/proto/gen/go/aisa/v1"
	"github.com/kazz187/aisa/proto/gen/go/aisa/v1/aisav1connect"
)

func newHandler(o *Orchestrator) http.Handler {
	return newServerHandler(NewServer(o))
}

func newServerHandler(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Use(cerr.NewJSONResponseChiMiddleware())
	r.Route("/api", s.Routes)
	s.RootRoutes(r)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, pdf []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if pdf != nil {
		fw, err := mw.CreateFormFile("pdf", "manual.pdf")
		require.NoError(t, err)
		_, err = fw.Write(pdf)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeTask(t *testing.T, rec *httptest.ResponseRecorder) *task.Task {
	t.Helper()
	var tk task.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tk), rec.Body.String())
	return &tk
}

func TestServer_TaskLifecycle(t *testing.T) {
	f := newFixture(t, blueprintAnswer, scriptAnswer)
	h := newHandler(f.orch)

	body, ct := multipartBody(t, map[string]string{"instructions": "Create an account", "platform": "web"}, []byte("%PDF-broken"))
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", body)
	req.Header.Set("Content-Type", ct)
	rec := do(t, h, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeTask(t, rec)
	assert.Equal(t, task.StatusReady, created.Status)
	assert.Contains(t, rec.Body.String(), `"seq_no"`)

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/tasks/"+created.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, task.StatusReady, decodeTask(t, rec).Status)

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/tasks/"+created.ID+"/blueprint", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"step_id":"1"`)

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/artifacts/"+created.ID+"/script", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sync_playwright")

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/artifacts/"+created.ID+"/document", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "%PDF-broken", rec.Body.String())

	rec = do(t, h, httptest.NewRequest(http.MethodPost, "/api/tasks/"+created.ID+"/run", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, task.StatusRunning, decodeTask(t, rec).Status)

	rec = do(t, h, httptest.NewRequest(http.MethodPost, "/run/"+created.ID, nil))
	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	var httpErr cerr.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &httpErr))
	assert.Equal(t, "FailedPrecondition", httpErr.Code)
	assert.Contains(t, httpErr.Message, "running")

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/task/"+created.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, task.StatusRunning, decodeTask(t, rec).Status)

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/tasks?limit=10", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var list ListTasksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, created.ID, list.Tasks[0].ID)
}

func TestServer_Errors(t *testing.T) {
	f := newFixture(t)
	h := newHandler(f.orch)

	body, ct := multipartBody(t, map[string]string{"instructions": "Create an account", "platform": "web"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/create_task", body)
	req.Header.Set("Content-Type", ct)
	assert.Equal(t, http.StatusBadRequest, do(t, h, req).Code)

	body, ct = multipartBody(t, map[string]string{"instructions": "Create an account", "platform": "tv"}, []byte("x"))
	req = httptest.NewRequest(http.MethodPost, "/api/tasks", body)
	req.Header.Set("Content-Type", ct)
	assert.Equal(t, http.StatusBadRequest, do(t, h, req).Code)

	req = httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusBadRequest, do(t, h, req).Code)

	assert.Equal(t, http.StatusNotFound, do(t, h, httptest.NewRequest(http.MethodGet, "/api/tasks/nope", nil)).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, httptest.NewRequest(http.MethodGet, "/api/tasks/nope/blueprint", nil)).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, httptest.NewRequest(http.MethodGet, "/artifacts/nope/script", nil)).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, httptest.NewRequest(http.MethodGet, "/api/tasks?limit=abc", nil)).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, httptest.NewRequest(http.MethodGet, "/api/tasks?offset=-1", nil)).Code)
}

func TestServer_UploadTooLarge(t *testing.T) {
	f := newFixture(t, blueprintAnswer, scriptAnswer)
	s := NewServer(f.orch)
	s.maxUploadBytes = 1024
	h := newServerHandler(s)

	body, ct := multipartBody(t, map[string]string{"instructions": "Create an account", "platform": "web"}, bytes.Repeat([]byte("x"), 4096))
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", body)
	req.Header.Set("Content-Type", ct)
	rec := do(t, h, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	tasks, total, err := f.orch.ListTasks(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, tasks)
}

func newTaskClient(t *testing.T, o *Orchestrator) aisav1connect.TaskServiceClient {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle(aisav1connect.NewTaskServiceHandler(NewServer(o), connect.WithInterceptors(cerr.NewConvertConnectErrorInterceptor())))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return aisav1connect.NewTaskServiceClient(srv.Client(), srv.URL)
}

func TestTaskService_Lifecycle(t *testing.T) {
	f := newFixture(t, blueprintAnswer, scriptAnswer)
	client := newTaskClient(t, f.orch)
	ctx := context.Background()

	created, err := client.CreateTask(ctx, connect.NewRequest(&aisav1.CreateTaskRequest{
		Instructions: "Create an account",
		Platform:     "web",
		Document:     []byte("%PDF-broken"),
	}))
	require.NoError(t, err)
	tk := created.Msg.GetTask()
	assert.Equal(t, string(task.StatusReady), tk.GetStatus())
	assert.Equal(t, "web", tk.GetPlatform())
	names := make([]string, 0, len(tk.GetArtifacts()))
	for _, a := range tk.GetArtifacts() {
		names = append(names, a.GetName())
	}
	assert.Equal(t, []string{task.ArtifactBlueprint, task.ArtifactDocument, task.ArtifactRequirements, task.ArtifactScript}, names)
	assert.False(t, tk.GetCreatedAt().AsTime().IsZero())

	bp, err := client.GetBlueprint(ctx, connect.NewRequest(&aisav1.GetBlueprintRequest{SeqNo: tk.GetSeqNo()}))
	require.NoError(t, err)
	assert.Contains(t, bp.Msg.GetBlueprintJson(), `"step_id":"1"`)

	run, err := client.RunTask(ctx, connect.NewRequest(&aisav1.RunTaskRequest{SeqNo: tk.GetSeqNo()}))
	require.NoError(t, err)
	assert.Equal(t, string(task.StatusRunning), run.Msg.GetTask().GetStatus())

	_, err = client.RunTask(ctx, connect.NewRequest(&aisav1.RunTaskRequest{SeqNo: tk.GetSeqNo()}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	got, err := client.GetTask(ctx, connect.NewRequest(&aisav1.GetTaskRequest{SeqNo: tk.GetSeqNo()}))
	require.NoError(t, err)
	assert.Equal(t, string(task.StatusRunning), got.Msg.GetTask().GetStatus())

	list, err := client.ListTasks(ctx, connect.NewRequest(&aisav1.ListTasksRequest{Limit: 10}))
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Msg.GetTotal())
	require.Len(t, list.Msg.GetTasks(), 1)
	assert.Equal(t, tk.GetSeqNo(), list.Msg.GetTasks()[0].GetSeqNo())
}

func TestTaskService_Errors(t *testing.T) {
	f := newFixture(t)
	client := newTaskClient(t, f.orch)
	ctx := context.Background()

	_, err := client.CreateTask(ctx, connect.NewRequest(&aisav1.CreateTaskRequest{Instructions: "Create an account", Platform: "tv"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	var connectErr *connect.Error
	require.ErrorAs(t, err, &connectErr)
	assert.NotEmpty(t, connectErr.Details())
	assert.True(t, strings.Contains(connectErr.Message(), "platform"), connectErr.Message())

	_, err = client.CreateTask(ctx, connect.NewRequest(&aisav1.CreateTaskRequest{Platform: "web"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.GetTask(ctx, connect.NewRequest(&aisav1.GetTaskRequest{SeqNo: "nope"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = client.GetTask(ctx, connect.NewRequest(&aisav1.GetTaskRequest{}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.GetBlueprint(ctx, connect.NewRequest(&aisav1.GetBlueprintRequest{SeqNo: "nope"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = client.ListTasks(ctx, connect.NewRequest(&aisav1.ListTasksRequest{Offset: -1}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

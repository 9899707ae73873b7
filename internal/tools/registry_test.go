package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	r, err := NewDefaultRegistry(NewTavilyClient(""))
	require.NoError(t, err)

	defs := r.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, "code_search", defs[0].Name)
	assert.Equal(t, "create_todo_list", defs[1].Name)
	assert.Equal(t, "dependency_suggester", defs[2].Name)

	err = r.Register(defs[0], func(context.Context, map[string]any) (string, error) { return "", nil })
	assert.Error(t, err)
}

func TestRegistry_Call(t *testing.T) {
	var queries []tavilyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req tavilyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		queries = append(queries, req)
		_, _ = w.Write([]byte(`{"results":[{"url":"https://example.com/a","content":"use page.fill"},{"url":"https://example.com/b","content":"use expect"}]}`))
	}))
	defer srv.Close()

	r, err := NewDefaultRegistry(NewTavilyClient("tv-key").WithURL(srv.URL))
	require.NoError(t, err)
	ctx := context.Background()

	out, err := r.Call(ctx, "code_search", `{"query":"playwright fill form"}`)
	require.NoError(t, err)
	assert.Equal(t, "Source: https://example.com/a\nuse page.fill\nSource: https://example.com/b\nuse expect", out)

	_, err = r.Call(ctx, "dependency_suggester", `{"task_description":"fake data"}`)
	require.NoError(t, err)

	require.Len(t, queries, 2)
	assert.Equal(t, "advanced", queries[0].SearchDepth)
	assert.Equal(t, "tv-key", queries[0].APIKey)
	assert.Equal(t, "python libraries for fake data", queries[1].Query)
	assert.Equal(t, "basic", queries[1].SearchDepth)

	out, err = r.Call(ctx, "create_todo_list", `{"task_description":"anything"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "7. Create the requirements.txt file.")

	_, err = r.Call(ctx, "missing", `{}`)
	assert.Error(t, err)
	_, err = r.Call(ctx, "code_search", `not json`)
	assert.Error(t, err)
	_, err = r.Call(ctx, "code_search", `{"query":""}`)
	assert.Error(t, err)
}

func TestRegistry_SearchFailureIsReportedAsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	r, err := NewDefaultRegistry(NewTavilyClient("bad").WithURL(srv.URL))
	require.NoError(t, err)

	out, err := r.Call(context.Background(), "code_search", `{"query":"x"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "Error searching for code")
}

package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const TavilyURL = "https://api.tavily.com/search"

type SearchResult struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type TavilyClient struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

func NewTavilyClient(apiKey string) *TavilyClient {
	return &TavilyClient{apiKey: apiKey, url: TavilyURL, httpClient: http.DefaultClient}
}

// WithURL points the client at another endpoint.
func (c *TavilyClient) WithURL(url string) *TavilyClient {
	c.url = url
	return c
}

type tavilyRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
}

type tavilyResponse struct {
	Results []SearchResult `json:"results"`
}

// Search runs a query with the given depth ("basic" or "advanced").
func (c *TavilyClient) Search(ctx context.Context, query, depth string) ([]SearchResult, error) {
	body, err := json.Marshal(tavilyRequest{APIKey: c.apiKey, Query: query, SearchDepth: depth})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}
	var out tavilyResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}
	return out.Results, nil
}

func formatResults(results []SearchResult) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, fmt.Sprintf("Source: %s\n%s", r.URL, r.Content))
	}
	return strings.Join(parts, "\n")
}

package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP wrapper for the dashboard backend REST API that owns
// tasks and ventures.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new dashboard API client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{},
	}
}

// ListTasks fetches all tasks via GET /api/v1/tasks.
func (c *Client) ListTasks(ctx context.Context) ([]taskDTO, error) {
	url := fmt.Sprintf("%s/api/v1/tasks", c.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list tasks request: %w", err)
	}
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call task list API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("task store list error %d: %s", resp.StatusCode, string(raw))
	}

	var listResp struct {
		Tasks []taskDTO `json:"tasks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode task list response: %w", err)
	}
	return listResp.Tasks, nil
}

// PatchTask applies a partial update via PATCH /api/v1/tasks/{id}.
// JSON null values clear the corresponding field.
func (c *Client) PatchTask(ctx context.Context, id string, patch assignmentPatchDTO) (*taskDTO, error) {
	url := fmt.Sprintf("%s/api/v1/tasks/%s", c.baseURL, id)

	body, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task patch: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build patch task request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call task patch API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("task store patch error %d: %s", resp.StatusCode, string(raw))
	}

	var task taskDTO
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("failed to decode task patch response: %w", err)
	}
	return &task, nil
}

// ListVentures fetches the venture directory via GET /api/v1/ventures.
func (c *Client) ListVentures(ctx context.Context) ([]ventureDTO, error) {
	url := fmt.Sprintf("%s/api/v1/ventures", c.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list ventures request: %w", err)
	}
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call venture list API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("venture directory list error %d: %s", resp.StatusCode, string(raw))
	}

	var listResp struct {
		Ventures []ventureDTO `json:"ventures"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode venture list response: %w", err)
	}
	return listResp.Ventures, nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
}

// ---- Wire types scoped to this package ----

// taskDTO is the task store's task object. Date fields are YYYY-MM-DD.
type taskDTO struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	VentureID      string   `json:"ventureId"`
	EstEffortHours *float64 `json:"estEffortHours"`
	DueDate        *string  `json:"dueDate"`
	FocusDate      *string  `json:"focusDate"`
	FocusSlot      *string  `json:"focusSlot"`
	DayID          *string  `json:"dayId"`
}

// assignmentPatchDTO always carries all three keys; nil encodes as JSON null,
// which the task store treats as "clear".
type assignmentPatchDTO struct {
	FocusDate *string `json:"focusDate"`
	FocusSlot *string `json:"focusSlot"`
	DayID     *string `json:"dayId"`
}

// ventureDTO is the venture directory's entry object.
type ventureDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

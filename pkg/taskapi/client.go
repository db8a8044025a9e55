// Package taskapi provides the API types for the task list service and a
// small client for frontends and end-to-end tests.
package taskapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// Client is a thin HTTP client for the task list API. The service holds no
// sessions, so the username is passed explicitly on every call that needs an
// identity.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(defaultTimeout)

	return &Client{http: cli}
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, password string) (MessageResponse, error) {
	var out MessageResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(CredentialsRequest{Username: username, Password: password}).
		SetResult(&out).
		Post("/api/register")
	if err != nil {
		return MessageResponse{}, fmt.Errorf("register: %w", err)
	}
	if resp.IsError() {
		return MessageResponse{}, fmt.Errorf("register: unexpected status %d", resp.StatusCode())
	}
	return out, nil
}

// Login verifies credentials and returns the user's id on success.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var out LoginResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(CredentialsRequest{Username: username, Password: password}).
		SetResult(&out).
		Post("/api/login")
	if err != nil {
		return LoginResult{}, fmt.Errorf("login: %w", err)
	}
	if resp.IsError() {
		return LoginResult{}, fmt.Errorf("login: unexpected status %d", resp.StatusCode())
	}
	return out, nil
}

// ListTasks fetches the tasks owned by username, newest first.
func (c *Client) ListTasks(ctx context.Context, username string) (TaskListResult, error) {
	var out TaskListResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("username", username).
		SetResult(&out).
		Get("/api/tasks")
	if err != nil {
		return TaskListResult{}, fmt.Errorf("list tasks: %w", err)
	}
	if resp.IsError() {
		return TaskListResult{}, fmt.Errorf("list tasks: unexpected status %d", resp.StatusCode())
	}
	return out, nil
}

// AddTask creates a task for username. A nil category gets the server-side
// default.
func (c *Client) AddTask(ctx context.Context, username, title string, category *string) (MessageResponse, error) {
	var out MessageResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(AddTaskRequest{Username: username, Title: title, Category: category}).
		SetResult(&out).
		Post("/api/tasks")
	if err != nil {
		return MessageResponse{}, fmt.Errorf("add task: %w", err)
	}
	if resp.IsError() {
		return MessageResponse{}, fmt.Errorf("add task: unexpected status %d", resp.StatusCode())
	}
	return out, nil
}

// UpdateTask applies a partial update to the task with the given id.
func (c *Client) UpdateTask(ctx context.Context, taskID int64, update UpdateTaskRequest) (MessageResponse, error) {
	var out MessageResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(update).
		SetResult(&out).
		Put(fmt.Sprintf("/api/tasks/%d", taskID))
	if err != nil {
		return MessageResponse{}, fmt.Errorf("update task: %w", err)
	}
	if resp.IsError() {
		return MessageResponse{}, fmt.Errorf("update task: unexpected status %d", resp.StatusCode())
	}
	return out, nil
}

// DeleteTask removes the task with the given id.
func (c *Client) DeleteTask(ctx context.Context, taskID int64) (MessageResponse, error) {
	var out MessageResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Delete(fmt.Sprintf("/api/tasks/%d", taskID))
	if err != nil {
		return MessageResponse{}, fmt.Errorf("delete task: %w", err)
	}
	if resp.IsError() {
		return MessageResponse{}, fmt.Errorf("delete task: unexpected status %d", resp.StatusCode())
	}
	return out, nil
}

package taskapi

import "time"

// Request and response shapes for the task list API. The JSON keys, and the
// always-200-with-success-flag convention, are part of the compatibility
// contract with existing frontends.

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddTaskRequest struct {
	Username string  `json:"username"`
	Title    string  `json:"title"`
	Category *string `json:"category,omitempty"`
}

// UpdateTaskRequest is a partial update: absent fields leave the task
// untouched, present fields overwrite.
type UpdateTaskRequest struct {
	Title     *string `json:"title,omitempty"`
	Category  *string `json:"category,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageResponse is the uniform success/failure envelope. Failures carry
// success=false and a human-readable message; no operation signals failure
// through the HTTP status code.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type TaskListResponse struct {
	Success bool   `json:"success"`
	Tasks   []Task `json:"tasks"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

// LoginResult and TaskListResult are client-side decode targets covering both
// the success and failure shape of their endpoints.

type LoginResult struct {
	Success  bool   `json:"success"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

type TaskListResult struct {
	Success bool   `json:"success"`
	Tasks   []Task `json:"tasks"`
	Message string `json:"message"`
}

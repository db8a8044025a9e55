package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tasklist/internal/tasklist/domain"
	"github.com/aussiebroadwan/tasklist/internal/tasklist/service"
	"github.com/aussiebroadwan/tasklist/pkg/httpx"
	"github.com/aussiebroadwan/tasklist/pkg/slogx"
	"github.com/aussiebroadwan/tasklist/pkg/taskapi"
)

type TaskListHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		List Tasks Endpoint
//	@Description	Return the calling user's tasks, newest first
//	@Description	The caller identifies itself with the username header; no other credential is checked
//	@Tags			Tasks
//	@Produce		json
//	@Param			username	header		string						true	"Username of the task owner"
//	@Success		200			{object}	taskapi.TaskListResponse	"success, tasks"
//	@Router			/api/tasks [get].
func (h *TaskListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity := r.Header.Get("username")

	tasks, err := h.TaskService.List(ctx, identity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotLoggedIn),
			errors.Is(err, service.ErrUserNotFound):
			writeFailure(w, err.Error())
		default:
			log.Error("failed to list tasks", "err", err)
			writeFailure(w, "failed to fetch tasks")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskapi.TaskListResponse{
		Success: true,
		Tasks:   toAPITasks(tasks),
	})
}

func toAPITasks(tasks []domain.Task) []taskapi.Task {
	out := make([]taskapi.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskapi.Task{
			ID:        t.ID,
			Title:     t.Title,
			Category:  t.Category,
			Completed: t.Completed,
			CreatedAt: t.CreatedAt,
		})
	}
	return out
}

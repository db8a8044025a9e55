package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tasklist/internal/tasklist/service"
	"github.com/aussiebroadwan/tasklist/pkg/slogx"
	"github.com/aussiebroadwan/tasklist/pkg/taskapi"
)

type TaskAddHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		Add Task Endpoint
//	@Description	Create a new incomplete task for the named user
//	@Description	An omitted category falls back to the server-side default
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			body	body		taskapi.AddTaskRequest	true	"Owner username, title and optional category"
//	@Success		200		{object}	taskapi.MessageResponse	"success, message"
//	@Router			/api/tasks [post].
func (h *TaskAddHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req taskapi.AddTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.TaskService.Add(ctx, req.Username, req.Title, req.Category); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingTaskInput),
			errors.Is(err, service.ErrUserNotFound):
			writeFailure(w, err.Error())
		default:
			log.Error("failed to add task", "err", err)
			writeFailure(w, "failed to add task")
		}
		return
	}

	writeSuccess(w, "task added")
}

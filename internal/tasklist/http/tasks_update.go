package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/tasklist/internal/tasklist/domain"
	"github.com/aussiebroadwan/tasklist/internal/tasklist/service"
	"github.com/aussiebroadwan/tasklist/pkg/slogx"
	"github.com/aussiebroadwan/tasklist/pkg/taskapi"
)

type TaskUpdateHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		Update Task Endpoint
//	@Description	Apply a partial update to a task; absent fields stay untouched
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Task id"
//	@Param			body	body		taskapi.UpdateTaskRequest	true	"Fields to change"
//	@Success		200		{object}	taskapi.MessageResponse		"success, message"
//	@Router			/api/tasks/{id} [put].
func (h *TaskUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeFailure(w, service.ErrTaskNotFound.Error())
		return
	}

	var req taskapi.UpdateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	changes := domain.TaskChanges{
		Title:     req.Title,
		Category:  req.Category,
		Completed: req.Completed,
	}

	if err := h.TaskService.Update(ctx, taskID, changes); err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound),
			errors.Is(err, service.ErrNothingToUpdate):
			writeFailure(w, err.Error())
		default:
			log.Error("failed to update task", "err", err)
			writeFailure(w, "failed to update task")
		}
		return
	}

	writeSuccess(w, "task updated")
}

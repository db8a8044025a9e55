package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/tasklist/internal/tasklist/service"
	"github.com/aussiebroadwan/tasklist/pkg/slogx"
)

type TaskDeleteHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		Delete Task Endpoint
//	@Description	Remove a task by id
//	@Tags			Tasks
//	@Produce		json
//	@Param			id	path		int						true	"Task id"
//	@Success		200	{object}	taskapi.MessageResponse	"success, message"
//	@Router			/api/tasks/{id} [delete].
func (h *TaskDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeFailure(w, service.ErrTaskNotFound.Error())
		return
	}

	if err := h.TaskService.Delete(ctx, taskID); err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			writeFailure(w, err.Error())
		default:
			log.Error("failed to delete task", "err", err)
			writeFailure(w, "failed to delete task")
		}
		return
	}

	writeSuccess(w, "task deleted")
}

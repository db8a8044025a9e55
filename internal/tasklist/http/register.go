package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tasklist/internal/tasklist/service"
	"github.com/aussiebroadwan/tasklist/pkg/slogx"
	"github.com/aussiebroadwan/tasklist/pkg/taskapi"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new user account from a username and password
//	@Description	Failures are reported with success=false in the body, not through the status code
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		taskapi.CredentialsRequest	true	"Desired username and password"
//	@Success		200		{object}	taskapi.MessageResponse		"success, message"
//	@Router			/api/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req taskapi.CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.UserService.Register(ctx, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials),
			errors.Is(err, service.ErrPasswordTooShort),
			errors.Is(err, service.ErrUsernameTaken):
			writeFailure(w, err.Error())
		default:
			log.Error("registration failed", "err", err)
			writeFailure(w, "registration failed, please try again later")
		}
		return
	}

	writeSuccess(w, "registration successful")
}

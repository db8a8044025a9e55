package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tasklist/internal/tasklist/service"
	"github.com/aussiebroadwan/tasklist/pkg/httpx"
	"github.com/aussiebroadwan/tasklist/pkg/slogx"
	"github.com/aussiebroadwan/tasklist/pkg/taskapi"
)

type LoginHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Verify a username and password pair and return the user's id
//	@Description	No token or session is issued; callers re-present the username on later requests
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		taskapi.CredentialsRequest	true	"Username and password"
//	@Success		200		{object}	taskapi.LoginResponse		"success, user_id, username"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req taskapi.CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.UserService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials),
			errors.Is(err, service.ErrInvalidCredentials):
			writeFailure(w, err.Error())
		default:
			log.Error("login failed", "err", err)
			writeFailure(w, "login failed, please try again later")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskapi.LoginResponse{
		Success:  true,
		UserID:   user.ID,
		Username: user.Username,
	})
}

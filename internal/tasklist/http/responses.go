// Package http wires the task list services to their JSON endpoints.
//
// Every /api endpoint replies with HTTP 200 and a body carrying a boolean
// success flag; failures are signalled in the body, never through the status
// code. Existing frontends depend on that contract.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/tasklist/pkg/httpx"
	"github.com/aussiebroadwan/tasklist/pkg/taskapi"
)

func writeFailure(w http.ResponseWriter, message string) {
	httpx.WriteJSON(w, http.StatusOK, taskapi.MessageResponse{
		Success: false,
		Message: message,
	})
}

func writeSuccess(w http.ResponseWriter, message string) {
	httpx.WriteJSON(w, http.StatusOK, taskapi.MessageResponse{
		Success: true,
		Message: message,
	})
}

// decodeBody unmarshals the request body into v. A false return means the
// failure response has already been written.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeFailure(w, "invalid request body")
		return false
	}
	return true
}

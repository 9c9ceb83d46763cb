package handlers

import "net/http"

// Health reports process liveness. The service is stateless, so liveness is
// the whole story; there is nothing deeper to probe.
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

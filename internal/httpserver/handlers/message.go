package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/linkvault/linkvault/internal/dispatcher"
	"github.com/linkvault/linkvault/internal/httpserver/deps"
	"github.com/linkvault/linkvault/internal/logger"
)

const maxMessageBytes = 10 << 20 // import payloads can be large

// Message is the single message-protocol endpoint. A well-formed
// request always answers 200; protocol-level failures travel in the
// success flag, matching the extension runtime's sendResponse contract.
func Message(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dispatcher.Request
		body := http.MaxBytesReader(w, r.Body, maxMessageBytes)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, dispatcher.Response{
				Success: false,
				Error:   "malformed request: " + err.Error(),
			})
			return
		}

		d.Logger.Debug("message received", logger.String("action", req.Action))

		resp := d.Dispatcher.Dispatch(r.Context(), req)
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package handlers

import (
	"net/http"

	"github.com/linkvault/linkvault/internal/httpserver/deps"
	"github.com/linkvault/linkvault/internal/logger"
)

type syncTriggerResponse struct {
	Triggered bool   `json:"triggered"`
	Reason    string `json:"reason,omitempty"`
}

// SyncTrigger pokes the sync runner for an immediate pass. Answers 202
// when accepted, 429 when a pass is already pending, 503 when no
// browser tree source is configured.
func SyncTrigger(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.SyncTrigger == nil {
			writeJSON(w, http.StatusServiceUnavailable, syncTriggerResponse{
				Triggered: false,
				Reason:    "browser sync not configured",
			})
			return
		}

		select {
		case d.SyncTrigger <- struct{}{}:
			d.Logger.Info("manual sync triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusAccepted, syncTriggerResponse{Triggered: true})
		default:
			d.Logger.Warn("sync already pending",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusTooManyRequests, syncTriggerResponse{
				Triggered: false,
				Reason:    "sync already pending",
			})
		}
	}
}

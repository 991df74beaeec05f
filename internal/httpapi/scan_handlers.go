package httpapi

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"jobscout-engine/internal/aggregate"
	"jobscout-engine/internal/engine"
	"jobscout-engine/internal/events"
)

// ScanStatus mirrors the most recent pass for the UI to poll.
type ScanStatus struct {
	Running   bool   `json:"running"`
	LastRunAt string `json:"last_run_at,omitempty"`
	LastOkAt  string `json:"last_ok_at,omitempty"`
	LastError string `json:"last_error,omitempty"`
	LastNew   int    `json:"last_new"`
}

type ScanHandler struct {
	Engine *engine.Engine
	Hub    *events.Hub
	Status *atomic.Value // ScanStatus
	Log    *zap.Logger
}

func (h ScanHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Status.Load().(ScanStatus))
}

// Run kicks off one pass in the background. A second request while a pass
// is running reports that instead of piling up.
func (h ScanHandler) Run(w http.ResponseWriter, r *http.Request) {
	st := h.Status.Load().(ScanStatus)
	if st.Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	company := r.URL.Query().Get("company")

	h.Status.Store(ScanStatus{
		Running:   true,
		LastRunAt: time.Now().Format(time.RFC3339),
		LastOkAt:  st.LastOkAt,
	})

	go func() {
		res, err := h.Engine.SearchNewJobs(context.Background(), company)

		now := time.Now().Format(time.RFC3339)
		next := h.Status.Load().(ScanStatus)
		next.Running = false
		next.LastRunAt = now
		next.LastNew = len(res.NewJobs)
		if err != nil {
			next.LastError = err.Error()
			if !errors.Is(err, aggregate.ErrPassInProgress) {
				h.Log.Warn("scan failed", zap.Error(err))
			}
		} else {
			next.LastError = ""
			next.LastOkAt = now
			h.Hub.Publish(events.Make("pass_completed", res))
		}
		h.Status.Store(next)
	}()

	writeJSON(w, map[string]any{"ok": true})
}

package httpapi

import (
	"net/http"
	"sync/atomic"
)

// NewMux wires every route; main() wraps the result with the middleware
// chain before serving.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	jh := JobsHandler{Engine: d.Engine, Hub: d.Hub}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:   jh.GetByPath,
		http.MethodPatch: jh.PatchByPath,
		http.MethodPost:  jh.AnalyzeByPath, // /jobs/{id}/analyze
	}))

	scanStatus := &atomic.Value{}
	scanStatus.Store(ScanStatus{})
	sch := ScanHandler{Engine: d.Engine, Hub: d.Hub, Status: scanStatus, Log: d.Log}
	mux.HandleFunc("/scan", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sch.Run,
	}))
	mux.HandleFunc("/scan/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sch.GetStatus,
	}))

	ah := AnalyzeHandler{Engine: d.Engine}
	mux.HandleFunc("/analyze/domains", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Domains,
	}))
	mux.HandleFunc("/analyze/match", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Match,
	}))
	mux.HandleFunc("/analyze/skills", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Skills,
	}))
	mux.HandleFunc("/analyze/role", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Role,
	}))

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}

package httpapi

import (
	"net/http"

	"jobscout-engine/internal/engine"
)

// AnalyzeHandler exposes the scoring primitives over ad-hoc text, without
// touching stored jobs.
type AnalyzeHandler struct {
	Engine *engine.Engine
}

type domainsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h AnalyzeHandler) Domains(w http.ResponseWriter, r *http.Request) {
	var req domainsRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_body", err.Error())
		return
	}
	domains := h.Engine.DetectJobDomains(req.Title, req.Description)
	writeJSON(w, map[string]any{"domains": domains})
}

type matchRequest struct {
	CVText      string   `json:"cv_text"`
	UserDomains []string `json:"user_domains"`
	JobDomains  []string `json:"job_domains"`
}

func (h AnalyzeHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_body", err.Error())
		return
	}
	writeJSON(w, h.Engine.MatchDomains(req.CVText, req.UserDomains, req.JobDomains))
}

type skillsRequest struct {
	Text string `json:"text"`
}

func (h AnalyzeHandler) Skills(w http.ResponseWriter, r *http.Request) {
	var req skillsRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_body", err.Error())
		return
	}
	writeJSON(w, h.Engine.ExtractSkills(req.Text))
}

type roleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CVText      string `json:"cv_text"`
}

func (h AnalyzeHandler) Role(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_body", err.Error())
		return
	}
	writeJSON(w, h.Engine.AnalyzeRoleLevel(req.Title, req.Description, req.CVText))
}

package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/engine"
	"jobscout-engine/internal/events"
	"jobscout-engine/internal/store"
)

type JobsHandler struct {
	Engine *engine.Engine
	Hub    *events.Hub
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := store.Filters{
		Status:  domain.Status(q.Get("status")),
		Company: q.Get("company"),
	}
	f.MinPriority, _ = strconv.Atoi(q.Get("min_priority"))
	f.MinScore, _ = strconv.Atoi(q.Get("min_score"))
	f.RemoteOnly = q.Get("remote") == "true"
	f.IncludeExpired = q.Get("include_expired") == "true"
	f.Limit, _ = strconv.Atoi(q.Get("limit"))

	jobs, err := h.Engine.GetJobs(r.Context(), f)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	writeJSON(w, jobs)
}

func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id, tail, ok := pathID(r.URL.Path, "/jobs/")
	if !ok || tail != "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid job id")
		return
	}
	job, err := h.Engine.GetJob(r.Context(), id)
	if err != nil {
		writeJobError(w, r, err)
		return
	}
	writeJSON(w, job)
}

type jobPatch struct {
	Status   *string `json:"status"`
	Priority *int    `json:"priority"`
	Notes    *string `json:"notes"`
}

var validStatuses = map[domain.Status]bool{
	domain.StatusNew:      true,
	domain.StatusSeen:     true,
	domain.StatusApplied:  true,
	domain.StatusArchived: true,
	domain.StatusExpired:  true,
}

func (h JobsHandler) PatchByPath(w http.ResponseWriter, r *http.Request) {
	id, tail, ok := pathID(r.URL.Path, "/jobs/")
	if !ok || tail != "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid job id")
		return
	}

	var p jobPatch
	if err := decodeBody(r, &p); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_body", err.Error())
		return
	}

	ctx := r.Context()
	if p.Status != nil {
		st := domain.Status(*p.Status)
		if !validStatuses[st] {
			WriteError(w, r, http.StatusBadRequest, "invalid_status", "unknown status "+*p.Status)
			return
		}
		if err := h.Engine.UpdateJobStatus(ctx, id, st); err != nil {
			writeJobError(w, r, err)
			return
		}
	}
	if p.Priority != nil {
		if err := h.Engine.UpdateJobPriority(ctx, id, *p.Priority); err != nil {
			writeJobError(w, r, err)
			return
		}
	}
	if p.Notes != nil {
		if err := h.Engine.UpdateJobNotes(ctx, id, *p.Notes); err != nil {
			writeJobError(w, r, err)
			return
		}
	}

	job, err := h.Engine.GetJob(ctx, id)
	if err != nil {
		writeJobError(w, r, err)
		return
	}
	if p.Status != nil {
		h.Hub.Publish(events.Make("job_updated", map[string]any{"id": id, "status": *p.Status}))
	}
	writeJSON(w, job)
}

type analyzeJobRequest struct {
	CVText      string   `json:"cv_text"`
	UserDomains []string `json:"user_domains"`
}

func (h JobsHandler) AnalyzeByPath(w http.ResponseWriter, r *http.Request) {
	id, tail, ok := pathID(r.URL.Path, "/jobs/")
	if !ok || tail != "analyze" {
		WriteError(w, r, http.StatusNotFound, "not_found", "unknown route")
		return
	}

	var req analyzeJobRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_body", err.Error())
		return
	}

	res, err := h.Engine.AnalyzeJob(r.Context(), id, req.CVText, req.UserDomains)
	if err != nil {
		writeJobError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func writeJobError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, engine.ErrJobNotFound) {
		WriteError(w, r, http.StatusNotFound, "job_not_found", "no job with that id")
		return
	}
	WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
}

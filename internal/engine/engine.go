// Package engine ties the pipeline together: it exposes the operations the
// HTTP API and the scheduler call, delegating scraping to the aggregate
// runner, persistence to the store and scoring to the matcher.
package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"jobscout-engine/internal/aggregate"
	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/match"
	"jobscout-engine/internal/store"
)

// ErrJobNotFound is returned for analysis or update requests against an
// unknown job id.
var ErrJobNotFound = errors.New("engine: job not found")

type Engine struct {
	store   *store.Store
	runner  *aggregate.Runner
	matcher match.Matcher
	log     *zap.Logger
}

func New(st *store.Store, runner *aggregate.Runner, matcher match.Matcher, log *zap.Logger) *Engine {
	return &Engine{store: st, runner: runner, matcher: matcher, log: log}
}

// SearchNewJobs runs one polling pass and returns its summary. An empty
// companyFilter scrapes every active company.
func (e *Engine) SearchNewJobs(ctx context.Context, companyFilter string) (aggregate.PassResult, error) {
	return e.runner.RunPass(ctx, companyFilter)
}

// GetJobs lists persisted jobs through the store's filter surface.
func (e *Engine) GetJobs(ctx context.Context, f store.Filters) ([]domain.Job, error) {
	return e.store.ListJobs(ctx, f)
}

func (e *Engine) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	j, err := e.store.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, ErrJobNotFound
	}
	return j, nil
}

func (e *Engine) UpdateJobStatus(ctx context.Context, id int64, status domain.Status) error {
	if _, err := e.GetJob(ctx, id); err != nil {
		return err
	}
	return e.store.UpdateJobStatus(ctx, id, status)
}

func (e *Engine) UpdateJobPriority(ctx context.Context, id int64, priority int) error {
	if _, err := e.GetJob(ctx, id); err != nil {
		return err
	}
	return e.store.UpdateJobPriority(ctx, id, priority)
}

func (e *Engine) UpdateJobNotes(ctx context.Context, id int64, notes string) error {
	if _, err := e.GetJob(ctx, id); err != nil {
		return err
	}
	return e.store.UpdateJobNotes(ctx, id, notes)
}

// DetectJobDomains classifies a posting's text into registry domains.
func (e *Engine) DetectJobDomains(title, description string) []string {
	return e.matcher.DetectJobDomains(title, description)
}

// MatchDomains scores candidate domains against job domains.
func (e *Engine) MatchDomains(cvText string, userDomains, jobDomains []string) match.AlignmentResult {
	return e.matcher.MatchDomains(cvText, userDomains, jobDomains)
}

// ExtractSkills pulls known skills out of free text.
func (e *Engine) ExtractSkills(text string) match.SkillExtraction {
	return e.matcher.ExtractSkills(text)
}

// AnalyzeRoleLevel compares a posting's seniority against the candidate's.
func (e *Engine) AnalyzeRoleLevel(title, description, cvText string) match.RoleAnalysis {
	return e.matcher.AnalyzeRoleLevel(title, description, cvText)
}

// JobAnalysis is the full scoring report for one persisted job.
type JobAnalysis struct {
	JobID      int64                 `json:"jobId"`
	JobDomains []string              `json:"jobDomains"`
	Alignment  match.AlignmentResult `json:"alignment"`
	Skills     match.SkillExtraction `json:"skills"`
	Role       match.RoleAnalysis    `json:"role"`
}

// AnalyzeJob runs the complete analysis for a stored job against a
// candidate profile and persists the resulting alignment score on the job.
func (e *Engine) AnalyzeJob(ctx context.Context, id int64, cvText string, userDomains []string) (*JobAnalysis, error) {
	j, err := e.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	text := j.Title + "\n" + j.Description + "\n" + j.Requirements
	jobDomains := e.matcher.DetectJobDomains(j.Title, j.Description+"\n"+j.Requirements)

	a := &JobAnalysis{
		JobID:      id,
		JobDomains: jobDomains,
		Alignment:  e.matcher.MatchDomains(cvText, userDomains, jobDomains),
		Skills:     e.matcher.ExtractSkills(text),
		Role:       e.matcher.AnalyzeRoleLevel(j.Title, j.Description, cvText),
	}

	if err := e.store.SetAlignmentScore(ctx, id, a.Alignment.Score); err != nil {
		return nil, fmt.Errorf("persist score: %w", err)
	}
	e.log.Debug("job analyzed",
		zap.Int64("job_id", id),
		zap.Int("score", a.Alignment.Score),
		zap.Strings("job_domains", jobDomains))
	return a, nil
}

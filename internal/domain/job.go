package domain

import "time"

// Status is the lifecycle state of a canonical job. The pipeline only ever
// sets new/seen/expired; applied and archived are user workflow states and
// are never touched by a scrape pass.
type Status string

const (
	StatusNew      Status = "new"
	StatusSeen     Status = "seen"
	StatusApplied  Status = "applied"
	StatusArchived Status = "archived"
	StatusExpired  Status = "expired"
)

// ScrapedJob is the transient record every adapter converges on. Produced
// fresh on each scrape, never persisted directly.
type ScrapedJob struct {
	Company      string
	Title        string
	URL          string
	Description  string
	Requirements string
	TechStack    []string
	Location     string
	Remote       bool
	Fingerprint  string
}

// Job is the persisted canonical posting. Created on first sighting of a
// fingerprint, mutated by dedup/expiry bookkeeping on every later pass,
// never physically deleted.
type Job struct {
	ID             int64     `json:"id"`
	Fingerprint    string    `json:"fingerprint"`
	Company        string    `json:"company"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements"`
	TechStack      []string  `json:"techStack"`
	Location       string    `json:"location"`
	Remote         bool      `json:"remote"`
	Status         Status    `json:"status"`
	Priority       int       `json:"priority"`
	AlignmentScore int       `json:"alignmentScore"`
	Notes          string    `json:"notes"`
	FirstSeenAt    time.Time `json:"firstSeenAt"`
	LastSeenAt     time.Time `json:"lastSeenAt"`
	MissCount      int       `json:"missCount"`
}

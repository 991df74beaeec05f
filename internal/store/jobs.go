package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobscout-engine/internal/domain"
)

// Filters narrows ListJobs. Zero values mean "no constraint". Expired jobs
// are excluded from the default view; IncludeExpired opts back in.
type Filters struct {
	Status         domain.Status
	Company        string
	MinPriority    int
	MinScore       int
	RemoteOnly     bool
	IncludeExpired bool
	Limit          int
}

// GetJobByFingerprint returns the canonical job for an identity, or nil
// when the identity is unknown.
func (s *Store) GetJobByFingerprint(ctx context.Context, fp string) (*domain.Job, error) {
	row := s.db.QueryRowContext(ctx, selectJob+` WHERE fingerprint = ?;`, fp)
	j, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return j, nil
}

// GetJob returns a job by row id.
func (s *Store) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	row := s.db.QueryRowContext(ctx, selectJob+` WHERE id = ?;`, id)
	j, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("job %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return j, nil
}

// AddJob inserts a first-sighted posting as a canonical job with status
// new and a zeroed miss counter.
func (s *Store) AddJob(ctx context.Context, sj domain.ScrapedJob) (int64, error) {
	stack, _ := json.Marshal(sj.TechStack)
	now := time.Now().UTC().Format(time.RFC3339)

	res, err := s.db.ExecContext(ctx, `
INSERT INTO jobs (fingerprint, company, title, url, description, requirements,
                  tech_stack, location, remote, status, first_seen_at, last_seen_at, miss_count)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0);`,
		sj.Fingerprint, sj.Company, sj.Title, sj.URL, sj.Description, sj.Requirements,
		string(stack), sj.Location, boolToInt(sj.Remote), string(domain.StatusNew), now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("add job %q/%q: %w", sj.Company, sj.Title, err)
	}
	return res.LastInsertId()
}

// MarkJobAsSeen records a resighting: the miss counter resets and the
// last-seen timestamp advances. Pipeline-owned statuses move to seen
// (including revival of expired postings); user-set states like applied
// are left alone, as are priority and notes.
func (s *Store) MarkJobAsSeen(ctx context.Context, fp string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
UPDATE jobs
SET miss_count = 0,
    last_seen_at = ?,
    status = CASE WHEN status IN (?, ?) THEN ? ELSE status END
WHERE fingerprint = ?;`,
		now, string(domain.StatusNew), string(domain.StatusExpired), string(domain.StatusSeen), fp,
	)
	if err != nil {
		return fmt.Errorf("mark seen %s: %w", fp, err)
	}
	return nil
}

// GetAllJobsForExpiryCheck returns the jobs that participate in expiry
// bookkeeping. Already-expired and archived postings are excluded: their
// counters have done their job.
func (s *Store) GetAllJobsForExpiryCheck(ctx context.Context) ([]domain.Job, error) {
	rows, err := s.db.QueryContext(ctx, selectJob+` WHERE status NOT IN (?, ?);`,
		string(domain.StatusExpired), string(domain.StatusArchived))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

// IncrementExpiryCheckCount bumps the consecutive-miss counter by one.
func (s *Store) IncrementExpiryCheckCount(ctx context.Context, fp string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET miss_count = miss_count + 1 WHERE fingerprint = ?;`, fp)
	if err != nil {
		return fmt.Errorf("increment miss %s: %w", fp, err)
	}
	return nil
}

// DetectExpiredJobs returns the fingerprints whose miss counter has
// reached the threshold and that are not already expired.
func (s *Store) DetectExpiredJobs(ctx context.Context, threshold int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT fingerprint FROM jobs
WHERE miss_count >= ? AND status != ?;`,
		threshold, string(domain.StatusExpired))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var fp string
		if err := rows.Scan(&fp); err != nil {
			return nil, err
		}
		out = append(out, fp)
	}
	return out, rows.Err()
}

// MarkJobExpired transitions one posting to expired. The row is retained;
// expired postings only drop out of default views.
func (s *Store) MarkJobExpired(ctx context.Context, fp string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET status = ? WHERE fingerprint = ?;`,
		string(domain.StatusExpired), fp)
	if err != nil {
		return fmt.Errorf("mark expired %s: %w", fp, err)
	}
	return nil
}

// ListJobs returns canonical jobs matching the filters, newest first.
func (s *Store) ListJobs(ctx context.Context, f Filters) ([]domain.Job, error) {
	var where []string
	var args []any

	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(f.Status))
	} else if !f.IncludeExpired {
		where = append(where, "status != ?")
		args = append(args, string(domain.StatusExpired))
	}
	if f.Company != "" {
		where = append(where, "company = ?")
		args = append(args, f.Company)
	}
	if f.MinPriority > 0 {
		where = append(where, "priority >= ?")
		args = append(args, f.MinPriority)
	}
	if f.MinScore > 0 {
		where = append(where, "alignment_score >= ?")
		args = append(args, f.MinScore)
	}
	if f.RemoteOnly {
		where = append(where, "remote = 1")
	}

	query := selectJob
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY first_seen_at DESC, id DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query+";", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

// SetAlignmentScore persists a computed alignment score onto a job.
func (s *Store) SetAlignmentScore(ctx context.Context, id int64, score int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET alignment_score = ? WHERE id = ?;`, score, id)
	return err
}

// UpdateJobStatus sets a user workflow state.
func (s *Store) UpdateJobStatus(ctx context.Context, id int64, status domain.Status) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET status = ? WHERE id = ?;`, string(status), id)
	return err
}

// UpdateJobPriority sets the user priority.
func (s *Store) UpdateJobPriority(ctx context.Context, id int64, priority int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET priority = ? WHERE id = ?;`, priority, id)
	return err
}

// UpdateJobNotes sets the user notes.
func (s *Store) UpdateJobNotes(ctx context.Context, id int64, notes string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET notes = ? WHERE id = ?;`, notes, id)
	return err
}

const selectJob = `
SELECT id, fingerprint, company, title, url, description, requirements,
       tech_stack, location, remote, status, priority, alignment_score,
       notes, first_seen_at, last_seen_at, miss_count
FROM jobs`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(r rowScanner) (*domain.Job, error) {
	var j domain.Job
	var stackJSON, status, firstSeen, lastSeen string
	var remote int

	if err := r.Scan(
		&j.ID, &j.Fingerprint, &j.Company, &j.Title, &j.URL, &j.Description,
		&j.Requirements, &stackJSON, &j.Location, &remote, &status,
		&j.Priority, &j.AlignmentScore, &j.Notes, &firstSeen, &lastSeen, &j.MissCount,
	); err != nil {
		return nil, err
	}

	j.Remote = remote != 0
	j.Status = domain.Status(status)
	_ = json.Unmarshal([]byte(stackJSON), &j.TechStack)
	if t, err := time.Parse(time.RFC3339, firstSeen); err == nil {
		j.FirstSeenAt = t
	}
	if t, err := time.Parse(time.RFC3339, lastSeen); err == nil {
		j.LastSeenAt = t
	}
	return &j, nil
}

func scanJobs(rows *sql.Rows) ([]domain.Job, error) {
	var out []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

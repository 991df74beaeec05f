package store

import (
	"context"
	"fmt"

	"jobscout-engine/internal/domain"
)

// GetAllCompanies returns every configured company, active or not.
func (s *Store) GetAllCompanies(ctx context.Context) ([]domain.Company, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, name, career_url, provider, board_slug, board_url, active
FROM companies
ORDER BY name;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Company
	for rows.Next() {
		var c domain.Company
		var provider string
		var active int
		if err := rows.Scan(&c.ID, &c.Name, &c.CareerURL, &provider, &c.BoardSlug, &c.BoardURL, &active); err != nil {
			return nil, err
		}
		c.Provider = domain.Provider(provider)
		c.Active = active != 0
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpsertCompany inserts a company or refreshes its configuration, keyed by
// name. Used to seed the table from the config file at startup.
func (s *Store) UpsertCompany(ctx context.Context, c domain.Company) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO companies (name, career_url, provider, board_slug, board_url, active)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
  career_url = excluded.career_url,
  provider   = excluded.provider,
  board_slug = excluded.board_slug,
  board_url  = excluded.board_url,
  active     = excluded.active;`,
		c.Name, c.CareerURL, string(c.Provider), c.BoardSlug, c.BoardURL, boolToInt(c.Active),
	)
	if err != nil {
		return fmt.Errorf("upsert company %q: %w", c.Name, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

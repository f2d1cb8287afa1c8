// File path: internal/sqlite/queries.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SaveFilter persists a compiled filter and returns its row id.
func (s *Store) SaveFilter(ctx context.Context, f SavedFilter) (int64, error) {
	if s == nil || s.db == nil {
		return 0, fmt.Errorf("sqlite store not initialised")
	}
	if strings.TrimSpace(f.Name) == "" {
		return 0, fmt.Errorf("filter name required")
	}
	res, err := s.db.ExecContext(ctx, `
                INSERT INTO filters (name, mastery, base_class, damage_types, progress,
                        strictness, specificity, confidence, rule_count, affixes_dropped, warnings, xml)
                VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.Name, f.Mastery, f.BaseClass, f.DamageTypes, f.Progress,
		f.Strictness, f.Specificity, f.Confidence, f.RuleCount, f.AffixesDropped, f.Warnings, f.XML)
	if err != nil {
		return 0, fmt.Errorf("insert filter: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("filter insert id: %w", err)
	}
	return id, nil
}

// FilterByID retrieves a single saved filter.
func (s *Store) FilterByID(ctx context.Context, id int64) (*SavedFilter, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	var f SavedFilter
	if err := s.db.GetContext(ctx, &f, `SELECT * FROM filters WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &f, nil
}

// RecentFilters returns the latest saved filters, newest first.
func (s *Store) RecentFilters(ctx context.Context, limit int) ([]SavedFilter, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	if limit <= 0 {
		limit = 20
	}
	filters := []SavedFilter{}
	if err := s.db.SelectContext(ctx, &filters,
		`SELECT * FROM filters ORDER BY created_at DESC, id DESC LIMIT ?`, limit); err != nil {
		return nil, fmt.Errorf("select filters: %w", err)
	}
	return filters, nil
}

// RecordBuildUsage bumps the compile counter for a mastery/strictness pair.
func (s *Store) RecordBuildUsage(ctx context.Context, mastery, strictness string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlite store not initialised")
	}
	_, err := s.db.ExecContext(ctx, `
                INSERT INTO build_usage (mastery, strictness, usage_count, last_used_at)
                VALUES (?, ?, 1, CURRENT_TIMESTAMP)
                ON CONFLICT(mastery, strictness) DO UPDATE SET
                        usage_count = usage_count + 1,
                        last_used_at = CURRENT_TIMESTAMP`,
		strings.ToLower(strings.TrimSpace(mastery)), strings.ToLower(strings.TrimSpace(strictness)))
	if err != nil {
		return fmt.Errorf("record build usage: %w", err)
	}
	return nil
}

// UsageFor returns the compile counter for a mastery/strictness pair, or nil
// when the pair has never been recorded.
func (s *Store) UsageFor(ctx context.Context, mastery, strictness string) (*BuildUsage, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	var usage BuildUsage
	err := s.db.GetContext(ctx, &usage,
		`SELECT * FROM build_usage WHERE mastery = ? AND strictness = ?`,
		strings.ToLower(strings.TrimSpace(mastery)), strings.ToLower(strings.TrimSpace(strictness)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select build usage: %w", err)
	}
	return &usage, nil
}

// PopularBuilds returns per-mastery compile totals from the popularity view.
func (s *Store) PopularBuilds(ctx context.Context, limit int) ([]BuildPopularity, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	if limit <= 0 {
		limit = 10
	}
	rows := []BuildPopularity{}
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT * FROM build_popularity ORDER BY total_uses DESC, mastery LIMIT ?`, limit); err != nil {
		return nil, fmt.Errorf("select build popularity: %w", err)
	}
	return rows, nil
}

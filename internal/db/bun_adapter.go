// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/toeirei/passgate/internal/model"
	"github.com/uptrace/bun"
)

// AttemptModel maps the `attempts` table for bun queries.
type AttemptModel struct {
	bun.BaseModel `bun:"table:attempts"`
	ID            int       `bun:"id,pk,autoincrement"`
	Timestamp     time.Time `bun:"timestamp"`
	Source        string    `bun:"source"`
	Passed        bool      `bun:"passed"`
	MetCount      int       `bun:"met_count"`
	Unmet         string    `bun:"unmet"`
}

// bunStore implements Store on a long-lived *bun.DB.
type bunStore struct {
	sql *sql.DB
	bun *bun.DB
}

func attemptModelToModel(m AttemptModel) model.Attempt {
	return model.Attempt{
		ID:        m.ID,
		Timestamp: m.Timestamp,
		Source:    m.Source,
		Passed:    m.Passed,
		MetCount:  m.MetCount,
		Unmet:     m.Unmet,
	}
}

func (s *bunStore) LogAttempt(attempt model.Attempt) (int, error) {
	ctx := context.Background()

	ts := attempt.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	m := &AttemptModel{
		Timestamp: ts,
		Source:    attempt.Source,
		Passed:    attempt.Passed,
		MetCount:  attempt.MetCount,
		Unmet:     attempt.Unmet,
	}
	if _, err := s.bun.NewInsert().Model(m).Exec(ctx); err != nil {
		return 0, err
	}
	dbLogf("db: logged %s attempt (passed=%v, met=%d)", m.Source, m.Passed, m.MetCount)
	return m.ID, nil
}

func (s *bunStore) GetAllAttempts() ([]model.Attempt, error) {
	return s.selectAttempts(0)
}

func (s *bunStore) GetRecentAttempts(limit int) ([]model.Attempt, error) {
	return s.selectAttempts(limit)
}

func (s *bunStore) selectAttempts(limit int) ([]model.Attempt, error) {
	ctx := context.Background()

	var rows []AttemptModel
	q := s.bun.NewSelect().Model(&rows).Order("timestamp DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}

	out := make([]model.Attempt, 0, len(rows))
	for _, r := range rows {
		out = append(out, attemptModelToModel(r))
	}
	return out, nil
}

func (s *bunStore) CountAttempts() (int, int, error) {
	ctx := context.Background()

	total, err := s.bun.NewSelect().Model((*AttemptModel)(nil)).Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	passed, err := s.bun.NewSelect().Model((*AttemptModel)(nil)).Where("passed = ?", true).Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	return total, passed, nil
}

func (s *bunStore) PruneAttemptsBefore(cutoff time.Time) (int, error) {
	ctx := context.Background()

	res, err := s.bun.NewDelete().Model((*AttemptModel)(nil)).Where("timestamp < ?", cutoff).Exec(ctx)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (s *bunStore) Close() error {
	return s.bun.Close()
}

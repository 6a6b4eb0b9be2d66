// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/starvote/db"
	"github.com/danielhkuo/starvote/models"
)

// SQL keeps candidates in a database table. The table is reseeded when the
// store is created, so votes never outlive the process.
type SQL struct {
	db *sql.DB
}

// NewSQL creates the schema on conn and reseeds it.
func NewSQL(ctx context.Context, conn *sql.DB, seed []models.Candidate) (*SQL, error) {
	if err := db.CreateSchema(conn); err != nil {
		return nil, err
	}
	if err := db.Reseed(ctx, conn, seed); err != nil {
		return nil, err
	}
	return &SQL{db: conn}, nil
}

func (s *SQL) Vote(ctx context.Context, id int) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE candidate SET votes = votes + 1 WHERE id = $1
	`, id)
	if err != nil {
		return false, fmt.Errorf("failed to record vote: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read vote result: %w", err)
	}
	return n > 0, nil
}

func (s *SQL) Candidates(ctx context.Context) ([]models.Candidate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, votes, image, color
		FROM candidate
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Votes, &c.Image, &c.Color); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return candidates, nil
}

func (s *SQL) Candidate(ctx context.Context, id int) (models.Candidate, bool, error) {
	var c models.Candidate
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, votes, image, color FROM candidate WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Votes, &c.Image, &c.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Candidate{}, false, nil
	}
	if err != nil {
		return models.Candidate{}, false, fmt.Errorf("failed to query candidate: %w", err)
	}
	return c, true, nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}

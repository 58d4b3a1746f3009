// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"webcraft/internal/models"
)

// PostgresStore handles website persistence in PostgreSQL. Content is
// stored as JSONB; created_at holds unix seconds.
type PostgresStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewPostgresStore creates a PostgresStore with the given database connection.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now}
}

// Create inserts a website and returns it with the generated ID.
func (s *PostgresStore) Create(ctx context.Context, draft models.WebsiteDraft) (*models.Website, error) {
	content, err := json.Marshal(draft.Content)
	if err != nil {
		return nil, fmt.Errorf("marshal website content: %w", err)
	}

	w := &models.Website{
		Prompt:     draft.Prompt,
		TemplateID: draft.TemplateID,
		Content:    draft.Content,
		HTML:       draft.HTML,
		CSS:        draft.CSS,
		CreatedAt:  s.now().Unix(),
	}

	err = s.db.QueryRowContext(ctx, `
		INSERT INTO websites (prompt, template_id, content, html, css, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, w.Prompt, w.TemplateID, content, w.HTML, w.CSS, w.CreatedAt).Scan(&w.ID)
	if err != nil {
		return nil, fmt.Errorf("create website: %w", err)
	}
	return w, nil
}

// Get retrieves a website by id.
func (s *PostgresStore) Get(ctx context.Context, id int64) (*models.Website, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, prompt, template_id, content, html, css, created_at
		FROM websites WHERE id = $1
	`, id)

	w, err := scanWebsite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get website: %w", err)
	}
	return w, nil
}

// List returns all websites ordered by id.
func (s *PostgresStore) List(ctx context.Context) ([]models.Website, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, prompt, template_id, content, html, css, created_at
		FROM websites
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}
	defer rows.Close()

	items := make([]models.Website, 0)
	for rows.Next() {
		w, err := scanWebsite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		items = append(items, *w)
	}
	return items, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanWebsite(sc scanner) (*models.Website, error) {
	var (
		w       models.Website
		content []byte
	)
	if err := sc.Scan(&w.ID, &w.Prompt, &w.TemplateID, &content, &w.HTML, &w.CSS, &w.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(content, &w.Content); err != nil {
		return nil, fmt.Errorf("decode content of website %d: %w", w.ID, err)
	}
	return &w, nil
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists generated websites. MemoryStore keeps them in the
// process; PostgresStore writes them to the websites table.
package store

import (
	"context"
	"errors"

	"webcraft/internal/models"
)

// ErrNotFound is returned when no website has the requested id.
var ErrNotFound = errors.New("website not found")

// Store is the website persistence contract. Create assigns ID and
// CreatedAt; List returns websites in ascending id order.
type Store interface {
	Create(ctx context.Context, draft models.WebsiteDraft) (*models.Website, error)
	Get(ctx context.Context, id int64) (*models.Website, error)
	List(ctx context.Context) ([]models.Website, error)
}

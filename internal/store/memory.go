// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"sync"
	"time"

	"webcraft/internal/models"
)

// MemoryStore keeps websites in a map guarded by a mutex. Ids start at 1
// and increase by one per Create. Nothing survives a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	websites map[int64]models.Website
	nextID   int64
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		websites: make(map[int64]models.Website),
		nextID:   1,
		now:      time.Now,
	}
}

// Create stores the draft under the next id.
func (s *MemoryStore) Create(_ context.Context, draft models.WebsiteDraft) (*models.Website, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := models.Website{
		ID:         s.nextID,
		Prompt:     draft.Prompt,
		TemplateID: draft.TemplateID,
		Content:    draft.Content,
		HTML:       draft.HTML,
		CSS:        draft.CSS,
		CreatedAt:  s.now().Unix(),
	}
	s.websites[w.ID] = w
	s.nextID++

	return &w, nil
}

// Get returns a copy of the website with the given id.
func (s *MemoryStore) Get(_ context.Context, id int64) (*models.Website, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.websites[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &w, nil
}

// List returns every website in ascending id order.
func (s *MemoryStore) List(_ context.Context) ([]models.Website, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Website, 0, len(s.websites))
	for id := int64(1); id < s.nextID; id++ {
		if w, ok := s.websites[id]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

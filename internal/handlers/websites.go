// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"webcraft/internal/archive"
	"webcraft/internal/generator"
	"webcraft/internal/models"
	"webcraft/internal/storage"
	"webcraft/internal/store"
)

// WebsiteGenerator creates websites. Implemented by *generator.Orchestrator.
type WebsiteGenerator interface {
	Generate(ctx context.Context, req generator.Request) (*models.Website, error)
	Regenerate(ctx context.Context, id int64) (*models.Website, error)
}

// ArchiveCache caches built archives. Implemented by *cache.ArchiveCache.
type ArchiveCache interface {
	Get(ctx context.Context, id int64, fingerprint string, minified bool) ([]byte, bool)
	Set(ctx context.Context, id int64, fingerprint string, minified bool, data []byte)
}

// ArchiveStorage keeps archives in object storage. Implemented by
// *storage.Client.
type ArchiveStorage interface {
	Exists(ctx context.Context, key string) (bool, error)
	Upload(ctx context.Context, key, contentType string, data []byte) error
	PresignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// Websites groups the website API handlers. archives and objects may be
// nil when Valkey or S3 are not configured.
type Websites struct {
	gen      WebsiteGenerator
	store    store.Store
	builder  *archive.Builder
	archives ArchiveCache
	objects  ArchiveStorage
}

// NewWebsites creates a new Websites handler group.
func NewWebsites(gen WebsiteGenerator, st store.Store, builder *archive.Builder, archives ArchiveCache, objects ArchiveStorage) *Websites {
	return &Websites{
		gen:      gen,
		store:    st,
		builder:  builder,
		archives: archives,
		objects:  objects,
	}
}

// Create generates and stores a new website.
func (h *Websites) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateWebsite(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Invalid request",
			"errors":  err,
		})
		return
	}

	website, err := h.gen.Generate(r.Context(), generator.Request{
		Prompt:     req.Prompt,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		slog.Error("generate website failed", "template_id", req.TemplateID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate website", err)
		return
	}

	writeJSON(w, http.StatusCreated, website)
}

// List returns every stored website in ascending id order.
func (h *Websites) List(w http.ResponseWriter, r *http.Request) {
	websites, err := h.store.List(r.Context())
	if err != nil {
		slog.Error("list websites failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve websites", err)
		return
	}
	writeJSON(w, http.StatusOK, websites)
}

// Get returns one website.
func (h *Websites) Get(w http.ResponseWriter, r *http.Request) {
	website, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, website)
}

// Regenerate recomputes the code of a stored website and returns the new
// record.
func (h *Websites) Regenerate(w http.ResponseWriter, r *http.Request) {
	id, err := websiteID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid website ID", nil)
		return
	}

	website, err := h.gen.Regenerate(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Website not found", nil)
		return
	}
	if err != nil {
		slog.Error("regenerate website failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to regenerate website", err)
		return
	}

	writeJSON(w, http.StatusCreated, website)
}

// Download serves the website as a ZIP archive. With object storage
// configured the archive is uploaded once and the client is redirected to
// a pre-signed URL; storage errors fall back to serving the bytes directly.
func (h *Websites) Download(w http.ResponseWriter, r *http.Request) {
	website, ok := h.load(w, r)
	if !ok {
		return
	}
	minified, _ := strconv.ParseBool(r.URL.Query().Get("minify"))
	ctx := r.Context()

	if h.objects != nil {
		url, err := h.presignedArchive(ctx, website, minified)
		if err == nil {
			http.Redirect(w, r, url, http.StatusFound)
			return
		}
		slog.Warn("archive storage unavailable, serving directly", "id", website.ID, "error", err)
	}

	data, err := h.archive(ctx, website, minified)
	if err != nil {
		slog.Error("build archive failed", "id", website.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to download website", err)
		return
	}

	w.Header().Set("Content-Type", archive.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="website-%d.zip"`, website.ID))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// load resolves the {id} parameter and writes 400/404/500 responses itself.
func (h *Websites) load(w http.ResponseWriter, r *http.Request) (*models.Website, bool) {
	id, err := websiteID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid website ID", nil)
		return nil, false
	}

	website, err := h.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Website not found", nil)
		return nil, false
	}
	if err != nil {
		slog.Error("get website failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve website", err)
		return nil, false
	}
	return website, true
}

// archive returns the ZIP bytes, consulting the cache when present.
func (h *Websites) archive(ctx context.Context, website *models.Website, minified bool) ([]byte, error) {
	fingerprint := website.Fingerprint()
	if h.archives != nil {
		if data, ok := h.archives.Get(ctx, website.ID, fingerprint, minified); ok {
			return data, nil
		}
	}

	data, err := h.builder.Build(website.HTML, website.CSS, archive.Options{Minify: minified})
	if err != nil {
		return nil, err
	}

	if h.archives != nil {
		h.archives.Set(ctx, website.ID, fingerprint, minified, data)
	}
	return data, nil
}

// presignedArchive uploads the archive when missing and returns a
// pre-signed download URL for it.
func (h *Websites) presignedArchive(ctx context.Context, website *models.Website, minified bool) (string, error) {
	key := storage.ArchiveKey(website.ID, website.Fingerprint(), website.Content.Title, minified)

	exists, err := h.objects.Exists(ctx, key)
	if err != nil {
		return "", err
	}
	if !exists {
		data, err := h.archive(ctx, website, minified)
		if err != nil {
			return "", err
		}
		if err := h.objects.Upload(ctx, key, archive.ContentType, data); err != nil {
			return "", err
		}
		slog.Info("archive uploaded", "id", website.ID, "key", key, "bytes", len(data))
	}

	return h.objects.PresignedURL(ctx, key, storage.DefaultPresignExpiry)
}

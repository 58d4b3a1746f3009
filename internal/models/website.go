// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"crypto/sha256"
	"encoding/hex"
)

// Website is a persisted generation result. ID and CreatedAt (unix seconds)
// are assigned by the store.
type Website struct {
	ID         int64   `json:"id"`
	Prompt     string  `json:"prompt"`
	TemplateID string  `json:"templateId"`
	Content    Content `json:"content"`
	HTML       string  `json:"html"`
	CSS        string  `json:"css"`
	CreatedAt  int64   `json:"createdAt"`
}

// WebsiteDraft holds everything needed to persist a Website except the
// store-assigned fields.
type WebsiteDraft struct {
	Prompt     string
	TemplateID string
	Content    Content
	HTML       string
	CSS        string
}

// Fingerprint identifies the generated code of a website. Ids restart when
// the memory store is recreated, so anything cached outside the process is
// keyed by id and fingerprint together.
func (w *Website) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(w.HTML))
	h.Write([]byte{0})
	h.Write([]byte(w.CSS))
	return hex.EncodeToString(h.Sum(nil)[:6])
}

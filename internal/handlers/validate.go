// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validation limits for website requests.
const (
	maxPromptLen     = 5000
	maxTemplateIDLen = 100
	maxBodyBytes     = 1 << 20
)

// createWebsiteRequest is the body of POST /api/websites.
type createWebsiteRequest struct {
	Prompt     string `json:"prompt"`
	TemplateID string `json:"templateId"`
}

// Validate checks prompt and template id lengths. Lengths count runes.
func (r createWebsiteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Prompt, validation.Required, validation.RuneLength(1, maxPromptLen)),
		validation.Field(&r.TemplateID, validation.Required, validation.RuneLength(1, maxTemplateIDLen)),
	)
}

// decodeCreateWebsite reads and validates a create request. The returned
// error is a validation.Errors keyed by field, or by "body" when the
// payload is not valid JSON.
func decodeCreateWebsite(w http.ResponseWriter, r *http.Request) (createWebsiteRequest, error) {
	var req createWebsiteRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, validation.Errors{"body": fmt.Errorf("must be a JSON object: %w", err)}
	}
	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

// errInvalidID is reported for non-integer website ids.
var errInvalidID = errors.New("invalid website id")

// websiteID parses the {id} URL parameter.
func websiteID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

// writeJSON encodes data as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes {"message": msg} and, when err is set, its text as
// "error".
func writeError(w http.ResponseWriter, status int, msg string, err error) {
	body := map[string]any{"message": msg}
	if err != nil {
		body["error"] = err.Error()
	}
	writeJSON(w, status, body)
}

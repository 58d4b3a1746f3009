// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator turns a prompt into a stored website. The Orchestrator
// obtains content from a prioritized chain of AI providers, then produces
// HTML and CSS either by filling a static template or through a second
// provider chain, and finally persists the result.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"webcraft/internal/ai"
	"webcraft/internal/engine"
	"webcraft/internal/models"
)

// ErrNoAIService is returned when a stage needs an AI provider and none is
// configured.
var ErrNoAIService = errors.New("no AI service available")

// Approach selects where the final HTML and CSS come from.
type Approach string

const (
	// ApproachFullAI always asks the code chain for HTML and CSS.
	ApproachFullAI Approach = "full-ai"
	// ApproachTemplate fills a static template when one exists.
	ApproachTemplate Approach = "template"
	// ApproachHybrid behaves like ApproachTemplate; it is the default.
	ApproachHybrid Approach = "hybrid"
)

// ParseApproach maps a configuration value to an Approach. Empty and
// unknown values yield ApproachHybrid; ok is false only for unknown values.
func ParseApproach(s string) (a Approach, ok bool) {
	switch Approach(s) {
	case ApproachFullAI, ApproachTemplate, ApproachHybrid:
		return Approach(s), true
	case "":
		return ApproachHybrid, true
	default:
		return ApproachHybrid, false
	}
}

// usesTemplates reports whether the approach tries the fill engine first.
func (a Approach) usesTemplates() bool {
	return a == ApproachTemplate || a == ApproachHybrid
}

// Config is read once at startup and fixed for the Orchestrator's lifetime.
type Config struct {
	Approach Approach
}

// TemplateLookup finds a fill template by id.
type TemplateLookup interface {
	Get(id string) (*models.Template, bool)
}

// WebsiteStore persists generated websites.
type WebsiteStore interface {
	Create(ctx context.Context, draft models.WebsiteDraft) (*models.Website, error)
	Get(ctx context.Context, id int64) (*models.Website, error)
}

// Request is a validated generation request.
type Request struct {
	Prompt     string
	TemplateID string
}

// Source names where generated code came from.
const SourceTemplate = "template"

// Orchestrator runs generation requests. It holds no per-request state and
// is safe for concurrent use.
type Orchestrator struct {
	cfg       Config
	content   []ai.ContentGenerator
	code      []ai.CodeGenerator
	templates TemplateLookup
	store     WebsiteStore
	recorder  Recorder
}

// Option customises an Orchestrator.
type Option func(*Orchestrator)

// WithRecorder reports stage outcomes to r.
func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) { o.recorder = r }
}

// New creates an Orchestrator. content and code are tried in slice order.
func New(cfg Config, content []ai.ContentGenerator, code []ai.CodeGenerator, templates TemplateLookup, store WebsiteStore, opts ...Option) *Orchestrator {
	if cfg.Approach == "" {
		cfg.Approach = ApproachHybrid
	}
	o := &Orchestrator{
		cfg:       cfg,
		content:   content,
		code:      code,
		templates: templates,
		store:     store,
		recorder:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Approach returns the configured approach.
func (o *Orchestrator) Approach() Approach { return o.cfg.Approach }

// Generate produces content, then code, then stores the website. Nothing is
// stored when either generation stage fails.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*models.Website, error) {
	if len(o.content) == 0 && len(o.code) == 0 && o.cfg.Approach != ApproachTemplate {
		return nil, ErrNoAIService
	}

	content, err := o.GenerateContent(ctx, req.Prompt, req.TemplateID)
	if err != nil {
		return nil, err
	}

	code, source, err := o.GenerateCode(ctx, content, req.TemplateID)
	if err != nil {
		return nil, err
	}

	return o.save(ctx, models.WebsiteDraft{
		Prompt:     req.Prompt,
		TemplateID: req.TemplateID,
		Content:    *content,
		HTML:       code.HTML,
		CSS:        code.CSS,
	}, source)
}

// Regenerate recomputes the HTML and CSS of a stored website from its
// content and stores the result as a new website. The content stage is
// not repeated.
func (o *Orchestrator) Regenerate(ctx context.Context, id int64) (*models.Website, error) {
	prev, err := o.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	code, source, err := o.GenerateCode(ctx, &prev.Content, prev.TemplateID)
	if err != nil {
		return nil, err
	}

	return o.save(ctx, models.WebsiteDraft{
		Prompt:     prev.Prompt,
		TemplateID: prev.TemplateID,
		Content:    prev.Content,
		HTML:       code.HTML,
		CSS:        code.CSS,
	}, source)
}

func (o *Orchestrator) save(ctx context.Context, draft models.WebsiteDraft, source string) (*models.Website, error) {
	w, err := o.store.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("store website: %w", err)
	}
	o.recorder.WebsiteCreated(source)
	slog.Info("website generated", "id", w.ID, "template", w.TemplateID, "source", source)
	return w, nil
}

// GenerateContent walks the content chain until a provider succeeds. Each
// provider is called at most once. The last provider's error is returned
// when all fail.
func (o *Orchestrator) GenerateContent(ctx context.Context, prompt, templateType string) (*models.Content, error) {
	if len(o.content) == 0 {
		return nil, ErrNoAIService
	}

	var lastErr error
	for _, g := range o.content {
		start := time.Now()
		content, err := g.GenerateContent(ctx, prompt, templateType)
		if err == nil {
			o.recorder.ObserveStage(StageContent, g.Name(), OutcomeSuccess, time.Since(start))
			slog.Info("content generated", "provider", g.Name(), "sections", len(content.Sections), "duration", time.Since(start))
			return content, nil
		}

		o.recorder.ObserveStage(StageContent, g.Name(), OutcomeFailure, time.Since(start))
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		slog.Warn("content provider failed", "provider", g.Name(), "error", err)
	}

	return nil, fmt.Errorf("generate content: %w", lastErr)
}

// GenerateCode returns HTML and CSS for content. With a template-based
// approach and a known template id the fill engine is used and no provider
// is called; otherwise the code chain is walked like the content chain.
// The returned source is SourceTemplate or the provider name.
func (o *Orchestrator) GenerateCode(ctx context.Context, content *models.Content, templateID string) (*models.GeneratedCode, string, error) {
	if o.cfg.Approach.usesTemplates() && o.templates != nil {
		if t, ok := o.templates.Get(templateID); ok {
			start := time.Now()
			code := engine.Fill(t, content)
			o.recorder.ObserveStage(StageCode, SourceTemplate, OutcomeSuccess, time.Since(start))
			if left := engine.Unresolved(code.HTML); len(left) > 0 {
				slog.Debug("template placeholders left unresolved",
					"template", templateID,
					"placeholders", left,
					"list_fields", engine.SkippedLists(t, content),
				)
			}
			return &code, SourceTemplate, nil
		}
	}

	if len(o.code) == 0 {
		return nil, "", ErrNoAIService
	}

	var lastErr error
	for _, g := range o.code {
		start := time.Now()
		code, err := g.GenerateCode(ctx, content, templateID)
		if err == nil {
			o.recorder.ObserveStage(StageCode, g.Name(), OutcomeSuccess, time.Since(start))
			slog.Info("code generated", "provider", g.Name(), "html_bytes", len(code.HTML), "duration", time.Since(start))
			return code, g.Name(), nil
		}

		o.recorder.ObserveStage(StageCode, g.Name(), OutcomeFailure, time.Since(start))
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		slog.Warn("code provider failed", "provider", g.Name(), "error", err)
	}

	return nil, "", fmt.Errorf("generate code: %w", lastErr)
}

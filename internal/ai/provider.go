// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides a unified interface for interacting with multiple
// LLM providers (Gemini, OpenAI, Claude, Mistral) and turns their output
// into website content and code. The Registry keeps the configured
// providers in priority order.
package ai

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Provider defines the interface that all AI providers must implement.
// Each provider handles its own HTTP communication and response parsing.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the generated text.
	// systemPrompt sets the model's behaviour; userPrompt is the user's request.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Name returns the provider identifier (e.g., "openai", "gemini").
	Name() string
}

// JSONGenerator is implemented by providers whose API can be told to reply
// with a bare JSON object. Callers type-assert for it and skip fenced block
// extraction when it is available.
type JSONGenerator interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Known provider names.
const (
	Gemini  = "gemini"
	OpenAI  = "openai"
	Claude  = "claude"
	Mistral = "mistral"
)

var knownProviders = []string{Gemini, OpenAI, Claude, Mistral}

// NewProvider builds the named provider. A provider built with an empty API
// key is valid but fails every call with ErrMissingCredential.
func NewProvider(ctx context.Context, name string, cfg ProviderConfig) (Provider, error) {
	switch name {
	case OpenAI:
		return newOpenAI(cfg), nil
	case Gemini:
		return newGemini(ctx, cfg)
	case Claude:
		return newClaude(cfg), nil
	case Mistral:
		return newMistral(cfg), nil
	default:
		return nil, fmt.Errorf("ai: unknown provider %q", name)
	}
}

// Registry holds the providers that have credentials, in priority order.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	order     []string
}

// NewRegistry creates a registry with one provider per name in order that
// has a non-empty API key in configs. Providers without keys are skipped;
// unknown names are an error.
func NewRegistry(ctx context.Context, order []string, configs map[string]ProviderConfig) (*Registry, error) {
	r := &Registry{providers: make(map[string]Provider)}

	for _, name := range order {
		if _, dup := r.providers[name]; dup {
			continue
		}
		if !slices.Contains(knownProviders, name) {
			return nil, fmt.Errorf("ai: unknown provider %q", name)
		}
		cfg := configs[name]
		if cfg.APIKey == "" {
			continue
		}
		p, err := NewProvider(ctx, name, cfg)
		if err != nil {
			return nil, fmt.Errorf("ai: init %s: %w", name, err)
		}
		r.Register(name, p)
	}

	return r, nil
}

// Chain returns the available providers in priority order.
func (r *Registry) Chain() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Provider, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.providers[name])
	}
	return out
}

// Available returns the names of all providers that have valid API keys,
// in priority order.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order)
}

// Register adds or replaces a provider. A new name is appended at the
// lowest priority; a replaced one keeps its position.
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		r.order = append(r.order, name)
	}
	r.providers[name] = p
}

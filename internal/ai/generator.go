// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"webcraft/internal/models"
)

// ContentGenerator turns a natural-language prompt into website content.
type ContentGenerator interface {
	Name() string
	GenerateContent(ctx context.Context, prompt, templateType string) (*models.Content, error)
}

// CodeGenerator turns website content into a full HTML document and
// stylesheet.
type CodeGenerator interface {
	Name() string
	GenerateCode(ctx context.Context, content *models.Content, templateType string) (*models.GeneratedCode, error)
}

// Generator adapts a text Provider to ContentGenerator and CodeGenerator.
// Each method makes exactly one provider call. Every failure, including
// ErrMissingCredential, is returned as a *ProviderError.
type Generator struct {
	provider Provider
}

// NewGenerator wraps p.
func NewGenerator(p Provider) *Generator {
	return &Generator{provider: p}
}

// Generators wraps every provider of the chain, keeping its order.
func Generators(chain []Provider) []*Generator {
	out := make([]*Generator, 0, len(chain))
	for _, p := range chain {
		out = append(out, NewGenerator(p))
	}
	return out
}

// Chains wraps every provider of the chain as both a content and a code
// generator, keeping its order.
func Chains(chain []Provider) ([]ContentGenerator, []CodeGenerator) {
	gens := Generators(chain)
	content := make([]ContentGenerator, len(gens))
	code := make([]CodeGenerator, len(gens))
	for i, g := range gens {
		content[i] = g
		code[i] = g
	}
	return content, code
}

func (g *Generator) Name() string { return g.provider.Name() }

// GenerateContent asks the provider for website content and validates the
// reply.
func (g *Generator) GenerateContent(ctx context.Context, prompt, templateType string) (*models.Content, error) {
	raw, err := g.complete(ctx, contentSystemPrompt(templateType), contentUserPrompt(prompt))
	if err != nil {
		return nil, &ProviderError{Provider: g.Name(), Op: "generate content", Err: err}
	}

	content, err := DecodeContent(raw)
	if err != nil {
		return nil, &ProviderError{Provider: g.Name(), Op: "generate content", Err: err}
	}
	return content, nil
}

// GenerateCode asks the provider for HTML and CSS built from content.
// Generic Unsplash placeholder URLs in the HTML are rewritten to
// collection URLs.
func (g *Generator) GenerateCode(ctx context.Context, content *models.Content, templateType string) (*models.GeneratedCode, error) {
	contentJSON, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}

	raw, err := g.complete(ctx, codeSystemPrompt, codeUserPrompt(string(contentJSON), templateType))
	if err != nil {
		return nil, &ProviderError{Provider: g.Name(), Op: "generate code", Err: err}
	}

	code, err := DecodeCode(raw)
	if err != nil {
		return nil, &ProviderError{Provider: g.Name(), Op: "generate code", Err: err}
	}
	code.HTML = RewritePlaceholderImages(code.HTML)
	return code, nil
}

// complete runs one provider call and returns the JSON payload of the
// reply. JSON-mode providers are trusted to return bare JSON; freeform
// replies go through ExtractJSON.
func (g *Generator) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if jg, ok := g.provider.(JSONGenerator); ok {
		return jg.GenerateJSON(ctx, systemPrompt, userPrompt)
	}
	text, err := g.provider.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	return ExtractJSON(text), nil
}

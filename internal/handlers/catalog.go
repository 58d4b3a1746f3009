// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"webcraft/internal/generator"
	"webcraft/internal/models"
)

// TemplateLookup reports whether a fill template exists for a style id.
type TemplateLookup interface {
	Get(id string) (*models.Template, bool)
}

// ProviderLister lists configured AI providers in priority order.
// Implemented by *ai.Registry.
type ProviderLister interface {
	Available() []string
}

// Catalog serves the read-only option lists clients build forms from.
type Catalog struct {
	templates TemplateLookup
	providers ProviderLister
	approach  generator.Approach
}

// NewCatalog creates a new Catalog handler group.
func NewCatalog(templates TemplateLookup, providers ProviderLister, approach generator.Approach) *Catalog {
	return &Catalog{templates: templates, providers: providers, approach: approach}
}

// templateInfo is one entry of the style catalog.
type templateInfo struct {
	models.TemplateStyle
	// HasTemplate is true when the style is filled from a built-in template
	// instead of AI code generation.
	HasTemplate bool `json:"hasTemplate"`
}

// Templates lists every selectable template style.
func (c *Catalog) Templates(w http.ResponseWriter, r *http.Request) {
	out := make([]templateInfo, 0, len(models.TemplateStyles))
	for _, style := range models.TemplateStyles {
		_, ok := c.templates.Get(style.ID)
		out = append(out, templateInfo{TemplateStyle: style, HasTemplate: ok})
	}
	writeJSON(w, http.StatusOK, out)
}

// Options lists the accepted color schemes and font styles.
func (c *Catalog) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"colorSchemes": models.ColorSchemes,
		"fontStyles":   models.FontStyles,
	})
}

// AIStatus reports the generation approach and the providers in the order
// they are tried.
func (c *Catalog) AIStatus(w http.ResponseWriter, r *http.Request) {
	providers := c.providers.Available()
	writeJSON(w, http.StatusOK, map[string]any{
		"approach":  c.approach,
		"providers": providers,
		"available": len(providers) > 0,
	})
}

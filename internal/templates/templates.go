// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package templates holds the static placeholder templates used by the fill
// engine. The HTML and CSS of each template are embedded from files/<id>/;
// the section structure is declared here next to its id.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"webcraft/internal/models"
)

// filesFS embeds one index.html and styles.css per template id.
//
//go:embed files
var filesFS embed.FS

type definition struct {
	id          string
	name        string
	description string
	sections    []models.SectionSpec
}

var definitions = []definition{
	{
		id:          "cryptocurrency",
		name:        "Cryptocurrency",
		description: "Modern cryptocurrency website with calculator",
		sections: []models.SectionSpec{
			{ID: "header", Type: models.SectionHeader, Fields: []string{"title", "logoText"}},
			{ID: "hero", Type: models.SectionHero, Fields: []string{"title", "content", "ctaText", "imageCategory"}},
			{ID: "about", Type: models.SectionAbout, Fields: []string{"title", "content"}},
			{ID: "services", Type: models.SectionFeatures, Fields: []string{"title", "subtitle", "items"}},
			{ID: "contact", Type: models.SectionContact, Fields: []string{"title", "content", "email", "phone", "address"}},
			{ID: "footer", Type: models.SectionFooter, Fields: []string{"companyName", "tagline", "copyright"}},
		},
	},
	{
		id:          "chat",
		name:        "Chat Application",
		description: "Real-time chat application with sign-in functionality",
		sections: []models.SectionSpec{
			{ID: "header", Type: models.SectionHeader, Fields: []string{"title", "logoText"}},
			{ID: "hero", Type: models.SectionHero, Fields: []string{"title", "content"}},
			{ID: "footer", Type: models.SectionFooter, Fields: []string{"companyName", "copyright"}},
		},
	},
	{
		id:          "bookstore",
		name:        "Bookstore",
		description: "E-commerce bookstore with preview",
		sections: []models.SectionSpec{
			{ID: "header", Type: models.SectionHeader, Fields: []string{"title", "logoText"}},
			{ID: "hero", Type: models.SectionHero, Fields: []string{"title", "content", "ctaText", "imageCategory"}},
			{ID: "footer", Type: models.SectionFooter, Fields: []string{"companyName", "tagline", "copyright"}},
		},
	},
	{
		id:          "streaming",
		name:        "Streaming Platform",
		description: "Netflix-like streaming platform with download feature",
		sections: []models.SectionSpec{
			{ID: "header", Type: models.SectionHeader, Fields: []string{"title", "logoText"}},
			{ID: "hero", Type: models.SectionHero, Fields: []string{"title", "content", "ctaText"}},
			{ID: "footer", Type: models.SectionFooter, Fields: []string{"companyName", "tagline", "copyright"}},
		},
	},
	{
		id:          "business",
		name:        "Business",
		description: "Professional business website template",
		sections: []models.SectionSpec{
			{ID: "header", Type: models.SectionHeader, Fields: []string{"title", "logoText"}},
			{ID: "hero", Type: models.SectionHero, Fields: []string{"title", "subtitle", "content", "ctaText", "heroImage"}},
			{ID: "features", Type: models.SectionFeatures, Fields: []string{"title", "subtitle", "items"}},
			{ID: "about", Type: models.SectionAbout, Fields: []string{"title", "content", "image"}},
			{ID: "services", Type: models.SectionServices, Fields: []string{"title", "subtitle", "services"}},
			{ID: "testimonials", Type: models.SectionTestimonials, Fields: []string{"title", "subtitle", "items"}},
			{ID: "contact", Type: models.SectionContact, Fields: []string{"title", "content", "email", "phone", "address", "mapEmbedUrl"}},
			{ID: "footer", Type: models.SectionFooter, Fields: []string{"companyName", "tagline", "copyright", "navigationSections", "socialLinks"}},
		},
	},
}

// Store is a read-only set of templates keyed by id. It is safe for
// concurrent use because nothing mutates it after Load.
type Store struct {
	byID  map[string]*models.Template
	order []string
}

// Load reads every embedded template and validates its structure: each
// section must have a known type and each declared field must exist for
// that type.
func Load() (*Store, error) {
	return load(filesFS, definitions)
}

func load(fsys fs.FS, defs []definition) (*Store, error) {
	s := &Store{byID: make(map[string]*models.Template, len(defs))}

	for _, d := range defs {
		if _, dup := s.byID[d.id]; dup {
			return nil, fmt.Errorf("template %q: duplicate id", d.id)
		}
		for _, sec := range d.sections {
			if !models.KnownSectionType(sec.Type) {
				return nil, fmt.Errorf("template %q: section %q has unknown type %q", d.id, sec.ID, sec.Type)
			}
			for _, f := range sec.Fields {
				if !models.HasField(sec.Type, f) {
					return nil, fmt.Errorf("template %q: section %q: type %q has no field %q", d.id, sec.ID, sec.Type, f)
				}
			}
		}

		html, err := fs.ReadFile(fsys, "files/"+d.id+"/index.html")
		if err != nil {
			return nil, fmt.Errorf("template %q: read html: %w", d.id, err)
		}
		css, err := fs.ReadFile(fsys, "files/"+d.id+"/styles.css")
		if err != nil {
			return nil, fmt.Errorf("template %q: read css: %w", d.id, err)
		}
		if !strings.Contains(string(html), "{{title}}") {
			return nil, fmt.Errorf("template %q: html has no {{title}} placeholder", d.id)
		}

		s.byID[d.id] = &models.Template{
			ID:          d.id,
			Name:        d.name,
			Description: d.description,
			HTML:        string(html),
			CSS:         string(css),
			Structure:   models.TemplateStructure{Sections: d.sections},
		}
		s.order = append(s.order, d.id)
	}

	return s, nil
}

// Get returns the template with the given id. Callers must not modify it.
func (s *Store) Get(id string) (*models.Template, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// List returns all templates in declaration order.
func (s *Store) List() []*models.Template {
	out := make([]*models.Template, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Template is a static HTML/CSS skeleton with {{section.field}}
// placeholders. Templates are loaded once at startup and treated as
// read-only afterwards.
type Template struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	HTML        string            `json:"-"`
	CSS         string            `json:"-"`
	Structure   TemplateStructure `json:"structure"`
}

// TemplateStructure lists the placeholder sections of a template in the
// order they are filled.
type TemplateStructure struct {
	Sections []SectionSpec `json:"sections"`
}

// SectionSpec binds a placeholder prefix (ID) to a content section type.
// Each field f produces the placeholder {{ID.f}}.
type SectionSpec struct {
	ID     string      `json:"id"`
	Type   SectionType `json:"type"`
	Fields []string    `json:"fields"`
}

// GeneratedCode is the final output of a generation: a full HTML document
// and its stylesheet.
type GeneratedCode struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
}

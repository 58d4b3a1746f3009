// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package engine fills static placeholder templates with generated content.
// Filling is a pure string transformation: no I/O, no AI calls, and neither
// the template nor the content is modified.
package engine

import (
	"regexp"
	"strings"

	"webcraft/internal/models"
)

const (
	DefaultTitle       = "Generated Website"
	DefaultDescription = "A website created with AI"
)

var (
	primaryColorDecl = regexp.MustCompile(`--primary-color:\s*#[0-9a-fA-F]{3,6};`)
	primaryBlock     = regexp.MustCompile(`\.primary \{[\s\S]*?\}`)
	fontFamilyDecl   = regexp.MustCompile(`--font-family:\s*[^;]+;`)
	placeholder      = regexp.MustCompile(`\{\{[A-Za-z0-9_]+(?:\.[A-Za-z0-9_]+)?\}\}`)
)

// namedColors are the schemes that also get a matching utility class.
var namedColors = map[string]bool{
	"blue":   true,
	"green":  true,
	"red":    true,
	"yellow": true,
	"purple": true,
}

var fontFamilies = map[string]string{
	"modern":  "'Poppins', sans-serif",
	"classic": "'Merriweather', serif",
	"minimal": "'Inter', sans-serif",
	"playful": "'Comic Neue', cursive",
}

const defaultFontFamily = "'Roboto', sans-serif"

// FontFamily returns the CSS font-family value for a font style id.
func FontFamily(style string) string {
	if f, ok := fontFamilies[style]; ok {
		return f
	}
	return defaultFontFamily
}

// Fill substitutes content into the template and applies the colour scheme
// and font style to its stylesheet.
//
// Placeholders of a declared template section with no matching content
// section, and placeholders of list-valued fields, are left in the output
// verbatim.
func Fill(t *models.Template, c *models.Content) models.GeneratedCode {
	html := t.HTML
	css := t.CSS

	title := c.Title
	if title == "" {
		title = DefaultTitle
	}
	description := c.Description
	if description == "" {
		description = DefaultDescription
	}
	html = strings.ReplaceAll(html, "{{title}}", title)
	html = strings.ReplaceAll(html, "{{description}}", description)

	for _, spec := range t.Structure.Sections {
		sec := c.FindSection(spec.Type)
		if sec == nil {
			continue
		}
		for _, field := range spec.Fields {
			v, ok := sec.Text(field)
			if !ok {
				continue
			}
			html = strings.ReplaceAll(html, "{{"+spec.ID+"."+field+"}}", v)
		}
	}

	if c.ColorScheme != "" {
		css = primaryColorDecl.ReplaceAllLiteralString(css, "--primary-color: "+c.ColorScheme+";")
		class := strings.TrimPrefix(strings.ToLower(c.ColorScheme), "#")
		if namedColors[class] {
			css = primaryBlock.ReplaceAllLiteralString(css, "."+class+" {}")
		}
	}

	if c.FontStyle != "" {
		css = fontFamilyDecl.ReplaceAllLiteralString(css, "--font-family: "+FontFamily(c.FontStyle)+";")
	}

	return models.GeneratedCode{HTML: html, CSS: css}
}

// Unresolved returns the distinct placeholders still present in html, in
// order of first appearance.
func Unresolved(html string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range placeholder.FindAllString(html, -1) {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// SkippedLists returns "<section id>.<field>" for every list field the
// template declares and the content populates. Fill renders scalar fields
// only, so these placeholders stay in the output.
func SkippedLists(t *models.Template, c *models.Content) []string {
	var out []string
	for _, spec := range t.Structure.Sections {
		sec := c.FindSection(spec.Type)
		if sec == nil {
			continue
		}
		for _, field := range spec.Fields {
			if kind, ok := models.FieldKindOf(spec.Type, field); ok && kind == models.FieldList && sec.Len(field) > 0 {
				out = append(out, spec.ID+"."+field)
			}
		}
	}
	return out
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// TemplateStyle is an entry of the style catalog offered to users. Not
// every style has a fill template; the rest are produced by AI code
// generation.
type TemplateStyle struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ColorScheme is a selectable primary color.
type ColorScheme struct {
	ID    string `json:"id"`
	Color string `json:"color"`
}

// FontStyle is a selectable typography preset.
type FontStyle struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TemplateStyles is the fixed style catalog.
var TemplateStyles = []TemplateStyle{
	{ID: "minimalist", Name: "Minimalist", Description: "Clean, simple design"},
	{ID: "modern", Name: "Modern", Description: "Bold, contemporary"},
	{ID: "business", Name: "Business", Description: "Professional, structured"},
	{ID: "creative", Name: "Creative", Description: "Artistic, unique"},
	{ID: "cryptocurrency", Name: "Cryptocurrency", Description: "Crypto website with calculator"},
	{ID: "chat", Name: "Chat Application", Description: "Real-time chat app with sign-in"},
	{ID: "bookstore", Name: "Bookstore", Description: "E-commerce bookstore with preview"},
	{ID: "streaming", Name: "Streaming Platform", Description: "Netflix-like streaming service"},
}

// ColorSchemes lists the color scheme ids the content prompt may choose.
var ColorSchemes = []ColorScheme{
	{ID: "primary", Color: "#6366f1"},
	{ID: "blue", Color: "#3b82f6"},
	{ID: "green", Color: "#10b981"},
	{ID: "red", Color: "#ef4444"},
	{ID: "yellow", Color: "#f59e0b"},
	{ID: "purple", Color: "#8b5cf6"},
}

// FontStyles lists the font style ids the content prompt may choose.
var FontStyles = []FontStyle{
	{ID: "modern", Name: "Modern Sans-Serif"},
	{ID: "classic", Name: "Classic Serif"},
	{ID: "minimal", Name: "Minimal"},
	{ID: "playful", Name: "Playful"},
	{ID: "professional", Name: "Professional"},
}

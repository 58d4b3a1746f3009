// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package archive packages a generated website into a downloadable ZIP.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

// File names inside every archive.
const (
	IndexFile  = "index.html"
	StylesFile = "styles.css"
	ScriptFile = "script.js"
	ReadmeFile = "README.md"
)

// ContentType is the media type of a built archive.
const ContentType = "application/zip"

const scriptStub = "// Your website's JavaScript"

const readme = `# Your Generated Website

This package contains the files for your website created with WebCraft AI:

- index.html - The main HTML file
- styles.css - The CSS styles for your website
- script.js - A JavaScript file for interactive features

## How to use
1. Extract all files to a folder
2. Open index.html in your browser to view locally
3. Upload all files to your web hosting service to publish online
`

// Options controls how an archive is built.
type Options struct {
	// Minify compresses index.html and styles.css before packaging.
	Minify bool
}

// Builder creates website archives. The zero value is not usable; call New.
type Builder struct {
	minifier *minify.M
	now      func() time.Time
}

// New returns a Builder with HTML and CSS minifiers registered.
func New() *Builder {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	return &Builder{minifier: m, now: time.Now}
}

// Build returns a ZIP holding the website's html and css together with a
// script stub and a README.
func (b *Builder) Build(htmlSrc, cssSrc string, opts Options) ([]byte, error) {
	if opts.Minify {
		var err error
		if htmlSrc, err = b.minifier.String("text/html", htmlSrc); err != nil {
			return nil, fmt.Errorf("minify html: %w", err)
		}
		if cssSrc, err = b.minifier.String("text/css", cssSrc); err != nil {
			return nil, fmt.Errorf("minify css: %w", err)
		}
	}

	files := []struct {
		name, body string
	}{
		{IndexFile, htmlSrc},
		{StylesFile, cssSrc},
		{ScriptFile, scriptStub},
		{ReadmeFile, readme},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	modified := b.now()
	for _, f := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", f.name, err)
		}
		if _, err := w.Write([]byte(f.body)); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

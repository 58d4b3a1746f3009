// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"reflect"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "json fence", in: "prefix\n```json\n{\"a\":1}\n```\nsuffix", want: `{"a":1}`},
		{name: "json fence wins over earlier plain fence", in: "```\nnot this\n```\n```json\n{\"b\":2}\n```", want: `{"b":2}`},
		{name: "plain fence", in: "```\n{\"c\":3}\n```", want: `{"c":3}`},
		{name: "no fence", in: "  {\"d\":4}  \n", want: `{"d":4}`},
		{name: "empty json fence falls back to text", in: "```json```", want: "```json```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.in); got != tt.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeContent(t *testing.T) {
	c, err := DecodeContent(`{"title":"T","sections":[{"type":"features","items":[{"title":"A","icon":"fa-bolt"}]}]}`)
	if err != nil {
		t.Fatalf("DecodeContent: %v", err)
	}
	if c.Sections[0].Items[0].Icon != "fa-bolt" {
		t.Errorf("items: got %+v", c.Sections[0].Items)
	}

	for _, bad := range []string{
		`[]`,
		`{"sections":[{"type":""}]}`,
		`{"sections":[{"title":"no type"}]}`,
		`{"sections":[{"type":7}]}`,
		`{"sections":"hero"}`,
		`{"title":"T"} trailing`,
	} {
		if _, err := DecodeContent(bad); err == nil {
			t.Errorf("DecodeContent(%s): expected error", bad)
		}
	}
}

func TestDecodeContentMissingTitle(t *testing.T) {
	c, err := DecodeContent(`{"sections":[{"type":"hero","title":"Fly"}]}`)
	if err != nil {
		t.Fatalf("DecodeContent: %v", err)
	}
	if c.Title != "" || c.Sections[0].Title != "Fly" {
		t.Errorf("content: got %+v", c)
	}

	if _, err := DecodeContent(`{}`); err != nil {
		t.Errorf("DecodeContent({}): %v", err)
	}
}

func TestDecodeContentCoercesOptionalFields(t *testing.T) {
	raw := `{
	  "title": 2024,
	  "sections": [
	    {"type": "pricing", "items": [
	      {"title": "Pro", "price": 29, "highlighted": "true", "features": "Fast"},
	      {"title": "Max", "price": 49.5, "highlighted": "maybe", "features": ["A", 1, null]},
	      "not an item"
	    ]},
	    {"type": "about", "content": ["first", "second"], "subtitle": {"nested": true}, "image": null},
	    {"type": "footer", "socialLinks": {"platform": "x", "url": "https://x.com"}}
	  ]
	}`

	c, err := DecodeContent(raw)
	if err != nil {
		t.Fatalf("DecodeContent: %v", err)
	}
	if c.Title != "2024" {
		t.Errorf("title: got %q", c.Title)
	}

	items := c.Sections[0].Items
	if len(items) != 2 {
		t.Fatalf("items: got %d, want 2", len(items))
	}
	if items[0].Price != "29" || !items[0].Highlighted || !reflect.DeepEqual(items[0].Features, []string{"Fast"}) {
		t.Errorf("items[0]: got %+v", items[0])
	}
	if items[1].Price != "49.5" || items[1].Highlighted || !reflect.DeepEqual(items[1].Features, []string{"A", "1"}) {
		t.Errorf("items[1]: got %+v", items[1])
	}

	about := c.Sections[1]
	if about.Content != "first, second" {
		t.Errorf("about.content: got %q", about.Content)
	}
	if about.Subtitle != "" || about.Image != "" {
		t.Errorf("mismatched fields should be dropped: %+v", about)
	}

	links := c.Sections[2].SocialLinks
	if len(links) != 1 || links[0].URL != "https://x.com" {
		t.Errorf("socialLinks: got %+v", links)
	}
}

func TestDecodeCode(t *testing.T) {
	code, err := DecodeCode(`{"html":"<p>x</p>","css":"p{}"}`)
	if err != nil {
		t.Fatalf("DecodeCode: %v", err)
	}
	if code.HTML != "<p>x</p>" || code.CSS != "p{}" {
		t.Errorf("code: got %+v", code)
	}
	if _, err := DecodeCode(`{"css":"p{}"}`); err == nil {
		t.Error("DecodeCode: expected error for missing html")
	}
}

func TestUnsplashURL(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{category: "technology", want: "https://source.unsplash.com/collection/9270463/800x600"},
		{category: "food", want: "https://source.unsplash.com/collection/3356576/800x600"},
		{category: "unknown", want: "https://source.unsplash.com/collection/3330445/800x600"},
	}
	for _, tt := range tests {
		if got := UnsplashURL(tt.category, 800, 600); got != tt.want {
			t.Errorf("UnsplashURL(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestRewritePlaceholderImages(t *testing.T) {
	in := `<img src="https://source.unsplash.com/random/1200x800"> <div style="background:url(https://source.unsplash.com/featured/640x480)"></div>`
	want := `<img src="https://source.unsplash.com/collection/3330445/1200x800"> <div style="background:url(https://source.unsplash.com/collection/3330445/640x480)"></div>`
	if got := RewritePlaceholderImages(in); got != want {
		t.Errorf("RewritePlaceholderImages:\n got %q\nwant %q", got, want)
	}

	untouched := `<img src="https://source.unsplash.com/collection/4473755/300x450">`
	if got := RewritePlaceholderImages(untouched); got != untouched {
		t.Errorf("collection URL rewritten: %q", got)
	}
}

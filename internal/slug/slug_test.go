package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "simple title", input: "Acme Rockets", want: "acme-rockets"},
		{name: "punctuation", input: "Acme Rockets, Inc.", want: "acme-rockets-inc"},
		{name: "ampersand", input: "Books & Coffee", want: "books-coffee"},
		{name: "tabs and newlines", input: "Crypto\tTrader\nPro", want: "crypto-trader-pro"},
		{name: "hyphen runs", input: "  --Stream -- Hub--  ", want: "stream-hub"},
		{name: "unicode stripped", input: "Café Ünïcode", want: "caf-ncode"},
		{name: "numbers kept", input: "Web 3.0 Portal 2026", want: "web-30-portal-2026"},
		{name: "empty", input: "", want: ""},
		{name: "only symbols", input: "!@#$%^&*()", want: ""},

		// Truncation
		{name: "fits exactly", input: "acme rockets", maxLen: 12, want: "acme-rockets"},
		{name: "cut at word boundary", input: "Acme Rockets and Launch Services", maxLen: 20, want: "acme-rockets-and"},
		{name: "single long word", input: "Supercalifragilistic", maxLen: 5, want: "super"},
		{name: "cut lands on hyphen", input: "abc def", maxLen: 4, want: "abc"},
		{name: "zero disables", input: "Acme Rockets and Launch Services", maxLen: 0, want: "acme-rockets-and-launch-services"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("Generate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	for _, s := range []string{"acme-rockets", "chat-2026", "a", "123"} {
		t.Run(s, func(t *testing.T) {
			if got := Generate(s, 40); got != s {
				t.Errorf("Generate(%q) = %q, want idempotent result", s, got)
			}
		})
	}
}

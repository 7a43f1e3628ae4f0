package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLSanitizer_Sanitize(t *testing.T) {
	s := NewHTMLSanitizer()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "keeps formatting",
			input:    "<h2>Intro</h2><p>Hello <strong>world</strong></p><ul><li>one</li></ul>",
			contains: []string{"<h2>Intro</h2>", "<strong>world</strong>", "<li>one</li>"},
		},
		{
			name:        "drops scripts",
			input:       `<p>ok</p><script>alert(1)</script>`,
			contains:    []string{"<p>ok</p>"},
			notContains: []string{"script", "alert"},
		},
		{
			name:        "drops event handlers",
			input:       `<img src="https://example.com/a.png" onerror="alert(1)">`,
			contains:    []string{`src="https://example.com/a.png"`},
			notContains: []string{"onerror"},
		},
		{
			name:        "drops javascript links",
			input:       `<a href="javascript:alert(1)">x</a>`,
			notContains: []string{"javascript:"},
		},
		{
			name:     "external links open in a new tab",
			input:    `<a href="https://club.dev">site</a>`,
			contains: []string{`target="_blank"`, "noreferrer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Sanitize(tt.input)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, out, unwanted)
			}
		})
	}

	assert.Empty(t, s.Sanitize(""))
}

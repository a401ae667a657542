package renamer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_Render(t *testing.T) {
	testCases := []struct {
		name     string
		template string
		file     string
		index    int
		expected string
	}{
		{
			name:     "name and ext round-trip",
			template: "{name}{ext}",
			file:     "report.txt",
			index:    0,
			expected: "report.txt",
		},
		{
			name:     "zero-padded counter",
			template: "f_{counter:03d}{ext}",
			file:     "whatever.jpg",
			index:    0,
			expected: "f_001.jpg",
		},
		{
			name:     "counter is one-based, index zero-based",
			template: "{index}-{counter}",
			file:     "a",
			index:    4,
			expected: "4-5",
		},
		{
			name:     "space-padded width",
			template: "{counter:4d}",
			file:     "a",
			index:    0,
			expected: "   1",
		},
		{
			name:     "literal text around placeholders",
			template: "archive_{name}_final{ext}",
			file:     "notes.md",
			index:    0,
			expected: "archive_notes_final.md",
		},
		{
			name:     "file without extension",
			template: "{name}{ext}.bak",
			file:     "Makefile",
			index:    0,
			expected: "Makefile.bak",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tmpl, err := parseTemplate(tc.template)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, tmpl.render(tc.file, tc.index))
		})
	}
}

func TestParseTemplate_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		template string
	}{
		{name: "unclosed brace", template: "f_{counter"},
		{name: "unmatched closing brace", template: "f_counter}"},
		{name: "unknown placeholder", template: "{stem}"},
		{name: "specifier on name", template: "{name:03d}"},
		{name: "non-numeric width", template: "{counter:xxd}"},
		{name: "specifier without d", template: "{counter:03}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseTemplate(tc.template)
			assert.ErrorIs(t, err, ErrInvalidTemplate)
		})
	}
}

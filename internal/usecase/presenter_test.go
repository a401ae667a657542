package usecase

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aknsh/devtools/internal/domain"
)

func TestRenderTable(t *testing.T) {
	repos := []domain.Repository{
		{Name: "alpha", Owner: "acme", Stars: 42, Language: "Go", URL: "https://github.com/acme/alpha"},
		{Name: "beta", Owner: "acme", Stars: 7, URL: "https://github.com/acme/beta"},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, repos))

	out := buf.String()
	assert.Contains(t, out, "RANK")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "https://github.com/acme/beta")
	// A missing language renders as a dash so columns stay aligned.
	assert.Contains(t, out, "-")

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 3, lines, "header plus one line per repository")
}

func TestRenderTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, nil))
	assert.Contains(t, buf.String(), "RANK")
}

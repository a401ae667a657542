package usecase

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aknsh/devtools/internal/domain"
)

// ExportJSON serializes the ranked repositories to path as a JSON array,
// overwriting any existing file. A ".json" extension is appended when the
// path lacks one. Returns the path actually written.
func ExportJSON(path string, repos []domain.Repository) (string, error) {
	if !strings.HasSuffix(path, ".json") {
		path += ".json"
	}
	if repos == nil {
		repos = []domain.Repository{}
	}
	data, err := json.MarshalIndent(repos, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}

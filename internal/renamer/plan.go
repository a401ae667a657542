// Package renamer computes and applies bulk file rename plans. A plan is
// built entirely in memory and validated for collisions before a single
// filesystem operation runs.
package renamer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var (
	// ErrInvalidPattern indicates a regex mode pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid regex pattern")
	// ErrInvalidTemplate indicates a malformed pattern mode template.
	ErrInvalidTemplate = errors.New("invalid rename template")
	// ErrNameCollision indicates two operations targeting the same name, or a
	// target that already exists in the directory.
	ErrNameCollision = errors.New("name collision")
)

// Mode selects the naming transformation applied to each file.
type Mode string

const (
	ModePrefix  Mode = "prefix"
	ModeSuffix  Mode = "suffix"
	ModeReplace Mode = "replace"
	ModeRegex   Mode = "regex"
	ModePattern Mode = "pattern"
)

// Operation is a single planned rename, both names relative to the plan's
// directory.
type Operation struct {
	Original string
	Renamed  string
}

// Plan is an ordered list of rename operations. Operations appear in
// lexicographic order of the original names.
type Plan []Operation

// transform computes the new name for the file at the given 0-based position
// in enumeration order.
type transform func(name string, index int) string

func newTransform(mode Mode, args []string) (transform, error) {
	switch mode {
	case ModePrefix:
		if len(args) != 1 {
			return nil, fmt.Errorf("prefix mode expects <prefix>, got %d argument(s)", len(args))
		}
		prefix := args[0]
		return func(name string, _ int) string {
			return prefix + name
		}, nil
	case ModeSuffix:
		if len(args) != 1 {
			return nil, fmt.Errorf("suffix mode expects <suffix>, got %d argument(s)", len(args))
		}
		suffix := args[0]
		return func(name string, _ int) string {
			stem, ext := splitExt(name)
			return stem + suffix + ext
		}, nil
	case ModeReplace:
		if len(args) != 2 {
			return nil, fmt.Errorf("replace mode expects <old> <new>, got %d argument(s)", len(args))
		}
		oldText, newText := args[0], args[1]
		return func(name string, _ int) string {
			return strings.ReplaceAll(name, oldText, newText)
		}, nil
	case ModeRegex:
		if len(args) != 2 {
			return nil, fmt.Errorf("regex mode expects <pattern> <replacement>, got %d argument(s)", len(args))
		}
		re, err := regexp.Compile(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		replacement := args[1]
		return func(name string, _ int) string {
			return re.ReplaceAllString(name, replacement)
		}, nil
	case ModePattern:
		if len(args) != 1 {
			return nil, fmt.Errorf("pattern mode expects <template>, got %d argument(s)", len(args))
		}
		tmpl, err := parseTemplate(args[0])
		if err != nil {
			return nil, err
		}
		return tmpl.render, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (expected prefix, suffix, replace, regex or pattern)", mode)
	}
}

// splitExt splits a file name into stem and extension, the extension running
// from the last dot to the end (empty if the name has no dot).
func splitExt(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

// BuildPlan enumerates the regular files directly inside dir in lexicographic
// order and computes one rename operation per file whose name changes. It
// never touches the filesystem beyond reading the directory: any collision or
// invalid transform fails the whole plan before execution.
func BuildPlan(dir string, mode Mode, args []string) (Plan, error) {
	apply, err := newTransform(mode, args)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var names []string
	existing := make(map[string]bool, len(entries))
	for _, entry := range entries {
		// Directories are not renamed, but they still occupy names a rename
		// could collide with.
		existing[entry.Name()] = true
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var plan Plan
	claimed := make(map[string]string, len(names))
	for i, name := range names {
		renamed := apply(name, i)
		if renamed == name {
			continue
		}
		if renamed == "" || renamed != filepath.Base(renamed) {
			return nil, fmt.Errorf("transform of %q produced invalid file name %q", name, renamed)
		}
		if prev, ok := claimed[renamed]; ok {
			return nil, fmt.Errorf("%w: %q and %q both rename to %q", ErrNameCollision, prev, name, renamed)
		}
		if existing[renamed] {
			return nil, fmt.Errorf("%w: %q already exists in %s", ErrNameCollision, renamed, dir)
		}
		claimed[renamed] = name
		plan = append(plan, Operation{Original: name, Renamed: renamed})
	}
	return plan, nil
}

package renamer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrAborted indicates the user declined the confirmation prompt.
var ErrAborted = errors.New("rename aborted")

// Executor applies rename plans. In and Out carry the confirmation dialog and
// per-file progress; wire them to os.Stdin/os.Stdout in the CLI and to
// buffers in tests.
type Executor struct {
	In  io.Reader
	Out io.Writer
}

// Execute applies the plan inside dir. Unless force is set it first prints
// the plan and asks for confirmation, returning ErrAborted with zero
// filesystem changes when the user declines. Execution is best-effort: a
// failing rename is reported and counted but never aborts the remaining
// operations. Returns the number of renamed and failed files.
func (e *Executor) Execute(dir string, plan Plan, force bool) (renamed, failed int, err error) {
	if len(plan) == 0 {
		fmt.Fprintln(e.Out, "No files to rename.")
		return 0, 0, nil
	}

	if !force {
		e.preview(plan)
		if !e.confirm() {
			fmt.Fprintln(e.Out, "Operation cancelled.")
			return 0, 0, ErrAborted
		}
	}

	for _, op := range plan {
		oldPath := filepath.Join(dir, op.Original)
		newPath := filepath.Join(dir, op.Renamed)
		if renameErr := os.Rename(oldPath, newPath); renameErr != nil {
			fmt.Fprintf(e.Out, "Failed to rename %q -> %q: %v\n", op.Original, op.Renamed, renameErr)
			failed++
			continue
		}
		renamed++
	}

	fmt.Fprintf(e.Out, "\nDone: %d file(s) renamed, %d failed.\n", renamed, failed)
	return renamed, failed, nil
}

func (e *Executor) preview(plan Plan) {
	fmt.Fprintln(e.Out, "Planned changes:")
	for _, op := range plan {
		fmt.Fprintf(e.Out, "  %s -> %s\n", op.Original, op.Renamed)
	}
}

// confirm reads one line from In; only "y" or "yes" (case-insensitive)
// counts as approval. EOF or a read error counts as a decline.
func (e *Executor) confirm() bool {
	fmt.Fprint(e.Out, "\nApply these changes? [y/N]: ")
	line, _ := bufio.NewReader(e.In).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

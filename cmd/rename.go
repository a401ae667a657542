// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aknsh/devtools/internal/renamer"
)

var renameCmd = &cobra.Command{
	Use:   "rename <directory> <mode> [mode-args...]",
	Short: "Bulk-renames the files in a directory",
	Long: `Renames every regular file directly inside <directory> according to the
selected mode. The full plan is computed and validated before any file is
touched, and printed for confirmation unless --force is given.

Modes:
  prefix <prefix>             prepend <prefix> to each file name
  suffix <suffix>             insert <suffix> between stem and extension
  replace <old> <new>         replace all occurrences of <old> with <new>
  regex <pattern> <repl>      replace all regex matches ($1 group references)
  pattern <template>          rebuild names from a template with {name},
                              {ext}, {index} and {counter} placeholders;
                              {counter:03d} zero-pads

Examples:
  devtools rename ./photos prefix vacation-
  devtools rename ./photos regex '^IMG_' 'photo_'
  devtools rename ./photos pattern 'f_{counter:03d}{ext}' -f`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		dir := args[0]
		mode := renamer.Mode(args[1])

		plan, err := renamer.BuildPlan(dir, mode, args[2:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		executor := &renamer.Executor{In: os.Stdin, Out: os.Stdout}
		if _, _, err := executor.Execute(dir, plan, force); err != nil {
			// The executor already told the user about a declined prompt.
			if !errors.Is(err, renamer.ErrAborted) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
	renameCmd.Flags().BoolP("force", "f", false, "Apply the plan without asking for confirmation")
}

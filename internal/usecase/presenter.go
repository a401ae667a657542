package usecase

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aknsh/devtools/internal/domain"
)

// RenderTable writes the ranked repositories as an aligned table.
func RenderTable(w io.Writer, repos []domain.Repository) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tNAME\tOWNER\tSTARS\tLANGUAGE\tURL")
	for i, repo := range repos {
		language := repo.Language
		if language == "" {
			language = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			i+1, repo.Name, repo.Owner, repo.Stars, language, repo.URL)
	}
	return tw.Flush()
}

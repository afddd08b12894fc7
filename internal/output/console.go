package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"jobscout/internal/domain"
)

// PrintTable renders postings as an aligned console table. Descriptions are
// omitted; they are export-only.
func PrintTable(w io.Writer, jobs []domain.JobPosting) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tCOMPANY\tLOCATION\tPOSTED\tURL")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			j.Title, j.Company, j.Location, j.PublicationDate.Format("2006-01-02"), j.URL)
	}
	return tw.Flush()
}

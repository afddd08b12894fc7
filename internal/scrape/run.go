package scrape

import (
	"context"
	"fmt"
	"io"

	"jobscout/internal/domain"
	"jobscout/internal/output"
	"jobscout/internal/scrape/types"
)

// Run resolves the site, performs the search, sorts newest-first and hands
// the results to the chosen sink. An empty outPath prints the console table
// to w; otherwise the extension of outPath picks the file format.
func Run(ctx context.Context, d Deps, site string, p types.SearchParams, outPath string, w io.Writer) error {
	sc, err := Resolve(site, d)
	if err != nil {
		return err
	}

	d.Logger.Info("searching", "site", sc.Name(), "query", p.Query,
		"location", p.Location, "days", p.Days, "max_results", p.MaxResults)

	jobs, err := sc.Search(ctx, p)
	if err != nil {
		return err
	}
	domain.SortByDateDesc(jobs)

	if outPath == "" {
		return output.PrintTable(w, jobs)
	}
	if err := output.WriteFile(outPath, jobs); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %d jobs to %s\n", len(jobs), outPath)
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"jobscout/internal/apperr"
	"jobscout/internal/config"
	"jobscout/internal/logging"
	"jobscout/internal/scrape"
	"jobscout/internal/scrape/types"
	"jobscout/internal/scrape/util"
)

func main() {
	var (
		cfgPath    = flag.String("config", "", "optional yaml config file (also JOBSCOUT_CONFIG)")
		site       = flag.String("site", "", "job site to query (default from config)")
		query      = flag.String("query", "", "keywords to search for, e.g. 'software engineer' (required)")
		location   = flag.String("location", "", "optional location filter, e.g. 'Philadelphia, PA'")
		days       = flag.Int("days", -1, "maximum posting age in days; 0 disables (default from config)")
		maxResults = flag.Int("max-results", -1, "maximum number of results (default from config)")
		outPath    = flag.String("output", "", "output file, .json or .csv; prints a table when omitted")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if *query == "" {
		fmt.Fprintln(os.Stderr, "error: -query is required")
		flag.Usage()
		os.Exit(2)
	}

	siteName := *site
	if siteName == "" {
		siteName = cfg.Defaults.Site
	}
	// reject bad sites here, before any scraper or client exists
	if !scrape.Known(siteName) {
		fmt.Fprintf(os.Stderr, "error: unknown site %q (valid sites: %s)\n",
			siteName, strings.Join(scrape.Sites(), ", "))
		os.Exit(2)
	}

	params := types.SearchParams{
		Query:      *query,
		Location:   *location,
		Days:       cfg.Defaults.Days,
		MaxResults: cfg.Defaults.MaxResults,
	}
	if *days >= 0 {
		params.Days = *days
	}
	if *maxResults >= 0 {
		params.MaxResults = *maxResults
	}

	log := logging.New(cfg.App.LogLevel)
	defer log.Sync()

	deps := scrape.Deps{
		Cfg:     cfg,
		Logger:  log,
		Client:  &http.Client{Timeout: cfg.Timeout()},
		Limiter: util.NewHostLimiter(cfg.HTTP.RequestsPerSecond, cfg.HTTP.Burst),
	}

	if err := scrape.Run(context.Background(), deps, siteName, params, *outPath, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, apperr.Message(err))
		os.Exit(1)
	}
}

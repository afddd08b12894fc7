package scrape

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"jobscout/internal/apperr"
	"jobscout/internal/config"
	"jobscout/internal/logging"
	"jobscout/internal/scrape/indeed"
	"jobscout/internal/scrape/linkedin"
	"jobscout/internal/scrape/remotive"
	"jobscout/internal/scrape/themuse"
	"jobscout/internal/scrape/types"
	"jobscout/internal/scrape/util"
)

// Deps carries the shared pieces every scraper is built from. One HTTP client
// and one limiter serve the whole run.
type Deps struct {
	Cfg     config.Config
	Logger  *logging.Logger
	Client  *http.Client
	Limiter *util.HostLimiter
}

type factory func(d Deps) types.Scraper

// registry is static; new sites register here at compile time.
var registry = map[string]factory{
	"themuse": func(d Deps) types.Scraper {
		return themuse.New(themuse.Config{
			BaseURL:   d.Cfg.SiteBaseURL("themuse"),
			UserAgent: d.Cfg.App.UserAgent,
			Client:    d.Client,
			Limiter:   d.Limiter,
		}, d.Logger.With("site", "themuse"))
	},
	"remotive": func(d Deps) types.Scraper {
		return remotive.New(remotive.Config{
			BaseURL:   d.Cfg.SiteBaseURL("remotive"),
			UserAgent: d.Cfg.App.UserAgent,
			Client:    d.Client,
			Limiter:   d.Limiter,
		}, d.Logger.With("site", "remotive"))
	},
	"indeed":   func(Deps) types.Scraper { return indeed.New() },
	"linkedin": func(Deps) types.Scraper { return linkedin.New() },
}

// Sites lists the registered site identifiers, sorted.
func Sites() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Known reports whether name resolves, so the CLI can reject bad input
// before anything else is built.
func Known(name string) bool {
	_, ok := registry[canonical(name)]
	return ok
}

// Resolve builds the scraper for a site identifier (case-insensitive).
func Resolve(name string, d Deps) (types.Scraper, error) {
	f, ok := registry[canonical(name)]
	if !ok {
		return nil, apperr.NotFound(
			fmt.Sprintf("unknown site %q (valid sites: %s)", name, strings.Join(Sites(), ", ")), nil)
	}
	return f(d), nil
}

func canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

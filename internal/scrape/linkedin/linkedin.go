// Package linkedin is a registered placeholder. LinkedIn's terms of service
// prohibit scraping job postings, so the scraper refuses to run.
package linkedin

import (
	"context"

	"jobscout/internal/apperr"
	"jobscout/internal/domain"
	"jobscout/internal/scrape/types"
)

type Scraper struct{}

func New() *Scraper { return &Scraper{} }

func (*Scraper) Name() string { return "linkedin" }

// Search always fails without touching the network.
func (*Scraper) Search(context.Context, types.SearchParams) ([]domain.JobPosting, error) {
	return nil, apperr.Unsupported(
		"linkedin scraping is not implemented: LinkedIn terms of service prohibit automated scraping; use their official API instead", nil)
}

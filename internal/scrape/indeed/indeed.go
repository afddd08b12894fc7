// Package indeed is a registered placeholder. Indeed blocks automated access
// to its listings, so the scraper refuses to run instead of half-working.
package indeed

import (
	"context"

	"jobscout/internal/apperr"
	"jobscout/internal/domain"
	"jobscout/internal/scrape/types"
)

type Scraper struct{}

func New() *Scraper { return &Scraper{} }

func (*Scraper) Name() string { return "indeed" }

// Search always fails without touching the network.
func (*Scraper) Search(context.Context, types.SearchParams) ([]domain.JobPosting, error) {
	return nil, apperr.Unsupported(
		"indeed scraping is not implemented: Indeed restricts automated access; use their official API or a licensed data provider instead", nil)
}

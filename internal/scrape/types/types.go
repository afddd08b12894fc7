package types

import (
	"context"

	"jobscout/internal/domain"
)

// SearchParams are the normalized inputs every scraper accepts.
type SearchParams struct {
	Query    string // free-text keywords; empty means "everything"
	Location string // optional substring filter against posting locations
	// Days is the recency window: postings older than now-Days*24h are
	// dropped. Zero or negative disables the window.
	Days int
	// MaxResults caps the returned slice; scrapers stop fetching once the
	// cap is reached. Zero or negative means no cap.
	MaxResults int
}

// Scraper is the per-site search contract. Implementations soft-fail on
// transport errors (log, return what they have, nil error); sites that cannot
// legally be scraped return an unsupported error without touching the network.
type Scraper interface {
	Name() string
	Search(ctx context.Context, p SearchParams) ([]domain.JobPosting, error)
}

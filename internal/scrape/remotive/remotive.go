// Package remotive scrapes the Remotive remote-jobs API.
//
// A single unauthenticated request returns every matching job:
//
//	GET /api/remote-jobs[?search=...]
//
// The API has no location parameter, so location filtering is entirely
// client-side against each job's candidate_required_location field.
package remotive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobscout/internal/apperr"
	"jobscout/internal/domain"
	"jobscout/internal/logging"
	"jobscout/internal/scrape/types"
	"jobscout/internal/scrape/util"
)

const defaultBaseURL = "https://remotive.com"

type Config struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
	Limiter   *util.HostLimiter
}

type Scraper struct {
	cfg Config
	hc  *http.Client
	log *logging.Logger
}

func New(cfg Config, log *logging.Logger) *Scraper {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Scraper{cfg: cfg, hc: hc, log: log}
}

func (s *Scraper) Name() string { return "remotive" }

type searchResponse struct {
	Jobs []posting `json:"jobs"`
}

type posting struct {
	Title           string `json:"title"`
	CompanyName     string `json:"company_name"`
	URL             string `json:"url"`
	PublicationDate string `json:"publication_date"`
	Description     string `json:"description"`
	RequiredLoc     string `json:"candidate_required_location"`
}

// Search issues one request and filters the response client-side. Transport
// failures are logged and an empty slice is returned.
func (s *Scraper) Search(ctx context.Context, p types.SearchParams) ([]domain.JobPosting, error) {
	payload, err := s.fetch(ctx, p.Query)
	if err != nil {
		s.log.Error("fetch failed", "err", err)
		return nil, nil
	}

	now := time.Now().UTC()
	var out []domain.JobPosting
	for _, job := range payload.Jobs {
		published, err := util.ParseNaiveTime(job.PublicationDate)
		if err != nil {
			s.log.Debug("skipping posting with bad date", "date", job.PublicationDate)
			continue
		}
		if !util.WithinDays(now, published, p.Days) {
			continue
		}
		jobLocation := util.CleanText(job.RequiredLoc)
		if p.Location != "" && !util.ContainsFold(jobLocation, p.Location) {
			continue
		}

		out = append(out, domain.JobPosting{
			Title:           util.CleanText(job.Title),
			Company:         util.CleanText(job.CompanyName),
			Location:        jobLocation,
			PublicationDate: published,
			Description:     util.StripHTML(job.Description),
			URL:             strings.TrimSpace(job.URL),
		})
		if p.MaxResults > 0 && len(out) >= p.MaxResults {
			break
		}
	}
	return out, nil
}

func (s *Scraper) fetch(ctx context.Context, query string) (*searchResponse, error) {
	u := s.cfg.BaseURL + "/api/remote-jobs"
	if query != "" {
		v := url.Values{}
		v.Set("search", query)
		u += "?" + v.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if s.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", s.cfg.UserAgent)
	}

	if err := s.cfg.Limiter.WaitURL(ctx, u); err != nil {
		return nil, err
	}
	res, err := s.hc.Do(req)
	if err != nil {
		return nil, apperr.Transport("remotive request failed", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, apperr.Transport(fmt.Sprintf("remotive status %d", res.StatusCode), nil)
	}

	var payload searchResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, apperr.Transport("remotive decode response", err)
	}
	return &payload, nil
}

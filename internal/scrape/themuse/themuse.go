// Package themuse scrapes The Muse public jobs API.
//
// The endpoint is unauthenticated and paginated:
//
//	GET /api/public/jobs?page=N[&q=...][&location=...]
//
// The first response carries a page_count; pages are 1-indexed. Date and
// location filtering happen client-side because the API's own filters are
// loose.
package themuse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jobscout/internal/apperr"
	"jobscout/internal/domain"
	"jobscout/internal/logging"
	"jobscout/internal/scrape/types"
	"jobscout/internal/scrape/util"
)

const defaultBaseURL = "https://www.themuse.com"

// remoteKeywords let remote-friendly postings through any location filter; a
// job tagged "Remote" should not be hidden by a city filter.
var remoteKeywords = []string{"remote", "flexible"}

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

func (s *Scraper) Name() string { return "themuse" }

type searchResponse struct {
	PageCount int       `json:"page_count"`
	Results   []posting `json:"results"`
}

type posting struct {
	Name            string `json:"name"`
	PublicationDate string `json:"publication_date"`
	Contents        string `json:"contents"`
	Company         struct {
		Name string `json:"name"`
	} `json:"company"`
	Locations []location `json:"locations"`
	Refs struct {
		LandingPage string `json:"landing_page"`
	} `json:"refs"`
}

// Search walks the paginated endpoint until page_count pages have been
// consumed, an empty page comes back, or MaxResults postings are collected.
// Transport failures are logged and whatever was collected so far is
// returned.
func (s *Scraper) Search(ctx context.Context, p types.SearchParams) ([]domain.JobPosting, error) {
	var out []domain.JobPosting
	now := time.Now().UTC()

	totalPages := -1 // unknown until the first page arrives
	for page := 1; totalPages < 0 || page <= totalPages; page++ {
		resp, err := s.fetchPage(ctx, p, page)
		if err != nil {
			s.log.Error("page fetch failed", "page", page, "err", err)
			return out, nil
		}
		if totalPages < 0 {
			totalPages = resp.PageCount
		}
		if len(resp.Results) == 0 {
			// also guards against an absent or bogus page_count
			break
		}

		for _, item := range resp.Results {
			published, err := util.ParseNaiveTime(item.PublicationDate)
			if err != nil {
				s.log.Debug("skipping posting with bad date", "date", item.PublicationDate)
				continue
			}
			if !util.WithinDays(now, published, p.Days) {
				continue
			}
			if p.Location != "" && !matchesLocation(item.Locations, p.Location) {
				continue
			}

			out = append(out, domain.JobPosting{
				Title:           util.CleanText(item.Name),
				Company:         util.CleanText(item.Company.Name),
				Location:        firstLocation(item.Locations),
				PublicationDate: published,
				Description:     util.StripHTML(item.Contents),
				URL:             item.Refs.LandingPage,
			})
			if p.MaxResults > 0 && len(out) >= p.MaxResults {
				return out, nil
			}
		}
	}
	return out, nil
}

func (s *Scraper) fetchPage(ctx context.Context, p types.SearchParams, page int) (*searchResponse, error) {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if p.Location != "" {
		v.Set("location", p.Location)
	}
	u := s.cfg.BaseURL + "/api/public/jobs?" + v.Encode()

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
		return nil, apperr.Transport("themuse request failed", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, apperr.Transport(fmt.Sprintf("themuse status %d on page %d", res.StatusCode, page), nil)
	}

	var payload searchResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, apperr.Transport("themuse decode response", err)
	}
	return &payload, nil
}

type location struct {
	Name string `json:"name"`
}

// matchesLocation accepts a posting when any of its location names contains
// the wanted location, or when any name carries a remote keyword.
func matchesLocation(locations []location, want string) bool {
	for _, loc := range locations {
		if util.ContainsFold(loc.Name, want) {
			return true
		}
	}
	for _, loc := range locations {
		for _, kw := range remoteKeywords {
			if util.ContainsFold(loc.Name, kw) {
				return true
			}
		}
	}
	return false
}

func firstLocation(locations []location) string {
	if len(locations) == 0 {
		return ""
	}
	return util.CleanText(locations[0].Name)
}

package themuse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout/internal/scrape/types"
)

type apiJob struct {
	Name            string              `json:"name"`
	PublicationDate string              `json:"publication_date"`
	Contents        string              `json:"contents,omitempty"`
	Company         map[string]any      `json:"company,omitempty"`
	Locations       []map[string]string `json:"locations,omitempty"`
	Refs            map[string]string   `json:"refs,omitempty"`
}

func recentDate(daysAgo int) string {
	return time.Now().UTC().AddDate(0, 0, -daysAgo).Format("2006-01-02T15:04:05")
}

func job(name string, daysAgo int, locations ...string) apiJob {
	locs := make([]map[string]string, 0, len(locations))
	for _, l := range locations {
		locs = append(locs, map[string]string{"name": l})
	}
	return apiJob{
		Name:            name,
		PublicationDate: recentDate(daysAgo),
		Contents:        "<p>Great job</p>",
		Company:         map[string]any{"name": "Acme"},
		Locations:       locs,
		Refs:            map[string]string{"landing_page": "https://example.com/" + name},
	}
}

// serve starts a paginated fake of the jobs endpoint and records which pages
// were requested.
func serve(t *testing.T, pageCount int, pages map[int][]apiJob) (*Scraper, *[]int) {
	t.Helper()
	var requested []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/public/jobs", r.URL.Path)
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)
		requested = append(requested, page)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"page_count": pageCount,
			"results":    pages[page],
		})
	}))
	t.Cleanup(srv.Close)

	s := New(Config{BaseURL: srv.URL}, nil)
	return s, &requested
}

func TestSearchPaginatesUpToPageCount(t *testing.T) {
	s, requested := serve(t, 2, map[int][]apiJob{
		1: {job("one", 1, "New York, NY")},
		2: {job("two", 2, "Berlin")},
	})

	jobs, err := s.Search(context.Background(), types.SearchParams{Query: "engineer", Days: 7})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, []int{1, 2}, *requested)
	assert.Equal(t, "one", jobs[0].Title)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, "New York, NY", jobs[0].Location)
	assert.Equal(t, "Great job", jobs[0].Description)
	assert.Equal(t, "https://example.com/one", jobs[0].URL)
}

func TestSearchStopsOnEmptyPage(t *testing.T) {
	// page_count lies; an empty page must stop the walk
	s, requested := serve(t, 99, map[int][]apiJob{
		1: {job("one", 1, "Remote")},
	})

	jobs, err := s.Search(context.Background(), types.SearchParams{Days: 7})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, []int{1, 2}, *requested)
}

func TestSearchStopsMidPageAtMaxResults(t *testing.T) {
	s, requested := serve(t, 3, map[int][]apiJob{
		1: {job("a", 1), job("b", 1)},
		2: {job("c", 1), job("d", 1)},
		3: {job("e", 1)},
	})

	jobs, err := s.Search(context.Background(), types.SearchParams{MaxResults: 3})
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	// cap hit mid-page 2; page 3 must never be requested
	assert.Equal(t, []int{1, 2}, *requested)
}

func TestSearchSkipsMalformedDates(t *testing.T) {
	bad := job("bad", 0)
	bad.PublicationDate = "not-a-date"
	s, _ := serve(t, 1, map[int][]apiJob{
		1: {bad, job("good", 1)},
	})

	jobs, err := s.Search(context.Background(), types.SearchParams{Days: 7})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "good", jobs[0].Title)
}

func TestSearchDaysWindow(t *testing.T) {
	s, _ := serve(t, 1, map[int][]apiJob{
		1: {job("fresh", 2), job("stale", 30)},
	})

	jobs, err := s.Search(context.Background(), types.SearchParams{Days: 7})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "fresh", jobs[0].Title)
}

func TestSearchLocationFilter(t *testing.T) {
	s, _ := serve(t, 1, map[int][]apiJob{
		1: {
			job("nyc", 1, "New York, NY"),
			job("berlin", 1, "Berlin, Germany"),
			job("remote", 1, "Remote"),
			job("flex", 1, "Flexible / Remote"),
		},
	})

	// substring match is case-insensitive; remote-tagged postings pass any
	// location filter
	jobs, err := s.Search(context.Background(), types.SearchParams{Location: "new york", Days: 7})
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "nyc", jobs[0].Title)
	assert.Equal(t, "remote", jobs[1].Title)
	assert.Equal(t, "flex", jobs[2].Title)
}

func TestSearchRemoteBypassesUnrelatedCity(t *testing.T) {
	s, _ := serve(t, 1, map[int][]apiJob{
		1: {job("remote", 1, "Remote")},
	})

	jobs, err := s.Search(context.Background(), types.SearchParams{Location: "Boston, MA", Days: 7})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
}

func TestSearchDefensiveFieldExtraction(t *testing.T) {
	sparse := apiJob{Name: "sparse", PublicationDate: recentDate(1)}
	s, _ := serve(t, 1, map[int][]apiJob{1: {sparse}})

	jobs, err := s.Search(context.Background(), types.SearchParams{Days: 7})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "", jobs[0].Company)
	assert.Equal(t, "", jobs[0].Location)
	assert.Equal(t, "", jobs[0].URL)
}

func TestSearchSoftFailsOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL}, nil)
	jobs, err := s.Search(context.Background(), types.SearchParams{Days: 7})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestSearchSoftFailsMidPaginationKeepingResults(t *testing.T) {
	var page int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page++
		if page > 1 {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"page_count": 2,
			"results":    []apiJob{job("kept", 1)},
		})
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL}, nil)
	jobs, err := s.Search(context.Background(), types.SearchParams{Days: 7})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "kept", jobs[0].Title)
}

func TestSearchForwardsQueryAndLocationParams(t *testing.T) {
	var gotQuery, gotLocation string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotLocation = r.URL.Query().Get("location")
		fmt.Fprint(w, `{"page_count":1,"results":[]}`)
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL}, nil)
	_, err := s.Search(context.Background(), types.SearchParams{Query: "data scientist", Location: "Austin"})
	require.NoError(t, err)
	assert.Equal(t, "data scientist", gotQuery)
	assert.Equal(t, "Austin", gotLocation)
}

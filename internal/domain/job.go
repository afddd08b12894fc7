package domain

import (
	"sort"
	"time"
)

// ISOLayout is the naive ISO-8601 form used when a posting is flattened for
// export. Source timezone offsets are dropped before a posting is built, so
// no offset appears here either.
const ISOLayout = "2006-01-02T15:04:05"

// JobPosting is the normalized record produced by a site scraper. All fields
// are flat text plus one timestamp, whatever shape the source API had.
type JobPosting struct {
	Title           string
	Company         string
	Location        string
	PublicationDate time.Time
	Description     string
	URL             string
}

// Record is the flat key-value form used for JSON and CSV export.
type Record struct {
	Title           string `json:"title"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	PublicationDate string `json:"publication_date"`
	Description     string `json:"description"`
	URL             string `json:"url"`
}

// RecordFields is the CSV header, in column order. Keep in sync with Record.
var RecordFields = []string{"title", "company", "location", "publication_date", "description", "url"}

func (j JobPosting) Record() Record {
	return Record{
		Title:           j.Title,
		Company:         j.Company,
		Location:        j.Location,
		PublicationDate: j.PublicationDate.Format(ISOLayout),
		Description:     j.Description,
		URL:             j.URL,
	}
}

// Row returns the record values in RecordFields order.
func (r Record) Row() []string {
	return []string{r.Title, r.Company, r.Location, r.PublicationDate, r.Description, r.URL}
}

// SortByDateDesc orders postings newest first. The sort is stable, so
// postings sharing a timestamp keep their source order.
func SortByDateDesc(jobs []JobPosting) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].PublicationDate.After(jobs[j].PublicationDate)
	})
}

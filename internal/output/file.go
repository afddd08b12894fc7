package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"jobscout/internal/apperr"
	"jobscout/internal/domain"
)

// WriteFile exports postings to path, format chosen by extension (.json or
// .csv). The format check happens before the file is created, so a bad
// extension never truncates an existing file. A flock on <path>.lock keeps a
// second run from interleaving writes to the same destination.
func WriteFile(path string, jobs []domain.JobPosting) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json", ".csv":
	default:
		return apperr.InvalidInput(
			fmt.Sprintf("unsupported output format %q: use .json or .csv", ext), nil)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer lock.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	switch ext {
	case ".json":
		err = writeJSON(f, jobs)
	case ".csv":
		err = writeCSV(f, jobs)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeJSON(f *os.File, jobs []domain.JobPosting) error {
	records := make([]domain.Record, 0, len(jobs))
	for _, j := range jobs {
		records = append(records, j.Record())
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

func writeCSV(f *os.File, jobs []domain.JobPosting) error {
	w := csv.NewWriter(f)
	if err := w.Write(domain.RecordFields); err != nil {
		return err
	}
	for _, j := range jobs {
		if err := w.Write(j.Record().Row()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/importer"
)

// WriteCSV writes records under the standard header to path, replacing any
// existing file.
func WriteCSV(t *testing.T, path string, records []domain.Record) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(importer.RequiredColumns); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for _, r := range records {
		if err := w.Write([]string{r.Region, r.Project, r.SubDivision, r.StaffLead, r.Role}); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush %s: %v", path, err)
	}
}

// WriteSampleCSV writes SampleRecords to data.csv in a fresh temp dir and
// returns the path.
func WriteSampleCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	WriteCSV(t, path, SampleRecords())
	return path
}

package service

import (
	"context"
	"testing"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/importer"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/repository"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/testutil"
)

// stubSource serves tables in order; the last one repeats. A non-nil err is
// returned instead of a table.
type stubSource struct {
	tables []*importer.RawTable
	err    error
	loads  int
}

func (s *stubSource) Name() string { return "stub.csv" }

func (s *stubSource) next() (*importer.RawTable, error) {
	if s.err != nil {
		return nil, s.err
	}
	i := min(s.loads, len(s.tables)-1)
	s.loads++
	return s.tables[i], nil
}

func (s *stubSource) Load(context.Context) (*importer.RawTable, error)    { return s.next() }
func (s *stubSource) Refresh(context.Context) (*importer.RawTable, error) { return s.next() }

// recordingObserver keeps every event it receives.
type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func (r *recordingObserver) named(name string) []UseCaseEvent {
	var out []UseCaseEvent
	for _, e := range r.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

type serviceFixture struct {
	svc     DatasetService
	src     *stubSource
	records *repository.SQLiteRecordRepo
	loads   *repository.SQLiteLoadRepo
	obs     *recordingObserver
}

func setupDatasetService(t *testing.T, tables ...*importer.RawTable) serviceFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	f := serviceFixture{
		src:     &stubSource{tables: tables},
		records: repository.NewSQLiteRecordRepo(database),
		loads:   repository.NewSQLiteLoadRepo(database),
		obs:     &recordingObserver{},
	}
	f.svc = NewDatasetService(f.src, importer.DefaultOptions(), f.records, f.loads, testutil.NewTestUoW(database), f.obs)
	return f
}

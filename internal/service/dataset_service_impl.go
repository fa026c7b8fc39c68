package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/db"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/importer"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/repository"
)

type datasetService struct {
	src      DatasetSource
	opts     importer.Options
	records  repository.RecordRepo
	loads    repository.LoadRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewDatasetService loads datasets from src, normalizes them with opts and
// mirrors each successful load into the session store.
func NewDatasetService(
	src DatasetSource,
	opts importer.Options,
	records repository.RecordRepo,
	loads repository.LoadRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) DatasetService {
	return &datasetService{
		src:      src,
		opts:     opts,
		records:  records,
		loads:    loads,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *datasetService) Load(ctx context.Context) (ds *domain.Dataset, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": s.src.Name()}
	defer func() { observe(ctx, s.observer, "load-dataset", startedAt, err, fields) }()

	table, err := s.src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return s.ingest(ctx, table, fields)
}

func (s *datasetService) Refresh(ctx context.Context) (ds *domain.Dataset, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": s.src.Name()}
	defer func() { observe(ctx, s.observer, "refresh-dataset", startedAt, err, fields) }()

	table, err := s.src.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return s.ingest(ctx, table, fields)
}

// ingest normalizes table and stores it. Empty datasets are reported and
// not stored, so the previous load stays queryable.
func (s *datasetService) ingest(ctx context.Context, table *importer.RawTable, fields map[string]any) (*domain.Dataset, error) {
	ds, err := importer.Normalize(table, s.opts)
	if err != nil {
		return nil, err
	}
	fields["rows"] = ds.Len()
	if ds.Len() == 0 {
		return nil, &domain.EmptyDatasetError{Source: table.Source}
	}

	load := &domain.DatasetLoad{
		ID:          uuid.New().String(),
		Source:      table.Source,
		Rows:        ds.Len(),
		StaffPolicy: string(s.opts.StaffPolicy),
		LoadedAt:    time.Now().UTC(),
	}
	if load.StaffPolicy == "" {
		load.StaffPolicy = string(importer.StaffPolicyUnspecified)
	}
	fields["load_id"] = load.ID

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteLoadRepo(tx).Create(ctx, load); err != nil {
			return err
		}
		return repository.NewSQLiteRecordRepo(tx).ReplaceAll(ctx, load.ID, ds.Records())
	})
	if err != nil {
		return nil, err
	}
	return ds, nil
}

func (s *datasetService) Summary(ctx context.Context) (repository.Summary, error) {
	return s.records.Summary(ctx)
}

func (s *datasetService) CountBy(ctx context.Context, dim repository.Dimension) ([]repository.Count, error) {
	return s.records.CountBy(ctx, dim)
}

func (s *datasetService) Vacancies(ctx context.Context) ([]domain.Record, error) {
	return s.records.ListVacancies(ctx)
}

func (s *datasetService) LatestLoad(ctx context.Context) (*domain.DatasetLoad, error) {
	return s.loads.Latest(ctx)
}

// LoadHistory returns up to limit stored loads, newest first.
func (s *datasetService) LoadHistory(ctx context.Context, limit int) ([]*domain.DatasetLoad, error) {
	return s.loads.List(ctx, limit)
}

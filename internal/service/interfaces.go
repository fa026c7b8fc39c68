package service

import (
	"context"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/importer"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/repository"
)

// DatasetSource is a raw table provider that can be re-fetched.
// *source.Cached satisfies it.
type DatasetSource interface {
	Name() string
	Load(ctx context.Context) (*importer.RawTable, error)
	Refresh(ctx context.Context) (*importer.RawTable, error)
}

type DatasetService interface {
	Load(ctx context.Context) (*domain.Dataset, error)
	Refresh(ctx context.Context) (*domain.Dataset, error)
	Summary(ctx context.Context) (repository.Summary, error)
	CountBy(ctx context.Context, dim repository.Dimension) ([]repository.Count, error)
	Vacancies(ctx context.Context) ([]domain.Record, error)
	LatestLoad(ctx context.Context) (*domain.DatasetLoad, error)
	LoadHistory(ctx context.Context, limit int) ([]*domain.DatasetLoad, error)
}

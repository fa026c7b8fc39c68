package repository

import (
	"context"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
)

// Dimension is a record column that can be counted.
type Dimension string

const (
	DimRegion      Dimension = "region"
	DimProject     Dimension = "project"
	DimSubDivision Dimension = "sub_division"
	DimStaff       Dimension = "staff_lead"
	DimRole        Dimension = "role"
)

// Count is the number of records sharing one value of a dimension.
type Count struct {
	Value string
	Count int
}

// Summary totals the stored dataset.
type Summary struct {
	Records      int
	Regions      int
	Projects     int
	SubDivisions int
	Staff        int
	Roles        int
	Vacancies    int
}

type RecordRepo interface {
	ReplaceAll(ctx context.Context, loadID string, records []domain.Record) error
	List(ctx context.Context) ([]domain.Record, error)
	CountBy(ctx context.Context, dim Dimension) ([]Count, error)
	Summary(ctx context.Context) (Summary, error)
	ListVacancies(ctx context.Context) ([]domain.Record, error)
}

type LoadRepo interface {
	Create(ctx context.Context, l *domain.DatasetLoad) error
	Latest(ctx context.Context) (*domain.DatasetLoad, error)
	List(ctx context.Context, limit int) ([]*domain.DatasetLoad, error)
}

package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/importer"
)

var testRoleCounter atomic.Int64

// RecordOption customizes a record built by NewTestRecord.
type RecordOption func(*domain.Record)

func WithRole(r string) RecordOption {
	return func(rec *domain.Record) { rec.Role = r }
}

// NewTestRecord returns a normalized record in UAE/Alpha led by Dana with a
// unique role name.
func NewTestRecord(opts ...RecordOption) domain.Record {
	rec := domain.Record{
		Region:      "UAE",
		Project:     "Alpha",
		SubDivision: "Alpha",
		StaffLead:   "Dana",
		Role:        fmt.Sprintf("Role %02d", testRoleCounter.Add(1)),
	}
	for _, opt := range opts {
		opt(&rec)
	}
	return rec
}

// SampleRecords covers a simple project, a complex project with a vacancy,
// the same project name in two regions, and the unspecified sentinels.
func SampleRecords() []domain.Record {
	return []domain.Record{
		{Region: "UAE", Project: "Alpha", SubDivision: "Alpha", StaffLead: "Dana", Role: "Engineer"},
		{Region: "UAE", Project: "Alpha", SubDivision: "Alpha", StaffLead: "Eli", Role: "Analyst"},
		{Region: "UAE", Project: "Beta", SubDivision: "Beta North", StaffLead: "Dana", Role: "Driver"},
		{Region: "UAE", Project: "Beta", SubDivision: "Beta South", StaffLead: domain.ManagerRequired, Role: "Welder"},
		{Region: "UAE", Project: "Beta", SubDivision: "Beta South", StaffLead: "Eli", Role: "Welder"},
		{Region: "KSA", Project: "Gamma", SubDivision: "Gamma", StaffLead: "Eli", Role: "Clerk"},
		{Region: "KSA", Project: "Alpha", SubDivision: "Alpha", StaffLead: "Dana", Role: "Nurse"},
		{Region: domain.UnspecifiedRegion, Project: domain.Unspecified, SubDivision: domain.Unspecified, StaffLead: domain.Unspecified, Role: domain.Unspecified},
	}
}

// SampleDataset wraps SampleRecords.
func SampleDataset() *domain.Dataset {
	return domain.NewDataset(SampleRecords())
}

// SampleTable renders SampleRecords as a raw table with a header row.
func SampleTable(source string) *importer.RawTable {
	grid := [][]string{importer.RequiredColumns}
	for _, r := range SampleRecords() {
		grid = append(grid, []string{r.Region, r.Project, r.SubDivision, r.StaffLead, r.Role})
	}
	return importer.NewRawTable(source, grid)
}

// Load options
type LoadOption func(*domain.DatasetLoad)

func WithLoadedAt(t time.Time) LoadOption {
	return func(l *domain.DatasetLoad) { l.LoadedAt = t }
}

func WithLoadRows(n int) LoadOption {
	return func(l *domain.DatasetLoad) { l.Rows = n }
}

func NewTestLoad(source string, opts ...LoadOption) *domain.DatasetLoad {
	l := &domain.DatasetLoad{
		ID:          uuid.New().String(),
		Source:      source,
		StaffPolicy: string(importer.StaffPolicyUnspecified),
		LoadedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

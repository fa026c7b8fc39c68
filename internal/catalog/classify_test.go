package catalog

import (
	"testing"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/stretchr/testify/assert"
)

func rec(region, project, sub, staff, role string) domain.Record {
	return domain.Record{Region: region, Project: project, SubDivision: sub, StaffLead: staff, Role: role}
}

func TestIsSimpleProject(t *testing.T) {
	ds := domain.NewDataset([]domain.Record{
		rec("UAE", "Alpha", "Alpha", "Dana", "Engineer"),
		rec("UAE", "Alpha", "Alpha", "Eli", "Analyst"),
		rec("UAE", "Beta", "Beta North", "Dana", "Engineer"),
		rec("UAE", "Beta", "Beta South", "Eli", "Engineer"),
		rec("UAE", "Gamma", "Gamma Ops", "Eli", "Engineer"),
		rec("UAE", "Delta", "Delta", "Dana", "Engineer"),
		rec("UAE", "Delta", "Delta Labs", "Eli", "Engineer"),
		rec("KSA", "Beta", "Beta", "Dana", "Engineer"),
	})

	tests := []struct {
		name    string
		region  string
		project string
		want    bool
	}{
		{"single self subdivision", "UAE", "Alpha", true},
		{"two subdivisions", "UAE", "Beta", false},
		{"single foreign subdivision", "UAE", "Gamma", false},
		{"self plus another", "UAE", "Delta", false},
		{"same project simple in other region", "KSA", "Beta", true},
		{"no records", "UK", "Alpha", false},
		{"unknown project", "UAE", "Omega", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSimpleProject(ds, tt.region, tt.project))
			// Stable across repeated calls.
			assert.Equal(t, tt.want, IsSimpleProject(ds, tt.region, tt.project))
		})
	}
}

func TestIsSimpleProject_UsesFullDataset(t *testing.T) {
	full := domain.NewDataset([]domain.Record{
		rec("UAE", "Delta", "Delta", "Dana", "Engineer"),
		rec("UAE", "Delta", "Delta Labs", "Eli", "Engineer"),
	})
	danaOnly := domain.NewDataset(full.Where(domain.Match{StaffLead: "Dana"}))

	assert.False(t, IsSimpleProject(full, "UAE", "Delta"))
	// Dana's own slice looks simple, which is why callers must use the full dataset.
	assert.True(t, IsSimpleProject(danaOnly, "UAE", "Delta"))
}

func TestDistinct_FirstSeenOrder(t *testing.T) {
	records := []domain.Record{
		rec("KSA", "A", "A", "x", "r1"),
		rec("UAE", "A", "A", "x", "r2"),
		rec("KSA", "B", "B", "y", "r1"),
	}
	assert.Equal(t, []string{"KSA", "UAE"}, Distinct(records, RegionOf))
	assert.Equal(t, []string{"r1", "r2"}, Distinct(records, RoleOf))
	assert.Empty(t, Distinct(nil, StaffOf))
}

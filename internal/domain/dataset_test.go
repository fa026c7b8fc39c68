package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		{Region: "UAE", Project: "Alpha", SubDivision: "Alpha", StaffLead: "Dana", Role: "Engineer"},
		{Region: "UAE", Project: "Beta", SubDivision: "Beta North", StaffLead: "Eli", Role: "Analyst"},
		{Region: "KSA", Project: "Alpha", SubDivision: "Alpha", StaffLead: "Dana", Role: "Manager"},
	}
}

func TestNewDataset_CopiesInput(t *testing.T) {
	in := sampleRecords()
	ds := NewDataset(in)
	in[0].Region = "mutated"

	require.Equal(t, 3, ds.Len())
	assert.Equal(t, "UAE", ds.Records()[0].Region)
}

func TestDataset_RecordsReturnsCopy(t *testing.T) {
	ds := NewDataset(sampleRecords())
	out := ds.Records()
	out[0].Role = "changed"

	assert.Equal(t, "Engineer", ds.Records()[0].Role)
}

func TestDataset_Where(t *testing.T) {
	ds := NewDataset(sampleRecords())

	tests := []struct {
		name  string
		match Match
		want  int
	}{
		{"empty match returns all", Match{}, 3},
		{"by region", Match{Region: "UAE"}, 2},
		{"by region and project", Match{Region: "UAE", Project: "Alpha"}, 1},
		{"by staff", Match{StaffLead: "Dana"}, 2},
		{"by subdivision", Match{SubDivision: "Beta North"}, 1},
		{"no match", Match{Region: "UK"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ds.Where(tt.match), tt.want)
			assert.Equal(t, tt.want > 0, ds.Any(tt.match))
		})
	}
}

func TestDataset_NilIsEmpty(t *testing.T) {
	var ds *Dataset
	assert.Equal(t, 0, ds.Len())
	assert.Nil(t, ds.Records())
	assert.Nil(t, ds.Where(Match{}))
	assert.False(t, ds.Any(Match{}))
}

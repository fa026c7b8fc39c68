package importer

import (
	"testing"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var header = []string{"Region", "Project", "Sub_Division", "Staff_Lead", "Role"}

func normalizeRows(t *testing.T, opts Options, rows ...[]string) []domain.Record {
	t.Helper()
	ds, err := Normalize(&RawTable{Source: "test", Header: header, Rows: rows}, opts)
	require.NoError(t, err)
	return ds.Records()
}

func TestNormalize_ProjectSubdivisionCrossFill(t *testing.T) {
	tests := []struct {
		name        string
		project     string
		sub         string
		wantProject string
		wantSub     string
	}{
		{"project only", "Eng", "", "Eng", "Eng"},
		{"subdivision only", "", "Backend", "Backend", "Backend"},
		{"both blank", "", "", "Unspecified", "Unspecified"},
		{"both present", "Eng", "Backend", "Eng", "Backend"},
		{"whitespace counts as blank", "  ", " Backend ", "Backend", "Backend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := normalizeRows(t, DefaultOptions(), []string{"UAE", tt.project, tt.sub, "Dana", "Engineer"})
			require.Len(t, recs, 1)
			assert.Equal(t, tt.wantProject, recs[0].Project)
			assert.Equal(t, tt.wantSub, recs[0].SubDivision)
		})
	}
}

func TestNormalize_SentinelFills(t *testing.T) {
	recs := normalizeRows(t, DefaultOptions(), []string{"", "Alpha", "Alpha", "", ""})
	require.Len(t, recs, 1)
	assert.Equal(t, domain.Record{
		Region:      "Unspecified Region",
		Project:     "Alpha",
		SubDivision: "Alpha",
		StaffLead:   "Unspecified",
		Role:        "Unspecified",
	}, recs[0])
}

func TestNormalize_StaffPolicyManagerRequired(t *testing.T) {
	opts := DefaultOptions()
	opts.StaffPolicy = StaffPolicyManagerRequired

	recs := normalizeRows(t, opts,
		[]string{"UAE", "Alpha", "", "", "Engineer"},
		[]string{"UAE", "Alpha", "", "Manager Required", "Analyst"},
	)
	assert.Equal(t, "Manager Required", recs[0].StaffLead)
	assert.Equal(t, "Manager Required", recs[1].StaffLead)
}

func TestNormalize_ManagerRequiredIsOrdinaryValue(t *testing.T) {
	recs := normalizeRows(t, DefaultOptions(),
		[]string{"UAE", "Alpha", "", "Manager Required", "Engineer"},
		[]string{"UAE", "Alpha", "", "", "Analyst"},
	)
	assert.Equal(t, "Manager Required", recs[0].StaffLead)
	assert.Equal(t, "Unspecified", recs[1].StaffLead)
}

func TestNormalize_TrimsAndKeepsEveryRow(t *testing.T) {
	recs := normalizeRows(t, DefaultOptions(),
		[]string{" UAE ", " Alpha", "Alpha ", " Dana ", " Engineer "},
		[]string{},
		[]string{"KSA"},
	)
	require.Len(t, recs, 3)
	assert.Equal(t, domain.Record{Region: "UAE", Project: "Alpha", SubDivision: "Alpha", StaffLead: "Dana", Role: "Engineer"}, recs[0])
	assert.Equal(t, "Unspecified Region", recs[1].Region)
	assert.Equal(t, "KSA", recs[2].Region)
	assert.Equal(t, "Unspecified", recs[2].Project)
}

func TestNormalize_NullTokens(t *testing.T) {
	recs := normalizeRows(t, DefaultOptions(), []string{"NaN", "Alpha", "nan", "NULL", "#N/A"})
	require.Len(t, recs, 1)
	assert.Equal(t, "Unspecified Region", recs[0].Region)
	assert.Equal(t, "Alpha", recs[0].SubDivision)
	assert.Equal(t, "Unspecified", recs[0].StaffLead)
	assert.Equal(t, "Unspecified", recs[0].Role)
}

func TestNormalize_NullTokensAreExact(t *testing.T) {
	recs := normalizeRows(t, DefaultOptions(), []string{"NA", "None", "Nan", "", ""})
	require.Len(t, recs, 1)
	assert.Equal(t, "NA", recs[0].Region)
	assert.Equal(t, "None", recs[0].Project)
	assert.Equal(t, "Nan", recs[0].SubDivision)

	custom := Options{StaffPolicy: StaffPolicyUnspecified, NullTokens: []string{"NA", "None"}}
	recs = normalizeRows(t, custom, []string{"NA", "None", "nan", "", ""})
	require.Len(t, recs, 1)
	assert.Equal(t, "Unspecified Region", recs[0].Region)
	assert.Equal(t, "nan", recs[0].Project, "blank project takes the sub-division")
	assert.Equal(t, "nan", recs[0].SubDivision)
}

func TestNormalize_ColumnOrderAndPaddedHeaders(t *testing.T) {
	table := &RawTable{
		Header: []string{" Role", "Staff_Lead ", "Notes", "Sub_Division", "Project", "Region"},
		Rows:   [][]string{{"Engineer", "Dana", "x", "", "Alpha", "UAE"}},
	}
	ds, err := Normalize(table, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, domain.Record{Region: "UAE", Project: "Alpha", SubDivision: "Alpha", StaffLead: "Dana", Role: "Engineer"}, ds.Records()[0])
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	row := []string{" UAE ", "Alpha", "", "", ""}
	table := &RawTable{Header: header, Rows: [][]string{row}}

	_, err := Normalize(table, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{" UAE ", "Alpha", "", "", ""}, row)
}

func TestNewRawTable(t *testing.T) {
	tbl := NewRawTable("s", [][]string{header, {"UAE", "Alpha", "", "Dana", "Engineer"}})
	assert.Equal(t, header, tbl.Header)
	assert.Len(t, tbl.Rows, 1)

	empty := NewRawTable("s", nil)
	assert.Nil(t, empty.Header)
	_, err := Normalize(empty, DefaultOptions())
	assert.True(t, domain.IsDataError(err))
}

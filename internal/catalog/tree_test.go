package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
)

func TestTree_GroupsByRegionAndProject(t *testing.T) {
	ds := domain.NewDataset([]domain.Record{
		rec("UAE", "Beta", "Beta South", "Omar", "Nurse"),
		rec("UAE", "Alpha", "Alpha", "Sara", "Engineer"),
		rec("UAE", "Beta", "Beta North", domain.ManagerRequired, "Driver"),
		rec(domain.UnspecifiedRegion, "Gamma", "Gamma", domain.Unspecified, "Clerk"),
		rec("KSA", "Alpha", "Alpha", "Ali", "Welder"),
		rec("UAE", "Alpha", "Alpha", "Sara", "Analyst"),
	})

	tree := Tree(ds)
	require.Len(t, tree, 3)
	assert.Equal(t, []string{"KSA", "UAE", domain.UnspecifiedRegion},
		[]string{tree[0].Code, tree[1].Code, tree[2].Code})
	assert.Equal(t, "United Arab Emirates", tree[1].Name)

	uae := tree[1]
	require.Len(t, uae.Projects, 2)

	alpha := uae.Projects[0]
	assert.Equal(t, "Alpha", alpha.Name)
	assert.True(t, alpha.Simple)
	require.NotNil(t, alpha.Positions)
	assert.Equal(t, []string{"Sara"}, alpha.Positions.Staff)
	assert.Equal(t, []string{"Analyst", "Engineer"}, alpha.Positions.Roles)
	assert.Empty(t, alpha.SubDivisions)

	beta := uae.Projects[1]
	assert.False(t, beta.Simple)
	assert.Nil(t, beta.Positions)
	require.Len(t, beta.SubDivisions, 2)
	assert.Equal(t, "Beta North", beta.SubDivisions[0].Name)
	assert.True(t, beta.SubDivisions[0].Positions.Vacancy)
	assert.Equal(t, []string{domain.ManagerRequired}, beta.SubDivisions[0].Positions.Staff)
	assert.False(t, beta.SubDivisions[1].Positions.Vacancy)
}

func TestTree_EmptyDataset(t *testing.T) {
	assert.Empty(t, Tree(domain.NewDataset(nil)))
	assert.Empty(t, Tree(nil))
}

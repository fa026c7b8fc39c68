package catalog

import (
	"slices"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
)

// RegionNode is one region of the dataset hierarchy.
type RegionNode struct {
	Code     string        `yaml:"code" json:"code"`
	Name     string        `yaml:"name" json:"name"`
	Projects []ProjectNode `yaml:"projects" json:"projects"`
}

// ProjectNode is a project within a region. Simple projects carry their
// positions directly; complex ones list sub-divisions.
type ProjectNode struct {
	Name         string       `yaml:"name" json:"name"`
	Simple       bool         `yaml:"simple" json:"simple"`
	Positions    *Positions   `yaml:"positions,omitempty" json:"positions,omitempty"`
	SubDivisions []SubDivNode `yaml:"sub_divisions,omitempty" json:"sub_divisions,omitempty"`
}

// SubDivNode is a sub-division of a complex project.
type SubDivNode struct {
	Name      string    `yaml:"name" json:"name"`
	Positions Positions `yaml:"positions" json:"positions"`
}

// Positions summarizes the staff and open roles of a selection.
type Positions struct {
	Staff   []string `yaml:"staff" json:"staff"`
	Vacancy bool     `yaml:"manager_vacancy" json:"manager_vacancy"`
	Roles   []string `yaml:"roles" json:"roles"`
}

// Tree groups the dataset by region, project and sub-division using the
// dashboard's display orderings.
func Tree(ds *domain.Dataset) []RegionNode {
	all := ds.Records()
	regions := OrderRegions(Distinct(all, RegionOf))
	out := make([]RegionNode, 0, len(regions))
	for _, code := range regions {
		inRegion := ds.Where(domain.Match{Region: code})
		node := RegionNode{Code: code, Name: domain.RegionDisplayName(code)}
		for _, p := range OrderGeneric(Distinct(inRegion, ProjectOf)) {
			pm := domain.Match{Region: code, Project: p}
			pn := ProjectNode{Name: p, Simple: IsSimpleProject(ds, code, p)}
			if pn.Simple {
				pos := positionsOf(ds.Where(pm))
				pn.Positions = &pos
			} else {
				for _, sd := range OrderGeneric(Distinct(ds.Where(pm), SubDivisionOf)) {
					sm := domain.Match{Region: code, Project: p, SubDivision: sd}
					pn.SubDivisions = append(pn.SubDivisions, SubDivNode{Name: sd, Positions: positionsOf(ds.Where(sm))})
				}
			}
			node.Projects = append(node.Projects, pn)
		}
		out = append(out, node)
	}
	return out
}

func positionsOf(rows []domain.Record) Positions {
	staff := OrderStaff(Distinct(rows, StaffOf))
	return Positions{
		Staff:   staff,
		Vacancy: slices.Contains(staff, domain.ManagerRequired),
		Roles:   OrderRoles(Distinct(rows, RoleOf)),
	}
}

// Package catalog derives groupings and display orderings from a Dataset.
package catalog

import "github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"

// IsSimpleProject reports whether a project acts as its own sub-division:
// across every record for (region, project) there is exactly one distinct
// Sub_Division and it equals the project name. No matching records means false.
//
// Always pass the full dataset. Simplicity is a property of the project, not of
// any one staff member's share of it.
func IsSimpleProject(ds *domain.Dataset, region, project string) bool {
	subs := Distinct(ds.Where(domain.Match{Region: region, Project: project}), SubDivisionOf)
	return len(subs) == 1 && subs[0] == project
}

// Field extractors for Distinct.
var (
	RegionOf      = func(r domain.Record) string { return r.Region }
	ProjectOf     = func(r domain.Record) string { return r.Project }
	SubDivisionOf = func(r domain.Record) string { return r.SubDivision }
	StaffOf       = func(r domain.Record) string { return r.StaffLead }
	RoleOf        = func(r domain.Record) string { return r.Role }
)

// Distinct returns the distinct values of field in first-seen order.
func Distinct(records []domain.Record, field func(domain.Record) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		v := field(r)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

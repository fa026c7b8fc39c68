package catalog

import (
	"slices"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
)

// OrderStaff sorts staff names ascending with "Manager Required" pinned first
// and "Unspecified" pinned last.
func OrderStaff(names []string) []string {
	return pinned(names, []string{domain.ManagerRequired}, []string{domain.Unspecified})
}

// OrderRegions sorts region codes ascending with "Unspecified Region" pinned last.
func OrderRegions(names []string) []string {
	return pinned(names, nil, []string{domain.UnspecifiedRegion})
}

// OrderGeneric sorts project and sub-division names ascending with
// "Unspecified" pinned last.
func OrderGeneric(names []string) []string {
	return pinned(names, nil, []string{domain.Unspecified})
}

// OrderRoles sorts role names ascending. Roles have no pinned values.
func OrderRoles(names []string) []string {
	return pinned(names, nil, nil)
}

// pinned deduplicates names (exact, case-sensitive), sorts them by byte order
// and moves any present head values to the front and tail values to the end.
func pinned(names, head, tail []string) []string {
	uniq := slices.Clone(names)
	slices.Sort(uniq)
	uniq = slices.Compact(uniq)

	out := make([]string, 0, len(uniq))
	for _, h := range head {
		if slices.Contains(uniq, h) {
			out = append(out, h)
		}
	}
	for _, n := range uniq {
		if slices.Contains(head, n) || slices.Contains(tail, n) {
			continue
		}
		out = append(out, n)
	}
	for _, t := range tail {
		if slices.Contains(uniq, t) {
			out = append(out, t)
		}
	}
	return out
}

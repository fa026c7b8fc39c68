package catalog

import (
	"slices"
	"strings"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
)

// FormatList joins names as "A, B and C". A single name is returned unchanged
// and an empty list returns empty.
func FormatList(names []string, empty string) string {
	switch len(names) {
	case 0:
		return empty
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

// FormatStaffForDisplay orders staff names for a summary line, drops
// "Manager Required" from the text and reports it as a vacancy flag instead.
func FormatStaffForDisplay(names []string) (string, bool) {
	ordered := OrderStaff(names)
	vacancy := slices.Contains(ordered, domain.ManagerRequired)
	ordered = slices.DeleteFunc(ordered, func(s string) bool { return s == domain.ManagerRequired })
	return FormatList(ordered, ""), vacancy
}

package domain

// Record is one normalized row of the recruitment dataset.
// After normalization no field is empty.
type Record struct {
	Region      string
	Project     string
	SubDivision string
	StaffLead   string
	Role        string
}

// Match selects records by exact field equality. Empty fields match anything,
// which is unambiguous because normalized records never hold empty values.
type Match struct {
	Region      string
	Project     string
	SubDivision string
	StaffLead   string
}

// Matches reports whether r satisfies every non-empty field of m.
func (m Match) Matches(r Record) bool {
	if m.Region != "" && r.Region != m.Region {
		return false
	}
	if m.Project != "" && r.Project != m.Project {
		return false
	}
	if m.SubDivision != "" && r.SubDivision != m.SubDivision {
		return false
	}
	if m.StaffLead != "" && r.StaffLead != m.StaffLead {
		return false
	}
	return true
}

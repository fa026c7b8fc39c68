package domain

// Sentinel values. Normalization writes Unspecified and UnspecifiedRegion;
// ManagerRequired is only ever carried by source data or the staff fill policy.
const (
	Unspecified       = "Unspecified"
	UnspecifiedRegion = "Unspecified Region"
	ManagerRequired   = "Manager Required"
)

// ViewMode identifies the top-level dashboard screen.
type ViewMode string

const (
	ModeHome   ViewMode = "home"
	ModeRegion ViewMode = "region"
	ModeStaff  ViewMode = "staff"
)

// Package navigation holds the dashboard's view state and its transitions.
//
// Optional selections are stored as strings where "" means unset. Normalized
// data never contains empty values, so "" cannot collide with a real name.
package navigation

import (
	"fmt"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
)

// GroupKey identifies one expandable group on the staff screen.
// For a simple project SubDivision equals Project.
type GroupKey struct {
	Region      string
	Project     string
	SubDivision string
}

// SimpleKey returns the self-referential key used for simple projects.
func SimpleKey(region, project string) GroupKey {
	return GroupKey{Region: region, Project: project, SubDivision: project}
}

// IsZero reports whether k is unset.
func (k GroupKey) IsZero() bool { return k == GroupKey{} }

// IsSimple reports whether k addresses a simple project.
func (k GroupKey) IsSimple() bool { return !k.IsZero() && k.Project == k.SubDivision }

func (k GroupKey) String() string {
	return k.Region + "|" + k.Project + "|" + k.SubDivision
}

// Drill holds the drill-down selections. Project and Subdivision belong to the
// region screen; StaffGroup belongs to the staff screen.
type Drill struct {
	Project     string
	Subdivision string
	StaffGroup  GroupKey
}

// State is the complete navigation state of one session.
type State struct {
	Mode   domain.ViewMode
	Region string
	Staff  string
	Drill  Drill
}

// New returns the initial state: the home screen with nothing selected.
func New() State {
	return State{Mode: domain.ModeHome}
}

// GoHome returns to the home screen and clears every selection.
func (s *State) GoHome() {
	*s = New()
}

// GoToRegion opens the region screen. Drill-down survives only when the
// region is unchanged. An empty region is treated as GoHome.
func (s *State) GoToRegion(region string) {
	if region == "" {
		s.GoHome()
		return
	}
	if s.Region != region {
		s.Drill = Drill{}
	}
	s.Mode = domain.ModeRegion
	s.Region = region
	s.Staff = ""
}

// GoToStaff opens the staff screen. Drill-down survives only when the staff
// member is unchanged. An empty name is treated as GoHome.
func (s *State) GoToStaff(staff string) {
	if staff == "" {
		s.GoHome()
		return
	}
	if s.Staff != staff {
		s.Drill = Drill{}
	}
	s.Mode = domain.ModeStaff
	s.Staff = staff
	s.Region = ""
}

// ToggleProject selects project, or clears it when already selected.
// The sub-division choice is always cleared. Ignored outside the region screen.
func (s *State) ToggleProject(project string) {
	if s.Mode != domain.ModeRegion {
		return
	}
	if s.Drill.Project == project {
		s.Drill.Project = ""
	} else {
		s.Drill.Project = project
	}
	s.Drill.Subdivision = ""
}

// ToggleSubdivision selects sd, or clears it when already selected.
// Ignored unless a project is selected on the region screen.
func (s *State) ToggleSubdivision(sd string) {
	if s.Mode != domain.ModeRegion || s.Drill.Project == "" {
		return
	}
	if s.Drill.Subdivision == sd {
		s.Drill.Subdivision = ""
	} else {
		s.Drill.Subdivision = sd
	}
}

// ToggleStaffGroup opens the group addressed by key, or closes it when it is
// already open. Ignored outside the staff screen.
func (s *State) ToggleStaffGroup(key GroupKey) {
	if s.Mode != domain.ModeStaff {
		return
	}
	if s.Drill.StaffGroup == key {
		s.Drill.StaffGroup = GroupKey{}
	} else {
		s.Drill.StaffGroup = key
	}
}

// OpenSimpleProject returns the simple project whose group is open in region.
func (s State) OpenSimpleProject(region string) (string, bool) {
	k := s.Drill.StaffGroup
	if k.IsSimple() && k.Region == region {
		return k.Project, true
	}
	return "", false
}

// OpenSubdivision returns the open sub-division of (region, project).
func (s State) OpenSubdivision(region, project string) (string, bool) {
	k := s.Drill.StaffGroup
	if !k.IsZero() && k.Region == region && k.Project == project {
		return k.SubDivision, true
	}
	return "", false
}

// Validate checks the structural invariants of s.
func (s State) Validate() error {
	switch s.Mode {
	case domain.ModeHome:
		if s.Region != "" || s.Staff != "" {
			return fmt.Errorf("home screen with a selected subject")
		}
		if s.Drill != (Drill{}) {
			return fmt.Errorf("home screen with drill-down selections")
		}
	case domain.ModeRegion:
		if s.Region == "" || s.Staff != "" {
			return fmt.Errorf("region screen needs exactly a region")
		}
		if !s.Drill.StaffGroup.IsZero() {
			return fmt.Errorf("region screen with a staff group open")
		}
		if s.Drill.Subdivision != "" && s.Drill.Project == "" {
			return fmt.Errorf("sub-division %q selected without a project", s.Drill.Subdivision)
		}
	case domain.ModeStaff:
		if s.Staff == "" || s.Region != "" {
			return fmt.Errorf("staff screen needs exactly a staff member")
		}
		if s.Drill.Project != "" || s.Drill.Subdivision != "" {
			return fmt.Errorf("staff screen with region drill-down selections")
		}
	default:
		return fmt.Errorf("unknown view mode %q", s.Mode)
	}
	return nil
}

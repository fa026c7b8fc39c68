package navigation

import "fmt"

// Event is a transition request. Every clickable item in a projection carries
// the Event it dispatches, so handlers never capture per-item closures.
type Event interface {
	apply(s *State)
	fmt.Stringer
}

// HomeRequested returns to the home screen.
type HomeRequested struct{}

// RegionSelected opens the region screen for Region.
type RegionSelected struct{ Region string }

// StaffSelected opens the staff screen for Staff.
type StaffSelected struct{ Staff string }

// ProjectToggled toggles the selected project on the region screen.
type ProjectToggled struct{ Project string }

// SubdivisionToggled toggles the selected sub-division on the region screen.
type SubdivisionToggled struct{ Subdivision string }

// StaffGroupToggled toggles an expandable group on the staff screen.
type StaffGroupToggled struct{ Key GroupKey }

func (HomeRequested) apply(s *State)        { s.GoHome() }
func (e RegionSelected) apply(s *State)     { s.GoToRegion(e.Region) }
func (e StaffSelected) apply(s *State)      { s.GoToStaff(e.Staff) }
func (e ProjectToggled) apply(s *State)     { s.ToggleProject(e.Project) }
func (e SubdivisionToggled) apply(s *State) { s.ToggleSubdivision(e.Subdivision) }
func (e StaffGroupToggled) apply(s *State)  { s.ToggleStaffGroup(e.Key) }

func (HomeRequested) String() string        { return "home" }
func (e RegionSelected) String() string     { return "region:" + e.Region }
func (e StaffSelected) String() string      { return "staff:" + e.Staff }
func (e ProjectToggled) String() string     { return "project:" + e.Project }
func (e SubdivisionToggled) String() string { return "subdivision:" + e.Subdivision }
func (e StaffGroupToggled) String() string  { return "group:" + e.Key.String() }

// Reduce applies ev to a copy of s and returns the result. A nil event
// leaves the state unchanged.
func Reduce(s State, ev Event) State {
	if ev == nil {
		return s
	}
	ev.apply(&s)
	return s
}

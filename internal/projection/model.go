// Package projection computes what each dashboard screen shows for a dataset
// and a navigation state. It performs no I/O and never renders.
package projection

import (
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/navigation"
)

// Item is one selectable entry. Event is dispatched when the item is chosen.
type Item struct {
	Label  string
	Value  string
	Active bool
	Event  navigation.Event
}

// Positions is the leaf panel listing the open roles of a selection.
// Staff and Vacancy are only filled on the region screen.
type Positions struct {
	Title   string
	Staff   string
	Vacancy bool
	Roles   []string
}

// Model is the render model for one screen. Exactly one of Home, Region and
// Staff is non-nil, matching Mode.
type Model struct {
	Mode   domain.ViewMode
	Title  string
	Home   *HomeModel
	Region *RegionModel
	Staff  *StaffModel
}

// HomeModel lists every region and staff member.
type HomeModel struct {
	Regions []Item
	Staff   []Item
}

// RegionModel is the region screen.
type RegionModel struct {
	Code         string
	DisplayName  string
	Projects     []Item
	StaffSidebar []Item

	// Project is the selected project when it still exists in the region.
	Project      string
	Simple       bool
	Subdivisions *Group
	Positions    *Positions
}

// StaffModel is the staff screen.
type StaffModel struct {
	Name    string
	Regions []Item
	Groups  []RegionGroup
}

// RegionGroup holds everything one staff member manages within a region.
// Simple is nil when the staff member has no simple projects there.
type RegionGroup struct {
	Code        string
	DisplayName string
	Simple      *Group
	Complex     []Group
}

// Group is a titled, togglable list with an optional open panel.
type Group struct {
	Title string
	Items []Item
	Open  *Positions
}

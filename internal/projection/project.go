package projection

import (
	"slices"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/catalog"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/navigation"
)

// Dashboard titles.
const (
	HomeTitle         = "Company Recruitment Dashboard"
	RegionTitlePrefix = "Region: "
	StaffTitlePrefix  = "Recruitment Staff: "
)

// Project computes the model for the screen selected by state. Selections
// that no longer occur in ds produce empty drill-down sections.
func Project(ds *domain.Dataset, state navigation.State) Model {
	switch state.Mode {
	case domain.ModeRegion:
		rm := projectRegion(ds, state)
		return Model{Mode: domain.ModeRegion, Title: RegionTitlePrefix + rm.DisplayName, Region: rm}
	case domain.ModeStaff:
		sm := projectStaff(ds, state)
		return Model{Mode: domain.ModeStaff, Title: StaffTitlePrefix + sm.Name, Staff: sm}
	default:
		return Model{Mode: domain.ModeHome, Title: HomeTitle, Home: projectHome(ds)}
	}
}

func projectHome(ds *domain.Dataset) *HomeModel {
	all := ds.Records()
	hm := &HomeModel{}
	for _, code := range catalog.OrderRegions(catalog.Distinct(all, catalog.RegionOf)) {
		hm.Regions = append(hm.Regions, regionItem(code))
	}
	for _, s := range catalog.OrderStaff(catalog.Distinct(all, catalog.StaffOf)) {
		hm.Staff = append(hm.Staff, staffItem(s))
	}
	return hm
}

func projectRegion(ds *domain.Dataset, state navigation.State) *RegionModel {
	region := state.Region
	rows := ds.Where(domain.Match{Region: region})
	rm := &RegionModel{Code: region, DisplayName: domain.RegionDisplayName(region)}

	for _, s := range catalog.OrderStaff(catalog.Distinct(rows, catalog.StaffOf)) {
		rm.StaffSidebar = append(rm.StaffSidebar, staffItem(s))
	}

	projects := catalog.OrderGeneric(catalog.Distinct(rows, catalog.ProjectOf))
	for _, p := range projects {
		rm.Projects = append(rm.Projects, Item{
			Label:  p,
			Value:  p,
			Active: p == state.Drill.Project,
			Event:  navigation.ProjectToggled{Project: p},
		})
	}

	project := state.Drill.Project
	if project == "" || !slices.Contains(projects, project) {
		return rm
	}
	rm.Project = project
	projRows := ds.Where(domain.Match{Region: region, Project: project})

	if catalog.IsSimpleProject(ds, region, project) {
		rm.Simple = true
		rm.Positions = regionPositions(project, projRows)
		return rm
	}

	subs := catalog.OrderGeneric(catalog.Distinct(projRows, catalog.SubDivisionOf))
	group := &Group{Title: "Sub-divisions for " + project}
	for _, sd := range subs {
		group.Items = append(group.Items, Item{
			Label:  sd,
			Value:  sd,
			Active: sd == state.Drill.Subdivision,
			Event:  navigation.SubdivisionToggled{Subdivision: sd},
		})
	}
	rm.Subdivisions = group

	sd := state.Drill.Subdivision
	if sd != "" && slices.Contains(subs, sd) {
		leaf := ds.Where(domain.Match{Region: region, Project: project, SubDivision: sd})
		rm.Positions = regionPositions(sd, leaf)
	}
	return rm
}

func projectStaff(ds *domain.Dataset, state navigation.State) *StaffModel {
	staff := state.Staff
	rows := ds.Where(domain.Match{StaffLead: staff})
	sm := &StaffModel{Name: staff}

	regions := catalog.OrderRegions(catalog.Distinct(rows, catalog.RegionOf))
	for _, code := range regions {
		sm.Regions = append(sm.Regions, regionItem(code))
	}

	for _, code := range regions {
		sm.Groups = append(sm.Groups, staffRegionGroup(ds, state, code))
	}
	return sm
}

// staffRegionGroup partitions the staff member's projects in one region.
// Simplicity is always judged on the whole dataset.
func staffRegionGroup(ds *domain.Dataset, state navigation.State, code string) RegionGroup {
	display := domain.RegionDisplayName(code)
	rg := RegionGroup{Code: code, DisplayName: display}
	staffRows := ds.Where(domain.Match{Region: code, StaffLead: state.Staff})

	var simple, complexProjects []string
	for _, p := range catalog.OrderGeneric(catalog.Distinct(staffRows, catalog.ProjectOf)) {
		if catalog.IsSimpleProject(ds, code, p) {
			simple = append(simple, p)
		} else {
			complexProjects = append(complexProjects, p)
		}
	}

	if len(simple) > 0 {
		open, _ := state.OpenSimpleProject(code)
		g := &Group{Title: "Managed projects in " + display}
		for _, p := range simple {
			g.Items = append(g.Items, Item{
				Label:  p,
				Value:  p,
				Active: p == open,
				Event:  navigation.StaffGroupToggled{Key: navigation.SimpleKey(code, p)},
			})
		}
		if open != "" && slices.Contains(simple, open) {
			leaf := domain.Match{Region: code, Project: open, SubDivision: open, StaffLead: state.Staff}
			g.Open = staffPositions(open, ds.Where(leaf))
		}
		rg.Simple = g
	}

	for _, p := range complexProjects {
		projRows := ds.Where(domain.Match{Region: code, Project: p, StaffLead: state.Staff})
		subs := catalog.OrderGeneric(catalog.Distinct(projRows, catalog.SubDivisionOf))
		open, _ := state.OpenSubdivision(code, p)
		g := Group{Title: "Managed sub-divisions in " + p + " (" + display + ")"}
		for _, sd := range subs {
			g.Items = append(g.Items, Item{
				Label:  sd,
				Value:  sd,
				Active: sd == open,
				Event: navigation.StaffGroupToggled{Key: navigation.GroupKey{
					Region: code, Project: p, SubDivision: sd,
				}},
			})
		}
		if open != "" && slices.Contains(subs, open) {
			leaf := domain.Match{Region: code, Project: p, SubDivision: open, StaffLead: state.Staff}
			g.Open = staffPositions(open, ds.Where(leaf))
		}
		rg.Complex = append(rg.Complex, g)
	}
	return rg
}

func regionPositions(name string, rows []domain.Record) *Positions {
	staff, vacancy := catalog.FormatStaffForDisplay(catalog.Distinct(rows, catalog.StaffOf))
	return &Positions{
		Title:   "Open Positions in " + name,
		Staff:   staff,
		Vacancy: vacancy,
		Roles:   catalog.OrderRoles(catalog.Distinct(rows, catalog.RoleOf)),
	}
}

func staffPositions(name string, rows []domain.Record) *Positions {
	return &Positions{
		Title: "Open Positions in " + name,
		Roles: catalog.OrderRoles(catalog.Distinct(rows, catalog.RoleOf)),
	}
}

func regionItem(code string) Item {
	return Item{
		Label: domain.RegionDisplayName(code),
		Value: code,
		Event: navigation.RegionSelected{Region: code},
	}
}

func staffItem(name string) Item {
	return Item{Label: name, Value: name, Event: navigation.StaffSelected{Staff: name}}
}

package formatter

import (
	"strings"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/projection"
)

// Section headings and captions shared by the TUI and the plain commands.
const (
	SectionRegions        = "Browse by Region"
	SectionStaff          = "Browse by Recruitment Staff"
	SectionProjects       = "Projects"
	SectionRegionStaff    = "Staff in this Region"
	SectionStaffRegions   = "Associated Regions"
	CaptionRegions        = "See all current projects in a specific region."
	CaptionStaff          = "See all sub-divisions managed by a specific staff member."
	CaptionProjects       = "Select a project to view sub-divisions or positions."
	CaptionSubdivisions   = "Select a sub-division."
	CaptionRegionStaff    = "Recruitment staff active in this region."
	CaptionStaffRegions   = "Regions where this staff member is active."
	CaptionManagedSimple  = "Click to view open positions."
	CaptionManagedComplex = "Click a sub-division to view open positions."
)

// FormatScreen renders a projected screen as static text, with every open
// panel expanded. It is the non-interactive counterpart of the TUI.
func FormatScreen(m projection.Model) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(m.Title))
	b.WriteString("\n\n")

	switch {
	case m.Home != nil:
		writeItemSection(&b, SectionRegions, CaptionRegions, m.Home.Regions)
		writeItemSection(&b, SectionStaff, CaptionStaff, m.Home.Staff)
	case m.Region != nil:
		r := m.Region
		writeItemSection(&b, SectionProjects, CaptionProjects, r.Projects)
		if r.Subdivisions != nil {
			writeItemSection(&b, r.Subdivisions.Title, CaptionSubdivisions, r.Subdivisions.Items)
		}
		if r.Positions != nil {
			b.WriteString(RenderPositions(r.Positions))
			b.WriteString("\n\n")
		}
		writeItemSection(&b, SectionRegionStaff, CaptionRegionStaff, r.StaffSidebar)
	case m.Staff != nil:
		s := m.Staff
		writeItemSection(&b, SectionStaffRegions, CaptionStaffRegions, s.Regions)
		for _, rg := range s.Groups {
			if rg.Simple != nil {
				writeGroup(&b, *rg.Simple, CaptionManagedSimple)
			}
			for _, g := range rg.Complex {
				writeGroup(&b, g, CaptionManagedComplex)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeItemSection(b *strings.Builder, title, caption string, items []projection.Item) {
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(Caption(caption))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString("  " + Dim("(none)") + "\n\n")
		return
	}
	for _, it := range items {
		b.WriteString("  " + Toggle(it.Active) + " " + ItemLabel(it) + "\n")
	}
	b.WriteString("\n")
}

func writeGroup(b *strings.Builder, g projection.Group, caption string) {
	writeItemSection(b, g.Title, caption, g.Items)
	if g.Open != nil {
		b.WriteString(RenderPositions(g.Open))
		b.WriteString("\n\n")
	}
}

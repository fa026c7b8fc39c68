package cli

import (
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/cli/formatter"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/projection"
)

type rowKind int

const (
	rowSection rowKind = iota
	rowSubsection
	rowCaption
	rowItem
	rowPanel
	rowBlank
)

// row is one block of the dashboard screen. Only rowItem rows are selectable.
type row struct {
	kind      rowKind
	text      string
	item      projection.Item
	positions *projection.Positions
}

// screenRows flattens a projected screen into display order.
func screenRows(m projection.Model) []row {
	var rows []row
	section := func(kind rowKind, title, caption string, items []projection.Item) {
		rows = append(rows, row{kind: kind, text: title})
		if caption != "" {
			rows = append(rows, row{kind: rowCaption, text: caption})
		}
		for _, it := range items {
			rows = append(rows, row{kind: rowItem, item: it})
		}
		rows = append(rows, row{kind: rowBlank})
	}
	panel := func(p *projection.Positions) {
		if p != nil {
			rows = append(rows, row{kind: rowPanel, positions: p}, row{kind: rowBlank})
		}
	}

	switch {
	case m.Home != nil:
		section(rowSection, formatter.SectionRegions, formatter.CaptionRegions, m.Home.Regions)
		section(rowSection, formatter.SectionStaff, formatter.CaptionStaff, m.Home.Staff)
	case m.Region != nil:
		r := m.Region
		section(rowSection, formatter.SectionProjects, formatter.CaptionProjects, r.Projects)
		if r.Subdivisions != nil {
			section(rowSubsection, r.Subdivisions.Title, formatter.CaptionSubdivisions, r.Subdivisions.Items)
		}
		panel(r.Positions)
		section(rowSection, formatter.SectionRegionStaff, formatter.CaptionRegionStaff, r.StaffSidebar)
	case m.Staff != nil:
		s := m.Staff
		section(rowSection, formatter.SectionStaffRegions, formatter.CaptionStaffRegions, s.Regions)
		for _, rg := range s.Groups {
			if rg.Simple != nil {
				section(rowSubsection, rg.Simple.Title, formatter.CaptionManagedSimple, rg.Simple.Items)
				panel(rg.Simple.Open)
			}
			for _, g := range rg.Complex {
				section(rowSubsection, g.Title, formatter.CaptionManagedComplex, g.Items)
				panel(g.Open)
			}
		}
	}
	return rows
}

// selectableRows returns the indexes of item rows.
func selectableRows(rows []row) []int {
	var idx []int
	for i, r := range rows {
		if r.kind == rowItem {
			idx = append(idx, i)
		}
	}
	return idx
}

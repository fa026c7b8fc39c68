package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/repository"
)

// DefaultWrap is the report width when the terminal size is unknown.
const DefaultWrap = 80

// ReportData is everything the markdown report draws from.
type ReportData struct {
	Load      *domain.DatasetLoad
	Summary   repository.Summary
	ByRegion  []repository.Count
	ByStaff   []repository.Count
	Vacancies []domain.Record
}

// ReportMarkdown writes the recruitment report as GitHub-flavored markdown.
func ReportMarkdown(d ReportData) string {
	var b strings.Builder
	b.WriteString("# Company Recruitment Report\n\n")
	if d.Load != nil {
		fmt.Fprintf(&b, "_Source `%s`, loaded %s._\n\n", d.Load.Source, d.Load.LoadedAt.Format(time.DateTime))
	}

	b.WriteString("## Totals\n\n")
	b.WriteString("| Total | Count |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Records | %d |\n", d.Summary.Records)
	fmt.Fprintf(&b, "| Regions | %d |\n", d.Summary.Regions)
	fmt.Fprintf(&b, "| Projects | %d |\n", d.Summary.Projects)
	fmt.Fprintf(&b, "| Sub-divisions | %d |\n", d.Summary.SubDivisions)
	fmt.Fprintf(&b, "| Recruitment staff | %d |\n", d.Summary.Staff)
	fmt.Fprintf(&b, "| Roles | %d |\n", d.Summary.Roles)
	fmt.Fprintf(&b, "| Manager vacancies | %d |\n\n", d.Summary.Vacancies)

	b.WriteString("## Records by Region\n\n")
	b.WriteString("| Region | Records |\n|---|---:|\n")
	for _, c := range d.ByRegion {
		fmt.Fprintf(&b, "| %s | %d |\n", escapeCell(domain.RegionDisplayName(c.Value)), c.Count)
	}
	b.WriteString("\n## Records by Recruitment Staff\n\n")
	b.WriteString("| Staff | Records |\n|---|---:|\n")
	for _, c := range d.ByStaff {
		fmt.Fprintf(&b, "| %s | %d |\n", escapeCell(c.Value), c.Count)
	}

	b.WriteString("\n## Manager Vacancies\n\n")
	if len(d.Vacancies) == 0 {
		b.WriteString("Every position has recruitment staff assigned.\n")
		return b.String()
	}
	for _, r := range d.Vacancies {
		place := r.Project
		if r.SubDivision != r.Project {
			place += " / " + r.SubDivision
		}
		fmt.Fprintf(&b, "- **%s**, %s: %s\n", domain.RegionDisplayName(r.Region), place, r.Role)
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderMarkdown renders md for a terminal of the given width. Without
// styling the "notty" style is used so the output stays plain text.
func RenderMarkdown(md string, width int, styled bool) (string, error) {
	if width <= 0 {
		width = DefaultWrap
	}
	style := "notty"
	if styled {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

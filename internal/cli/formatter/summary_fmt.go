package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/repository"
)

// FormatSummary renders dataset totals and the per-region record counts.
func FormatSummary(s repository.Summary, byRegion []repository.Count, load *domain.DatasetLoad) string {
	var b strings.Builder

	if load != nil {
		b.WriteString(Dim(fmt.Sprintf("Source %s, %d rows, loaded %s", load.Source, load.Rows, load.LoadedAt.Format(time.DateTime))))
		b.WriteString("\n\n")
	}

	totals := [][]string{
		{"Records", strconv.Itoa(s.Records)},
		{"Regions", strconv.Itoa(s.Regions)},
		{"Projects", strconv.Itoa(s.Projects)},
		{"Sub-divisions", strconv.Itoa(s.SubDivisions)},
		{"Recruitment staff", strconv.Itoa(s.Staff)},
		{"Roles", strconv.Itoa(s.Roles)},
	}
	vacancies := strconv.Itoa(s.Vacancies)
	if s.Vacancies > 0 {
		vacancies = StyleYellow.Render(vacancies)
	}
	totals = append(totals, []string{"Manager vacancies", vacancies})
	b.WriteString(RenderBox("Dataset", strings.TrimRight(RenderTable([]string{"TOTAL", "COUNT"}, totals, AlignLeft, AlignRight), "\n")))
	b.WriteString("\n\n")

	b.WriteString(Header("Records by Region"))
	b.WriteString("\n")
	if len(byRegion) == 0 {
		b.WriteString(Dim("No records.") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(byRegion))
	for _, c := range byRegion {
		rows = append(rows, []string{c.Value, domain.RegionDisplayName(c.Value), strconv.Itoa(c.Count)})
	}
	b.WriteString(RenderTable([]string{"CODE", "REGION", "RECORDS"}, rows, AlignLeft, AlignLeft, AlignRight))
	return b.String()
}

// FormatLoadHistory lists stored loads, newest first. Nothing is rendered
// for fewer than two loads since the summary already shows the latest one.
func FormatLoadHistory(loads []*domain.DatasetLoad) string {
	if len(loads) < 2 {
		return ""
	}
	rows := make([][]string, 0, len(loads))
	for _, l := range loads {
		rows = append(rows, []string{l.LoadedAt.Format(time.DateTime), strconv.Itoa(l.Rows), l.StaffPolicy, l.Source})
	}
	var b strings.Builder
	b.WriteString(Header("Load History"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"LOADED", "ROWS", "STAFF POLICY", "SOURCE"}, rows, AlignLeft, AlignRight, AlignLeft, AlignLeft))
	return b.String()
}

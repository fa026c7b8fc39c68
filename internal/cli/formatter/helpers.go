package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/projection"
)

// VacancyWarning is shown when a selection has no recruitment staff.
const VacancyWarning = "Manager required: no recruitment staff assigned"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(title) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Caption renders the dim helper line printed under a section header.
func Caption(text string) string {
	return StyleDim.Italic(true).Render(text)
}

// Toggle renders the selected/unselected marker for an item.
func Toggle(active bool) string {
	if active {
		return StyleGreen.Render("●")
	}
	return StyleDim.Render("○")
}

// ItemLabel renders an item label, highlighted when it is the active selection.
func ItemLabel(it projection.Item) string {
	if it.Active {
		return StyleGreen.Bold(true).Render(it.Label)
	}
	return StyleFg.Render(it.Label)
}

// PositionsBody renders the lines of an open positions panel: the staff
// summary when present, the vacancy warning and one bullet per role.
func PositionsBody(p *projection.Positions) string {
	var lines []string
	if p.Staff != "" {
		lines = append(lines, Bold("Supervising Staff: ")+StyleFg.Render(p.Staff))
	}
	if p.Vacancy {
		lines = append(lines, Warning(VacancyWarning))
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	if len(p.Roles) == 0 {
		lines = append(lines, Dim("No open roles."))
	}
	for _, r := range p.Roles {
		lines = append(lines, StyleDim.Render("•")+" "+StyleFg.Render(r))
	}
	return strings.Join(lines, "\n")
}

// RenderPositions renders an open positions panel in a box.
func RenderPositions(p *projection.Positions) string {
	if p == nil {
		return ""
	}
	return RenderBox(p.Title, PositionsBody(p))
}

// Truncate shortens s to width display cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

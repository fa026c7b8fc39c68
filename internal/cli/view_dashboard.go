package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/cli/formatter"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/navigation"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/projection"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/repository"
)

// ── messages ─────────────────────────────────────────────────────────────────

// datasetLoadedMsg carries the dataset fetched on startup. It is installed
// into the session by Update, never by the Cmd that fetched it.
type datasetLoadedMsg struct {
	ds  *domain.Dataset
	err error
}

// datasetRefreshedMsg carries a re-fetched dataset. On error ds is nil and
// the session keeps the previous one.
type datasetRefreshedMsg struct {
	ds  *domain.Dataset
	err error
}

// dispatchMsg asks the dashboard to apply a navigation event.
type dispatchMsg struct {
	event navigation.Event
}

func dispatchCmd(ev navigation.Event) tea.Cmd {
	return func() tea.Msg { return dispatchMsg{event: ev} }
}

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView renders the current screen of the session and turns key
// presses into navigation events.
type dashboardView struct {
	state      *SharedState
	loading    bool
	refreshing bool
	err        error
	notice     string

	model  projection.Model
	rows   []row
	items  []int // indexes of selectable rows
	cursor int   // index into items
	offset int   // first visible body line
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state:   state,
		loading: true,
	}
}

func (v *dashboardView) ID() ViewID { return ViewDashboard }

func (v *dashboardView) Title() string {
	if v.model.Title == "" {
		return "Dashboard"
	}
	return v.model.Title
}

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "jump")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "summary")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

// ── data loading ─────────────────────────────────────────────────────────────

// loadData and refreshData only fetch. The session is mutated on the event
// loop when their message arrives.
func (v *dashboardView) loadData() tea.Cmd {
	datasets := v.state.App.Datasets
	return func() tea.Msg {
		ds, err := datasets.Load(context.Background())
		return datasetLoadedMsg{ds: ds, err: err}
	}
}

func (v *dashboardView) refreshData() tea.Cmd {
	datasets := v.state.App.Datasets
	return func() tea.Msg {
		ds, err := datasets.Refresh(context.Background())
		return datasetRefreshedMsg{ds: ds, err: err}
	}
}

// summaryHistoryLimit caps the loads listed under the summary.
const summaryHistoryLimit = 5

func (v *dashboardView) loadSummary() tea.Cmd {
	datasets := v.state.App.Datasets
	return func() tea.Msg {
		ctx := context.Background()
		summary, err := datasets.Summary(ctx)
		if err != nil {
			return cmdOutputMsg{output: formatter.Error(err.Error())}
		}
		byRegion, err := datasets.CountBy(ctx, repository.DimRegion)
		if err != nil {
			return cmdOutputMsg{output: formatter.Error(err.Error())}
		}
		load, _ := datasets.LatestLoad(ctx)
		out := formatter.FormatSummary(summary, byRegion, load)
		if loads, err := datasets.LoadHistory(ctx, summaryHistoryLimit); err == nil {
			if history := formatter.FormatLoadHistory(loads); history != "" {
				out += "\n" + history
			}
		}
		return cmdOutputMsg{output: out}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case datasetLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.setModel(v.state.App.Session.Install(msg.ds), "")
		}
		return v, nil

	case datasetRefreshedMsg:
		v.refreshing = false
		if msg.err != nil {
			if v.err != nil {
				v.err = msg.err
			}
			v.notice = formatter.Error("Refresh failed: " + msg.err.Error())
			return v, nil
		}
		v.err = nil
		v.notice = formatter.StyleGreen.Render("✔ Dataset refreshed")
		v.setModel(v.state.App.Session.Install(msg.ds), v.selectedKey())
		return v, nil

	case dispatchMsg:
		v.dispatch(msg.event)
		return v, nil

	case tea.WindowSizeMsg:
		v.scrollToCursor()
		return v, nil

	case tea.KeyMsg:
		return v.updateKey(msg)
	}
	return v, nil
}

func (v *dashboardView) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.loading {
		return v, nil
	}
	if msg.String() == "r" {
		if v.refreshing {
			return v, nil
		}
		v.refreshing = true
		v.notice = formatter.Dim("Refreshing...")
		return v, v.refreshData()
	}
	if v.err != nil {
		return v, nil
	}

	v.notice = ""
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
		v.scrollToCursor()
	case "down", "j":
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}
		v.scrollToCursor()
	case "tab":
		v.nextSection()
		v.scrollToCursor()
	case "enter", " ":
		if it, ok := v.selected(); ok {
			v.dispatch(it.Event)
		}
	case "h", "esc":
		v.dispatch(navigation.HomeRequested{})
	case "g", "/":
		return v, startQuickJump(v.state)
	case "s":
		return v, v.loadSummary()
	}
	return v, nil
}

// dispatch applies ev through the session and re-renders the new screen.
func (v *dashboardView) dispatch(ev navigation.Event) {
	if ev == nil {
		return
	}
	model := v.state.App.Session.Dispatch(context.Background(), ev)
	v.setModel(model, ev.String())
}

// setModel replaces the screen. The cursor stays on the item whose event
// matches keep, falls back to the first active item, then to the top.
func (v *dashboardView) setModel(m projection.Model, keep string) {
	prevMode := v.model.Mode
	v.model = m
	v.rows = screenRows(m)
	v.items = selectableRows(v.rows)
	v.cursor = 0
	if prevMode != m.Mode {
		v.offset = 0
	}

	found := false
	if keep != "" {
		for i, idx := range v.items {
			if ev := v.rows[idx].item.Event; ev != nil && ev.String() == keep {
				v.cursor, found = i, true
				break
			}
		}
	}
	if !found {
		for i, idx := range v.items {
			if v.rows[idx].item.Active {
				v.cursor = i
				break
			}
		}
	}
	v.scrollToCursor()
}

func (v *dashboardView) selected() (projection.Item, bool) {
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return projection.Item{}, false
	}
	return v.rows[v.items[v.cursor]].item, true
}

func (v *dashboardView) selectedKey() string {
	if it, ok := v.selected(); ok && it.Event != nil {
		return it.Event.String()
	}
	return ""
}

// nextSection moves the cursor to the first item after the next heading,
// wrapping to the top.
func (v *dashboardView) nextSection() {
	if len(v.items) == 0 {
		return
	}
	for i := v.cursor + 1; i < len(v.items); i++ {
		for r := v.items[i-1] + 1; r < v.items[i]; r++ {
			if k := v.rows[r].kind; k == rowSection || k == rowSubsection {
				v.cursor = i
				return
			}
		}
	}
	v.cursor = 0
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *dashboardView) bodyHeight() int {
	if v.state.Height == 0 {
		return 0
	}
	return max(v.state.ContentHeight()-3, 1)
}

func (v *dashboardView) scrollToCursor() {
	h := v.bodyHeight()
	if h == 0 {
		return
	}
	lines, cursorLine := v.renderLines()
	switch {
	case cursorLine < 0:
		v.offset = 0
	case cursorLine < v.offset:
		v.offset = max(cursorLine-2, 0)
	case cursorLine >= v.offset+h:
		v.offset = cursorLine - h + 1
	}
	v.offset = min(v.offset, max(len(lines)-h, 0))
}

// renderLines renders the body and reports the line holding the cursor,
// or -1 when nothing is selectable.
func (v *dashboardView) renderLines() ([]string, int) {
	var lines []string
	cursorLine := -1
	sel := -1
	if v.cursor >= 0 && v.cursor < len(v.items) {
		sel = v.items[v.cursor]
	}

	for i, r := range v.rows {
		switch r.kind {
		case rowSection:
			lines = append(lines, strings.Split(formatter.Header(r.text), "\n")...)
		case rowSubsection:
			lines = append(lines, formatter.Subheader(r.text))
		case rowCaption:
			lines = append(lines, formatter.Caption(r.text))
		case rowItem:
			pointer := "  "
			if i == sel {
				pointer = formatter.StyleGreen.Render("▸ ")
				cursorLine = len(lines)
			}
			it := r.item
			if w := v.state.Width - 6; w > 0 {
				it.Label = formatter.Truncate(it.Label, w)
			}
			label := formatter.ItemLabel(it)
			if i == sel && !it.Active {
				label = formatter.Bold(it.Label)
			}
			lines = append(lines, pointer+formatter.Toggle(it.Active)+" "+label)
		case rowPanel:
			for _, l := range strings.Split(formatter.RenderPositions(r.positions), "\n") {
				lines = append(lines, "  "+l)
			}
		case rowBlank:
			lines = append(lines, "")
		}
	}
	return lines, cursorLine
}

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading recruitment data...")
	}
	if v.err != nil {
		return "\n" + v.renderError()
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(v.model.Title))
	b.WriteString("\n")
	if v.notice != "" {
		b.WriteString(v.notice)
	}
	b.WriteString("\n")

	lines, _ := v.renderLines()
	if h := v.bodyHeight(); h > 0 {
		end := min(v.offset+h, len(lines))
		lines = lines[min(v.offset, end):end]
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

func (v *dashboardView) renderError() string {
	if domain.IsEmptyDataset(v.err) {
		return formatter.RenderBox("Empty dataset",
			formatter.Warning("The data source seems empty or could not be read.")+"\n"+
				formatter.Dim(v.err.Error())+"\n\n"+formatter.Dim("r: retry  q: quit"))
	}
	return formatter.RenderBox("Error parsing data",
		formatter.Error(v.err.Error())+"\n\n"+formatter.Dim("r: retry  q: quit"))
}

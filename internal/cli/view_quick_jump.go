package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/cli/formatter"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/navigation"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/projection"
)

// jumpTarget is one quick jump destination.
type jumpTarget struct {
	label string
	event navigation.Event
}

// quickJumpTargets lists every region, then every staff member, in home
// screen order. The events are the ones the home screen dispatches.
func quickJumpTargets(ds *domain.Dataset) []jumpTarget {
	if ds.Len() == 0 {
		return nil
	}
	home := projection.Project(ds, navigation.New()).Home
	targets := make([]jumpTarget, 0, len(home.Regions)+len(home.Staff))
	for _, it := range home.Regions {
		targets = append(targets, jumpTarget{label: "Region: " + it.Label, event: it.Event})
	}
	for _, it := range home.Staff {
		targets = append(targets, jumpTarget{label: "Staff: " + it.Label, event: it.Event})
	}
	return targets
}

// quickJumpForm builds a select over targets. The highlighted target's
// event string is written to result.
func quickJumpForm(targets []jumpTarget, result *string) *huh.Form {
	if len(targets) == 0 {
		return nil
	}
	options := make([]huh.Option[string], 0, len(targets))
	for _, t := range targets {
		options = append(options, huh.NewOption(t.label, t.event.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Go to region or staff").
				Options(options...).
				Value(result),
		),
	).WithTheme(quickJumpTheme()).WithShowHelp(false)
}

func quickJumpTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// quickJumpView puts the quick jump form on the stack. Submitting it closes
// the form and dispatches the chosen event to the dashboard underneath.
type quickJumpView struct {
	form    *huh.Form
	targets []jumpTarget
	choice  string
}

// newQuickJumpView returns nil when ds has nothing to jump to.
func newQuickJumpView(ds *domain.Dataset) *quickJumpView {
	targets := quickJumpTargets(ds)
	if len(targets) == 0 {
		return nil
	}
	v := &quickJumpView{targets: targets, choice: targets[0].event.String()}
	v.form = quickJumpForm(targets, &v.choice)
	return v
}

// startQuickJump opens the quick jump form over the dashboard.
func startQuickJump(state *SharedState) tea.Cmd {
	v := newQuickJumpView(state.App.Session.Dataset())
	if v == nil {
		return outputCmd(formatter.Warning("Nothing to jump to."))
	}
	return pushView(v)
}

// selected returns the command dispatching the chosen target. choice starts
// on the first target, so this is nil only when choice names no target.
func (v *quickJumpView) selected() tea.Cmd {
	for _, t := range v.targets {
		if t.event.String() == v.choice {
			return dispatchCmd(t.event)
		}
	}
	return nil
}

func (v *quickJumpView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *quickJumpView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyEsc {
		return v, closeForm(outputCmd(formatter.Dim("Cancelled.")))
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		return v, closeForm(tea.Batch(cmd, v.selected()))
	case huh.StateAborted:
		return v, closeForm(outputCmd(formatter.Dim("Cancelled.")))
	}
	return v, cmd
}

func (v *quickJumpView) View() string {
	return "\n" + v.form.View()
}

func (v *quickJumpView) ID() ViewID    { return ViewForm }
func (v *quickJumpView) Title() string { return "Quick Jump" }

func (v *quickJumpView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies a kind of view on the stack.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewForm
)

// View is a screen on the appModel's stack.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// Stack and output messages. Views request transitions with these and the
// appModel applies them in Update.

type pushViewMsg struct {
	view View
}

type popViewMsg struct{}

// cmdOutputMsg shows text over the current view until a key dismisses it.
type cmdOutputMsg struct {
	output string
}

// formClosedMsg pops a form and then runs next, in that order, so next
// lands on the view underneath.
type formClosedMsg struct {
	next tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// outputCmd shows s as transient output. Empty output is a no-op.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// closeForm pops the active form and runs next.
func closeForm(next tea.Cmd) tea.Cmd {
	return func() tea.Msg { return formClosedMsg{next: next} }
}

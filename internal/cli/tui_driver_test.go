package cli

import (
	"testing"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/teatest"
)

// TestDriver wraps teatest.Driver with dashboard-specific inspection methods.
// It reaches appModel internals (view stack, dashboard cursor, session state)
// that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
	app *App
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init(), which
// loads the dataset synchronously.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 60))
	d.DrainInit()

	return &TestDriver{Driver: d, app: app}
}

// ── high-level helpers ───────────────────────────────────────────────────────

// Select moves the cursor to the item labelled label and presses Enter.
// It fails the test when no such item is on screen.
func (d *TestDriver) Select(label string) {
	d.T.Helper()
	dv := d.Dashboard()
	for i, idx := range dv.items {
		if dv.rows[idx].item.Label == label {
			for dv.cursor < i {
				d.PressDown()
				dv = d.Dashboard()
			}
			for dv.cursor > i {
				d.PressUp()
				dv = d.Dashboard()
			}
			d.PressEnter()
			return
		}
	}
	d.T.Fatalf("no item %q on screen %q", label, dv.model.Title)
}

// ── inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Dashboard returns the dashboard view at the bottom of the stack.
func (d *TestDriver) Dashboard() *dashboardView {
	return d.appModel().viewStack[0].(*dashboardView)
}

// Mode returns the session's current screen.
func (d *TestDriver) Mode() domain.ViewMode {
	return d.app.Session.State().Mode
}

// Selected returns the label under the cursor.
func (d *TestDriver) Selected() string {
	it, _ := d.Dashboard().selected()
	return it.Label
}

// Screen returns the rendered view without escape codes.
func (d *TestDriver) Screen() string {
	return stripANSI(d.View())
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput returns the transient output displayed in the content area.
func (d *TestDriver) LastOutput() string {
	return stripANSI(d.appModel().lastOutput)
}

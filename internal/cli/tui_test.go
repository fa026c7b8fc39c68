package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/navigation"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/testutil"
)

func TestTUI_HomeLoadsOnStartup(t *testing.T) {
	d := NewTestDriver(t, sampleApp(t))

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Equal(t, domain.ModeHome, d.Mode())

	screen := d.Screen()
	assert.Contains(t, screen, "Company Recruitment Dashboard")
	assert.Contains(t, screen, "Kingdom of Saudi Arabia")
	assert.Contains(t, screen, "Manager Required")
	assert.Contains(t, screen, "8 records")
	assert.NotContains(t, screen, "Loading")
	assert.Equal(t, "Kingdom of Saudi Arabia", d.Selected())
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, sampleApp(t))
	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, sampleApp(t))
	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}

func TestTUI_CursorMovesAndClamps(t *testing.T) {
	d := NewTestDriver(t, sampleApp(t))

	d.PressUp()
	assert.Equal(t, "Kingdom of Saudi Arabia", d.Selected())

	d.PressDown()
	assert.Equal(t, "United Arab Emirates", d.Selected())
	d.PressKey('j')
	assert.Equal(t, "Unspecified Region", d.Selected())
	d.PressKey('k')
	assert.Equal(t, "United Arab Emirates", d.Selected())

	for range 20 {
		d.PressDown()
	}
	assert.Equal(t, domain.Unspecified, d.Selected())
}

func TestTUI_TabJumpsToNextSection(t *testing.T) {
	d := NewTestDriver(t, sampleApp(t))

	d.PressTab()
	assert.Equal(t, domain.ManagerRequired, d.Selected())

	d.PressTab()
	assert.Equal(t, "Kingdom of Saudi Arabia", d.Selected(), "wraps to the top")
}

func TestTUI_RegionDrillDown(t *testing.T) {
	d := NewTestDriver(t, sampleApp(t))

	d.Select("United Arab Emirates")
	require.Equal(t, domain.ModeRegion, d.Mode())
	assert.Contains(t, d.Screen(), "Region: United Arab Emirates")
	assert.Contains(t, d.Screen(), "STAFF IN THIS REGION")
	assert.Equal(t, "Alpha", d.Selected())

	d.Select("Beta")
	assert.Equal(t, "Beta", d.Selected(), "cursor stays on the toggled project")
	assert.Contains(t, d.Screen(), "Sub-divisions for Beta")
	assert.NotContains(t, d.Screen(), "Open Positions")

	d.Select("Beta South")
	screen := d.Screen()
	assert.Contains(t, screen, "Open Positions in Beta South")
	assert.Contains(t, screen, "Supervising Staff: Eli")
	assert.Contains(t, screen, "Manager required")
	assert.Contains(t, screen, "Welder")

	d.Select("Beta")
	assert.NotContains(t, d.Screen(), "Sub-divisions for Beta")
	assert.Equal(t, navigation.Drill{}, d.app.Session.State().Drill)
}

func TestTUI_SimpleProjectShowsPositions(t *testing.T) {
	d := NewTestDriver(t, sampleApp(t))

	d.Select("United Arab Emirates")
	d.Select("Alpha")

	screen := d.Screen()
	assert.Contains(t, screen, "Open Positions in Alpha")
	assert.Contains(t, screen, "Supervising Staff: Dana and Eli")
	assert.NotContains(t, screen, "Sub-divisions")
}

func TestTUI_SidebarsCrossNavigate(t *testing.T) {
	d := NewTestDriver(t, sampleApp(t))

	d.Select("United Arab Emirates")
	d.Select("Dana")
	require.Equal(t, domain.ModeStaff, d.Mode())
	assert.Contains(t, d.Screen(), "Recruitment Staff: Dana")
	assert.Contains(t, d.Screen(), "ASSOCIATED REGIONS")

	d.Select("Kingdom of Saudi Arabia")
	require.Equal(t, domain.ModeRegion, d.Mode())
	assert.Contains(t, d.Screen(), "Region: Kingdom of Saudi Arabia")
}

func TestTUI_StaffGroupToggle(t *testing.T) {
	d := NewTestDriver(t, sampleApp(t))

	d.Select("Dana")
	require.Equal(t, domain.ModeStaff, d.Mode())
	screen := d.Screen()
	assert.Contains(t, screen, "Managed sub-divisions in Beta (United Arab Emirates)")
	assert.NotContains(t, screen, "Open Positions")

	d.Select("Beta North")
	screen = d.Screen()
	assert.Contains(t, screen, "Open Positions in Beta North")
	assert.Contains(t, screen, "Driver")
	assert.NotContains(t, screen, "Supervising Staff")

	d.Select("Beta North")
	assert.NotContains(t, d.Screen(), "Open Positions")
}

func TestTUI_HomeKeys(t *testing.T) {
	for _, press := range []func(d *TestDriver){
		func(d *TestDriver) { d.PressKey('h') },
		func(d *TestDriver) { d.PressEsc() },
	} {
		d := NewTestDriver(t, sampleApp(t))
		d.Select("United Arab Emirates")
		d.Select("Beta")
		require.Equal(t, domain.ModeRegion, d.Mode())

		press(d)
		assert.Equal(t, domain.ModeHome, d.Mode())
		assert.Equal(t, navigation.New(), d.app.Session.State())
		assert.Contains(t, d.Screen(), "Company Recruitment Dashboard")
	}
}

func TestTUI_RefreshKeepsNavigation(t *testing.T) {
	path := testutil.WriteSampleCSV(t)
	d := NewTestDriver(t, testApp(t, path))

	d.Select("United Arab Emirates")
	d.Select("Beta")

	records := append(testutil.SampleRecords(),
		domain.Record{Region: "UAE", Project: "Beta", SubDivision: "Beta East", StaffLead: "Fay", Role: "Chef"})
	testutil.WriteCSV(t, path, records)

	d.PressKey('r')
	screen := d.Screen()
	assert.Contains(t, screen, "Dataset refreshed")
	assert.Contains(t, screen, "Beta East")
	assert.Contains(t, screen, "Fay")
	assert.Equal(t, "Beta", d.Selected())
	assert.Equal(t, "Beta", d.app.Session.State().Drill.Project)
}

func TestTUI_RefreshFailureKeepsDataset(t *testing.T) {
	path := testutil.WriteSampleCSV(t)
	d := NewTestDriver(t, testApp(t, path))
	d.Select("United Arab Emirates")

	require.NoError(t, os.WriteFile(path, []byte("Region\nUAE\n"), 0o644))
	d.PressKey('r')

	screen := d.Screen()
	assert.Contains(t, screen, "Refresh failed")
	assert.Contains(t, screen, "Region: United Arab Emirates")
	assert.Contains(t, screen, "Alpha")
}

func TestTUI_RefreshRunsBesideNavigation(t *testing.T) {
	path := testutil.WriteSampleCSV(t)
	d := NewTestDriver(t, testApp(t, path))
	before := d.app.Session.Dataset()

	records := append(testutil.SampleRecords(),
		domain.Record{Region: "UAE", Project: "Beta", SubDivision: "Beta East", StaffLead: "Fay", Role: "Chef"})
	testutil.WriteCSV(t, path, records)

	fetch := d.Dashboard().refreshData()
	done := make(chan tea.Msg, 1)
	go func() { done <- fetch() }()

	// Navigation keeps running on this goroutine while the fetch is in flight.
	for range 5 {
		d.PressEnter()
		d.PressKey('h')
	}

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("refresh did not finish")
	}
	require.IsType(t, datasetRefreshedMsg{}, msg)
	assert.Same(t, before, d.app.Session.Dataset(), "fetching must not touch the session")

	d.Send(msg)
	assert.NotSame(t, before, d.app.Session.Dataset())
	assert.Equal(t, len(records), d.app.Session.Dataset().Len())
	assert.Contains(t, d.Screen(), "Dataset refreshed")
}

func TestDashboard_RefreshIgnoredWhileInFlight(t *testing.T) {
	d := NewTestDriver(t, sampleApp(t))
	dv := d.Dashboard()
	r := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}

	_, first := dv.Update(r)
	require.NotNil(t, first)
	assert.True(t, dv.refreshing)

	_, second := dv.Update(r)
	assert.Nil(t, second, "a second refresh waits for the first")

	_, _ = dv.Update(first())
	assert.False(t, dv.refreshing)

	_, third := dv.Update(r)
	assert.NotNil(t, third)
}

func TestDashboard_KeysIgnoredWhileLoading(t *testing.T) {
	m := newAppModel(sampleApp(t))
	dv := m.viewStack[0].(*dashboardView)
	require.True(t, dv.loading)

	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'r'}},
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune{'g'}},
	} {
		_, cmd := dv.Update(k)
		assert.Nil(t, cmd, k.String())
	}
	assert.False(t, dv.refreshing)
	assert.False(t, m.state.App.Session.Loaded())
}

func TestTUI_LoadErrorBlocksDashboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("Region,Project\nUAE,Alpha\n"), 0o644))
	d := NewTestDriver(t, testApp(t, path))

	screen := d.Screen()
	assert.Contains(t, screen, "Error parsing data")
	assert.NotContains(t, screen, "Company Recruitment Dashboard")

	d.PressEnter()
	assert.Equal(t, domain.ModeHome, d.Mode())

	testutil.WriteCSV(t, path, testutil.SampleRecords())
	d.PressKey('r')
	assert.Contains(t, d.Screen(), "Company Recruitment Dashboard")
	assert.NotContains(t, d.Screen(), "Error parsing data")
}

func TestTUI_EmptyDatasetWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	testutil.WriteCSV(t, path, nil)
	d := NewTestDriver(t, testApp(t, path))

	screen := d.Screen()
	assert.Contains(t, screen, "The data source seems empty or could not be read.")
	assert.NotContains(t, screen, "Company Recruitment Dashboard")
}

func TestTUI_SummaryOutput(t *testing.T) {
	d := NewTestDriver(t, sampleApp(t))

	d.PressKey('s')
	out := d.LastOutput()
	assert.Regexp(t, `Records\s+8`, out)
	assert.Contains(t, out, "RECORDS BY REGION")

	d.PressKey('x')
	assert.Empty(t, d.LastOutput())
	assert.Equal(t, domain.ModeHome, d.Mode())
}

func TestTUI_SummaryListsLoadsAfterRefresh(t *testing.T) {
	d := NewTestDriver(t, sampleApp(t))

	d.PressKey('s')
	assert.NotContains(t, d.LastOutput(), "LOAD HISTORY")

	d.PressKey('x')
	d.PressKey('r')
	d.PressKey('s')
	out := d.LastOutput()
	assert.Contains(t, out, "LOAD HISTORY")
	assert.Regexp(t, `(?s)LOAD HISTORY.*\s8\s+unspecified.*\s8\s+unspecified`, out)
}

func TestTUI_QuickJumpOpensAndCancels(t *testing.T) {
	d := NewTestDriver(t, sampleApp(t))

	d.PressKey('g')
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())

	d.PressKey('q')
	assert.False(t, d.IsQuitting(), "forms receive q")

	d.PressEsc()
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Contains(t, d.LastOutput(), "Cancelled.")
	assert.Equal(t, domain.ModeHome, d.Mode())
}

func TestTUI_QuickJumpCompletionDispatches(t *testing.T) {
	d := NewTestDriver(t, sampleApp(t))

	d.PressKey('g')
	require.Equal(t, ViewForm, d.ActiveViewID())

	d.Send(formClosedMsg{next: dispatchCmd(navigation.StaffSelected{Staff: "Eli"})})
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Equal(t, domain.ModeStaff, d.Mode())
	assert.Contains(t, d.Screen(), "Recruitment Staff: Eli")
}

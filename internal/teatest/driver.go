// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and every returned Cmd is executed and fed back
// until the model settles, so a test observes the state after a keypress
// the way a user would, without starting a tea.Program.
package teatest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds one Send may execute.
const MaxDrainDepth = 100

// DefaultCmdTimeout is how long a single Cmd may run before it is dropped.
// Dataset loads run as Cmds, so it is generous; timer Cmds such as cursor
// blinks are filtered by the skip predicate rather than by the timeout.
const DefaultCmdTimeout = 2 * time.Second

// Driver is a synchronous harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg has been produced.
	Quitting bool

	// Seen records the type of every message fed to Update, in order.
	Seen []string

	timeout time.Duration
	skip    func(tea.Msg) bool
}

// Option configures a Driver.
type Option func(*Driver)

// New creates a Driver for model. Call DrainInit to run the model's Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, timeout: DefaultCmdTimeout, skip: isCursorBlink}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize sends a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// WithCmdTimeout overrides DefaultCmdTimeout.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.timeout = timeout }
}

// WithSkip drops messages matching fn in addition to cursor blinks.
func WithSkip(fn func(tea.Msg) bool) Option {
	return func(d *Driver) {
		prev := d.skip
		d.skip = func(msg tea.Msg) bool { return prev(msg) || fn(msg) }
	}
}

// DrainInit runs the model's Init command to completion.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send feeds msg through Update and drains the resulting Cmds.
// It is a no-op once the model has quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.update(msg)
}

// SendKey sends a key message.
func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// PressKey sends a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressKeys sends each rune of s as its own keypress.
func (d *Driver) PressKeys(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyEnter})
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyEsc})
}

func (d *Driver) PressTab() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyTab})
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyCtrlC})
}

func (d *Driver) PressUp() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyUp})
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyDown})
}

// View returns the model's rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

// Saw reports whether a message of the given type name (as printed by %T)
// has been fed to Update.
func (d *Driver) Saw(typeName string) bool {
	for _, s := range d.Seen {
		if s == typeName {
			return true
		}
	}
	return false
}

func (d *Driver) update(msg tea.Msg) {
	d.T.Helper()
	d.Seen = append(d.Seen, fmt.Sprintf("%T", msg))
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg, ok := d.run(cmd)
	if !ok {
		d.T.Logf("teatest: command dropped after %s", d.timeout)
		return
	}
	if msg == nil || d.skip(msg) {
		return
	}

	// tea.Batch and tea.Sequence both deliver a slice of Cmds.
	if cmds, ok := cmdList(msg); ok {
		for _, sub := range cmds {
			d.drain(sub, depth+1)
		}
		return
	}

	if _, quit := msg.(tea.QuitMsg); quit {
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	d.Seen = append(d.Seen, fmt.Sprintf("%T", msg))
	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

// run executes cmd, giving up after the driver timeout.
func (d *Driver) run(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	timer := time.NewTimer(d.timeout)
	defer timer.Stop()
	select {
	case msg := <-ch:
		return msg, true
	case <-timer.C:
		return nil, false
	}
}

var cmdType = reflect.TypeFor[tea.Cmd]()

// cmdList unpacks tea.BatchMsg and bubbletea's unexported sequence message.
func cmdList(msg tea.Msg) ([]tea.Cmd, bool) {
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch, true
	}
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i] = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}

// isCursorBlink matches the bubbles cursor blink messages, whose types are
// unexported and whose follow-up Cmds wait on timers.
func isCursorBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}

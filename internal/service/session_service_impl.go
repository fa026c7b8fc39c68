package service

import (
	"context"
	"time"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/navigation"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/projection"
)

// Session owns one user's dataset and navigation state. Every interaction
// is an event: it is applied to the state, then the screen is re-projected.
// A Session is not safe for concurrent use.
type Session struct {
	datasets DatasetService
	observer UseCaseObserver

	ds    *domain.Dataset
	state navigation.State
}

// NewSession returns a session at the home screen with no dataset.
func NewSession(datasets DatasetService, observers ...UseCaseObserver) *Session {
	return &Session{
		datasets: datasets,
		observer: useCaseObserverOrNoop(observers),
		state:    navigation.New(),
	}
}

// Start loads the dataset and projects the current screen.
func (s *Session) Start(ctx context.Context) (projection.Model, error) {
	ds, err := s.datasets.Load(ctx)
	if err != nil {
		return projection.Model{}, err
	}
	return s.Install(ds), nil
}

// Refresh re-fetches the dataset wholesale. The navigation state is kept;
// selections that vanished simply project as empty. On failure the previous
// dataset stays in place.
func (s *Session) Refresh(ctx context.Context) (projection.Model, error) {
	ds, err := s.datasets.Refresh(ctx)
	if err != nil {
		return s.Model(), err
	}
	return s.Install(ds), nil
}

// Install swaps in a dataset fetched elsewhere and re-projects the current
// screen. The TUI fetches on a background Cmd and installs the result from
// its event loop, so the session is only ever touched by one goroutine.
// A nil dataset is ignored.
func (s *Session) Install(ds *domain.Dataset) projection.Model {
	if ds != nil {
		s.ds = ds
	}
	return s.Model()
}

// Dispatch applies ev and returns the new screen. Staff group keys that do
// not occur in the current staff member's records are ignored, as is any
// event that would leave the state inconsistent.
func (s *Session) Dispatch(ctx context.Context, ev navigation.Event) projection.Model {
	if ev == nil {
		return s.Model()
	}
	startedAt := time.Now().UTC()
	var err error
	applied := s.accepts(ev)
	if applied {
		next := navigation.Reduce(s.state, ev)
		if err = next.Validate(); err != nil {
			applied = false
		} else {
			s.state = next
		}
	}
	observe(ctx, s.observer, "navigate", startedAt, err, map[string]any{
		"event":   ev.String(),
		"applied": applied,
		"mode":    string(s.state.Mode),
	})
	return s.Model()
}

func (s *Session) accepts(ev navigation.Event) bool {
	toggle, ok := ev.(navigation.StaffGroupToggled)
	if !ok || s.state.Mode != domain.ModeStaff {
		return ev != nil
	}
	k := toggle.Key
	if k.IsZero() {
		return false
	}
	return s.ds.Any(domain.Match{
		Region:      k.Region,
		Project:     k.Project,
		SubDivision: k.SubDivision,
		StaffLead:   s.state.Staff,
	})
}

// Model projects the current screen.
func (s *Session) Model() projection.Model {
	return projection.Project(s.ds, s.state)
}

// State returns a copy of the navigation state.
func (s *Session) State() navigation.State { return s.state }

// Dataset returns the loaded dataset, or nil before Start succeeds.
func (s *Session) Dataset() *domain.Dataset { return s.ds }

// Loaded reports whether a dataset is available.
func (s *Session) Loaded() bool { return s.ds != nil }

package engine

import (
	"context"
	"time"

	"codeberg.org/snonux/milo/internal/card"
	"codeberg.org/snonux/milo/internal/render"
)

// View is the port the reducer pushes display updates through. The GUI
// implements it; tests substitute a recorder. ShowCard hands over a freshly
// rendered artifact pair and selects a face; ShowFace only switches the
// face of the artifacts shown last, without re-rendering.
type View interface {
	ShowCard(c render.Card, showingBack bool)
	ShowFace(showingBack bool)
}

// Engine is the reducer: the one loop that owns the Model and turns queued
// events into state transitions. All side effects (render calls, scheduler
// restarts, view updates) happen as a direct consequence of an applied
// transition, never speculatively.
type Engine struct {
	store     card.Store
	policy    card.SelectionPolicy
	renderer  *render.Renderer
	view      View
	flipDelay time.Duration

	bus   *Bus
	sched *Scheduler
	model Model
}

// New wires a reducer around the given collaborators. The flip delay is how
// long a freshly advanced card shows its front before the scheduler flips it.
func New(store card.Store, policy card.SelectionPolicy, renderer *render.Renderer, view View, flipDelay time.Duration) *Engine {
	e := &Engine{
		store:     store,
		policy:    policy,
		renderer:  renderer,
		view:      view,
		flipDelay: flipDelay,
	}
	e.bus = NewBus()
	e.sched = NewScheduler(e.bus.Publish)
	return e
}

// Bus returns the event bus input edges publish on.
func (e *Engine) Bus() *Bus {
	return e.bus
}

// Model returns the current snapshot. Only safe while the reducer loop is
// not running concurrently; intended for the loop itself and for tests
// driving Step directly.
func (e *Engine) Model() Model {
	return e.model
}

// Start picks the initial pair, shows it and arms the auto-flip timer.
func (e *Engine) Start() {
	e.model = Model{Current: e.policy.Initial(e.store)}
	e.view.ShowCard(e.renderer.Render(e.model.Current), e.model.ShowingBack)
	e.sched.Arm(e.flipDelay)
}

// Step applies a single event to the model. Run is the only concurrent
// caller once the loop is started.
func (e *Engine) Step(ev Event) {
	switch ev {
	case EventAdvance:
		chosen := e.policy.Next(e.model.Current, e.store)
		e.model = Advance(e.model, chosen)
		// Card changed, so the auto-flip clock restarts from zero.
		e.sched.Arm(e.flipDelay)
		e.view.ShowCard(e.renderer.Render(e.model.Current), e.model.ShowingBack)
	case EventAutoFlip:
		if e.model.ShowingBack {
			// Expected race between timer and user action, not an error.
			return
		}
		e.model = Flip(e.model)
		e.view.ShowFace(e.model.ShowingBack)
	}
}

// Run starts the reducer and processes events in FIFO order until ctx is
// cancelled or the bus is closed. On shutdown it cancels the scheduler
// first, then drains events already queued so no Advance silently vanishes
// mid-close.
func (e *Engine) Run(ctx context.Context) {
	e.Start()

	for {
		ev, ok := e.bus.Receive(ctx)
		if !ok {
			break
		}
		e.Step(ev)
	}

	e.sched.Cancel()
	for {
		ev, ok := e.bus.TryReceive()
		if !ok {
			break
		}
		e.Step(ev)
	}
	// A drained Advance re-arms the timer; make sure nothing survives
	// teardown.
	e.sched.Cancel()
}

package app

import (
	"go.uber.org/zap"

	droiderrors "github.com/go-droid/droid/pkg/errors"
	"github.com/go-droid/droid/pkg/logging"
	"github.com/go-droid/droid/pkg/widgets"
)

// Extras is the side channel of arbitrary values handed to an activity at
// construction.
type Extras map[string]any

// Event describes one completed lifecycle transition, for logging and
// telemetry collaborators.
type Event struct {
	Activity string
	From     State
	To       State
}

// EventListener observes lifecycle events. Listeners run synchronously on the
// transitioning goroutine after the hook has returned.
type EventListener func(Event)

// Activity is a lifecycle-governed container of named views and layouts.
//
// An activity is constructed in [StateCreated] and driven only by explicit
// lifecycle calls; [StateDestroyed] is terminal. Activity names need not be
// unique across the process.
//
// All methods must be called from a single goroutine; the activity performs
// no internal locking.
type Activity struct {
	name      string
	state     State
	views     map[string]widgets.Element
	viewOrder []string
	extras    Extras
	hooks     Hooks
	log       *logging.Logger
	ownLog    bool
	onEvent   EventListener
}

// ActivityOption configures an Activity at construction.
type ActivityOption func(*Activity)

// WithHooks installs the activity's lifecycle hooks.
func WithHooks(hooks Hooks) ActivityOption {
	return func(a *Activity) {
		if hooks != nil {
			a.hooks = hooks
		}
	}
}

// WithExtras attaches construction-time extras.
func WithExtras(extras Extras) ActivityOption {
	return func(a *Activity) {
		a.extras = extras
	}
}

// WithActivityLogger injects the activity's logger. Without it the activity
// logs nothing until a host adopts it.
func WithActivityLogger(log *logging.Logger) ActivityOption {
	return func(a *Activity) {
		if log != nil {
			a.log = log
			a.ownLog = true
		}
	}
}

// WithEventListener registers a lifecycle event observer.
func WithEventListener(listener EventListener) ActivityOption {
	return func(a *Activity) {
		a.onEvent = listener
	}
}

// NewActivity creates an activity in StateCreated.
func NewActivity(name string, opts ...ActivityOption) *Activity {
	a := &Activity{
		name:  name,
		state: StateCreated,
		views: make(map[string]widgets.Element),
		hooks: BaseHooks{},
		log:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the activity's name.
func (a *Activity) Name() string { return a.name }

// State returns the current lifecycle state.
func (a *Activity) State() State { return a.state }

// Extra returns a construction-time extra by key.
func (a *Activity) Extra(key string) (any, bool) {
	value, ok := a.extras[key]
	return value, ok
}

// Extras returns the construction-time extras map.
func (a *Activity) Extras() Extras { return a.extras }

// Start transitions created/stopped -> started and fires OnStart.
func (a *Activity) Start() error {
	return a.transition(StateStarted, a.hooks.OnStart)
}

// Resume transitions started/paused -> resumed and fires OnResume.
func (a *Activity) Resume() error {
	return a.transition(StateResumed, a.hooks.OnResume)
}

// Pause transitions resumed -> paused and fires OnPause.
func (a *Activity) Pause() error {
	return a.transition(StatePaused, a.hooks.OnPause)
}

// Stop transitions started/paused -> stopped and fires OnStop.
func (a *Activity) Stop() error {
	return a.transition(StateStopped, a.hooks.OnStop)
}

// Destroy transitions stopped -> destroyed and fires OnDestroy. Destroyed is
// terminal; no further transitions are legal.
func (a *Activity) Destroy() error {
	return a.transition(StateDestroyed, a.hooks.OnDestroy)
}

// transition validates the edge, updates state, fires the hook, then emits
// the lifecycle event. On an illegal edge the state is left unchanged and an
// InvalidStateError is returned; nothing is retried.
func (a *Activity) transition(to State, hook func(*Activity)) error {
	if !canTransition(a.state, to) {
		return &droiderrors.InvalidStateError{
			Activity: a.name,
			From:     a.state.String(),
			To:       to.String(),
		}
	}
	from := a.state
	a.state = to
	hook(a)
	a.log.Info("activity transition",
		zap.String("activity", a.name),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	)
	if a.onEvent != nil {
		a.onEvent(Event{Activity: a.name, From: from, To: to})
	}
	return nil
}

// AddView registers a top-level view or layout under the given id,
// replacing any previous element with that id. Unconstrained by lifecycle
// state.
func (a *Activity) AddView(id string, view widgets.Element) {
	if view == nil {
		return
	}
	if _, exists := a.views[id]; !exists {
		a.viewOrder = append(a.viewOrder, id)
	}
	a.views[id] = view
}

// GetView returns the top-level element registered under id, or nil. It does
// not recurse into layout children; use [widgets.Layout.FindViewByID] for
// that.
func (a *Activity) GetView(id string) widgets.Element {
	return a.views[id]
}

// RemoveView unregisters the top-level element under id, if present.
func (a *Activity) RemoveView(id string) {
	if _, exists := a.views[id]; !exists {
		return
	}
	delete(a.views, id)
	for i, existing := range a.viewOrder {
		if existing == id {
			a.viewOrder = append(a.viewOrder[:i], a.viewOrder[i+1:]...)
			break
		}
	}
}

// Views returns the top-level elements in insertion order.
func (a *Activity) Views() []widgets.Element {
	out := make([]widgets.Element, 0, len(a.viewOrder))
	for _, id := range a.viewOrder {
		out = append(out, a.views[id])
	}
	return out
}

// adoptLogger hands the host's logger to an activity that was constructed
// without its own.
func (a *Activity) adoptLogger(log *logging.Logger) {
	if !a.ownLog && log != nil {
		a.log = log.Named(a.name)
	}
}

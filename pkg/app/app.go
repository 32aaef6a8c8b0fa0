// Package app provides the activity lifecycle state machine and the
// application host.
//
// An [Activity] owns a flat set of named view roots and a strict lifecycle:
// created -> started -> resumed -> paused -> stopped -> destroyed, with the
// legal edges encoded in the transition graph. The [App] host registers
// activity factories by name, owns at most one live activity, and mediates
// switching and run-loop start.
//
// Everything here is single-threaded and synchronous: lifecycle calls, hooks
// and event listeners all run to completion on the caller's goroutine. Hosts
// embedding the core in a multi-threaded program must serialize access
// externally.
package app

import (
	"sort"

	"go.uber.org/zap"

	droiderrors "github.com/go-droid/droid/pkg/errors"
	"github.com/go-droid/droid/pkg/logging"
)

// Factory constructs a fresh activity instance for the host. The extras map
// is the side channel passed to StartActivity; factories typically forward it
// via [WithExtras].
type Factory func(extras Extras) *Activity

// Renderer is the boundary to an optional rendering backend. The host hands
// control to it at the end of Run; absence of a renderer is headless mode,
// not an error.
type Renderer interface {
	// Run takes over the host's run loop. It returns when the backend shuts
	// down.
	Run(a *App) error
}

// App is the application host: it maps activity names to factories and owns
// at most one current activity.
type App struct {
	name      string
	pkg       string
	factories map[string]Factory
	current   *Activity
	log       *logging.Logger
	renderer  Renderer
}

// Option configures an App at construction.
type Option func(*App)

// WithLogger injects the host logger. Defaults to [logging.NewDefault].
func WithLogger(log *logging.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithRenderer attaches a rendering backend. Without one the app runs
// headless.
func WithRenderer(r Renderer) Option {
	return func(a *App) {
		a.renderer = r
	}
}

// New creates an application host. name is the human-readable application
// name, pkg the reverse-DNS package id (e.g. "com.example.myapp").
func New(name, pkg string, opts ...Option) *App {
	a := &App{
		name:      name,
		pkg:       pkg,
		factories: make(map[string]Factory),
		log:       logging.NewDefault(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.Named(name)
	return a
}

// Name returns the application name.
func (a *App) Name() string { return a.name }

// Package returns the application package id.
func (a *App) Package() string { return a.pkg }

// Current returns the current activity, or nil.
func (a *App) Current() *Activity { return a.current }

// GUIEnabled reports whether a rendering backend is attached.
func (a *App) GUIEnabled() bool { return a.renderer != nil }

// RegisterActivity stores a factory under name. Re-registering the same name
// overwrites silently; last write wins.
func (a *App) RegisterActivity(name string, factory Factory) {
	if factory == nil {
		return
	}
	a.factories[name] = factory
	a.log.Info("registered activity", zap.String("activity", name))
}

// Registered returns the sorted set of registered activity names.
func (a *App) Registered() []string {
	names := make([]string, 0, len(a.factories))
	for name := range a.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StartActivity constructs and starts the activity registered under name,
// handing it the given extras.
//
// If an activity is already current it is forced through Stop then Destroy
// first; if either transition is illegal for its state the error propagates
// and the new activity is not constructed. An unregistered name yields an
// ActivityNotFoundError listing the registered names.
func (a *App) StartActivity(name string, extras Extras) error {
	factory, ok := a.factories[name]
	if !ok {
		return &droiderrors.ActivityNotFoundError{Name: name, Registered: a.Registered()}
	}
	if a.current != nil {
		if err := a.current.Stop(); err != nil {
			return err
		}
		if err := a.current.Destroy(); err != nil {
			return err
		}
	}
	activity := factory(extras)
	activity.adoptLogger(a.log)
	a.current = activity
	if err := activity.Start(); err != nil {
		return err
	}
	a.log.Info("started activity", zap.String("activity", name))
	return nil
}

// StartIntent starts the activity named by the intent's target with the
// intent's extras.
func (a *App) StartIntent(intent *Intent) error {
	return a.StartActivity(intent.Target(), intent.Extras())
}

// Run resumes the current activity, then hands control to the attached
// renderer. With no renderer the call returns immediately after the resume
// (headless mode). With no current activity it warns and returns nil.
func (a *App) Run() error {
	if a.current == nil {
		a.log.Warn("run called with no current activity")
		return nil
	}
	if err := a.current.Resume(); err != nil {
		return err
	}
	if a.renderer == nil {
		a.log.Info("no renderer attached, running headless")
		return nil
	}
	return a.renderer.Run(a)
}

// Package backend hosts renderer implementations for the app host.
//
// A renderer consumes the render-tree descriptions produced by the widget
// tree plus the host's lifecycle timing, and produces actual output. The
// renderer is a pluggable strategy: when no GUI backend is available the host
// falls back to [Console], which serializes render trees instead of drawing
// them. Absence of a GUI is a configuration state, not an error.
package backend

import (
	"io"
	"os"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/go-droid/droid/pkg/app"
	droiderrors "github.com/go-droid/droid/pkg/errors"
	"github.com/go-droid/droid/pkg/logging"
	"github.com/go-droid/droid/pkg/render"
)

// Console renders the current activity's view roots as indented JSON. It is
// the no-GUI fallback backend and the reference consumer of the render-tree
// contract.
type Console struct {
	out io.Writer
	log *logging.Logger
}

// ConsoleOption configures a Console renderer.
type ConsoleOption func(*Console)

// WithOutput redirects the rendered JSON. Defaults to stdout.
func WithOutput(w io.Writer) ConsoleOption {
	return func(c *Console) {
		if w != nil {
			c.out = w
		}
	}
}

// WithConsoleLogger injects the renderer's logger.
func WithConsoleLogger(log *logging.Logger) ConsoleOption {
	return func(c *Console) {
		if log != nil {
			c.log = log
		}
	}
}

// NewConsole creates a console renderer writing to stdout.
func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{
		out: os.Stdout,
		log: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run renders the host's current activity once and returns. Encoding
// failures are reported to the error handler and skipped; rendering
// degradation never takes down the host.
func (c *Console) Run(a *app.App) error {
	current := a.Current()
	if current == nil {
		c.log.Warn("console renderer invoked with no current activity")
		return nil
	}
	return c.RenderActivity(current)
}

// RenderActivity renders every top-level element of the activity in
// insertion order.
func (c *Console) RenderActivity(activity *app.Activity) error {
	c.log.Info("rendering activity",
		zap.String("activity", activity.Name()),
		zap.Stringer("state", activity.State()),
	)
	for _, element := range activity.Views() {
		if err := c.renderNode(element.Render()); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) renderNode(node render.Node) error {
	data, err := sonic.ConfigDefault.MarshalIndent(node, "", "  ")
	if err != nil {
		backendErr := &droiderrors.BackendError{Op: "console.encode", Err: err}
		droiderrors.ReportBackendError(backendErr)
		return nil
	}
	if _, err := c.out.Write(append(data, '\n')); err != nil {
		return &droiderrors.BackendError{Op: "console.write", Err: err}
	}
	return nil
}

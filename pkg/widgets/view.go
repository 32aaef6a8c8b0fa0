package widgets

import "github.com/go-droid/droid/pkg/render"

// Default styling applied at construction.
const (
	defaultBackground = "#FFFFFF"
	defaultTextColor  = "#000000"
	defaultHintColor  = "#808080"
	defaultTextSize   = 14
	defaultFont       = "Arial"
)

// Element is the capability shared by every node in the widget tree: identity,
// geometry, and a render snapshot. Both leaf views and layouts implement it,
// which is what lets layouts nest inside layouts.
type Element interface {
	// ID returns the node's identifier. Uniqueness within a scope is the
	// caller's responsibility; duplicates are permitted and shadow on lookup.
	ID() string

	// Position returns the top-left corner in parent coordinates.
	Position() (x, y int)

	// SetPosition moves the node. Layout arrangement calls this on children.
	SetPosition(x, y int)

	// Size returns the node's extent.
	Size() (width, height int)

	// SetSize resizes the node.
	SetSize(width, height int)

	// Render produces an immutable snapshot of the node. For layouts this
	// arranges children first; for leaf views it is pure.
	Render() render.Node
}

var (
	_ Element = (*TextView)(nil)
	_ Element = (*Button)(nil)
	_ Element = (*EditText)(nil)
)

// ClickListener is invoked when an enabled view receives a click.
type ClickListener func()

// ViewBase carries the state and behavior common to all leaf views. Concrete
// views embed it; use [NewViewBase] rather than the zero value so visibility
// and enabled default to true.
type ViewBase struct {
	id         string
	x, y       int
	width      int
	height     int
	visible    bool
	enabled    bool
	background string
	onClick    ClickListener
}

// NewViewBase returns a view base with default geometry (zero), visibility
// and enabled true, and a white background.
func NewViewBase(id string) ViewBase {
	return ViewBase{
		id:         id,
		visible:    true,
		enabled:    true,
		background: defaultBackground,
	}
}

// ID returns the view's identifier.
func (v *ViewBase) ID() string { return v.id }

// Position returns the view's top-left corner.
func (v *ViewBase) Position() (x, y int) { return v.x, v.y }

// SetPosition moves the view.
func (v *ViewBase) SetPosition(x, y int) {
	v.x = x
	v.y = y
}

// Size returns the view's extent.
func (v *ViewBase) Size() (width, height int) { return v.width, v.height }

// SetSize resizes the view.
func (v *ViewBase) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Visible reports whether the view is marked visible.
func (v *ViewBase) Visible() bool { return v.visible }

// SetVisible marks the view visible or hidden. Visibility is advisory
// metadata for the renderer; it never gates click dispatch.
func (v *ViewBase) SetVisible(visible bool) { v.visible = visible }

// Enabled reports whether the view accepts clicks.
func (v *ViewBase) Enabled() bool { return v.enabled }

// SetEnabled toggles click dispatch for the view.
func (v *ViewBase) SetEnabled(enabled bool) { v.enabled = enabled }

// BackgroundColor returns the view's background color.
func (v *ViewBase) BackgroundColor() string { return v.background }

// SetBackgroundColor sets the background as a hex color string (e.g. "#FF0000").
func (v *ViewBase) SetBackgroundColor(color string) { v.background = color }

// SetOnClickListener registers the click callback. Pass nil to clear it.
func (v *ViewBase) SetOnClickListener(listener ClickListener) { v.onClick = listener }

// OnClick dispatches a click to the registered listener. The call is a silent
// no-op when the view is disabled or no listener is registered.
func (v *ViewBase) OnClick() {
	if v.onClick != nil && v.enabled {
		v.onClick()
	}
}

// leafNode snapshots the fields every leaf view shares.
func (v *ViewBase) leafNode(kind render.Kind) render.Node {
	return render.Node{
		Kind:       kind,
		ID:         v.id,
		Position:   render.Position{X: v.x, Y: v.y},
		Size:       render.Size{Width: v.width, Height: v.height},
		Visible:    v.visible,
		Enabled:    v.enabled,
		Background: v.background,
	}
}

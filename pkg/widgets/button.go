package widgets

import "github.com/go-droid/droid/pkg/render"

// Button defaults, per Material blue on white.
const (
	buttonBackground = "#2196F3"
	buttonTextColor  = "#FFFFFF"
	buttonLabel      = "Button"
)

// Button is a TextView with button defaults: blue background, white label.
// It exposes the full TextView surface and renders the same field set under
// the "Button" kind.
type Button struct {
	TextView
}

// NewButton creates a Button with the given label. An empty label falls back
// to "Button".
func NewButton(id, label string) *Button {
	if label == "" {
		label = buttonLabel
	}
	b := &Button{TextView: *NewTextView(id, label)}
	b.SetBackgroundColor(buttonBackground)
	b.SetTextColor(buttonTextColor)
	return b
}

// Render snapshots the button. The node carries kind "Button" with every
// field a TextView node carries.
func (b *Button) Render() render.Node {
	return b.renderAs(render.KindButton)
}

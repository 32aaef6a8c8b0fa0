package widgets

import "github.com/go-droid/droid/pkg/render"

// EditText is a text input field with a placeholder hint. It has no click
// semantics by default; a listener can still be registered explicitly.
type EditText struct {
	ViewBase
	text      string
	hint      string
	textColor string
	hintColor string
}

// NewEditText creates an empty EditText with the given placeholder hint.
func NewEditText(id, hint string) *EditText {
	return &EditText{
		ViewBase:  NewViewBase(id),
		hint:      hint,
		textColor: defaultTextColor,
		hintColor: defaultHintColor,
	}
}

// Text returns the current input text.
func (e *EditText) Text() string { return e.text }

// SetText replaces the input text.
func (e *EditText) SetText(text string) { e.text = text }

// Hint returns the placeholder hint.
func (e *EditText) Hint() string { return e.hint }

// SetHint replaces the placeholder hint.
func (e *EditText) SetHint(hint string) { e.hint = hint }

// TextColor returns the input text color.
func (e *EditText) TextColor() string { return e.textColor }

// SetTextColor sets the input text color.
func (e *EditText) SetTextColor(color string) { e.textColor = color }

// HintColor returns the placeholder color.
func (e *EditText) HintColor() string { return e.hintColor }

// SetHintColor sets the placeholder color.
func (e *EditText) SetHintColor(color string) { e.hintColor = color }

// Render snapshots the view. Pure: no state is mutated.
func (e *EditText) Render() render.Node {
	node := e.leafNode(render.KindEditText)
	node.Input = &render.InputAttrs{
		Text:      e.text,
		Hint:      e.hint,
		TextColor: e.textColor,
		HintColor: e.hintColor,
	}
	return node
}

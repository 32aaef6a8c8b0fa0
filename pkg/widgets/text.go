package widgets

import "github.com/go-droid/droid/pkg/render"

// TextView displays a single run of styled text.
type TextView struct {
	ViewBase
	text       string
	textColor  string
	textSize   int
	fontFamily string
}

// NewTextView creates a TextView with black 14pt Arial text.
func NewTextView(id, text string) *TextView {
	return &TextView{
		ViewBase:   NewViewBase(id),
		text:       text,
		textColor:  defaultTextColor,
		textSize:   defaultTextSize,
		fontFamily: defaultFont,
	}
}

// Text returns the displayed text.
func (t *TextView) Text() string { return t.text }

// SetText replaces the displayed text.
func (t *TextView) SetText(text string) { t.text = text }

// TextColor returns the text color.
func (t *TextView) TextColor() string { return t.textColor }

// SetTextColor sets the text color as a hex string.
func (t *TextView) SetTextColor(color string) { t.textColor = color }

// TextSize returns the font size.
func (t *TextView) TextSize() int { return t.textSize }

// SetTextSize sets the font size.
func (t *TextView) SetTextSize(size int) { t.textSize = size }

// FontFamily returns the font family name.
func (t *TextView) FontFamily() string { return t.fontFamily }

// SetFontFamily sets the font family name.
func (t *TextView) SetFontFamily(font string) { t.fontFamily = font }

// Render snapshots the view. Pure: no state is mutated.
func (t *TextView) Render() render.Node {
	return t.renderAs(render.KindTextView)
}

// renderAs builds the TextView field set under the given kind tag, so Button
// can reuse it verbatim.
func (t *TextView) renderAs(kind render.Kind) render.Node {
	node := t.leafNode(kind)
	node.Text = &render.TextAttrs{
		Content: t.text,
		Color:   t.textColor,
		Size:    t.textSize,
		Font:    t.fontFamily,
	}
	return node
}

// Package render defines the serializable description tree produced by views
// and layouts.
//
// A [Node] is a plain data snapshot of one UI node at the moment it was
// rendered. Nodes carry no behavior and no references back into the widget
// tree, so a renderer backend can hold them, encode them, or diff them freely
// while the widget tree keeps mutating.
package render

// Kind identifies the variant a node was rendered from.
type Kind string

const (
	KindTextView       Kind = "TextView"
	KindButton         Kind = "Button"
	KindEditText       Kind = "EditText"
	KindLinearLayout   Kind = "LinearLayout"
	KindRelativeLayout Kind = "RelativeLayout"
)

// IsLayout reports whether the kind describes a container node.
func (k Kind) IsLayout() bool {
	return k == KindLinearLayout || k == KindRelativeLayout
}

// Position is a node's top-left corner in parent coordinates.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a node's extent in layout units.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Padding is the inset a layout applies before placing children.
type Padding struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// TextAttrs carries the text styling shared by TextView and Button nodes.
type TextAttrs struct {
	Content string `json:"content"`
	Color   string `json:"color"`
	Size    int    `json:"size"`
	Font    string `json:"font"`
}

// InputAttrs carries the fields specific to EditText nodes.
type InputAttrs struct {
	Text      string `json:"text"`
	Hint      string `json:"hint"`
	TextColor string `json:"text_color"`
	HintColor string `json:"hint_color"`
}

// Node is an immutable description of one rendered UI node.
//
// Leaf nodes populate Position, Size, Visible, Enabled and Background, plus
// exactly one of the variant groups: Text (TextView, Button) or Input
// (EditText). Layout nodes populate Padding and Children instead; their
// geometry fields are zero.
//
// Visible and Enabled are advisory metadata for the consuming renderer; the
// widget tree never gates behavior on visibility.
type Node struct {
	Kind       Kind        `json:"kind"`
	ID         string      `json:"id"`
	Position   Position    `json:"position"`
	Size       Size        `json:"size"`
	Visible    bool        `json:"visible"`
	Enabled    bool        `json:"enabled"`
	Background string      `json:"background_color,omitempty"`
	Text       *TextAttrs  `json:"text,omitempty"`
	Input      *InputAttrs `json:"input,omitempty"`
	Padding    *Padding    `json:"padding,omitempty"`
	Children   []Node      `json:"children,omitempty"`
}

package widgets

import "github.com/go-droid/droid/pkg/render"

// childGap is the fixed spacing LinearLayout inserts between children.
const childGap = 10

// Layout is a container element: an ordered, heterogeneous sequence of child
// elements plus padding and an arrangement policy.
type Layout interface {
	Element

	// AddView appends a child. Adding the same element twice is a no-op;
	// distinct elements sharing an id are kept as-is.
	AddView(child Element)

	// RemoveView removes a child by object identity. Absent children are
	// ignored.
	RemoveView(child Element)

	// FindViewByID returns the first direct child whose id matches, in
	// insertion order, or nil. It never searches nested layouts.
	FindViewByID(id string) Element

	// SetPadding sets the insets applied before children are placed.
	SetPadding(left, top, right, bottom int)

	// Padding returns the current insets.
	Padding() render.Padding

	// Children returns the child sequence in insertion order.
	Children() []Element

	// Arrange assigns child geometry per the layout's policy. Idempotent for
	// an unchanged child set and padding, but it does mutate children in
	// place.
	Arrange()

	// Snapshot serializes the layout and its children without arranging.
	Snapshot() render.Node
}

// LayoutBase carries the state common to all layouts. Concrete layouts embed
// it and supply Arrange, Snapshot and Render.
type LayoutBase struct {
	id      string
	x, y    int
	width   int
	height  int
	childs  []Element
	padding render.Padding
}

// NewLayoutBase returns a layout base with zero padding and no children.
func NewLayoutBase(id string) LayoutBase {
	return LayoutBase{id: id}
}

// ID returns the layout's identifier.
func (l *LayoutBase) ID() string { return l.id }

// Position returns the layout's top-left corner.
func (l *LayoutBase) Position() (x, y int) { return l.x, l.y }

// SetPosition moves the layout; a parent layout's arrangement calls this.
func (l *LayoutBase) SetPosition(x, y int) {
	l.x = x
	l.y = y
}

// Size returns the layout's extent.
func (l *LayoutBase) Size() (width, height int) { return l.width, l.height }

// SetSize resizes the layout.
func (l *LayoutBase) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// AddView appends a child unless the same element is already present.
func (l *LayoutBase) AddView(child Element) {
	if child == nil {
		return
	}
	for _, c := range l.childs {
		if c == child {
			return
		}
	}
	l.childs = append(l.childs, child)
}

// RemoveView removes the first child matching by object identity.
func (l *LayoutBase) RemoveView(child Element) {
	for i, c := range l.childs {
		if c == child {
			l.childs = append(l.childs[:i], l.childs[i+1:]...)
			return
		}
	}
}

// FindViewByID returns the first direct child with the given id, or nil.
func (l *LayoutBase) FindViewByID(id string) Element {
	for _, c := range l.childs {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

// SetPadding sets the insets applied before children are placed.
func (l *LayoutBase) SetPadding(left, top, right, bottom int) {
	l.padding = render.Padding{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Padding returns the current insets.
func (l *LayoutBase) Padding() render.Padding { return l.padding }

// Children returns the child sequence in insertion order. The returned slice
// is a copy; mutating it does not affect the layout.
func (l *LayoutBase) Children() []Element {
	out := make([]Element, len(l.childs))
	copy(out, l.childs)
	return out
}

// snapshotAs serializes the layout under the given kind tag. Child layouts
// render recursively, which arranges their own children.
func (l *LayoutBase) snapshotAs(kind render.Kind) render.Node {
	children := make([]render.Node, 0, len(l.childs))
	for _, c := range l.childs {
		children = append(children, c.Render())
	}
	padding := l.padding
	return render.Node{
		Kind:     kind,
		ID:       l.id,
		Padding:  &padding,
		Children: children,
	}
}

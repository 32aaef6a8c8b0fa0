package widgets

import "github.com/go-droid/droid/pkg/render"

// Orientation selects the axis a LinearLayout arranges children along.
type Orientation string

const (
	OrientationVertical   Orientation = "vertical"
	OrientationHorizontal Orientation = "horizontal"
)

var _ Layout = (*LinearLayout)(nil)

// LinearLayout arranges children sequentially along one axis with a fixed
// 10-unit gap. The cross-axis coordinate is held at the padding offset for
// every child; there is no wrapping and no cross-axis centering.
type LinearLayout struct {
	LayoutBase
	orientation Orientation
}

// NewLinearLayout creates a LinearLayout. An empty orientation defaults to
// vertical.
func NewLinearLayout(id string, orientation Orientation) *LinearLayout {
	if orientation == "" {
		orientation = OrientationVertical
	}
	return &LinearLayout{
		LayoutBase:  NewLayoutBase(id),
		orientation: orientation,
	}
}

// Orientation returns the arrangement axis.
func (l *LinearLayout) Orientation() Orientation { return l.orientation }

// Arrange positions each child at a cursor starting at (padding.left,
// padding.top) and advances the cursor along the orientation axis by the
// child's size on that axis plus the fixed gap.
func (l *LinearLayout) Arrange() {
	x := l.padding.Left
	y := l.padding.Top
	for _, child := range l.childs {
		child.SetPosition(x, y)
		width, height := child.Size()
		if l.orientation == OrientationHorizontal {
			x += width + childGap
		} else {
			y += height + childGap
		}
	}
}

// Snapshot serializes the layout and its children without arranging.
func (l *LinearLayout) Snapshot() render.Node {
	return l.snapshotAs(render.KindLinearLayout)
}

// Render arranges children, then snapshots.
func (l *LinearLayout) Render() render.Node {
	l.Arrange()
	return l.Snapshot()
}

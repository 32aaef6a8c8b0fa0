package widgets

import "github.com/go-droid/droid/pkg/render"

var _ Layout = (*RelativeLayout)(nil)

// RelativeLayout performs no automatic positioning: children keep whatever
// position was last explicitly set, no matter how often the layout renders.
type RelativeLayout struct {
	LayoutBase
}

// NewRelativeLayout creates a RelativeLayout.
func NewRelativeLayout(id string) *RelativeLayout {
	return &RelativeLayout{LayoutBase: NewLayoutBase(id)}
}

// Arrange is a no-op; children retain their manually assigned positions.
func (l *RelativeLayout) Arrange() {}

// Snapshot serializes the layout and its children.
func (l *RelativeLayout) Snapshot() render.Node {
	return l.snapshotAs(render.KindRelativeLayout)
}

// Render snapshots the layout. Arrangement is a no-op here, so Render never
// changes child geometry.
func (l *RelativeLayout) Render() render.Node {
	l.Arrange()
	return l.Snapshot()
}

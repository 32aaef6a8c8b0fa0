// Package widgets provides the view and layout tree.
//
// Leaf views ([TextView], [Button], [EditText]) carry geometry, visibility,
// styling and an optional click listener. Container layouts ([LinearLayout],
// [RelativeLayout]) hold an ordered, heterogeneous sequence of children and
// compose recursively. Everything implements [Element], whose Render method
// produces a [render.Node] snapshot for a renderer backend.
//
// The tree is single-threaded by contract: no widget performs internal
// locking, and embedders driving a tree from multiple goroutines must
// serialize access externally.
package widgets

package widgets

// TextViewOf creates a TextView with the given size.
func TextViewOf(id, text string, width, height int) *TextView {
	t := NewTextView(id, text)
	t.SetSize(width, height)
	return t
}

// ButtonOf creates a Button with a tap handler already registered.
func ButtonOf(id, label string, onClick ClickListener) *Button {
	b := NewButton(id, label)
	if onClick != nil {
		b.SetOnClickListener(onClick)
	}
	return b
}

// EditTextOf creates an EditText with the given size.
func EditTextOf(id, hint string, width, height int) *EditText {
	e := NewEditText(id, hint)
	e.SetSize(width, height)
	return e
}

// Column creates a vertical LinearLayout holding the given children.
func Column(id string, children ...Element) *LinearLayout {
	l := NewLinearLayout(id, OrientationVertical)
	for _, c := range children {
		l.AddView(c)
	}
	return l
}

// Row creates a horizontal LinearLayout holding the given children.
func Row(id string, children ...Element) *LinearLayout {
	l := NewLinearLayout(id, OrientationHorizontal)
	for _, c := range children {
		l.AddView(c)
	}
	return l
}

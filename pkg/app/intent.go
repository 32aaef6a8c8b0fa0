package app

// Intent expresses an intention to perform an action, optionally targeting a
// registered activity, with an extras payload for the receiver.
type Intent struct {
	action string
	target string
	extras Extras
}

// NewIntent creates an intent for the given action. Target may be empty.
func NewIntent(action, target string) *Intent {
	return &Intent{
		action: action,
		target: target,
		extras: make(Extras),
	}
}

// Action returns the intent's action.
func (i *Intent) Action() string { return i.action }

// Target returns the targeted activity name, or empty.
func (i *Intent) Target() string { return i.target }

// PutExtra attaches a value to the intent. Returns the intent for chaining.
func (i *Intent) PutExtra(key string, value any) *Intent {
	i.extras[key] = value
	return i
}

// GetExtra returns an attached value by key.
func (i *Intent) GetExtra(key string) (any, bool) {
	value, ok := i.extras[key]
	return value, ok
}

// Extras returns the intent's extras map.
func (i *Intent) Extras() Extras { return i.extras }

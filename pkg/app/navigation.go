package app

// Focus tracks keyboard focus over an ordered list of IDs. The ring uses it
// for menu items and pages use it for their controls.
type Focus struct {
	order   []string
	current string
}

// NewFocus creates a Focus on the first of order.
func NewFocus(order ...string) Focus {
	f := Focus{order: order}
	if len(order) > 0 {
		f.current = order[0]
	}
	return f
}

// SetOrder replaces the ID list, keeping the current ID when it is still
// present.
func (f *Focus) SetOrder(order ...string) {
	f.order = order
	if f.indexOf(f.current) < 0 {
		f.current = ""
		if len(order) > 0 {
			f.current = order[0]
		}
	}
}

// Current returns the focused ID, or "" when the list is empty.
func (f Focus) Current() string {
	return f.current
}

// Index returns the position of the focused ID, or 0 if not found.
func (f Focus) Index() int {
	if i := f.indexOf(f.current); i >= 0 {
		return i
	}
	return 0
}

// Len returns the number of IDs.
func (f Focus) Len() int {
	return len(f.order)
}

// Forward moves focus to the next ID, wrapping after the last.
func (f *Focus) Forward() {
	if len(f.order) == 0 {
		return
	}
	f.current = f.order[(f.Index()+1)%len(f.order)]
}

// Backward moves focus to the previous ID, wrapping before the first.
func (f *Focus) Backward() {
	if len(f.order) == 0 {
		return
	}
	f.current = f.order[(f.Index()-1+len(f.order))%len(f.order)]
}

// Set focuses id. Unknown IDs leave focus unchanged.
func (f *Focus) Set(id string) {
	if f.indexOf(id) >= 0 {
		f.current = id
	}
}

func (f Focus) indexOf(id string) int {
	for i, v := range f.order {
		if v == id {
			return i
		}
	}
	return -1
}

package render

import "gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"

// CenterGroup is the group key of a centered orb.
const CenterGroup = "center"

// GroupKey identifies the dock group animated elements belong to. Elements
// of different groups never interpolate into each other.
func GroupKey(p anchor.Position) string {
	e, ok := p.Edge()
	if !ok {
		return CenterGroup
	}
	return "dock-group-" + e.String()
}

// Phase is the entrance state of a Trigger.
type Phase int

const (
	Idle Phase = iota
	Entering
	Settled
)

func (p Phase) String() string {
	switch p {
	case Entering:
		return "entering"
	case Settled:
		return "settled"
	default:
		return "idle"
	}
}

// Trigger replays the entrance animation whenever the dock group changes.
// The zero value is Idle; the first Observe starts an entrance.
type Trigger struct {
	group   string
	phase   Phase
	replays int
}

// Observe records the current group and reports whether the entrance must
// restart: on the first observation and on every group change.
func (t *Trigger) Observe(group string) bool {
	if t.phase != Idle && group == t.group {
		return false
	}
	t.group = group
	t.phase = Entering
	t.replays++
	return true
}

// Settle marks the running entrance as finished.
func (t *Trigger) Settle() {
	if t.phase == Entering {
		t.phase = Settled
	}
}

func (t *Trigger) Phase() Phase  { return t.phase }
func (t *Trigger) Group() string { return t.group }

// Replays counts entrances started so far.
func (t *Trigger) Replays() int { return t.replays }

// Package visibility provides the debounced "interacting" signal that decides
// whether an auto-hidden orb is revealed.
//
// Start reveals immediately. End asks a Scheduler to deliver an expiry after a
// grace window; the orb only hides if no Start arrived in between. Only one
// pending hide can own the timer at a time: every End acquires a fresh token
// and every Start releases the current one, so expiries delivered for an older
// token are ignored.
package visibility

import "time"

// Grace windows.
const (
	DefaultGrace    = 300 * time.Millisecond
	PreferenceGrace = 1000 * time.Millisecond
)

// Token identifies one scheduled hide. The zero Token is never issued.
type Token uint64

// Scheduler delivers Timer.Expire(tok) once after d. Implementations may
// deliver late or not at all after the token is released; Expire ignores
// tokens that no longer own the slot.
type Scheduler interface {
	Schedule(tok Token, d time.Duration)
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(tok Token, d time.Duration)

// Schedule calls f(tok, d).
func (f SchedulerFunc) Schedule(tok Token, d time.Duration) { f(tok, d) }

// slot holds at most one pending token.
type slot struct {
	last    Token
	pending Token
}

// acquire releases any held token and returns a new one.
func (s *slot) acquire() Token {
	s.last++
	s.pending = s.last
	return s.pending
}

// release drops the held token, if any.
func (s *slot) release() {
	s.pending = 0
}

// owns reports whether tok is the currently held token.
func (s *slot) owns(tok Token) bool {
	return tok != 0 && tok == s.pending
}

// Timer is the debounced interacting flag. It is not safe for concurrent use;
// the host serializes calls (see AfterFuncScheduler for embedded hosts).
type Timer struct {
	grace       time.Duration
	sched       Scheduler
	slot        slot
	interacting bool
	subs        []func(bool)
}

// New creates a Timer with the given baseline grace window. A non-positive
// grace uses DefaultGrace.
func New(sched Scheduler, grace time.Duration) *Timer {
	if grace <= 0 {
		grace = DefaultGrace
	}
	return &Timer{grace: grace, sched: sched}
}

// Interacting reports the current flag value.
func (t *Timer) Interacting() bool {
	return t.interacting
}

// Grace returns the baseline grace window.
func (t *Timer) Grace() time.Duration {
	return t.grace
}

// Pending reports whether a hide is scheduled.
func (t *Timer) Pending() bool {
	return t.slot.pending != 0
}

// Subscribe registers fn to be called whenever the flag changes value.
func (t *Timer) Subscribe(fn func(bool)) {
	t.subs = append(t.subs, fn)
}

// Start cancels any pending hide and sets the flag immediately.
func (t *Timer) Start() {
	t.slot.release()
	t.set(true)
}

// End schedules the flag to clear after the baseline grace window.
func (t *Timer) End() Token {
	return t.EndAfter(t.grace)
}

// EndAfter schedules the flag to clear after d, replacing any pending hide.
func (t *Timer) EndAfter(d time.Duration) Token {
	tok := t.slot.acquire()
	if t.sched != nil {
		t.sched.Schedule(tok, d)
	}
	return tok
}

// Expire clears the flag if tok still owns the pending slot. It reports
// whether tok was current.
func (t *Timer) Expire(tok Token) bool {
	if !t.slot.owns(tok) {
		return false
	}
	t.slot.release()
	t.set(false)
	return true
}

// Cancel drops any pending hide without changing the flag.
func (t *Timer) Cancel() {
	t.slot.release()
}

func (t *Timer) set(v bool) {
	if t.interacting == v {
		return
	}
	t.interacting = v
	for _, fn := range t.subs {
		fn(v)
	}
}

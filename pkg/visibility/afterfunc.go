package visibility

import (
	"sync"
	"time"
)

// AfterFuncScheduler delivers expiries with time.AfterFunc for hosts that do
// not have their own event loop. At most one runtime timer is outstanding;
// scheduling a new token stops the previous timer.
//
// Expiries run on the timer goroutine while holding the Locker passed to the
// constructor, which must be the same lock the host holds while calling into
// the Timer.
type AfterFuncScheduler struct {
	mu      sync.Mutex
	locker  sync.Locker
	target  *Timer
	timer   *time.Timer
	stopped bool
}

// NewAfterFuncScheduler returns a scheduler that serializes expiries through
// locker. Attach must be called before the first Schedule.
func NewAfterFuncScheduler(locker sync.Locker) *AfterFuncScheduler {
	return &AfterFuncScheduler{locker: locker}
}

// Attach sets the Timer that receives expiries.
func (s *AfterFuncScheduler) Attach(t *Timer) {
	s.mu.Lock()
	s.target = t
	s.mu.Unlock()
}

// Schedule implements Scheduler.
func (s *AfterFuncScheduler) Schedule(tok Token, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.target == nil {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	target := s.target
	s.timer = time.AfterFunc(d, func() {
		s.locker.Lock()
		defer s.locker.Unlock()
		target.Expire(tok)
	})
}

// Stop cancels the outstanding timer and ignores later Schedule calls.
func (s *AfterFuncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

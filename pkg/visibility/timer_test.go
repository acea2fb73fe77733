package visibility

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// recordingScheduler remembers every request instead of running timers.
type recordingScheduler struct {
	tokens []Token
	delays []time.Duration
}

func (r *recordingScheduler) Schedule(tok Token, d time.Duration) {
	r.tokens = append(r.tokens, tok)
	r.delays = append(r.delays, d)
}

func (r *recordingScheduler) last() Token {
	return r.tokens[len(r.tokens)-1]
}

func TestStartIsImmediate(t *testing.T) {
	tm := New(&recordingScheduler{}, 0)
	assert.False(t, tm.Interacting())
	tm.Start()
	assert.True(t, tm.Interacting())
	assert.Equal(t, DefaultGrace, tm.Grace())
}

func TestEndHidesAfterExpiry(t *testing.T) {
	sched := &recordingScheduler{}
	tm := New(sched, 0)
	tm.Start()
	tok := tm.End()

	require.Equal(t, []time.Duration{DefaultGrace}, sched.delays)
	assert.True(t, tm.Interacting(), "flag holds until the grace window elapses")
	assert.True(t, tm.Pending())

	assert.True(t, tm.Expire(tok))
	assert.False(t, tm.Interacting())
	assert.False(t, tm.Pending())
}

func TestStartWithinGraceCancelsHide(t *testing.T) {
	sched := &recordingScheduler{}
	tm := New(sched, 0)

	var seen []bool
	tm.Subscribe(func(v bool) { seen = append(seen, v) })

	tm.Start()
	tok := tm.End()
	tm.Start()

	assert.False(t, tm.Expire(tok), "stale expiry must be ignored")
	assert.True(t, tm.Interacting())
	assert.Equal(t, []bool{true}, seen, "no intermediate false is published")
}

func TestOnlyLatestTokenExpires(t *testing.T) {
	sched := &recordingScheduler{}
	tm := New(sched, 0)
	tm.Start()

	first := tm.End()
	second := tm.EndAfter(PreferenceGrace)
	require.NotEqual(t, first, second)
	assert.Equal(t, PreferenceGrace, sched.delays[1])

	assert.False(t, tm.Expire(first))
	assert.True(t, tm.Interacting())
	assert.True(t, tm.Expire(second))
	assert.False(t, tm.Interacting())

	assert.False(t, tm.Expire(second), "a token expires at most once")
}

func TestCancelKeepsFlag(t *testing.T) {
	sched := &recordingScheduler{}
	tm := New(sched, 0)
	tm.Start()
	tok := tm.End()
	tm.Cancel()
	assert.False(t, tm.Expire(tok))
	assert.True(t, tm.Interacting())
}

func TestZeroTokenNeverOwns(t *testing.T) {
	tm := New(nil, 0)
	tm.Start()
	assert.False(t, tm.Expire(0))
	assert.True(t, tm.Interacting())
}

func TestSubscribersOnlySeeChanges(t *testing.T) {
	sched := &recordingScheduler{}
	tm := New(sched, 0)
	var seen []bool
	tm.Subscribe(func(v bool) { seen = append(seen, v) })

	tm.Start()
	tm.Start()
	tm.Expire(tm.End())
	tm.Expire(tm.End())

	assert.Equal(t, []bool{true, false}, seen)
}

func TestSchedulerFunc(t *testing.T) {
	var got Token
	tm := New(SchedulerFunc(func(tok Token, _ time.Duration) { got = tok }), 0)
	tok := tm.End()
	assert.Equal(t, tok, got)
}

// --- AfterFuncScheduler ---

func TestAfterFuncSchedulerHides(t *testing.T) {
	defer goleak.VerifyNone(t)

	var mu sync.Mutex
	sched := NewAfterFuncScheduler(&mu)
	tm := New(sched, 20*time.Millisecond)
	sched.Attach(tm)
	defer sched.Stop()

	mu.Lock()
	tm.Start()
	tm.End()
	mu.Unlock()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return !tm.Interacting()
	}, time.Second, 5*time.Millisecond)
}

func TestAfterFuncSchedulerRestartKeepsRevealed(t *testing.T) {
	defer goleak.VerifyNone(t)

	var mu sync.Mutex
	sched := NewAfterFuncScheduler(&mu)
	tm := New(sched, 30*time.Millisecond)
	sched.Attach(tm)
	defer sched.Stop()

	var flips int
	tm.Subscribe(func(bool) { flips++ })

	mu.Lock()
	tm.Start()
	tm.End()
	tm.Start()
	mu.Unlock()

	time.Sleep(80 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, tm.Interacting())
	assert.Equal(t, 1, flips)
}

func TestAfterFuncSchedulerStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	var mu sync.Mutex
	sched := NewAfterFuncScheduler(&mu)
	tm := New(sched, 10*time.Millisecond)
	sched.Attach(tm)

	mu.Lock()
	tm.Start()
	tm.End()
	mu.Unlock()
	sched.Stop()

	// Scheduling after Stop is ignored.
	mu.Lock()
	tm.End()
	mu.Unlock()

	time.Sleep(40 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.True(t, tm.Interacting())
}

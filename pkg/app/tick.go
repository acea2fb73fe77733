package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/prefs"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/visibility"
)

// FrameCmd returns a Cmd that sends a FrameEvent after d. The root model
// re-arms it while the animator is moving and lets it lapse once settled.
func FrameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameEvent{Time: t}
	})
}

// HideCmd returns a Cmd that delivers tok after d.
func HideCmd(tok visibility.Token, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return HideEvent{Token: tok}
	})
}

// Emit wraps msg in a Cmd.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// WatchPrefsCmd waits for the next reload from ch. It returns nil once ch is
// closed so the loop ends with the watcher.
func WatchPrefsCmd(ch <-chan prefs.Prefs) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return PrefsEvent{Prefs: p}
	}
}

// SavePrefsCmd writes p to path off the update loop.
func SavePrefsCmd(path string, p prefs.Prefs) tea.Cmd {
	return func() tea.Msg {
		return PrefsSavedEvent{Path: path, Err: prefs.Save(path, p)}
	}
}

// Scheduler implements visibility.Scheduler on top of tea.Tick. Schedule only
// queues the hide; the root model drains the queue after each Update and
// returns the commands, so expiries come back as HideEvents on the loop.
type Scheduler struct {
	queue []tea.Cmd
}

var _ visibility.Scheduler = (*Scheduler)(nil)

// Schedule implements visibility.Scheduler.
func (s *Scheduler) Schedule(tok visibility.Token, d time.Duration) {
	s.queue = append(s.queue, HideCmd(tok, d))
}

// Drain returns the queued hides as one Cmd and empties the queue.
func (s *Scheduler) Drain() tea.Cmd {
	if len(s.queue) == 0 {
		return nil
	}
	cmds := s.queue
	s.queue = nil
	return tea.Batch(cmds...)
}

// Len reports how many hides are queued.
func (s *Scheduler) Len() int {
	return len(s.queue)
}

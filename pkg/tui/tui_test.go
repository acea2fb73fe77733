package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/app"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/config"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/geometry"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/prefs"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/render"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/session"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/theme"
)

// helper to send a message through Update and return the updated Model.
func tuiUpdate(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// testConfig returns defaults that never touch the user's files.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.General.PersistPrefs = false
	cfg.General.PrefsFile = filepath.Join(t.TempDir(), "prefs.yaml")
	cfg.General.LogFile = ""
	return cfg
}

func newTestTuiModel(t *testing.T, signedIn bool) Model {
	t.Helper()
	return newTestTuiModelWith(t, testConfig(t), signedIn, nil)
}

func newTestTuiModelWith(t *testing.T, cfg *config.Config, signedIn bool, zones *zone.Manager) Model {
	t.Helper()
	sess := session.New()
	if signedIn {
		if _, err := sess.Login(session.DemoEmail, session.DemoPassword); err != nil {
			t.Fatalf("login: %v", err)
		}
	}
	return New(Options{Config: cfg, Session: sess, Zones: zones})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes cmd and flattens batches. Only pass commands that cannot
// block for long.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewCreatesCorrectInitialState(t *testing.T) {
	m := newTestTuiModel(t, false)

	st := m.State()
	if st.Dock != anchor.Center {
		t.Errorf("expected centered orb, got %s", st.Dock)
	}
	if st.ActiveItem != "" {
		t.Errorf("expected no active item, got %q", st.ActiveItem)
	}
	if m.Ready() {
		t.Error("expected ready=false")
	}
	if m.Lang() != menu.English {
		t.Errorf("expected en, got %s", m.Lang())
	}
	if m.ThemeName() != theme.DefaultName {
		t.Errorf("expected theme %s, got %s", theme.DefaultName, m.ThemeName())
	}
	if m.ShowHelp() {
		t.Error("expected showHelp=false")
	}
	if _, active := m.RingFocus(); active {
		t.Error("expected ring unfocused")
	}
	if m.View() != "" {
		t.Error("expected empty view before the first WindowSizeMsg")
	}
}

func TestNewAppliesConfigAndStoredPrefs(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dock.AutoHide = true
	cfg.Dock.Preferred = anchor.RightEdge
	cfg.General.Language = "zh"

	m := New(Options{Config: cfg})
	st := m.State()
	if !st.AutoHide || st.Preferred != anchor.RightEdge {
		t.Errorf("config not applied: %+v", st)
	}
	if m.Lang() != menu.Chinese {
		t.Errorf("expected zh, got %s", m.Lang())
	}

	stored := prefs.Prefs{Preferred: anchor.TopEdge, AutoHide: false, OmniWake: true, Language: menu.English, Theme: "ember"}
	m = New(Options{Config: cfg, Prefs: &stored})
	st = m.State()
	if st.Preferred != anchor.TopEdge || st.AutoHide {
		t.Errorf("stored prefs not applied: %+v", st)
	}
	if st.OmniWake {
		t.Error("omni-wake without auto-hide must be normalized away")
	}
	if m.Lang() != menu.English || m.ThemeName() != "ember" {
		t.Errorf("expected en/ember, got %s/%s", m.Lang(), m.ThemeName())
	}
}

func TestWindowSizeMsgSetsReady(t *testing.T) {
	m := newTestTuiModel(t, false)

	m, cmd := tuiUpdate(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Width() != 120 || m.Height() != 40 {
		t.Errorf("expected 120x40, got %dx%d", m.Width(), m.Height())
	}
	if !m.Ready() {
		t.Error("expected ready=true after WindowSizeMsg")
	}
	if m.Viewport() != geometry.Desktop {
		t.Errorf("expected desktop viewport, got %s", m.Viewport())
	}
	if !m.Animating() || cmd == nil {
		t.Error("expected the entrance animation to start")
	}
	if m.Scene().Group != render.CenterGroup {
		t.Errorf("expected center group, got %s", m.Scene().Group)
	}
}

func TestNarrowWindowIsMobile(t *testing.T) {
	m := newTestTuiModel(t, false)
	// 80 cols x 8 px = 640 px, below the 768 px breakpoint.
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 80, Height: 30})
	if m.Viewport() != geometry.Mobile {
		t.Errorf("expected mobile viewport, got %s", m.Viewport())
	}
}

func TestFrameEventsSettleAnimation(t *testing.T) {
	m := newTestTuiModel(t, false)
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	for i := 0; i < 2000 && m.Animating(); i++ {
		m, _ = tuiUpdate(m, app.FrameEvent{Time: time.Now()})
	}
	if m.Animating() {
		t.Fatal("animation never settled")
	}
	if m.trigger.Phase() != render.Settled {
		t.Errorf("expected settled trigger, got %s", m.trigger.Phase())
	}

	// A dock move starts a new entrance.
	m, _ = tuiUpdate(m, app.SelectBookEvent{ID: "1"})
	if !m.Animating() {
		t.Error("expected animation after docking")
	}
	if m.trigger.Replays() != 2 {
		t.Errorf("expected 2 entrances, got %d", m.trigger.Replays())
	}
}

func TestDigitKeyOpensItemWhenSignedIn(t *testing.T) {
	m := newTestTuiModel(t, true)

	m, _ = tuiUpdate(m, keyRunes("1"))

	st := m.State()
	if st.ActiveItem != menu.Library {
		t.Errorf("expected library, got %q", st.ActiveItem)
	}
	if st.Dock != anchor.Left {
		t.Errorf("expected docked left, got %s", st.Dock)
	}
}

func TestDigitKeyHitsAuthGateForGuests(t *testing.T) {
	m := newTestTuiModel(t, false)

	m, _ = tuiUpdate(m, keyRunes("2"))

	st := m.State()
	if st.ActiveItem != menu.Auth || st.Dock != anchor.Center {
		t.Errorf("expected centered auth overlay, got %+v", st)
	}
}

func TestOfflineItemBypassesAuthGate(t *testing.T) {
	m := newTestTuiModel(t, false)

	m, _ = tuiUpdate(m, keyRunes("6"))
	if !m.session.Offline() {
		t.Fatal("expected offline mode")
	}
	if m.State().ActiveItem != "" {
		t.Errorf("offline item must not become active, got %q", m.State().ActiveItem)
	}

	m, _ = tuiUpdate(m, keyRunes("1"))
	if m.State().ActiveItem != menu.Library {
		t.Errorf("expected library while offline, got %q", m.State().ActiveItem)
	}
}

func TestTabFocusesRingThenEnterActivates(t *testing.T) {
	m := newTestTuiModel(t, true)

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	id, active := m.RingFocus()
	if !active || id != menu.Library {
		t.Fatalf("expected ring focus on library, got %q active=%v", id, active)
	}

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	if id, _ := m.RingFocus(); id != menu.Search {
		t.Errorf("expected search, got %q", id)
	}

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if id, _ := m.RingFocus(); id != menu.Reader {
		t.Errorf("expected reader after shift+tab, got %q", id)
	}

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().ActiveItem != menu.Reader {
		t.Errorf("expected reader active, got %q", m.State().ActiveItem)
	}
	if _, active := m.RingFocus(); active {
		t.Error("expected ring focus released after activation")
	}
}

func TestEscRecenters(t *testing.T) {
	m := newTestTuiModel(t, true)
	m, _ = tuiUpdate(m, keyRunes("5"))
	if m.State().Dock == anchor.Center {
		t.Fatal("expected docked orb")
	}

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyEsc})
	st := m.State()
	if st.Dock != anchor.Center || st.ActiveItem != "" {
		t.Errorf("expected centered with nothing active, got %+v", st)
	}
}

func TestCapturingPageSwallowsGlobalKeys(t *testing.T) {
	m := newTestTuiModel(t, false)
	m, _ = tuiUpdate(m, keyRunes("1"))
	if m.State().ActiveItem != menu.Auth {
		t.Fatalf("expected auth, got %q", m.State().ActiveItem)
	}

	for _, k := range []string{"o", "t", "L", "2"} {
		m, _ = tuiUpdate(m, keyRunes(k))
	}
	if m.State().ActiveItem != menu.Auth {
		t.Errorf("auth form must keep typed keys, active=%q", m.State().ActiveItem)
	}
	if m.ThemeName() != theme.DefaultName || m.Lang() != menu.English {
		t.Error("theme and language keys must not fire while typing")
	}
}

func TestLoginAndLogout(t *testing.T) {
	m := newTestTuiModel(t, false)
	m, _ = tuiUpdate(m, app.OpenAuthEvent{})

	m, _ = tuiUpdate(m, app.LoginEvent{Email: "nobody@example.com", Password: "x"})
	if m.session.Authenticated() || m.State().ActiveItem != menu.Auth {
		t.Fatal("bad credentials must keep the overlay open")
	}

	m, _ = tuiUpdate(m, app.LoginEvent{Email: session.DemoEmail, Password: session.DemoPassword})
	if !m.session.Authenticated() {
		t.Fatal("expected signed in")
	}
	if st := m.State(); st.ActiveItem != "" || st.Dock != anchor.Center {
		t.Errorf("expected centered orb after login, got %+v", st)
	}

	m, _ = tuiUpdate(m, app.LogoutEvent{})
	if m.session.Authenticated() || m.State().ActiveItem != menu.Auth {
		t.Error("expected logout to reopen the auth overlay")
	}
}

func TestRegisterSignsIn(t *testing.T) {
	m := newTestTuiModel(t, false)
	m, _ = tuiUpdate(m, app.OpenAuthEvent{})

	m, _ = tuiUpdate(m, app.RegisterEvent{Username: "Ada", Email: "ada@example.com", Password: "pw"})
	u, ok := m.session.User()
	if !ok || u.Username != "Ada" {
		t.Fatalf("expected Ada signed in, got %+v", u)
	}
	if m.State().ActiveItem != "" {
		t.Errorf("expected overlay closed, got %q", m.State().ActiveItem)
	}
}

func TestSelectBookOpensReader(t *testing.T) {
	m := newTestTuiModel(t, true)

	m, _ = tuiUpdate(m, app.SelectBookEvent{ID: "2"})

	st := m.State()
	if st.ActiveItem != menu.Reader || st.Dock != anchor.Left {
		t.Errorf("expected reader docked left, got %+v", st)
	}
	if !m.env().HasBook || m.env().Book.Title != "Dune" {
		t.Errorf("expected Dune, got %+v", m.env().Book)
	}
}

func TestAvatarEventCyclesColor(t *testing.T) {
	m := newTestTuiModel(t, true)
	before, _ := m.session.User()

	m, _ = tuiUpdate(m, app.AvatarEvent{})

	after, _ := m.session.User()
	if after.Avatar == before.Avatar {
		t.Error("expected a new avatar color")
	}
}

func TestPreferenceChangesAreSaved(t *testing.T) {
	cfg := testConfig(t)
	cfg.General.PersistPrefs = true
	m := New(Options{Config: cfg})

	m, cmd := tuiUpdate(m, app.PreferredDockEvent{Edge: anchor.RightEdge})
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	var saved bool
	for _, msg := range runCmd(cmd) {
		if ev, ok := msg.(app.PrefsSavedEvent); ok {
			saved = true
			if ev.Err != nil {
				t.Fatalf("save: %v", ev.Err)
			}
		}
	}
	if !saved {
		t.Fatal("expected PrefsSavedEvent")
	}
	p, found, err := prefs.Load(cfg.General.PrefsFile)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if p.Preferred != anchor.RightEdge {
		t.Errorf("expected right, got %s", p.Preferred)
	}

	// No change, no write.
	_, cmd = tuiUpdate(m, app.PreferredDockEvent{Edge: anchor.RightEdge})
	if cmd != nil {
		t.Error("expected no save for an unchanged preference")
	}
}

func TestPersistOffNeverSaves(t *testing.T) {
	m := newTestTuiModel(t, false)
	_, cmd := tuiUpdate(m, app.AutoHideEvent{On: true})
	if cmd != nil {
		t.Error("expected no command with persistence off and nothing docked")
	}
}

func TestPrefsEventAppliesWithoutResave(t *testing.T) {
	cfg := testConfig(t)
	cfg.General.PersistPrefs = true
	m := New(Options{Config: cfg})

	m, cmd := tuiUpdate(m, app.PrefsEvent{Prefs: prefs.Prefs{
		Preferred: anchor.TopEdge, AutoHide: true, OmniWake: true,
		Language: menu.Chinese, Theme: "ember",
	}})

	st := m.State()
	if st.Preferred != anchor.TopEdge || !st.AutoHide || !st.OmniWake {
		t.Errorf("reload not applied: %+v", st)
	}
	if m.Lang() != menu.Chinese || m.ThemeName() != "ember" {
		t.Errorf("expected zh/ember, got %s/%s", m.Lang(), m.ThemeName())
	}
	if cmd != nil {
		t.Error("a reload must not write the file back")
	}
}

func TestPrefsEchoLeavesDockedOrbAlone(t *testing.T) {
	tests := []struct {
		name     string
		omni     bool
		peek     tea.KeyType
		wantDock anchor.Position
		external bool
	}{
		{name: "omni-wake summoned to top", omni: true, peek: tea.KeyCtrlUp, wantDock: anchor.Top},
		{name: "omni-wake, language edited on disk", omni: true, peek: tea.KeyCtrlUp, wantDock: anchor.Top, external: true},
		{name: "auto-hide tucked at right", peek: tea.KeyCtrlRight, wantDock: anchor.Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.General.PersistPrefs = true
			cfg.Dock.AutoHide = true
			cfg.Dock.OmniWake = tt.omni
			cfg.Dock.Preferred = anchor.RightEdge
			cfg.Dock.Grace = config.Duration{Duration: 5 * time.Millisecond}
			m := newTestTuiModelWith(t, cfg, true, nil)

			m, _ = tuiUpdate(m, keyRunes("1"))
			m, cmd := tuiUpdate(m, tea.KeyMsg{Type: tt.peek})
			for _, msg := range runCmd(cmd) {
				if ev, ok := msg.(app.HideEvent); ok {
					m, _ = tuiUpdate(m, ev)
				}
			}
			if st := m.State(); st.Dock != tt.wantDock || st.Visible() {
				t.Fatalf("expected a hidden orb at %s, got %+v", tt.wantDock, st)
			}

			// Saving writes the file; the watcher then reports it back.
			m, cmd = tuiUpdate(m, keyRunes("t"))
			if cmd == nil {
				t.Fatal("expected the theme change to be saved")
			}
			echo := m.lastSaved
			if tt.external {
				echo.Language = menu.Chinese
			}
			before := m.State()

			m, cmd = tuiUpdate(m, app.PrefsEvent{Prefs: echo})
			if got := m.State(); got != before {
				t.Errorf("reload moved the orb: before %+v, after %+v", before, got)
			}
			if cmd != nil {
				t.Error("reload must not schedule a reveal or a save")
			}
			if tt.external && m.Lang() != menu.Chinese {
				t.Errorf("expected the edited language applied, got %s", m.Lang())
			}
		})
	}
}

func TestSettingsEventsDriveMachine(t *testing.T) {
	m := newTestTuiModel(t, true)

	m, _ = tuiUpdate(m, app.OmniWakeEvent{On: true})
	if m.State().OmniWake {
		t.Error("omni-wake requires auto-hide")
	}
	m, _ = tuiUpdate(m, app.AutoHideEvent{On: true})
	m, _ = tuiUpdate(m, app.OmniWakeEvent{On: true})
	if !m.State().OmniWake {
		t.Error("expected omni-wake on")
	}
	m, _ = tuiUpdate(m, app.LanguageEvent{Lang: menu.Chinese})
	if m.items[0].Label != menu.T(menu.Chinese).Library {
		t.Errorf("ring labels not rebuilt: %q", m.items[0].Label)
	}
	m, _ = tuiUpdate(m, app.ThemeChangeEvent{Theme: "mono"})
	if m.ThemeName() != "mono" {
		t.Errorf("expected mono, got %s", m.ThemeName())
	}
}

func TestLanguageAndThemeKeys(t *testing.T) {
	m := newTestTuiModel(t, false)

	m, _ = tuiUpdate(m, keyRunes("L"))
	if m.Lang() != menu.Chinese {
		t.Errorf("expected zh, got %s", m.Lang())
	}
	m, _ = tuiUpdate(m, keyRunes("L"))
	if m.Lang() != menu.English {
		t.Errorf("expected en, got %s", m.Lang())
	}

	want := theme.Next(m.ThemeName()).Name
	m, _ = tuiUpdate(m, keyRunes("t"))
	if m.ThemeName() != want {
		t.Errorf("expected %s, got %s", want, m.ThemeName())
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestTuiModel(t, false)
	m, _ = tuiUpdate(m, keyRunes("?"))
	if !m.ShowHelp() {
		t.Error("expected full help")
	}
	m, _ = tuiUpdate(m, keyRunes("?"))
	if m.ShowHelp() {
		t.Error("expected short help")
	}
}

func TestPeekRevealsThenHides(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dock.AutoHide = true
	cfg.Dock.Grace = config.Duration{Duration: 5 * time.Millisecond}
	m := newTestTuiModelWith(t, cfg, true, nil)

	m, _ = tuiUpdate(m, keyRunes("1"))
	if m.State().Visible() {
		t.Fatal("expected the docked orb tucked away")
	}

	m, cmd := tuiUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlLeft})
	if !m.State().Visible() {
		t.Fatal("expected the orb revealed by the edge peek")
	}

	var hides int
	for _, msg := range runCmd(cmd) {
		if ev, ok := msg.(app.HideEvent); ok {
			hides++
			m, _ = tuiUpdate(m, ev)
		}
	}
	if hides != 1 {
		t.Fatalf("expected one scheduled hide, got %d", hides)
	}
	if m.State().Visible() {
		t.Error("expected the orb hidden after the grace period")
	}
}

func TestPeekAtOtherEdgeStaysHidden(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dock.AutoHide = true
	m := newTestTuiModelWith(t, cfg, true, nil)
	m, _ = tuiUpdate(m, keyRunes("1"))

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlRight})
	if m.State().Visible() {
		t.Error("a foreign edge must not wake the orb without omni-wake")
	}
}

func TestHoverTransitions(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dock.AutoHide = true
	m := newTestTuiModelWith(t, cfg, true, nil)
	m, _ = tuiUpdate(m, keyRunes("1"))

	m.setHover(render.SensorZone(anchor.LeftEdge))
	if !m.State().Interacting {
		t.Fatal("entering the docked edge must wake the orb")
	}
	m.setHover(render.ZoneOrb)
	if !m.State().Interacting {
		t.Error("expected interaction to continue on the orb")
	}
	if m.Hover() != render.ZoneOrb {
		t.Errorf("expected hover on orb, got %q", m.Hover())
	}

	m.sched.Drain()
	m.setHover("")
	if !m.State().Interacting {
		t.Error("leaving must wait for the grace period")
	}
	if m.sched.Len() == 0 {
		t.Error("expected a scheduled hide")
	}
}

func TestViewFillsWindow(t *testing.T) {
	m := newTestTuiModel(t, true)
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m.anim.Snap()

	for _, item := range []string{"", "1", "2", "3", "4", "5"} {
		if item != "" {
			m, _ = tuiUpdate(m, keyRunes(item))
			m.anim.Snap()
		}
		lines := strings.Split(m.View(), "\n")
		if len(lines) != 30 {
			t.Fatalf("item %q: expected 30 lines, got %d", item, len(lines))
		}
		for i, l := range lines {
			if w := ansi.StringWidth(l); w != 100 {
				t.Fatalf("item %q line %d: expected width 100, got %d", item, i, w)
			}
		}
	}
}

func TestViewShowsCaptionHeaderAndHints(t *testing.T) {
	m := newTestTuiModel(t, false)
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m.anim.Snap()

	out := ansi.Strip(m.View())
	for _, want := range []string{"O R B I T", "READER OS", "LOGIN", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestStatusBarShowsRingFocus(t *testing.T) {
	m := newTestTuiModel(t, false)
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyTab})

	bar := ansi.Strip(m.statusBar(120))
	if !strings.Contains(bar, "› ▤ Library") {
		t.Errorf("expected ring focus in status bar, got %q", bar)
	}
	if w := ansi.StringWidth(bar); w != 120 {
		t.Errorf("expected width 120, got %d", w)
	}
	if m.statusBar(0) != "" {
		t.Error("expected empty bar at zero width")
	}
}

func TestSaveErrorShowsInStatus(t *testing.T) {
	m := newTestTuiModel(t, false)
	m, _ = tuiUpdate(m, app.PrefsSavedEvent{Path: "/x", Err: errTest})
	if !strings.Contains(m.Status(), "boom") {
		t.Errorf("expected error in status, got %q", m.Status())
	}
	m, _ = tuiUpdate(m, app.StatusEvent{Text: "hello"})
	if m.Status() != "hello" {
		t.Errorf("expected hello, got %q", m.Status())
	}
}

type testError string

func (e testError) Error() string { return string(e) }

const errTest = testError("boom")

// clickAt presses the left button in the middle of z.
func clickAt(z *zone.ZoneInfo) tea.MouseMsg {
	return tea.MouseMsg{
		X:      (z.StartX + z.EndX) / 2,
		Y:      (z.StartY + z.EndY) / 2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
}

func waitZone(t *testing.T, zones *zone.Manager, id string) *zone.ZoneInfo {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for {
		if z := zones.Get(id); z != nil && !z.IsZero() {
			return z
		}
		if time.Now().After(deadline) {
			t.Fatalf("zone %s never scanned", id)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestClickMenuItem(t *testing.T) {
	zones := zone.New()
	m := newTestTuiModelWith(t, testConfig(t), true, zones)
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m.anim.Snap()
	m.View()

	z := waitZone(t, zones, render.ItemZone(menu.Settings))
	m, _ = tuiUpdate(m, clickAt(z))

	if m.State().ActiveItem != menu.Settings {
		t.Errorf("expected settings, got %q", m.State().ActiveItem)
	}
}

func TestClickOrbRecenters(t *testing.T) {
	zones := zone.New()
	m := newTestTuiModelWith(t, testConfig(t), true, zones)
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = tuiUpdate(m, keyRunes("1"))
	m.anim.Snap()
	m.View()

	z := waitZone(t, zones, render.ZoneOrb)
	m, _ = tuiUpdate(m, clickAt(z))

	if st := m.State(); st.Dock != anchor.Center || st.ActiveItem != "" {
		t.Errorf("expected centered orb, got %+v", st)
	}
}

func TestClickHeaderLoginOpensAuth(t *testing.T) {
	zones := zone.New()
	m := newTestTuiModelWith(t, testConfig(t), false, zones)
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m.anim.Snap()
	m.View()

	z := waitZone(t, zones, "header:login")
	_, cmd := tuiUpdate(m, clickAt(z))

	var opened bool
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(app.OpenAuthEvent); ok {
			opened = true
		}
	}
	if !opened {
		t.Error("expected OpenAuthEvent from the header")
	}
}

func TestSnapshot(t *testing.T) {
	cfg := testConfig(t)

	out := Snapshot(cfg, SnapshotOptions{Width: 100, Height: 30, Dock: anchor.Center})
	if lines := strings.Split(out, "\n"); len(lines) != 30 {
		t.Fatalf("expected 30 lines, got %d", len(lines))
	}
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "O R B I T") {
		t.Error("expected the caption on a centered orb")
	}
	if !strings.Contains(plain, "TRAVELLER_01") {
		t.Error("expected the demo user in the header")
	}

	docked := ansi.Strip(Snapshot(cfg, SnapshotOptions{Width: 100, Height: 30, Dock: anchor.Right}))
	if !strings.Contains(docked, "My Library") {
		t.Error("expected the library behind a docked orb")
	}
	if strings.Contains(docked, "O R B I T") {
		t.Error("a docked orb carries no caption")
	}

	if Snapshot(cfg, SnapshotOptions{}) != "" {
		t.Error("expected empty output for a zero-size snapshot")
	}
}

// Package tui is the interactive shell: a bubbletea model that feeds
// keyboard, mouse and timer input into the dock state machine, springs the
// orb and its ring toward the resulting layout, and draws them over the
// active content page.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/app"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/config"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/dock"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/geometry"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/library"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/prefs"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/render"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/session"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/theme"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/views"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/visibility"
)

// Options configures New.
type Options struct {
	Config  *config.Config
	Logger  *zap.Logger
	Session *session.Session

	// Prefs, when set, are applied over the configured dock settings.
	Prefs *prefs.Prefs
	// Watch delivers preference reloads from a prefs.Watcher.
	Watch <-chan prefs.Prefs

	// Zones enables mouse hit-testing. Nil disables it.
	Zones *zone.Manager
}

// Model is the root bubbletea model.
type Model struct {
	cfg     *config.Config
	log     *zap.Logger
	machine *dock.Machine
	sched   *app.Scheduler
	session *session.Session
	zones   *zone.Manager

	lang   menu.Language
	theme  theme.Theme
	styles theme.Styles
	items  []menu.Item

	pages      []app.Page
	ring       app.Focus
	ringActive bool
	keys       keyMap
	help       help.Model

	anim    *render.Animator
	trigger *render.Trigger
	metrics render.Metrics
	stagger time.Duration
	scene   render.Scene
	ticking bool

	width    int
	height   int
	ready    bool
	viewport geometry.Viewport

	hover  string
	status string

	persist   bool
	prefsPath string
	lastSaved prefs.Prefs
	watch     <-chan prefs.Prefs
}

// New creates the root model. Stored preferences are routed through the
// machine's transitions, so they are normalized like any user change.
func New(o Options) Model {
	cfg := o.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}
	sess := o.Session
	if sess == nil {
		sess = session.New()
	}

	sched := &app.Scheduler{}
	machine := dock.New(
		visibility.New(sched, cfg.Dock.Grace.Duration),
		dock.WithLogger(log.Named("dock")),
		dock.WithRevealGrace(cfg.Dock.PreferenceReveal.Duration),
		dock.WithAuth(sess),
	)
	machine.ApplyPreferences(dock.Preferences{
		Preferred: cfg.Dock.Preferred,
		AutoHide:  cfg.Dock.AutoHide,
		OmniWake:  cfg.Dock.OmniWake,
	})

	lang, err := menu.ParseLanguage(cfg.General.Language)
	if err != nil {
		lang = menu.English
	}
	themeName := cfg.Display.Theme
	if o.Prefs != nil {
		machine.ApplyPreferences(o.Prefs.Dock())
		if o.Prefs.Language != "" {
			lang = o.Prefs.Language
		}
		if o.Prefs.Theme != "" {
			themeName = o.Prefs.Theme
		}
	}
	th := theme.Get(themeName)

	items := menu.Items(lang)
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	m := Model{
		cfg:     cfg,
		log:     log,
		machine: machine,
		sched:   sched,
		session: sess,
		zones:   o.Zones,
		lang:    lang,
		items:   items,
		pages: []app.Page{
			views.NewLibrary(),
			views.NewReader(),
			app.NewPlaceholder(menu.Search, '⌕', func(l menu.Language) string { return menu.T(l).Search }),
			views.NewSettings(),
			views.NewProfile(),
			views.NewAuth(),
		},
		ring:    app.NewFocus(ids...),
		keys:    defaultKeys(),
		help:    help.New(),
		anim:    render.NewAnimator(cfg.Display.FPS, render.SpringConfig{Stiffness: cfg.Animation.Stiffness, Damping: cfg.Animation.Damping, Mass: cfg.Animation.Mass}),
		trigger: &render.Trigger{},
		metrics: render.Metrics{CellW: cfg.Display.CellWidthPx, CellH: cfg.Display.CellHeightPx},
		stagger: cfg.Animation.Stagger.Duration,

		persist:   cfg.General.PersistPrefs && cfg.General.PrefsFile != "",
		prefsPath: cfg.General.PrefsFile,
		watch:     o.Watch,
	}
	if m.metrics.CellW <= 0 || m.metrics.CellH <= 0 {
		m.metrics = render.DefaultMetrics
	}
	m.setTheme(th)
	m.lastSaved = m.prefs()
	return m
}

// Init starts the preference watch loop.
func (m Model) Init() tea.Cmd {
	return app.WatchPrefsCmd(m.watch)
}

// Update routes msg and then brings the animation and scheduled hides up to
// date with whatever the machine now holds.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.machine.Snapshot()
	cmds := []tea.Cmd{m.update(msg)}
	cmds = append(cmds, m.afterUpdate(before)...)
	return m, tea.Batch(cmds...)
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case app.FrameEvent:
		m.ticking = false
		m.anim.Step()
		if m.anim.Settled() {
			m.trigger.Settle()
		}
		return nil

	case app.HideEvent:
		m.machine.Expire(msg.Token)
		return nil

	case app.PrefsEvent:
		if msg.Prefs == m.lastSaved {
			m.log.Debug("preferences unchanged on disk")
			return app.WatchPrefsCmd(m.watch)
		}
		m.log.Info("preferences reloaded",
			zap.Stringer("preferred", msg.Prefs.Preferred),
			zap.Bool("auto_hide", msg.Prefs.AutoHide),
			zap.Bool("omni_wake", msg.Prefs.OmniWake),
		)
		m.machine.ApplyPreferences(msg.Prefs.Dock())
		if msg.Prefs.Language != "" {
			m.setLanguage(msg.Prefs.Language)
		}
		if msg.Prefs.Theme != "" {
			m.setTheme(theme.Get(msg.Prefs.Theme))
		}
		m.lastSaved = m.prefs()
		return app.WatchPrefsCmd(m.watch)

	case app.PrefsSavedEvent:
		if msg.Err != nil {
			m.log.Warn("saving preferences", zap.String("path", msg.Path), zap.Error(msg.Err))
			m.status = "⚠ " + msg.Err.Error()
		}
		return nil

	case app.StatusEvent:
		m.status = msg.Text
		return nil

	case app.SelectBookEvent:
		m.machine.SelectBook(msg.ID)
	case app.PreferredDockEvent:
		m.machine.SetPreferredDock(msg.Edge)
	case app.AutoHideEvent:
		m.machine.SetAutoHide(msg.On)
	case app.OmniWakeEvent:
		m.machine.SetOmniWake(msg.On)
	case app.LanguageEvent:
		m.setLanguage(msg.Lang)
	case app.ThemeChangeEvent:
		m.setTheme(theme.Get(msg.Theme))

	case app.LoginEvent:
		u, err := m.session.Login(msg.Email, msg.Password)
		if err != nil {
			m.log.Info("login rejected", zap.String("email", msg.Email))
			return m.routeTo(menu.Auth, app.AuthFailedEvent{Err: err})
		}
		m.log.Info("signed in", zap.String("user", u.Username))
		m.machine.LoginSucceeded()
	case app.RegisterEvent:
		u, err := m.session.Register(msg.Username, msg.Email, msg.Password)
		if err != nil {
			return m.routeTo(menu.Auth, app.AuthFailedEvent{Err: err})
		}
		m.log.Info("registered", zap.String("user", u.Username))
		m.machine.LoginSucceeded()
	case app.LogoutEvent:
		m.session.Logout()
		m.machine.Logout()
	case app.OpenAuthEvent:
		m.machine.OpenAuth()
	case app.CloseAuthEvent:
		m.machine.CloseAuth()
	case app.OpenProfileEvent:
		m.machine.OpenProfile()
	case app.AvatarEvent:
		m.session.CycleAvatar()

	default:
		cmds := make([]tea.Cmd, 0, len(m.pages))
		for _, p := range m.pages {
			cmds = append(cmds, p.Update(msg))
		}
		return tea.Batch(cmds...)
	}
	return m.savePrefs()
}

// afterUpdate resets a newly opened page, retargets the animator and
// collects the hides the machine scheduled.
func (m *Model) afterUpdate(before dock.State) []tea.Cmd {
	var cmds []tea.Cmd
	after := m.machine.Snapshot()
	if after.ActiveItem != before.ActiveItem {
		if r, ok := m.page(after.ActiveItem).(app.Resetter); ok {
			cmds = append(cmds, r.Reset())
		}
	}
	if m.ready {
		m.syncScene()
		if !m.ticking && !m.anim.Settled() {
			m.ticking = true
			cmds = append(cmds, app.FrameCmd(m.anim.FrameInterval()))
		}
	}
	cmds = append(cmds, m.sched.Drain())
	return cmds
}

func (m *Model) syncScene() {
	w, h := m.metrics.Size(m.width, m.height)
	sc := render.BuildStaggered(m.machine.Snapshot(), m.items, w, h, m.viewport, m.stagger)
	replay := m.trigger.Observe(sc.Group)
	m.anim.Sync(sc, replay)
	m.scene = sc
}

func (m *Model) resize(cols, rows int) {
	m.width, m.height = cols, rows
	m.ready = cols > 0 && rows > 0
	m.help.Width = cols
	w, _ := m.metrics.Size(cols, rows)
	vp := geometry.ClassifyWith(w, m.cfg.Display.MobileBreakpointPx)
	if vp != m.viewport {
		m.log.Info("viewport changed", zap.Stringer("viewport", vp), zap.Int("cols", cols), zap.Int("rows", rows))
	}
	m.viewport = vp
}

func (m *Model) setLanguage(l menu.Language) {
	if l == m.lang {
		return
	}
	m.lang = l
	m.items = menu.Items(l)
}

func (m *Model) setTheme(t theme.Theme) {
	m.theme = t
	m.styles = t.Styles()
	m.help.Styles.ShortKey = m.styles.HelpKey
	m.help.Styles.FullKey = m.styles.HelpKey
	m.help.Styles.ShortDesc = m.styles.HelpDesc
	m.help.Styles.FullDesc = m.styles.HelpDesc
	m.help.Styles.ShortSeparator = m.styles.Dim
	m.help.Styles.FullSeparator = m.styles.Dim
}

func (m Model) prefs() prefs.Prefs {
	return prefs.FromDock(m.machine.Preferences(), m.lang, m.theme.Name)
}

// savePrefs writes the preferences when they differ from the last known
// on-disk copy.
func (m *Model) savePrefs() tea.Cmd {
	p := m.prefs()
	if !m.persist || p == m.lastSaved {
		return nil
	}
	m.lastSaved = p
	return app.SavePrefsCmd(m.prefsPath, p)
}

// routeTo delivers msg to one page.
func (m *Model) routeTo(id string, msg tea.Msg) tea.Cmd {
	if p := m.page(id); p != nil {
		return p.Update(msg)
	}
	return nil
}

func (m Model) page(id string) app.Page {
	for _, p := range m.pages {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

// env snapshots what pages render from.
func (m Model) env() app.Env {
	u, signedIn := m.session.User()
	b, hasBook := library.Find(m.machine.CurrentBook())
	return app.Env{
		Lang:     m.lang,
		Theme:    m.theme,
		Styles:   m.styles,
		State:    m.machine.Snapshot(),
		Mobile:   m.viewport == geometry.Mobile,
		User:     u,
		SignedIn: signedIn,
		Offline:  m.session.Offline(),
		Book:     b,
		HasBook:  hasBook,
		Zones:    m.zones,
	}
}

// State returns the dock state.
func (m Model) State() dock.State { return m.machine.Snapshot() }

// Lang returns the UI language.
func (m Model) Lang() menu.Language { return m.lang }

// ThemeName returns the active theme.
func (m Model) ThemeName() string { return m.theme.Name }

// Ready reports whether a window size has been received.
func (m Model) Ready() bool { return m.ready }

func (m Model) Width() int                  { return m.width }
func (m Model) Height() int                 { return m.height }
func (m Model) Viewport() geometry.Viewport { return m.viewport }
func (m Model) Scene() render.Scene         { return m.scene }

// Hover returns the orb-layer zone under the pointer, if any.
func (m Model) Hover() string { return m.hover }

// RingFocus returns the focused ring item and whether the ring has focus.
func (m Model) RingFocus() (string, bool) { return m.ring.Current(), m.ringActive }

// ShowHelp reports whether the full help is expanded.
func (m Model) ShowHelp() bool { return m.help.ShowAll }

// Status returns the status bar message.
func (m Model) Status() string { return m.status }

// Animating reports whether frame ticks are running.
func (m Model) Animating() bool { return m.ticking }

func (m Model) ringItem() (menu.Item, bool) {
	return menu.Find(m.items, m.ring.Current())
}

// orbit is a terminal reading shell built around a single floating orb.
//
// The orb rests at the center of the screen or docks against an edge,
// surrounded by a ring of menu buttons that open the library, the reader,
// settings and the profile. With auto-hide on, a docked orb tucks itself
// away until the pointer wakes it from the screen edge.
//
// Usage:
//
//	orbit [flags]
//	orbit snapshot [--width N] [--height N] [--dock center|left|right|top|bottom] [--hidden]
//	orbit version
//
// Flags:
//
//	-c, --config string  Path to configuration file (default: $XDG_CONFIG_HOME/orbit-reader/config.toml)
//	-v, --verbose        Enable debug logging
//	    --no-color       Disable colors
//	    --lang string    Interface language (en|zh)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/config"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/logging"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/prefs"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/session"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/theme"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/tui"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// Fallback size when stdout is not a terminal.
const (
	defaultCols = 80
	defaultRows = 24
)

type rootFlags struct {
	configPath string
	verbose    bool
	noColor    bool
	lang       string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "orbit: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:           "orbit",
		Short:         "A reading shell steered by a floating orb",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if f.noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			fd := os.Stdout.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.Snapshot(cfg, tui.SnapshotOptions{
					Width:  defaultCols,
					Height: defaultRows,
				}))
				return err
			}
			return runInteractive(cmd.Context(), cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "path to configuration file")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&f.noColor, "no-color", false, "disable colors")
	pf.StringVar(&f.lang, "lang", "", "interface language (en|zh)")

	root.AddCommand(newSnapshotCmd(f), newVersionCmd())
	return root
}

func newSnapshotCmd(f *rootFlags) *cobra.Command {
	var (
		width, height int
		dockName      string
		hidden        bool
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print one composited frame and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			pos, err := anchor.ParsePosition(dockName)
			if err != nil {
				return err
			}
			if width <= 0 || height <= 0 {
				w, h := terminalSize()
				if width <= 0 {
					width = w
				}
				if height <= 0 {
					height = h
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.Snapshot(cfg, tui.SnapshotOptions{
				Width:  width,
				Height: height,
				Dock:   pos,
				Hidden: hidden,
			}))
			return err
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&width, "width", 0, "frame width in cells (0 = terminal width)")
	fl.IntVar(&height, "height", 0, "frame height in cells (0 = terminal height)")
	fl.StringVar(&dockName, "dock", "center", "orb position: center, left, right, top or bottom")
	fl.BoolVar(&hidden, "hidden", false, "draw a docked orb tucked away by auto-hide")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "orbit %s (%s) built %s\n", version, commit, date)
		},
	}
}

// loadConfig reads the configuration and applies the command-line
// overrides. A theme file is registered before the theme is resolved.
func loadConfig(f *rootFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFromFile(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if f.lang != "" {
		l, err := menu.ParseLanguage(f.lang)
		if err != nil {
			return nil, err
		}
		cfg.General.Language = string(l)
	}
	if f.verbose {
		cfg.General.LogLevel = "debug"
	}
	if cfg.Display.ThemeFile != "" {
		if _, err := theme.LoadFile(cfg.Display.ThemeFile); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func terminalSize() (int, int) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 || h <= 0 {
		return defaultCols, defaultRows
	}
	return w, h
}

// runInteractive runs the TUI and the preferences watcher until the user
// quits or a signal arrives. Logs go to the rotated file only.
func runInteractive(ctx context.Context, cfg *config.Config) error {
	log, closeLog, err := logging.New(logging.FromConfig(cfg))
	if err != nil {
		return err
	}
	defer closeLog()
	log.Info("starting orbit", zap.String("version", version), zap.String("commit", commit))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	opts := tui.Options{
		Config:  cfg,
		Logger:  log.Named("tui"),
		Session: session.New(),
		Zones:   zone.New(),
	}
	if cfg.General.PersistPrefs && cfg.General.PrefsFile != "" {
		p, found, err := prefs.Load(cfg.General.PrefsFile)
		switch {
		case err != nil:
			log.Warn("ignoring stored preferences", zap.String("path", cfg.General.PrefsFile), zap.Error(err))
		case found:
			opts.Prefs = &p
		}

		w, err := prefs.NewWatcher(cfg.General.PrefsFile, log.Named("prefs"))
		if err != nil {
			log.Warn("preferences will not reload", zap.Error(err))
		} else {
			opts.Watch = w.Changes()
			g.Go(func() error { return w.Run(gctx) })
		}
	}

	prog := tea.NewProgram(tui.New(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(gctx),
	)
	g.Go(func() error {
		defer stop()
		_, err := prog.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			log.Info("interrupted")
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error("orbit exited", zap.Error(err))
		return err
	}
	log.Info("bye")
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sandeepkv93/remindlist/internal/config"
	"github.com/sandeepkv93/remindlist/internal/logging"
	"github.com/sandeepkv93/remindlist/internal/presenter"
	"github.com/sandeepkv93/remindlist/internal/storage"
	"github.com/sandeepkv93/remindlist/internal/update"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	dbPath     string
	backend    string
	logFile    string
	debug      bool
}

// app is what every subcommand gets after config, logging and the store are
// set up.
type app struct {
	cfg     config.RuntimeConfig
	logger  *slog.Logger
	store   storage.Store
	closers []io.Closer
}

func (a *app) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "remindlist",
		Short: "Keep a list of dated, prioritised reminders",
		Long: `remindlist keeps reminders (name, priority, date) in a local store and
edits them in a terminal UI.

Examples:
  remindlist
  remindlist --backend badger --db ~/.local/share/remindlist/badger
  remindlist list
  remindlist migrate up`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(flags)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if f, ok := out.(*os.File); ok && !isTerminal(f) {
				a.logger.Debug("stdout is not a terminal, printing list")
				return printList(cmd.Context(), out, a)
			}
			return runTUI(cmd.Context(), a)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&flags.dbPath, "db", "", "store path (overrides store.path)")
	pf.StringVar(&flags.backend, "backend", "", "store backend: sqlite or badger")
	pf.StringVar(&flags.logFile, "log-file", "", "log file (overrides log.file)")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newListCmd(flags), newMigrateCmd(flags))
	return cmd
}

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all reminders in store order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(flags)
			if err != nil {
				return err
			}
			defer a.Close()
			return printList(cmd.Context(), cmd.OutOrStdout(), a)
		},
	}
}

func newMigrateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or roll back the SQLite schema",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if cfg.Backend() != storage.BackendSQLite {
				return fmt.Errorf("migrate: backend %s has no schema", cfg.Backend())
			}
			if err := ensureParentDir(cfg.Store.Path); err != nil {
				return err
			}
			repo, err := storage.OpenSQLite(cfg.Store.Path)
			if err != nil {
				return err
			}
			defer repo.Close()

			switch args[0] {
			case "up":
				err = storage.MigrateUp(repo.DB())
			case "down":
				err = storage.MigrateDown(repo.DB())
			default:
				return fmt.Errorf("migrate: unknown direction %q (want up or down)", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: ok (%s)\n", args[0], cfg.Store.Path)
			return nil
		},
	}
}

func loadConfig(flags *rootFlags) (config.RuntimeConfig, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.RuntimeConfig{}, err
	}
	if flags.backend != "" {
		cfg.Store.Backend = flags.backend
	}
	if flags.dbPath != "" {
		cfg.Store.Path = flags.dbPath
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if flags.debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.RuntimeConfig{}, err
	}
	return cfg, nil
}

func setup(flags *rootFlags) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	logOut, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, logOut)
	a.logger = logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		JSON:   cfg.Log.JSON,
		Output: logOut,
	})

	if cfg.Backend() == storage.BackendSQLite {
		if err := ensureParentDir(cfg.Store.Path); err != nil {
			_ = a.Close()
			return nil, err
		}
	}
	store, err := storage.Open(cfg.Backend(), cfg.Store.Path)
	if err != nil {
		a.logger.Error("open store failed", "backend", cfg.Backend(), "path", cfg.Store.Path, "err", err)
		_ = a.Close()
		return nil, err
	}
	a.store = store
	a.closers = append(a.closers, store)
	a.logger.Info("store opened", "backend", cfg.Backend(), "path", cfg.Store.Path)
	return a, nil
}

func runTUI(ctx context.Context, a *app) error {
	m, err := update.NewModel(ctx, a.store, update.Options{
		Logger:     a.logger,
		StoreLabel: fmt.Sprintf("%s %s", a.cfg.Backend(), a.cfg.Store.Path),
	})
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(update.Model); ok && fm.LastError != nil {
		return fm.LastError
	}
	return nil
}

// printList renders the rows the TUI would show, one reminder per line.
func printList(ctx context.Context, out io.Writer, a *app) error {
	view := &printView{}
	p := presenter.New(a.store, view, a.logger)
	if err := p.Initialize(ctx); err != nil {
		return err
	}
	for i, row := range view.rows {
		fmt.Fprintf(out, "%3d  %-32s %4s  %s\n", i+1, row[0], row[1], row[2])
	}
	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(strings.TrimSpace(path))
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

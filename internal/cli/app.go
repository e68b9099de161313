package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Flyrell/hydromind/internal/config"
	"github.com/Flyrell/hydromind/internal/ledger"
	"github.com/Flyrell/hydromind/internal/store/jsonfile"
	"github.com/Flyrell/hydromind/internal/store/sqlite"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app is an opened ledger together with the resources behind it.
type app struct {
	cfg    config.Config
	log    *logrus.Logger
	ledger *ledger.Ledger
	close  func() error
}

func (a *app) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

// withLedger opens the configured ledger, runs fn against it and releases
// the store afterwards.
func withLedger(cmd *cobra.Command, nowFn func() time.Time, fn func(l *ledger.Ledger) error) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	a, err := openApp(cmd, homeDir, nowFn)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	return fn(a.ledger)
}

// openApp resolves configuration from the environment and the global flags,
// then opens the store and loads the ledger from it.
func openApp(cmd *cobra.Command, homeDir string, nowFn func() time.Time) (*app, error) {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString(flagStore); v != "" {
		cfg.Store = strings.ToLower(v)
	}
	if v, _ := cmd.Flags().GetString(flagDataDir); v != "" {
		cfg.Dir = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	verbose, _ := cmd.Flags().GetBool(flagVerbose)
	logger := newLogger(cmd.ErrOrStderr(), cfg.Level(), verbose)

	st, closeFn, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	logger.WithField("store", cfg.Store).WithField("dir", cfg.Dir).Debug("store opened")

	return &app{
		cfg:    cfg,
		log:    logger,
		ledger: ledger.New(st, ledger.Options{Now: nowFn, Logger: logger}),
		close:  closeFn,
	}, nil
}

func openStore(cfg config.Config) (ledger.Store, func() error, error) {
	if cfg.Store == config.StoreSQLite {
		s, err := sqlite.Open(filepath.Join(cfg.Dir, sqlite.FileName))
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	return jsonfile.New(cfg.Dir), nil, nil
}

func newLogger(w io.Writer, level logrus.Level, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

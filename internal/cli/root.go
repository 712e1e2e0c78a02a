// Package cli is the foodhub command tree. With no subcommand it launches the
// interactive storefront; `menu` and `order` work without a terminal UI.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/foodhub/internal/catalog"
	"github.com/idilsaglam/foodhub/internal/config"
	"github.com/idilsaglam/foodhub/internal/logging"
	"github.com/idilsaglam/foodhub/internal/order"
	"github.com/idilsaglam/foodhub/internal/storefront"
	"github.com/idilsaglam/foodhub/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks failures caused by bad invocation rather than runtime problems.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error { return usageError{fmt.Errorf(format, a...)} }

// app carries what every command needs once flags and config are resolved.
type app struct {
	cfgPath  string
	menuPath string
	theme    string
	verbose  bool

	cfg     config.Config
	catalog *catalog.Catalog
	logger  *zap.Logger

	stdout, stderr io.Writer
}

// Run executes the command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(&app{stdout: stdout, stderr: stderr})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitOK
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		fmt.Fprintln(stderr, ui.Current().Muted.Render("Run `foodhub --help` for usage."))
		return exitUsage
	}
	return exitError
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "foodhub",
		Short: "FoodHub - order food from your terminal",
		Long: `FoodHub is a terminal storefront for a food-ordering demo.

Browse the menu, fill a cart, check out and watch your order go from
preparing to delivered. Run without arguments for the interactive UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStorefront()
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default ~/.foodhub/config.yaml)")
	pf.StringVar(&a.menuPath, "menu", "", "menu file (.yaml, .yml or .json) replacing the built-in menu")
	pf.StringVar(&a.theme, "theme", "", "color theme: classic, neon or mono")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newMenuCmd(a), newOrderCmd(a))
	return root
}

// setup resolves config (file, env, then flags), theme, catalog and logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil && !errors.Is(err, config.ErrInvalid) {
		return err
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = a.theme
	}
	if cmd.Flags().Changed("menu") {
		cfg.Menu = a.menuPath
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}
	a.cfg = cfg
	ui.SetTheme(cfg.Theme)

	a.catalog, err = catalog.Open(cfg.Menu)
	if err != nil {
		return fmt.Errorf("menu: %w", err)
	}

	// The storefront owns the terminal, so only headless commands may log to stderr.
	headless := cmd != cmd.Root()
	a.logger, err = logging.New(cfg.Logging, a.verbose, headless && a.verbose)
	if err != nil {
		return err
	}
	a.logger.Debug("config loaded",
		zap.String("theme", cfg.Theme),
		zap.Int("menu_items", a.catalog.Len()),
		zap.Duration("step_delay", cfg.Order.StepDelay),
	)
	return nil
}

func (a *app) orchestrator(step time.Duration) *order.Orchestrator {
	return order.NewOrchestrator(order.NewSchedule(step), a.cfg.Order.EstimatedTime, a.logger)
}

func (a *app) runStorefront() error {
	opts := storefront.Options{
		Catalog:       a.catalog,
		Orchestrator:  a.orchestrator(a.cfg.Order.StepDelay),
		Logger:        a.logger,
		Currency:      a.cfg.Currency,
		ToastDuration: a.cfg.UI.ToastDuration,
		Hero:          storefront.RenderHero(76),
	}
	var progOpts []tea.ProgramOption
	if a.cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	a.logger.Info("storefront started")
	if err := storefront.Run(opts, progOpts...); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

func minArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usagef("usage: %s", usage)
		}
		return nil
	}
}

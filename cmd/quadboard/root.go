// Root command for the quadboard CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/quadboard/internal/logging"
	"github.com/mesh-intelligence/quadboard/internal/paths"
	"github.com/mesh-intelligence/quadboard/pkg/quadboard"
	"github.com/mesh-intelligence/quadboard/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	journal   string
	jsonMode  bool
	verbose   bool
	strict    bool
}

// app is the state shared by one invocation's commands.
type app struct {
	flags      rootFlags
	viper      *viper.Viper
	configPath string
	cfg        types.Config
	logger     *zap.Logger
}

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// userError marks err as caused by bad input or a rejected intent.
func userError(err error) error { return &exitError{code: exitUserError, err: err} }

// sysError marks err as an environment failure (config, journal I/O).
func sysError(err error) error { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by Execute to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// newRootCmd creates the top-level "quadboard" command with global flags
// and all subcommands registered.
func newRootCmd() *cobra.Command {
	a := &app{viper: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:     "quadboard",
		Short:   "Arrange items into dashboard quadrants and summarize the layout",
		Long:    "quadboard places items from a pool into the four quadrants of a grid page,\nspans the arrangement across pages, and reports each page in reading order.",
		Version: quadboard.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "version", "help":
				return nil
			}
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.flags.journal, "journal", "", "session journal DSN (default: in-memory)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "print summaries as JSON")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&a.flags.strict, "strict", false, "stop at the first rejected intent")
	_ = a.viper.BindPFlag(cfgKeyStrict, pf.Lookup("strict"))

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newRunCmd(a))
	root.AddCommand(newShellCmd(a))

	return root
}

// load resolves the config directory, reads config.yaml, applies flag
// overrides, and builds the logger.
func (a *app) load() error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	path, err := loadConfig(a.viper, configDir)
	if err != nil {
		return sysError(err)
	}
	a.configPath = path

	cfg, err := decodeConfig(a.viper)
	if err != nil {
		return sysError(err)
	}
	if a.flags.jsonMode {
		cfg.SummaryFormat = types.SummaryFormatJSON
	}
	cfg.JournalDSN, err = paths.ResolveJournalDSN(a.flags.journal, cfg.JournalDSN)
	if err != nil {
		return sysError(fmt.Errorf("resolve journal: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return sysError(fmt.Errorf("invalid config %s: %w", path, err))
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, a.flags.verbose)
	if err != nil {
		return sysError(err)
	}
	a.logger = logger
	a.logger.Debug("config loaded",
		zap.String("path", path),
		zap.Int("seed_items", len(cfg.SeedItems)),
		zap.String("journal", cfg.JournalDSN),
		zap.Bool("strict", cfg.Strict))
	return nil
}

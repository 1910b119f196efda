// Package cli implements the companion command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/companion/internal/logging"
	"github.com/mesh-intelligence/companion/internal/paths"
	"github.com/mesh-intelligence/companion/pkg/companion"
	"github.com/mesh-intelligence/companion/pkg/types"
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
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// env is the state shared by one command invocation.
type env struct {
	flags     rootFlags
	configDir string
	v         *viper.Viper
	logger    *zap.Logger
}

// NewRootCmd creates the top-level "companion" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	e := &env{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:     "companion",
		Short:   "Manage the virtual companion's local store",
		Long:    "companion inspects and updates the profile, quests, shop and mood\nhistory kept in the virtual companion's local database.",
		Version: companion.Version,
		// Execute reports errors with the matching exit code.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = e.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&e.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&e.flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().BoolVar(&e.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&e.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newVersionCmd(e),
		newInitCmd(e),
		newStatusCmd(e),
		newUserCmd(e),
		newQuestCmd(e),
		newMoodCmd(e),
		newShopCmd(e),
		newSchemaCmd(e),
		newExportCmd(e),
		newMusicCmd(e),
	)
	return root
}

// setup resolves the config directory, loads config.yaml and builds the
// logger.
func (e *env) setup() error {
	configDir, err := paths.ResolveConfigDir(e.flags.configDir)
	if err != nil {
		return sysErrorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysErrorf("load config: %w", err)
	}

	level := v.GetString(cfgKeyLogLevel)
	if e.flags.logLevel != "" {
		level = e.flags.logLevel
	}
	logger, err := logging.New(logging.Config{
		Level:    level,
		Encoding: v.GetString(cfgKeyLogFormat),
	})
	if err != nil {
		return userErrorf("logger: %w", err)
	}

	e.configDir = configDir
	e.v = v
	e.logger = logger
	return nil
}

// dataDir returns the data directory: --data-dir flag > config.yaml
// data_dir > COMPANION_DATA_DIR env > platform default.
func (e *env) dataDir() (string, error) {
	return paths.ResolveDataDir(e.flags.dataDir, e.v.GetString(cfgKeyDataDir))
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	code, msg := classify(err)
	fmt.Fprintln(stderr, msg)
	return code
}

// classify maps an error to an exit code and the message shown to the user.
// Store startup failures are reported without internal detail.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, types.ErrMigrationGap):
		return exitSysError, "companion: cannot start: " + types.ErrMigrationGap.Error()
	case errors.Is(err, types.ErrSchemaViolation):
		return exitSysError, "companion: cannot start: " + types.ErrSchemaViolation.Error()
	case errors.Is(err, types.ErrStorageUnavailable):
		return exitSysError, "companion: cannot start: " + types.ErrStorageUnavailable.Error()
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code, "companion: " + ee.Error()
	}
	return exitUserError, "companion: " + err.Error()
}

// exitError carries an exit code with the error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userErrorf(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

func sysErrorf(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/companion/internal/app"
	"github.com/mesh-intelligence/companion/pkg/types"
)

var faint = color.New(color.Faint)

// withApp opens the app for the duration of fn. The command counts as one
// visible screen, so the presence observer sees it start and stop.
func (e *env) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	dataDir, err := e.dataDir()
	if err != nil {
		return sysErrorf("resolve data dir: %w", err)
	}

	cfg := app.Config{
		Store: types.Config{
			Backend:         types.BackendSQLite,
			DataDir:         dataDir,
			BackupOnMigrate: e.v.GetBool(cfgKeyBackupOnMigrate),
		},
		MusicEnabled: e.v.GetBool(cfgKeyMusicEnabled),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := app.Open(ctx, cfg, e.logger, nil)
	if err != nil {
		return err
	}
	a.Presence.ActivityStarted()
	defer func() {
		a.Presence.ActivityStopped(false)
		if cerr := a.Close(); cerr != nil {
			e.logger.Sugar().Warnw("closing app", "error", cerr)
		}
	}()

	return tableError(fn(ctx, a))
}

// tableError marks domain failures as user errors. Other errors pass
// through and are reported by Execute.
func tableError(err error) error {
	if err == nil {
		return nil
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return err
	}
	for _, target := range []error{
		types.ErrNotFound,
		types.ErrInvalidID,
		types.ErrTableNotFound,
		types.ErrConstraintViolation,
		types.ErrInsufficientCoins,
		types.ErrAlreadyRewarded,
		types.ErrAlreadyOwned,
		types.ErrNotOwned,
		types.ErrInvalidMood,
		types.ErrInvalidProgress,
		types.ErrInvalidAccessoryType,
		types.ErrNegativePrice,
		types.ErrInvalidMoodValue,
		types.ErrInvalidMoodDate,
	} {
		if errors.Is(err, target) {
			return &exitError{code: exitUserError, err: err}
		}
	}
	return err
}

// parseID reads a positive integer id argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, userErrorf("invalid id %q", s)
	}
	return id, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysErrorf("marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// isTableNotFound returns true if the error wraps ErrTableNotFound.
func isTableNotFound(err error) bool {
	return errors.Is(err, types.ErrTableNotFound)
}

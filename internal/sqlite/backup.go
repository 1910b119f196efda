package sqlite

import (
	"context"
	"fmt"
	"os"
	"time"
)

// backup writes a consistent copy of the database next to it before a
// migration. The copy name records the version it was taken from.
func (b *Backend) backup(ctx context.Context, version int) (string, error) {
	stamp := time.Now().UTC().Format("20060102T150405Z")
	dest := fmt.Sprintf("%s.backup_v%d_%s", b.path, version, stamp)

	if _, err := os.Stat(dest); err == nil {
		return "", fmt.Errorf("backup %s already exists", dest)
	}
	if _, err := b.db.ExecContext(ctx, "VACUUM INTO ?", dest); err != nil {
		return "", fmt.Errorf("backing up to %s: %w", dest, err)
	}
	return dest, nil
}

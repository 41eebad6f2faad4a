package repo

import (
	"context"
	"fmt"
)

// Truncate empties both blog tables and restarts their id sequences. It is
// used by the importer before loading a fresh data set.
func Truncate(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, `TRUNCATE TABLE category, post RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}

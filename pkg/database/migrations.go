package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates PostgreSQL GIN indexes that Ent schemas cannot
// express: full-text search over log content and containment queries over
// event payloads.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_log_entries_content_gin
		ON log_entries USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create log content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_events_payload_gin
		ON events USING gin(payload jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create event payload GIN index: %w", err)
	}

	return nil
}

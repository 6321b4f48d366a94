package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Altaway/wabridge-server/src/database"
	"github.com/pressly/goose/v3"
	"github.com/pterm/pterm"
)

func init() {
	goose.AddMigrationContext(upCreateWebhookIndexes, downCreateWebhookIndexes)
}

func upCreateWebhookIndexes(ctx context.Context, tx *sql.Tx) error {
	db := database.DB

	stmts := []string{
		// The delivery worker polls for due rows ordered by next_attempt_at.
		// Only pending and attempted rows are ever candidates, so a partial
		// index keeps it small no matter how much history accumulates.
		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_deliveries_pending
		   ON webhook_deliveries (status, next_attempt_at)
		   WHERE status IN ('pending', 'attempted');`,

		// Fan-out resolves active subscribers per event on every enqueue.
		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_webhooks_active_event
		   ON webhooks (event)
		   WHERE is_active = TRUE;`,
	}

	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration upCreateWebhookIndexes failed on: %s\nerr: %v", s, err))
			return err
		}
		pterm.DefaultLogger.Info("Executed: " + s)
	}

	pterm.DefaultLogger.Info("create_webhook_indexes: all indexes ensured.")
	return nil
}

func downCreateWebhookIndexes(ctx context.Context, tx *sql.Tx) error {
	db := database.DB

	stmts := []string{
		`DROP INDEX CONCURRENTLY IF EXISTS idx_webhooks_active_event;`,
		`DROP INDEX CONCURRENTLY IF EXISTS idx_deliveries_pending;`,
	}

	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration downCreateWebhookIndexes failed on: %s\nerr: %v", s, err))
			return err
		}
		pterm.DefaultLogger.Info("Executed: " + s)
	}

	pterm.DefaultLogger.Info("create_webhook_indexes: all indexes dropped.")
	return nil
}

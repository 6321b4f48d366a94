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
	goose.AddMigrationContext(upCreateMessageIndexes, downCreateMessageIndexes)
}

func upCreateMessageIndexes(ctx context.Context, tx *sql.Tx) error {
	db := database.DB

	stmts := []string{
		// 0) Needed for trigram indexes
		`CREATE EXTENSION IF NOT EXISTS pg_trgm;`,

		// 1) Hot path indexes for message feeds (newest first per direction).
		//    The conversation OR query bitmap-ors the two leading columns.
		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_messages_from_created
		   ON messages (from_id, created_at DESC);`,

		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_messages_to_created
		   ON messages (to_id, created_at DESC);`,

		// 2) Cloud API message id lookups (status linking).
		//    Inbound traffic keeps the id at receiver_data.message.id.
		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_messages_receiver_wam_id
		   ON messages ((receiver_data->'message'->>'id'));`,

		//    Outbound sends echo it in product_data.messages[].id; the lookup
		//    probes with root-level jsonb containment.
		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_messages_product_gin
		   ON messages USING GIN (product_data jsonb_path_ops);`,

		// 3) Free-text search across all three payload columns
		//    (NULL-safe + immutable_unaccent on the indexed side)
		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_messages_search_trgm_unaccent
		   ON messages USING GIN ((
		     immutable_unaccent(
		       COALESCE(sender_data::text, '') || ' ' ||
		       COALESCE(receiver_data::text, '') || ' ' ||
		       COALESCE(product_data::text, '')
		     )
		   ) gin_trgm_ops);`,

		// 4) Per-column trigram GINs for keyed search
		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_messages_sender_trgm_unaccent
		   ON messages USING GIN ((immutable_unaccent(COALESCE(sender_data::text, ''))) gin_trgm_ops);`,

		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_messages_receiver_trgm_unaccent
		   ON messages USING GIN ((immutable_unaccent(COALESCE(receiver_data::text, ''))) gin_trgm_ops);`,

		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_messages_product_trgm_unaccent
		   ON messages USING GIN ((immutable_unaccent(COALESCE(product_data::text, ''))) gin_trgm_ops);`,
	}

	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration upCreateMessageIndexes failed on: %s\nerr: %v", s, err))
			return err
		}
		pterm.DefaultLogger.Info("Executed: " + s)
	}

	pterm.DefaultLogger.Info("create_message_indexes: all indexes ensured.")
	return nil
}

func downCreateMessageIndexes(ctx context.Context, tx *sql.Tx) error {
	db := database.DB

	stmts := []string{
		// Drop in reverse order; keep EXTENSION pg_trgm installed (safe to leave)
		`DROP INDEX CONCURRENTLY IF EXISTS idx_messages_product_trgm_unaccent;`,
		`DROP INDEX CONCURRENTLY IF EXISTS idx_messages_receiver_trgm_unaccent;`,
		`DROP INDEX CONCURRENTLY IF EXISTS idx_messages_sender_trgm_unaccent;`,

		`DROP INDEX CONCURRENTLY IF EXISTS idx_messages_search_trgm_unaccent;`,

		`DROP INDEX CONCURRENTLY IF EXISTS idx_messages_product_gin;`,
		`DROP INDEX CONCURRENTLY IF EXISTS idx_messages_receiver_wam_id;`,

		`DROP INDEX CONCURRENTLY IF EXISTS idx_messages_to_created;`,
		`DROP INDEX CONCURRENTLY IF EXISTS idx_messages_from_created;`,
	}

	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration downCreateMessageIndexes failed on: %s\nerr: %v", s, err))
			return err
		}
		pterm.DefaultLogger.Info("Executed: " + s)
	}

	pterm.DefaultLogger.Info("create_message_indexes: all indexes dropped.")
	return nil
}

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
	goose.AddMigrationContext(upCreateUserSearchIndexes, downCreateUserSearchIndexes)
}

func upCreateUserSearchIndexes(ctx context.Context, tx *sql.Tx) error {
	db := database.DB

	stmts := []string{
		// Keyed user search goes through
		// immutable_unaccent(COALESCE(<col>::text, '')) ILIKE, one trigram
		// GIN per searchable column.
		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_users_name_trgm_unaccent
		   ON users USING GIN ((immutable_unaccent(COALESCE(name::text, ''))) gin_trgm_ops);`,

		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_users_email_trgm_unaccent
		   ON users USING GIN ((immutable_unaccent(COALESCE(email::text, ''))) gin_trgm_ops);`,
	}

	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration upCreateUserSearchIndexes failed on: %s\nerr: %v", s, err))
			return err
		}
		pterm.DefaultLogger.Info("Executed: " + s)
	}

	pterm.DefaultLogger.Info("create_user_search_indexes: all indexes ensured.")
	return nil
}

func downCreateUserSearchIndexes(ctx context.Context, tx *sql.Tx) error {
	db := database.DB

	stmts := []string{
		`DROP INDEX CONCURRENTLY IF EXISTS idx_users_email_trgm_unaccent;`,
		`DROP INDEX CONCURRENTLY IF EXISTS idx_users_name_trgm_unaccent;`,
	}

	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration downCreateUserSearchIndexes failed on: %s\nerr: %v", s, err))
			return err
		}
		pterm.DefaultLogger.Info("Executed: " + s)
	}

	pterm.DefaultLogger.Info("create_user_search_indexes: all indexes dropped.")
	return nil
}

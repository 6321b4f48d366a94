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
	goose.AddMigrationContext(upCreateImmutableUnaccent, downCreateImmutableUnaccent)
}

func upCreateImmutableUnaccent(ctx context.Context, tx *sql.Tx) error {
	db := database.DB

	stmts := []string{
		// Extensions used by the search indexes (idempotent)
		`CREATE EXTENSION IF NOT EXISTS unaccent;`,
		`CREATE EXTENSION IF NOT EXISTS pg_trgm;`,

		// unaccent() itself is only STABLE, so it cannot appear in index
		// expressions. Pinning the dictionary to a constant regdictionary
		// makes the wrapper deterministic and safe to mark IMMUTABLE.
		`CREATE OR REPLACE FUNCTION immutable_unaccent(text)
			RETURNS text
			LANGUAGE sql
			IMMUTABLE
			PARALLEL SAFE
			STRICT
		AS $$
			SELECT unaccent('unaccent'::regdictionary, $1)
		$$;`,
	}

	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration upCreateImmutableUnaccent failed on: %s\nerr: %v", s, err))
			return err
		}
		pterm.DefaultLogger.Info("Executed: " + s)
	}

	pterm.DefaultLogger.Info("immutable_unaccent function created (extensions ensured).")
	return nil
}

func downCreateImmutableUnaccent(ctx context.Context, tx *sql.Tx) error {
	db := database.DB

	stmts := []string{
		// Keep the extensions installed; only the wrapper goes away.
		`DROP FUNCTION IF EXISTS immutable_unaccent(text);`,
	}

	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration downCreateImmutableUnaccent failed on: %s\nerr: %v", s, err))
			return err
		}
		pterm.DefaultLogger.Info("Executed: " + s)
	}

	pterm.DefaultLogger.Info("immutable_unaccent function dropped.")
	return nil
}

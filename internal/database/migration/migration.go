package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_certificates",
		SQL: `CREATE TABLE IF NOT EXISTS certificates (
  id              UUID        PRIMARY KEY,
  recipient_name  TEXT        NOT NULL,
  recipient_email TEXT        NOT NULL DEFAULT '',
  title           TEXT        NOT NULL,
  subtitle        TEXT        NOT NULL DEFAULT '',
  description     TEXT        NOT NULL DEFAULT '',
  issuer_name     TEXT        NOT NULL,
  issued_on       TIMESTAMPTZ NOT NULL,
  document_key    TEXT        NOT NULL UNIQUE,
  content_hash    TEXT        NOT NULL,
  transaction_id  TEXT        NOT NULL DEFAULT '',
  revoked         BOOLEAN     NOT NULL DEFAULT false
);`,
	},
	{
		Name: "create_table_introductions",
		SQL: `CREATE TABLE IF NOT EXISTS introductions (
  id             UUID        PRIMARY KEY,
  recipient_key  TEXT        NOT NULL,
  email          TEXT        NOT NULL,
  first_name     TEXT        NOT NULL,
  last_name      TEXT        NOT NULL,
  street_address TEXT        NOT NULL DEFAULT '',
  city           TEXT        NOT NULL DEFAULT '',
  state          TEXT        NOT NULL DEFAULT '',
  zipcode        TEXT        NOT NULL DEFAULT '',
  country        TEXT        NOT NULL DEFAULT '',
  comments       TEXT        NOT NULL DEFAULT '',
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_introductions_email",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_introductions_email ON introductions (email);`,
	},
	{
		Name: "create_index_introductions_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_introductions_created_at ON introductions (created_at);`,
	},
}

// EnsureMigrated checks whether the schema exists and runs the migration steps if it doesn't.
// The introductions table is the sentinel since it is created last.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('public.introductions') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"), zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}

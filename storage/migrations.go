package storage

import "context"

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS invocation_log (
		id TEXT PRIMARY KEY,
		tool_name TEXT NOT NULL,
		arguments TEXT NOT NULL DEFAULT '{}',
		outcome TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_invocation_log_created_at ON invocation_log (created_at)`,
	`CREATE TABLE IF NOT EXISTS elicitation_log (
		id TEXT PRIMARY KEY,
		tool_name TEXT NOT NULL,
		message TEXT NOT NULL,
		severity TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
}

func (s *SQLiteAudit) migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Package storage persists the audit trail: tool invocations and the
// confirmation requests generated for them.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver for database/sql.

	"github.com/wadew/gitlab-mcp-sub001/types"
)

// SQLiteAudit implements types.AuditLog on a local SQLite file.
type SQLiteAudit struct {
	db *sql.DB
}

// NewSQLiteAudit opens (creating if needed) the audit database at dbPath.
func NewSQLiteAudit(dbPath string) (*SQLiteAudit, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	audit := &SQLiteAudit{db: db}
	if err := audit.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return audit, nil
}

// RecordInvocation stores one tool call outcome.
func (s *SQLiteAudit) RecordInvocation(ctx context.Context, record types.InvocationRecord) error {
	argsJSON, err := json.Marshal(record.Arguments)
	if err != nil {
		return fmt.Errorf("failed to serialize arguments: %w", err)
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt == "" {
		record.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	query := `
	INSERT INTO invocation_log (id, tool_name, arguments, outcome, error, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.ExecContext(ctx, query, record.ID, record.ToolName, string(argsJSON), record.Outcome, record.Error, record.CreatedAt)
	return err
}

// RecordElicitation stores one generated confirmation request.
func (s *SQLiteAudit) RecordElicitation(ctx context.Context, record types.ElicitationRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt == "" {
		record.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	query := `
	INSERT INTO elicitation_log (id, tool_name, message, severity, created_at)
	VALUES (?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query, record.ID, record.ToolName, record.Message, record.Severity, record.CreatedAt)
	return err
}

// RecentInvocations returns the newest invocation records, newest first.
func (s *SQLiteAudit) RecentInvocations(ctx context.Context, limit int) ([]types.InvocationRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
	SELECT id, tool_name, arguments, outcome, error, created_at
	FROM invocation_log
	ORDER BY created_at DESC, id
	LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []types.InvocationRecord
	for rows.Next() {
		var record types.InvocationRecord
		var argsJSON string
		if err := rows.Scan(&record.ID, &record.ToolName, &argsJSON, &record.Outcome, &record.Error, &record.CreatedAt); err != nil {
			return nil, err
		}
		if argsJSON != "" {
			if err := json.Unmarshal([]byte(argsJSON), &record.Arguments); err != nil {
				return nil, fmt.Errorf("failed to deserialize arguments: %w", err)
			}
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteAudit) Close() error {
	return s.db.Close()
}

package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"leadline/internal/models"
)

// InsertActivity records one tool invocation.
func (d *DB) InsertActivity(ctx context.Context, entry *models.ActivityEntry) error {
	return d.Pool.QueryRow(ctx, `
		INSERT INTO activity_log (conversation_id, tool_used, input_summary, output_summary,
			duration_ms, status, error, caller_company, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, entry.ConversationID, entry.ToolUsed, entry.InputSummary, entry.OutputSummary,
		entry.DurationMs, entry.Status, entry.Error, entry.CallerCompany, entry.Notes,
	).Scan(&entry.ID, &entry.CreatedAt)
}

// GetActivity returns one activity entry by ID.
func (d *DB) GetActivity(ctx context.Context, id uuid.UUID) (*models.ActivityEntry, error) {
	var e models.ActivityEntry
	err := d.Pool.QueryRow(ctx, `
		SELECT id, conversation_id, tool_used, input_summary, output_summary,
			duration_ms, status, error, caller_company, notes, created_at
		FROM activity_log
		WHERE id = $1
	`, id).Scan(&e.ID, &e.ConversationID, &e.ToolUsed, &e.InputSummary,
		&e.OutputSummary, &e.DurationMs, &e.Status, &e.Error, &e.CallerCompany,
		&e.Notes, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return &e, nil
}

// RecentActivity returns the most recent activity rows for monitoring.
func (d *DB) RecentActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, conversation_id, tool_used, input_summary, output_summary,
			duration_ms, status, error, caller_company, notes, created_at
		FROM activity_log
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ActivityEntry
	for rows.Next() {
		var e models.ActivityEntry
		if err := rows.Scan(&e.ID, &e.ConversationID, &e.ToolUsed, &e.InputSummary,
			&e.OutputSummary, &e.DurationMs, &e.Status, &e.Error, &e.CallerCompany,
			&e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// PruneActivity deletes activity rows older than the cutoff and returns the
// number removed.
func (d *DB) PruneActivity(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM activity_log WHERE created_at < $1`, olderThan)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

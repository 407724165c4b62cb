package db

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"leadline/internal/models"
)

// InsertCallSummary records one finished call.
func (d *DB) InsertCallSummary(ctx context.Context, s *models.CallSummary) error {
	return d.Pool.QueryRow(ctx, `
		INSERT INTO call_summaries (conversation_id, caller_name, caller_company,
			qualification, score, urgency, duration, outcome, transfer_target,
			summary, ae_name, phone_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`, s.ConversationID, s.CallerName, s.CallerCompany, s.Qualification, s.Score,
		s.Urgency, s.Duration, s.Outcome, s.TransferTarget, s.Summary, s.AEName,
		s.PhoneNumber,
	).Scan(&s.ID, &s.CreatedAt)
}

// GetCallSummary returns one call summary by ID.
func (d *DB) GetCallSummary(ctx context.Context, id uuid.UUID) (*models.CallSummary, error) {
	var s models.CallSummary
	err := d.Pool.QueryRow(ctx, `
		SELECT id, conversation_id, caller_name, caller_company, qualification,
			score, urgency, duration, outcome, transfer_target, summary,
			ae_name, phone_number, created_at
		FROM call_summaries
		WHERE id = $1
	`, id).Scan(&s.ID, &s.ConversationID, &s.CallerName, &s.CallerCompany,
		&s.Qualification, &s.Score, &s.Urgency, &s.Duration, &s.Outcome,
		&s.TransferTarget, &s.Summary, &s.AEName, &s.PhoneNumber, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSummaryNotFound
		}
		return nil, err
	}
	return &s, nil
}

// RecentCallSummaries returns the most recent call summaries.
func (d *DB) RecentCallSummaries(ctx context.Context, limit int) ([]models.CallSummary, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, conversation_id, caller_name, caller_company, qualification,
			score, urgency, duration, outcome, transfer_target, summary,
			ae_name, phone_number, created_at
		FROM call_summaries
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.CallSummary
	for rows.Next() {
		var s models.CallSummary
		if err := rows.Scan(&s.ID, &s.ConversationID, &s.CallerName, &s.CallerCompany,
			&s.Qualification, &s.Score, &s.Urgency, &s.Duration, &s.Outcome,
			&s.TransferTarget, &s.Summary, &s.AEName, &s.PhoneNumber, &s.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// GetCallStats aggregates call outcomes over the trailing period.
func (d *DB) GetCallStats(ctx context.Context, days int) (*models.CallStats, error) {
	stats := &models.CallStats{PeriodDays: days}

	err := d.Pool.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE qualification = 'SQL'),
			COUNT(*) FILTER (WHERE qualification = 'SSL'),
			COUNT(*) FILTER (WHERE transfer_target <> '')
		FROM call_summaries
		WHERE created_at > NOW() - ($1 * INTERVAL '1 day')
	`, days).Scan(&stats.TotalCalls, &stats.SQLLeads, &stats.SSLLeads, &stats.Transfers)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate call stats: %w", err)
	}

	if stats.TotalCalls > 0 {
		rate := float64(stats.SQLLeads) / float64(stats.TotalCalls) * 100
		stats.ConversionRate = math.Round(rate*100) / 100
	}
	return stats, nil
}

package db

import (
	"context"

	"leadline/internal/models"
)

// IncrementOutcome upserts a qualification outcome count.
func (d *DB) IncrementOutcome(ctx context.Context, tier, transferTarget, urgency string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO qualification_outcomes (tier, transfer_target, urgency, count, last_seen_at)
		VALUES ($1, $2, $3, 1, NOW())
		ON CONFLICT (tier, transfer_target, urgency) DO UPDATE
		SET count = qualification_outcomes.count + 1, last_seen_at = NOW()
	`, tier, transferTarget, urgency)
	return err
}

// GetAllOutcomeCounts returns all outcome rows for metrics export.
func (d *DB) GetAllOutcomeCounts(ctx context.Context) ([]models.OutcomeCount, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT tier, transfer_target, urgency, count, last_seen_at
		FROM qualification_outcomes
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.OutcomeCount
	for rows.Next() {
		var c models.OutcomeCount
		if err := rows.Scan(&c.Tier, &c.TransferTarget, &c.Urgency, &c.Count, &c.LastSeenAt); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

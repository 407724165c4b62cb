package jobs

import (
	"context"
	"log"
	"time"

	"leadline/internal/db"
)

// RetentionPruner deletes old activity rows in the background.
type RetentionPruner struct {
	db       *db.DB
	interval time.Duration
	maxAge   time.Duration
}

// NewRetentionPruner creates a new activity-log pruner.
func NewRetentionPruner(database *db.DB, interval, maxAge time.Duration) *RetentionPruner {
	return &RetentionPruner{
		db:       database,
		interval: interval,
		maxAge:   maxAge,
	}
}

// Start begins the background pruning loop.
func (p *RetentionPruner) Start(ctx context.Context) {
	log.Printf("Activity pruner started (interval: %v, maxAge: %v)", p.interval, p.maxAge)

	// Run immediately on start
	p.prune(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Activity pruner stopped")
			return
		case <-ticker.C:
			p.prune(ctx)
		}
	}
}

func (p *RetentionPruner) prune(ctx context.Context) {
	cutoff := time.Now().Add(-p.maxAge)
	removed, err := p.db.PruneActivity(ctx, cutoff)
	if err != nil {
		log.Printf("Activity pruning failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Pruned %d activity rows older than %v", removed, cutoff.Format(time.RFC3339))
	}
}

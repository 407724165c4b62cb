package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrActivityNotFound = errors.New("activity entry not found")
	ErrSummaryNotFound  = errors.New("call summary not found")
)

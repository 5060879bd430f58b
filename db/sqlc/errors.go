package db

import "github.com/lib/pq"

// Postgres error codes surfaced to the API layer.
const (
	DuplicateEntry pq.ErrorCode = "23505"
	CheckViolation pq.ErrorCode = "23514"
)

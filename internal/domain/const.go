package domain

import "time"

const (
	// Reservation defaults
	DEFAULT_RESERVATION_TTL = 5 * time.Minute
	MAX_RESERVATION_TTL     = 24 * time.Hour

	// DEFAULT_DLQ_MAX_RETRIES is the retry budget of a new DLQ entry
	DEFAULT_DLQ_MAX_RETRIES = 3

	// BASIS_POINTS_DENOMINATOR is 100% in basis points
	BASIS_POINTS_DENOMINATOR = 10_000

	// SYSTEM_ENTITY_ID is the entity id of the foundation and commons accounts
	SYSTEM_ENTITY_ID = "system"
)

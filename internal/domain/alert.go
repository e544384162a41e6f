package domain

import "time"

// AlertKind categorizes operational alerts
type AlertKind string

const (
	AlertKindConservationViolation AlertKind = "conservation_violation"
	AlertKindOverrun               AlertKind = "overrun"
	AlertKindDLQManualReview       AlertKind = "dlq_manual_review"
	AlertKindBudgetCacheDegraded   AlertKind = "budget_cache_degraded"
)

// AlertSeverity is the urgency of an alert
type AlertSeverity string

const (
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

// Alert is an out-of-band signal for operators. Alerts never affect the operation that raised them.
type Alert struct {
	ID        string         `json:"id"`
	Kind      AlertKind      `json:"kind"`
	Severity  AlertSeverity  `json:"severity"`
	AccountID string         `json:"account_id,omitempty"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

package synth

import (
	"time"

	"github.com/aamuros/hardware-store-sub002/internal/domain"
	"github.com/aamuros/hardware-store-sub002/internal/randutil"
)

// Age-bucket boundaries for status assignment.
const (
	ageOld    = 60 * 24 * time.Hour
	ageMid    = 14 * 24 * time.Hour
	ageRecent = 3 * 24 * time.Hour
)

// Each age bucket has its own cumulative-probability table over the
// status enumeration. Older orders skew toward terminal states, newer
// ones toward in-flight states.
var (
	statusOver60Days = []randutil.Choice[string]{
		{Outcome: domain.OrderStatusCompleted, Cum: 0.60},
		{Outcome: domain.OrderStatusDelivered, Cum: 0.90},
		{Outcome: domain.OrderStatusCancelled, Cum: 0.97},
		{Outcome: domain.OrderStatusRejected, Cum: 1.00},
	}
	status14To60Days = []randutil.Choice[string]{
		{Outcome: domain.OrderStatusCompleted, Cum: 0.45},
		{Outcome: domain.OrderStatusDelivered, Cum: 0.80},
		{Outcome: domain.OrderStatusOutForDelivery, Cum: 0.85},
		{Outcome: domain.OrderStatusCancelled, Cum: 0.95},
		{Outcome: domain.OrderStatusRejected, Cum: 1.00},
	}
	status3To14Days = []randutil.Choice[string]{
		{Outcome: domain.OrderStatusDelivered, Cum: 0.35},
		{Outcome: domain.OrderStatusOutForDelivery, Cum: 0.55},
		{Outcome: domain.OrderStatusPreparing, Cum: 0.70},
		{Outcome: domain.OrderStatusAccepted, Cum: 0.85},
		{Outcome: domain.OrderStatusPending, Cum: 0.93},
		{Outcome: domain.OrderStatusCancelled, Cum: 0.98},
		{Outcome: domain.OrderStatusRejected, Cum: 1.00},
	}
	statusUnder3Days = []randutil.Choice[string]{
		{Outcome: domain.OrderStatusPending, Cum: 0.40},
		{Outcome: domain.OrderStatusAccepted, Cum: 0.65},
		{Outcome: domain.OrderStatusPreparing, Cum: 0.85},
		{Outcome: domain.OrderStatusOutForDelivery, Cum: 0.95},
		{Outcome: domain.OrderStatusDelivered, Cum: 0.99},
		{Outcome: domain.OrderStatusCancelled, Cum: 1.00},
	}
)

// AssignStatus picks a lifecycle status for an order placed at placedAt,
// judged against the fixed now anchor, using a uniform draw in [0, 1).
// Pure, so the distribution shape is testable with pinned draws.
func AssignStatus(placedAt, now time.Time, draw float64) string {
	return randutil.Pick(statusTableFor(now.Sub(placedAt)), draw)
}

func statusTableFor(age time.Duration) []randutil.Choice[string] {
	switch {
	case age > ageOld:
		return statusOver60Days
	case age > ageMid:
		return status14To60Days
	case age > ageRecent:
		return status3To14Days
	default:
		return statusUnder3Days
	}
}

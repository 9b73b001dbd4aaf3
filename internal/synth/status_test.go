package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aamuros/hardware-store-sub002/internal/domain"
)

var anchor = time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC)

func placed(daysAgo int) time.Time {
	return anchor.AddDate(0, 0, -daysAgo)
}

func drawsAcrossUnitInterval() []float64 {
	var draws []float64
	for d := 0.0; d < 1.0; d += 0.005 {
		draws = append(draws, d)
	}
	return draws
}

func TestAssignStatus_Over60DaysOnlyTerminalHeavyTable(t *testing.T) {
	allowed := map[string]struct{}{
		domain.OrderStatusCompleted: {},
		domain.OrderStatusDelivered: {},
		domain.OrderStatusCancelled: {},
		domain.OrderStatusRejected:  {},
	}
	for _, draw := range drawsAcrossUnitInterval() {
		status := AssignStatus(placed(90), anchor, draw)
		_, ok := allowed[status]
		assert.True(t, ok, "draw %.3f gave %q, outside the >60d table", draw, status)
	}
}

func TestAssignStatus_Over60DaysThresholds(t *testing.T) {
	assert.Equal(t, domain.OrderStatusCompleted, AssignStatus(placed(90), anchor, 0.0))
	assert.Equal(t, domain.OrderStatusCompleted, AssignStatus(placed(90), anchor, 0.60))
	assert.Equal(t, domain.OrderStatusDelivered, AssignStatus(placed(90), anchor, 0.61))
	assert.Equal(t, domain.OrderStatusCancelled, AssignStatus(placed(90), anchor, 0.95))
	assert.Equal(t, domain.OrderStatusRejected, AssignStatus(placed(90), anchor, 0.99))
}

func TestAssignStatus_FreshOrdersSkewInFlight(t *testing.T) {
	assert.Equal(t, domain.OrderStatusPending, AssignStatus(placed(0), anchor, 0.10))
	assert.Equal(t, domain.OrderStatusAccepted, AssignStatus(placed(1), anchor, 0.50))
	assert.Equal(t, domain.OrderStatusPreparing, AssignStatus(placed(2), anchor, 0.70))
}

func TestAssignStatus_FreshOrdersNeverCompleted(t *testing.T) {
	for _, draw := range drawsAcrossUnitInterval() {
		status := AssignStatus(placed(1), anchor, draw)
		assert.NotEqual(t, domain.OrderStatusCompleted, status)
		assert.NotEqual(t, domain.OrderStatusRejected, status)
	}
}

func TestAssignStatus_BucketBoundaries(t *testing.T) {
	// Exactly 3 days old still uses the freshest table; just past it
	// moves to the 3-14d table.
	assert.Equal(t, domain.OrderStatusPending, AssignStatus(placed(3), anchor, 0.10))
	assert.Equal(t, domain.OrderStatusDelivered, AssignStatus(placed(4), anchor, 0.10))

	// Exactly 60 days old uses the 14-60d table; past it the >60d one.
	assert.Equal(t, domain.OrderStatusCompleted, AssignStatus(placed(60), anchor, 0.40))
	assert.Equal(t, domain.OrderStatusOutForDelivery, AssignStatus(placed(60), anchor, 0.83))
	assert.Equal(t, domain.OrderStatusDelivered, AssignStatus(placed(61), anchor, 0.83))
}

func TestAssignStatus_AlwaysValid(t *testing.T) {
	for _, days := range []int{0, 1, 3, 4, 14, 15, 60, 61, 90, 365} {
		for _, draw := range []float64{0.0, 0.25, 0.5, 0.75, 0.999} {
			assert.True(t, domain.IsValidStatus(AssignStatus(placed(days), anchor, draw)))
		}
	}
}

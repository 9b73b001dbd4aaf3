package synth

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aamuros/hardware-store-sub002/internal/catalog"
	"github.com/aamuros/hardware-store-sub002/internal/data"
	"github.com/aamuros/hardware-store-sub002/internal/domain"
	"github.com/aamuros/hardware-store-sub002/internal/ordernum"
	"github.com/aamuros/hardware-store-sub002/internal/revenue"
)

var genDate = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func newTestSynthesizer(seed int64, entries []domain.Sellable) *Synthesizer {
	if entries == nil {
		entries = data.Catalog()
	}
	return New(
		rand.New(rand.NewSource(seed)),
		ordernum.NewSequence(ordernum.DefaultSeed),
		catalog.BuildPool(entries),
		data.Customers(),
		data.Addresses(),
		data.OrderNotes(),
		anchor,
	)
}

func TestDay_MeetsTargetWithBoundedOvershoot(t *testing.T) {
	s := newTestSynthesizer(1, nil)
	target := int64(1_200_000)

	res := s.Day(genDate, target)
	require.NotEmpty(t, res.Orders)
	assert.GreaterOrEqual(t, res.Revenue, target)

	// Overshoot is bounded by one order's worth.
	var maxOrder int64
	for _, o := range res.Orders {
		if o.TotalAmount > maxOrder {
			maxOrder = o.TotalAmount
		}
	}
	assert.LessOrEqual(t, res.Revenue, target+maxOrder)
}

func TestDay_RevenueMatchesOrderTotals(t *testing.T) {
	s := newTestSynthesizer(2, nil)

	res := s.Day(genDate, 800_000)
	var sum int64
	for _, o := range res.Orders {
		var orderSum int64
		for _, l := range o.Lines {
			assert.Equal(t, l.UnitPrice*int64(l.Quantity), l.Subtotal())
			orderSum += l.Subtotal()
		}
		assert.Equal(t, orderSum, o.TotalAmount)
		sum += o.TotalAmount
	}
	assert.Equal(t, sum, res.Revenue)
}

func TestDay_NoDuplicateItemsWithinOrder(t *testing.T) {
	s := newTestSynthesizer(3, nil)

	res := s.Day(genDate, 2_000_000)
	for _, o := range res.Orders {
		seen := make(map[string]struct{})
		for _, l := range o.Lines {
			key := domain.SelectableItem{ProductName: l.ProductName, VariantName: l.VariantName}.Key()
			_, dup := seen[key]
			assert.False(t, dup, "order %s repeats item %s", o.Number, key)
			seen[key] = struct{}{}
		}
	}
}

func TestDay_OrderNumbersUniqueAcrossDays(t *testing.T) {
	s := newTestSynthesizer(4, nil)
	seen := make(map[string]struct{})

	for day := 0; day < 30; day++ {
		d := genDate.AddDate(0, 0, day)
		res := s.Day(d, revenue.Target(d, 1.0))
		for _, o := range res.Orders {
			_, dup := seen[o.Number]
			require.False(t, dup, "duplicate order number %s", o.Number)
			seen[o.Number] = struct{}{}
		}
	}
	assert.NotEmpty(t, seen)
}

func TestDay_TimestampsWithinBusinessHours(t *testing.T) {
	s := newTestSynthesizer(5, nil)

	res := s.Day(genDate, 2_000_000)
	for _, o := range res.Orders {
		assert.Equal(t, genDate.Year(), o.PlacedAt.Year())
		assert.Equal(t, genDate.Day(), o.PlacedAt.Day())
		assert.GreaterOrEqual(t, o.PlacedAt.Hour(), 7)
		assert.LessOrEqual(t, o.PlacedAt.Hour(), 18)
	}
}

func TestDay_OrdersCarryCustomerAddressAndStatus(t *testing.T) {
	s := newTestSynthesizer(6, nil)

	guests, registered := 0, 0
	for day := 0; day < 5; day++ {
		res := s.Day(genDate.AddDate(0, 0, day), 2_000_000)
		for _, o := range res.Orders {
			assert.NotEmpty(t, o.CustomerName)
			assert.NotEmpty(t, o.Phone)
			assert.NotEmpty(t, o.Address)
			assert.NotEmpty(t, o.Barangay)
			assert.True(t, domain.IsValidStatus(o.Status))
			if o.CustomerEmail == "" {
				guests++
			} else {
				registered++
			}
		}
	}
	// 75% registered split: both kinds should appear over a full day.
	assert.Positive(t, registered)
	assert.Positive(t, guests)
}

func TestDay_ZeroTargetProducesNoOrders(t *testing.T) {
	s := newTestSynthesizer(7, nil)
	res := s.Day(genDate, 0)
	assert.Empty(t, res.Orders)
	assert.Zero(t, res.Revenue)
}

func TestBuildOrder_ExpensiveItemSkippedAtCeiling(t *testing.T) {
	// A ₱3,000 item with the running total already at ₱33,000 against the
	// ₱34,000 ceiling must be skipped, not downgraded: its unit price is
	// above the modest cutoff.
	only := []domain.Sellable{
		domain.SimpleProduct{Name: `Circular Saw 7-1/4"`, Price: 300_000},
	}
	s := newTestSynthesizer(8, only)

	for i := 0; i < 50; i++ {
		_, ok := s.buildOrder(genDate, 3_300_000)
		assert.False(t, ok, "expensive item must not survive the ceiling")
	}
}

func TestBuildOrder_ModestItemDowngradedAtCeiling(t *testing.T) {
	only := []domain.Sellable{
		domain.SimpleProduct{Name: "Teflon Tape", Price: 15_000},
	}
	s := newTestSynthesizer(9, only)

	order, ok := s.buildOrder(genDate, 3_390_000)
	require.True(t, ok)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 1, order.Lines[0].Quantity)
}

func TestDay_ExhaustionEndsEarlyWithoutError(t *testing.T) {
	// With only one expensive item and an unreachable situation the day
	// loop must stop on the first empty order instead of spinning.
	only := []domain.Sellable{
		domain.SimpleProduct{Name: "Portable Generator 1kW", Price: 1_250_000},
	}
	s := newTestSynthesizer(10, only)

	res := s.Day(genDate, DailyCeiling+1_000_000)
	assert.Less(t, res.Revenue, res.Target)
}

func TestQuantityFor_PriceDependentRanges(t *testing.T) {
	s := newTestSynthesizer(11, nil)
	for i := 0; i < 500; i++ {
		assert.LessOrEqual(t, s.quantityFor(4_000), 12)
		assert.LessOrEqual(t, s.quantityFor(18_000), 6)
		assert.LessOrEqual(t, s.quantityFor(45_000), 4)
		assert.LessOrEqual(t, s.quantityFor(180_000), 2)
		assert.Equal(t, 1, s.quantityFor(300_000))
	}
}

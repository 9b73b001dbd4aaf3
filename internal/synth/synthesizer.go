// Package synth assembles synthetic orders for one calendar date at a
// time, chasing a daily revenue target drawn from the revenue model.
package synth

import (
	"math/rand"
	"time"

	"github.com/aamuros/hardware-store-sub002/internal/catalog"
	"github.com/aamuros/hardware-store-sub002/internal/domain"
	"github.com/aamuros/hardware-store-sub002/internal/ordernum"
	"github.com/aamuros/hardware-store-sub002/internal/randutil"
)

// Synthesis bounds, in centavos where monetary.
const (
	// DailyCeiling is the hard ceiling a date's running total may not be
	// pushed far past by a single candidate item.
	DailyCeiling = 3_400_000 // ₱34,000
	// modestUnitMax is the unit price at or below which a ceiling-busting
	// candidate is downgraded to quantity 1 instead of skipped.
	modestUnitMax = 20_000 // ₱200
	// maxAttempts bounds per-date work when a target is unreachable given
	// the quantization of item prices.
	maxAttempts = 50
	// registeredCustomerProb is the chance an order belongs to a
	// registered customer rather than a guest.
	registeredCustomerProb = 0.75
	// noteProb is the chance an order carries a delivery note.
	noteProb = 0.30
)

// Business hours for order timestamps: 07:00–18:59.
const (
	openingHour = 7
	hoursOpen   = 12
)

var itemCountChoices = []randutil.Choice[int]{
	{Outcome: 1, Cum: 0.20},
	{Outcome: 2, Cum: 0.50},
	{Outcome: 3, Cum: 0.78},
	{Outcome: 4, Cum: 0.92},
	{Outcome: 5, Cum: 1.00},
}

var tierChoices = []randutil.Choice[catalog.PriceTier]{
	{Outcome: catalog.TierCheap, Cum: 0.40},
	{Outcome: catalog.TierMid, Cum: 0.75},
	{Outcome: catalog.TierPricey, Cum: 0.93},
	{Outcome: catalog.TierBig, Cum: 1.00},
}

// Synthesizer generates orders for one run. It owns no global state:
// the RNG and the order-number sequence are injected so runs and tests
// control determinism explicitly.
type Synthesizer struct {
	rng       *rand.Rand
	seq       *ordernum.Sequence
	pool      *catalog.Pool
	customers []domain.Customer
	addresses []domain.Address
	notes     []string
	now       time.Time
}

// New creates a synthesizer over the given pools. now anchors status
// assignment for every generated order.
func New(rng *rand.Rand, seq *ordernum.Sequence, pool *catalog.Pool,
	customers []domain.Customer, addresses []domain.Address, notes []string,
	now time.Time) *Synthesizer {
	return &Synthesizer{
		rng:       rng,
		seq:       seq,
		pool:      pool,
		customers: customers,
		addresses: addresses,
		notes:     notes,
		now:       now,
	}
}

// DayResult holds one date's output.
type DayResult struct {
	Orders  []domain.Order
	Revenue int64 // centavos accumulated against the target
	Target  int64
}

// Day generates orders for one calendar date until accumulated revenue
// meets the target, attempts run out, or an order comes out empty after
// dedup and capping (treated as exhaustion, not an error).
func (s *Synthesizer) Day(date time.Time, target int64) DayResult {
	res := DayResult{Target: target}
	for attempt := 0; attempt < maxAttempts && res.Revenue < target; attempt++ {
		order, ok := s.buildOrder(date, res.Revenue)
		if !ok {
			break
		}
		res.Revenue += order.TotalAmount
		res.Orders = append(res.Orders, order)
	}
	return res
}

// buildOrder assembles one candidate order. ok is false when every drawn
// item was dropped by dedup or the daily ceiling.
func (s *Synthesizer) buildOrder(date time.Time, dayTotal int64) (domain.Order, bool) {
	slots := randutil.Pick(itemCountChoices, s.rng.Float64())

	var (
		lines []domain.OrderLine
		total int64
	)
	seen := make(map[string]struct{}, slots)
	for i := 0; i < slots; i++ {
		item := s.pickItem()
		if _, dup := seen[item.Key()]; dup {
			// A repeated draw is silently skipped, shrinking the order.
			continue
		}

		qty := s.quantityFor(item.UnitPrice)
		if dayTotal+total+item.UnitPrice*int64(qty) > DailyCeiling {
			if item.UnitPrice > modestUnitMax {
				continue
			}
			qty = 1
		}

		seen[item.Key()] = struct{}{}
		lines = append(lines, domain.OrderLine{
			ProductName: item.ProductName,
			VariantName: item.VariantName,
			Quantity:    qty,
			UnitPrice:   item.UnitPrice,
		})
		total += item.UnitPrice * int64(qty)
	}
	if len(lines) == 0 {
		return domain.Order{}, false
	}

	placedAt := s.timestampFor(date)
	order := domain.Order{
		Number:      s.seq.Next(date),
		PlacedAt:    placedAt,
		Status:      AssignStatus(placedAt, s.now, s.rng.Float64()),
		TotalAmount: total,
		Lines:       lines,
	}
	s.stampCustomer(&order)
	s.stampAddress(&order)
	if s.rng.Float64() < noteProb && len(s.notes) > 0 {
		order.Notes = s.notes[s.rng.Intn(len(s.notes))]
	}
	return order, true
}

// pickItem draws a price tier and a uniform item within it, falling
// back to the full pool when the tier is empty.
func (s *Synthesizer) pickItem() domain.SelectableItem {
	tier := randutil.Pick(tierChoices, s.rng.Float64())
	items := s.pool.Tier(tier)
	if len(items) == 0 {
		items = s.pool.All()
	}
	return items[s.rng.Intn(len(items))]
}

// quantityFor draws a quantity from a price-dependent range; cheaper
// items get larger ranges so per-line subtotals stay commensurate.
func (s *Synthesizer) quantityFor(unitPrice int64) int {
	var max int
	switch {
	case unitPrice <= 5_000: // ≤ ₱50
		max = 12
	case unitPrice <= 20_000: // ≤ ₱200
		max = 6
	case unitPrice <= 50_000: // ≤ ₱500
		max = 4
	case unitPrice <= 200_000: // ≤ ₱2,000
		max = 2
	default:
		max = 1
	}
	return 1 + s.rng.Intn(max)
}

func (s *Synthesizer) timestampFor(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		openingHour+s.rng.Intn(hoursOpen), s.rng.Intn(60), s.rng.Intn(60), 0, date.Location())
}

// stampCustomer assigns a registered customer 75% of the time; guest
// orders borrow name and phone from a random record and leave the
// email empty.
func (s *Synthesizer) stampCustomer(order *domain.Order) {
	c := s.customers[s.rng.Intn(len(s.customers))]
	if s.rng.Float64() < registeredCustomerProb {
		order.CustomerEmail = c.Email
	}
	order.CustomerName = c.Name
	order.Phone = c.Phone
}

func (s *Synthesizer) stampAddress(order *domain.Order) {
	a := s.addresses[s.rng.Intn(len(s.addresses))]
	order.Address = a.Address
	order.Barangay = a.Barangay
	order.Landmarks = a.Landmarks
}

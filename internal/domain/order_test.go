package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// OrderLine.Subtotal Tests
// ============================================================================

func TestSubtotal_BasicCalculation(t *testing.T) {
	line := OrderLine{UnitPrice: 26000, Quantity: 3}
	assert.Equal(t, int64(78000), line.Subtotal())
}

func TestSubtotal_SingleItem(t *testing.T) {
	line := OrderLine{UnitPrice: 450000, Quantity: 1}
	assert.Equal(t, int64(450000), line.Subtotal())
}

func TestSubtotal_ZeroQuantity(t *testing.T) {
	line := OrderLine{UnitPrice: 26000, Quantity: 0}
	assert.Equal(t, int64(0), line.Subtotal())
}

// ============================================================================
// Status Validation Tests
// ============================================================================

func TestValidStatuses_ContainsAllStatuses(t *testing.T) {
	expected := []string{
		OrderStatusPending, OrderStatusAccepted, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCompleted,
		OrderStatusCancelled, OrderStatusRejected,
	}
	assert.ElementsMatch(t, expected, ValidStatuses())
}

func TestIsValidStatus_ValidStatuses(t *testing.T) {
	for _, s := range ValidStatuses() {
		assert.True(t, IsValidStatus(s), "expected %q to be valid", s)
	}
}

func TestIsValidStatus_InvalidStatus(t *testing.T) {
	assert.False(t, IsValidStatus("unknown"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("PENDING")) // case-sensitive
}

// ============================================================================
// Catalog Flattening Tests
// ============================================================================

func TestSimpleProduct_SingleItem(t *testing.T) {
	p := SimpleProduct{Name: "Claw Hammer", Price: 22000}

	items := p.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "Claw Hammer", items[0].ProductName)
	assert.Empty(t, items[0].VariantName)
	assert.Equal(t, int64(22000), items[0].UnitPrice)
}

func TestVariantProduct_OnlyVariantsContribute(t *testing.T) {
	p := VariantProduct{
		Name: "Latex Paint",
		Variants: []Variant{
			{Name: "White 1L", Price: 18500},
			{Name: "White 4L", Price: 62000},
		},
	}

	items := p.Items()
	assert.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, "Latex Paint", it.ProductName)
		assert.NotEmpty(t, it.VariantName)
	}
	// Declaration order is preserved.
	assert.Equal(t, "White 1L", items[0].VariantName)
	assert.Equal(t, "White 4L", items[1].VariantName)
}

func TestSelectableItem_KeyDistinguishesVariants(t *testing.T) {
	a := SelectableItem{ProductName: "PVC Pipe", VariantName: "1/2 inch"}
	b := SelectableItem{ProductName: "PVC Pipe", VariantName: "3/4 inch"}
	assert.NotEqual(t, a.Key(), b.Key())
}

// ============================================================================
// Money Formatting Tests
// ============================================================================

func TestFormatCentavos_TwoDecimals(t *testing.T) {
	assert.Equal(t, "1234.56", FormatCentavos(123456))
	assert.Equal(t, "0.05", FormatCentavos(5))
	assert.Equal(t, "26.00", FormatCentavos(2600))
	assert.Equal(t, "0.00", FormatCentavos(0))
}

func TestCentavos_Conversion(t *testing.T) {
	assert.Equal(t, int64(340000), Centavos(3400))
}

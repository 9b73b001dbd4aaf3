// Package data holds the embedded reference tables the generator runs
// from: the product catalog, customer and address pools, and the order
// notes pool. All tables are trusted static input.
package data

import "github.com/aamuros/hardware-store-sub002/internal/domain"

// Catalog returns the hardware-store product catalog in declaration
// order. Prices are centavos.
func Catalog() []domain.Sellable {
	return []domain.Sellable{
		// Fasteners and consumables
		domain.VariantProduct{Name: "Common Wire Nails", Variants: []domain.Variant{
			{Name: `1" (1kg)`, Price: 68_00},
			{Name: `2" (1kg)`, Price: 75_00},
			{Name: `3" (1kg)`, Price: 78_00},
			{Name: `4" (1kg)`, Price: 80_00},
		}},
		domain.SimpleProduct{Name: "Concrete Nails (1/4 kg)", Price: 35_00},
		domain.VariantProduct{Name: "Tox with Screw", Variants: []domain.Variant{
			{Name: "5mm (10pcs)", Price: 18_00},
			{Name: "6mm (10pcs)", Price: 22_00},
			{Name: "8mm (10pcs)", Price: 30_00},
		}},
		domain.SimpleProduct{Name: "Sandpaper Sheet #100", Price: 18_00},
		domain.SimpleProduct{Name: "Sandpaper Sheet #220", Price: 18_00},
		domain.SimpleProduct{Name: "Hacksaw Blade", Price: 45_00},
		domain.SimpleProduct{Name: "Electrical Tape (Big)", Price: 42_00},
		domain.SimpleProduct{Name: "Teflon Tape", Price: 25_00},
		domain.SimpleProduct{Name: "Cable Ties 8\" (pack)", Price: 48_00},
		domain.VariantProduct{Name: "Paint Brush", Variants: []domain.Variant{
			{Name: `1"`, Price: 25_00},
			{Name: `2"`, Price: 38_00},
			{Name: `3"`, Price: 55_00},
			{Name: `4"`, Price: 72_00},
		}},
		domain.SimpleProduct{Name: "Paint Roller 7\" with Tray", Price: 145_00},

		// Paints and finishes
		domain.VariantProduct{Name: "Latex Paint, Flat White", Variants: []domain.Variant{
			{Name: "1L", Price: 185_00},
			{Name: "4L", Price: 620_00},
			{Name: "16L", Price: 2_350_00},
		}},
		domain.VariantProduct{Name: "Quick-Dry Enamel", Variants: []domain.Variant{
			{Name: "1L White", Price: 210_00},
			{Name: "1L Black", Price: 210_00},
			{Name: "4L White", Price: 750_00},
		}},
		domain.SimpleProduct{Name: "Paint Thinner 1L", Price: 95_00},
		domain.SimpleProduct{Name: "Wood Varnish 1L", Price: 265_00},
		domain.VariantProduct{Name: "Roof Paint", Variants: []domain.Variant{
			{Name: "4L Baguio Green", Price: 680_00},
			{Name: "4L Terra Cotta", Price: 680_00},
		}},

		// Cement, aggregates, lumber
		domain.SimpleProduct{Name: "Portland Cement 40kg", Price: 260_00},
		domain.SimpleProduct{Name: "Skim Coat 20kg", Price: 385_00},
		domain.VariantProduct{Name: "Marine Plywood", Variants: []domain.Variant{
			{Name: `1/4" x 4 x 8`, Price: 390_00},
			{Name: `1/2" x 4 x 8`, Price: 780_00},
			{Name: `3/4" x 4 x 8`, Price: 1_250_00},
		}},
		domain.VariantProduct{Name: "Good Lumber 2x2", Variants: []domain.Variant{
			{Name: "8ft", Price: 95_00},
			{Name: "10ft", Price: 120_00},
			{Name: "12ft", Price: 145_00},
		}},
		domain.SimpleProduct{Name: "Deformed Bar 10mm x 6m", Price: 185_00},
		domain.SimpleProduct{Name: "GI Tie Wire #16 (1kg)", Price: 85_00},

		// Plumbing
		domain.VariantProduct{Name: "PVC Pipe, Blue", Variants: []domain.Variant{
			{Name: `1/2" x 3m`, Price: 85_00},
			{Name: `3/4" x 3m`, Price: 120_00},
			{Name: `1" x 3m`, Price: 165_00},
		}},
		domain.VariantProduct{Name: "PVC Elbow", Variants: []domain.Variant{
			{Name: `1/2"`, Price: 12_00},
			{Name: `3/4"`, Price: 15_00},
		}},
		domain.SimpleProduct{Name: "PVC Solvent Cement 100cc", Price: 65_00},
		domain.SimpleProduct{Name: "Faucet, Brass 1/2\"", Price: 320_00},
		domain.SimpleProduct{Name: "Garden Hose per meter", Price: 38_00},
		domain.SimpleProduct{Name: "Stainless Kitchen Faucet", Price: 950_00},
		domain.SimpleProduct{Name: "Jetmatic Hand Pump", Price: 1_850_00},

		// Electrical
		domain.VariantProduct{Name: "THHN Wire 3.5mm² (per meter)", Variants: []domain.Variant{
			{Name: "Black", Price: 28_00},
			{Name: "Red", Price: 28_00},
		}},
		domain.VariantProduct{Name: "LED Bulb, Daylight", Variants: []domain.Variant{
			{Name: "5W", Price: 85_00},
			{Name: "9W", Price: 120_00},
			{Name: "13W", Price: 160_00},
		}},
		domain.SimpleProduct{Name: "Extension Cord 4-Gang 3m", Price: 420_00},
		domain.SimpleProduct{Name: "Circuit Breaker 30A", Price: 285_00},
		domain.SimpleProduct{Name: "Duplex Outlet", Price: 95_00},

		// Hand tools
		domain.SimpleProduct{Name: "Claw Hammer 16oz", Price: 220_00},
		domain.SimpleProduct{Name: "Screwdriver Set (6pcs)", Price: 380_00},
		domain.SimpleProduct{Name: "Adjustable Wrench 10\"", Price: 340_00},
		domain.SimpleProduct{Name: "Long Nose Pliers 8\"", Price: 260_00},
		domain.SimpleProduct{Name: "Steel Tape Measure 5m", Price: 150_00},
		domain.SimpleProduct{Name: "Hand Saw 22\"", Price: 385_00},
		domain.SimpleProduct{Name: "Shovel, Round Point", Price: 450_00},
		domain.SimpleProduct{Name: "Steel Ladder 6ft", Price: 1_650_00},
		domain.SimpleProduct{Name: "Wheelbarrow", Price: 1_980_00},

		// Power tools and big-ticket items
		domain.SimpleProduct{Name: "Electric Drill 13mm", Price: 2_450_00},
		domain.SimpleProduct{Name: `Circular Saw 7-1/4"`, Price: 3_000_00},
		domain.SimpleProduct{Name: "Angle Grinder 4\"", Price: 1_600_00},
		domain.SimpleProduct{Name: "Welding Machine 300A", Price: 4_500_00},
		domain.SimpleProduct{Name: "Pressure Washer", Price: 6_500_00},
		domain.SimpleProduct{Name: "Water Pump 0.5HP", Price: 3_800_00},
		domain.SimpleProduct{Name: "Portable Generator 1kW", Price: 12_500_00},
	}
}

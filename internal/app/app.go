// Package app wires the generation pipeline: pools, revenue targets,
// daily synthesis, and CSV serialization.
package app

import (
	"context"
	"log/slog"
	"math/rand"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/aamuros/hardware-store-sub002/internal/catalog"
	"github.com/aamuros/hardware-store-sub002/internal/config"
	"github.com/aamuros/hardware-store-sub002/internal/csvout"
	"github.com/aamuros/hardware-store-sub002/internal/data"
	"github.com/aamuros/hardware-store-sub002/internal/domain"
	"github.com/aamuros/hardware-store-sub002/internal/ordernum"
	"github.com/aamuros/hardware-store-sub002/internal/revenue"
	"github.com/aamuros/hardware-store-sub002/internal/synth"
)

// Output file names and headers, matching the bulk importer's contract.
const (
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order-items.csv"
)

var ordersHeader = []string{
	"order_number", "date", "time", "customer_email", "customer_name", "phone",
	"address", "barangay", "landmarks", "status", "total_amount", "notes",
}

var orderItemsHeader = []string{
	"order_number", "product_name", "variant_name", "quantity", "unit_price", "subtotal",
}

// App runs one generation pass end to end.
type App struct {
	cfg *config.Config
	log *slog.Logger
}

// New creates the application.
func New(cfg *config.Config, log *slog.Logger) *App {
	return &App{cfg: cfg, log: log}
}

// Run executes the whole pipeline and writes both CSV files. Any
// filesystem failure propagates and aborts the run; there is no
// partial-output cleanup.
func (a *App) Run(ctx context.Context) error {
	runID := uuid.New().String()
	log := a.log.With(slog.String("run_id", runID))

	rngSeed := a.cfg.RNGSeed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	customers := data.ExpandCustomers(data.Customers(), a.cfg.ExtraCustomers, rng)
	pool := catalog.BuildPool(data.Catalog())
	seq := ordernum.NewSequence(a.cfg.OrderNumberSeed)
	syn := synth.New(rng, seq, pool, customers, data.Addresses(), data.OrderNotes(), a.cfg.Anchor())

	dates, err := revenue.DateRange(a.cfg.Start(), a.cfg.End())
	if err != nil {
		return err
	}

	log.Info("starting seed generation",
		slog.String("range_start", a.cfg.RangeStart),
		slog.String("range_end", a.cfg.RangeEnd),
		slog.Int("days", len(dates)),
		slog.Int("catalog_items", pool.Len()),
		slog.Int("customers", len(customers)),
	)

	var (
		orders       []domain.Order
		totalRevenue int64
	)
	for _, d := range dates {
		if err := ctx.Err(); err != nil {
			return err
		}
		res := syn.Day(d, revenue.Target(d, revenue.Noise(rng)))
		orders = append(orders, res.Orders...)
		totalRevenue += res.Revenue

		log.Debug("generated day",
			slog.String("date", d.Format("2006-01-02")),
			slog.String("target", domain.FormatCentavos(res.Target)),
			slog.String("revenue", domain.FormatCentavos(res.Revenue)),
			slog.Int("orders", len(res.Orders)),
		)
	}

	orderRows, itemRows := buildRows(orders)

	ordersPath := filepath.Join(a.cfg.OutputDir, OrdersFile)
	if err := csvout.WriteFile(ordersPath, ordersHeader, orderRows); err != nil {
		return err
	}
	itemsPath := filepath.Join(a.cfg.OutputDir, OrderItemsFile)
	if err := csvout.WriteFile(itemsPath, orderItemsHeader, itemRows); err != nil {
		return err
	}

	log.Info("seed generation complete",
		slog.Int("orders", len(orderRows)),
		slog.Int("order_items", len(itemRows)),
		slog.String("total_revenue", domain.FormatCentavos(totalRevenue)),
		slog.String("orders_file", ordersPath),
		slog.String("order_items_file", itemsPath),
	)
	return nil
}

// buildRows flattens generated orders into output rows in generation
// order.
func buildRows(orders []domain.Order) (orderRows, itemRows [][]string) {
	for _, o := range orders {
		orderRows = append(orderRows, orderRow(o))
		for _, l := range o.Lines {
			itemRows = append(itemRows, itemRow(o.Number, l))
		}
	}
	return orderRows, itemRows
}

func orderRow(o domain.Order) []string {
	return []string{
		o.Number,
		o.PlacedAt.Format("2006-01-02"),
		o.PlacedAt.Format("15:04:05"),
		o.CustomerEmail,
		o.CustomerName,
		o.Phone,
		o.Address,
		o.Barangay,
		o.Landmarks,
		o.Status,
		domain.FormatCentavos(o.TotalAmount),
		o.Notes,
	}
}

func itemRow(orderNumber string, l domain.OrderLine) []string {
	return []string{
		orderNumber,
		l.ProductName,
		l.VariantName,
		strconv.Itoa(l.Quantity),
		domain.FormatCentavos(l.UnitPrice),
		domain.FormatCentavos(l.Subtotal()),
	}
}

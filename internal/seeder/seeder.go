// Package seeder imports parsed product drafts into the store with
// insert-if-absent semantics keyed on SKU, so re-running the import over
// the same price list is a no-op.
package seeder

import (
	"context"
	"log/slog"
	"time"

	"github.com/hearteco/woodplanks/internal/domain/planks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var seededProducts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "woodplanks_seeded_products_total",
	Help: "Outcomes of price list seeding, per product record.",
}, []string{"result"})

// Store is the record-store capability the driver needs. The store must
// enforce SKU uniqueness; a duplicate insert racing past the existence
// check is expected to fail there and is counted, not fatal.
type Store interface {
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	Insert(ctx context.Context, product planks.NewWoodPlank) (*planks.WoodPlank, error)
}

// Report summarizes a seeding run. Existing records count as succeeded.
type Report struct {
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

type Seeder struct {
	store Store
	log   *slog.Logger
}

func New(store Store, log *slog.Logger) *Seeder {
	return &Seeder{store: store, log: log}
}

// Run processes every draft in order: generate SKU, validate, check
// existence, insert if missing. Individual failures are logged and
// counted; the batch always runs to completion.
func (s *Seeder) Run(ctx context.Context, products []planks.NewWoodPlank) Report {
	start := time.Now()
	var report Report

	for _, product := range products {
		sku := product.GenerateSKU()

		if err := product.Validate(); err != nil {
			s.log.Warn("skipping invalid product", "name", product.Name, "err", err)
			seededProducts.WithLabelValues("failed").Inc()
			report.Failed++
			continue
		}

		exists, err := s.store.ExistsBySKU(ctx, sku)
		if err != nil {
			s.log.Error("existence check failed", "sku", sku, "err", err)
			seededProducts.WithLabelValues("failed").Inc()
			report.Failed++
			continue
		}
		if exists {
			s.log.Info("product already seeded", "sku", sku)
			seededProducts.WithLabelValues("existing").Inc()
			report.Succeeded++
			continue
		}

		product.SKU = sku
		if _, err := s.store.Insert(ctx, product); err != nil {
			s.log.Error("insert failed", "sku", sku, "name", product.Name, "err", err)
			seededProducts.WithLabelValues("failed").Inc()
			report.Failed++
			continue
		}
		s.log.Info("inserted product", "sku", sku, "name", product.Name)
		seededProducts.WithLabelValues("inserted").Inc()
		report.Succeeded++
	}

	report.Elapsed = time.Since(start)
	return report
}

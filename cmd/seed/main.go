// Seed imports the supplier price list into the catalog. Re-running it is
// safe: records already present (by SKU) are skipped. The process exits
// non-zero only when the price list or the database is unreachable;
// per-record failures are counted and reported.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hearteco/woodplanks/internal/config"
	"github.com/hearteco/woodplanks/internal/domain/planks"
	"github.com/hearteco/woodplanks/internal/infra/db"
	"github.com/hearteco/woodplanks/internal/infra/logger"
	"github.com/hearteco/woodplanks/internal/pricelist"
	"github.com/hearteco/woodplanks/internal/seeder"
)

func main() {
	configPath := flag.String("config", "config/example.yaml", "path to config file")
	priceList := flag.String("price-list", "", "price list path (overrides config)")
	exportXLSX := flag.String("export-xlsx", "", "also write parsed products to this .xlsx file for review")
	flag.Parse()

	if err := run(*configPath, *priceList, *exportXLSX); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run(configPath, priceList, exportXLSX string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.App.Env)

	path := cfg.Seed.PriceListPath
	if priceList != "" {
		path = priceList
	}

	fmt.Println("=== Heart Eco Wood Planks Inventory Seeder ===")
	fmt.Printf("Reading price list from %s\n", path)

	products, err := pricelist.ParseFile(path, log)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d products in price list\n", len(products))

	if exportXLSX != "" {
		if err := writeReviewFile(exportXLSX, products); err != nil {
			return err
		}
		fmt.Printf("Wrote review file %s\n", exportXLSX)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer pool.Close()

	repo := planks.NewRepo(pool)

	fmt.Println("Beginning database import...")
	report := seeder.New(repo, log).Run(ctx, products)

	fmt.Printf("\nImport completed in %s\n", report.Elapsed.Round(time.Millisecond))
	fmt.Printf("Successfully imported: %d products\n", report.Succeeded)
	fmt.Printf("Failed to import: %d products\n", report.Failed)

	if report.Succeeded > 0 {
		counts, err := repo.CountByCategory(ctx)
		if err == nil && len(counts) > 0 {
			fmt.Println("\nProduct categories in database:")
			for _, c := range counts {
				fmt.Printf("  %s: %d\n", c.Category, c.Count)
			}
		}
	} else {
		fmt.Println("\nNo products were imported. Please check for errors.")
	}

	return nil
}

func writeReviewFile(path string, products []planks.NewWoodPlank) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create review file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return pricelist.WriteXLSX(f, products)
}

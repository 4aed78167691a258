package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"finrec/internal/config"
	"finrec/internal/exporter"
	"finrec/internal/infrastructure"
	"finrec/internal/pipeline"
	"finrec/internal/scrub"
	"finrec/internal/warehouse"
)

func main() {
	pkrdPath := flag.String("pkrd", "", "movement ledger CSV extract (required)")
	freshPath := flag.String("fresh", "", "NFSI Fresh receipts CSV extract (required)")
	frozenPath := flag.String("frozen", "", "NFSI Frozen receipts CSV extract (required)")
	nonNFSIPath := flag.String("non-nfsi", "", "Non-NFSI invoicing CSV extract (required)")
	salesPath := flag.String("sales", "", "sales order CSV extract (required)")
	depotPath := flag.String("depot", "", "depot reference CSV (required)")
	pricingPath := flag.String("pricing", "", "transfer pricing extract, CSV or workbook (required)")

	startDate := flag.String("start-date", "", "reporting window start, dd/mm/yyyy")
	endDate := flag.String("end-date", "", "reporting window end, dd/mm/yyyy")
	effectiveDate := flag.String("effective-date", "", "effective date for warehouse rows, dd/mm/yyyy (defaults to today)")

	outDir := flag.String("out", "", "output directory for CSV reports (defaults to configured dir)")
	fileOutput := flag.Bool("file-output", true, "write CSV report files")
	bqOutput := flag.Bool("bq-output", false, "load result sets into BigQuery")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	in := pipeline.Inputs{
		PKRD:    *pkrdPath,
		Fresh:   *freshPath,
		Frozen:  *frozenPath,
		NonNFSI: *nonNFSIPath,
		Sales:   *salesPath,
		Depot:   *depotPath,
		Pricing: *pricingPath,
	}
	if err := requireInputs(in); err != nil {
		logger.Error("Missing required input", "error", err)
		flag.Usage()
		os.Exit(1)
	}

	opts, err := parseOptions(*startDate, *endDate, *effectiveDate)
	if err != nil {
		logger.Error("Invalid date flag", "error", err)
		os.Exit(1)
	}
	if opts.EffectiveDate.IsZero() {
		opts.EffectiveDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	if *bqOutput && cfg.BigQuery.Project == "" {
		logger.Error("BigQuery output requested but no project configured")
		os.Exit(1)
	}

	ctx := context.Background()
	started := time.Now()

	result, err := pipeline.New(logger, cfg.Mappings).Run(ctx, in, opts)
	if err != nil {
		logger.Error("Reconciliation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Reconciliation complete",
		slog.Int("records", len(result.Records)),
		slog.Int("summaries", len(result.Summary)),
		slog.Duration("elapsed", time.Since(started)))

	if *fileOutput {
		dir := cfg.Output.Dir
		if *outDir != "" {
			dir = *outDir
		}
		if err := writeReports(dir, result); err != nil {
			logger.Error("Failed to write CSV reports", "error", err)
			os.Exit(1)
		}
		logger.Info("CSV reports written", slog.String("dir", dir))
	}

	if *bqOutput {
		if err := loadWarehouse(ctx, logger, cfg, opts.EffectiveDate, result); err != nil {
			logger.Error("Failed to load warehouse", "error", err)
			os.Exit(1)
		}
		logger.Info("Warehouse load complete",
			slog.String("project", cfg.BigQuery.Project),
			slog.String("dataset", cfg.BigQuery.Dataset))
	}
}

func requireInputs(in pipeline.Inputs) error {
	required := []struct {
		flag string
		path string
	}{
		{"pkrd", in.PKRD},
		{"fresh", in.Fresh},
		{"frozen", in.Frozen},
		{"non-nfsi", in.NonNFSI},
		{"sales", in.Sales},
		{"depot", in.Depot},
		{"pricing", in.Pricing},
	}
	for _, r := range required {
		if r.path == "" {
			return fmt.Errorf("--%s is required", r.flag)
		}
	}
	return nil
}

func parseOptions(start, end, effective string) (pipeline.Options, error) {
	var opts pipeline.Options
	var err error

	if start != "" {
		if opts.Dates.Start, err = scrub.Date(start); err != nil {
			return opts, fmt.Errorf("start date: %w", err)
		}
	}
	if end != "" {
		if opts.Dates.End, err = scrub.Date(end); err != nil {
			return opts, fmt.Errorf("end date: %w", err)
		}
	}
	if effective != "" {
		if opts.EffectiveDate, err = scrub.Date(effective); err != nil {
			return opts, fmt.Errorf("effective date: %w", err)
		}
	}
	return opts, nil
}

func writeReports(dir string, result *pipeline.Result) error {
	w := exporter.NewCSVWriter(dir)

	if err := w.WriteRecords(result.Records); err != nil {
		return err
	}
	for _, report := range result.Reports {
		if err := w.WriteAggregates(report.Tag, report.Aggregates); err != nil {
			return err
		}
	}
	if err := w.WriteSummaries(result.Summary); err != nil {
		return err
	}
	return w.WritePricing(result.Pricing)
}

func loadWarehouse(ctx context.Context, logger *slog.Logger, cfg *config.Config, effectiveDate time.Time, result *pipeline.Result) error {
	tables := warehouse.Tables{
		Dataset:  cfg.BigQuery.Dataset,
		Records:  cfg.BigQuery.RecordsTable,
		Variance: cfg.BigQuery.VarianceTable,
		Pricing:  cfg.BigQuery.PricingTable,
		Summary:  cfg.BigQuery.SummaryTable,
	}

	writer, err := warehouse.NewWriter(ctx, logger, cfg.BigQuery.Project, tables)
	if err != nil {
		return err
	}

	meta := warehouse.NewMetadata()

	if err := writer.WritePricing(ctx, meta, result.Pricing); err != nil {
		return err
	}
	if err := writer.WriteRecords(ctx, meta, result.Records); err != nil {
		return err
	}
	for _, report := range result.Reports {
		if err := writer.WriteAggregates(ctx, meta, effectiveDate, report.Aggregates); err != nil {
			return err
		}
	}
	return writer.WriteSummaries(ctx, meta, effectiveDate, result.Summary)
}

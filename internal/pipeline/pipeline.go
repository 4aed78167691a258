package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"finrec/internal/config"
	"finrec/internal/dataprocessing"
	"finrec/internal/ingest"
	"finrec/internal/reference"
	"finrec/internal/variance"
)

// Ledger filters applied after the sales join.
const (
	internalTransferPrefix   = "SS"
	consolidationDepotPrefix = "CSL"
	nonNFSICategoryPrefix    = "Non-NFSI"
)

// Inputs names the seven extract files of one run.
type Inputs struct {
	PKRD    string
	Fresh   string
	Frozen  string
	NonNFSI string
	Sales   string
	Depot   string
	Pricing string
}

// Options are the per-run parameters.
type Options struct {
	// Dates restricts the frozen depot/SKU report to a reporting window.
	// The other reports always cover the full snapshot.
	Dates dataprocessing.DateRange
	// EffectiveDate stamps pricing rows without a date of their own and is
	// carried into the warehouse envelopes. Defaults to today.
	EffectiveDate time.Time
}

// Report is one variance report keyed by its tag.
type Report struct {
	Tag        string
	Aggregates []variance.Aggregate
}

// Result holds everything a run produces.
type Result struct {
	Records []dataprocessing.Record
	Reports []Report
	Summary []variance.SummaryTotal
	Pricing []reference.Pricing
}

// Pipeline runs reconciliations with a fixed set of column mappings.
type Pipeline struct {
	logger   *slog.Logger
	mappings config.Mappings
}

// New creates a pipeline.
func New(logger *slog.Logger, mappings config.Mappings) *Pipeline {
	return &Pipeline{logger: logger, mappings: mappings}
}

// Run executes one reconciliation over the input snapshot.
func (p *Pipeline) Run(ctx context.Context, in Inputs, opts Options) (*Result, error) {
	opts = p.normalizeOptions(opts)

	depots, err := p.loadDepots(in.Depot)
	if err != nil {
		return nil, err
	}
	pricingRecords, err := p.loadPricing(in.Pricing, opts.EffectiveDate)
	if err != nil {
		return nil, err
	}
	prices := reference.NewPricingTable(pricingRecords)

	p.logger.Info("reference tables ready",
		slog.Int("depots", depots.Len()),
		slog.Int("priced_skus", prices.Len()))

	sales, err := p.loadRows(dataprocessing.SourceSales, p.mappings.Sales, in.Sales)
	if err != nil {
		return nil, err
	}

	var branches [4][]dataprocessing.Record
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := p.ledgerBranch(ctx, in.PKRD, depots, prices, sales)
		branches[0] = recs
		return err
	})
	g.Go(func() error {
		recs, err := p.receiptBranch(ctx, dataprocessing.SourceFresh, p.mappings.Fresh, in.Fresh, depots, sales)
		branches[1] = recs
		return err
	})
	g.Go(func() error {
		recs, err := p.receiptBranch(ctx, dataprocessing.SourceFrozen, p.mappings.Frozen, in.Frozen, depots, sales)
		branches[2] = recs
		return err
	})
	g.Go(func() error {
		recs, err := p.receiptBranch(ctx, dataprocessing.SourceNonNFSI, p.mappings.NonNFSI, in.NonNFSI, depots, sales)
		branches[3] = recs
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]dataprocessing.Record, 0,
		len(branches[0])+len(branches[1])+len(branches[2])+len(branches[3]))
	for _, b := range branches {
		records = append(records, b...)
	}

	p.logger.Info("canonical records built", slog.Int("record_count", len(records)))

	reports := p.buildReports(records, opts.Dates)
	summary := p.buildSummary(reports)

	return &Result{
		Records: records,
		Reports: reports,
		Summary: summary,
		Pricing: pricingRecords,
	}, nil
}

func (p *Pipeline) normalizeOptions(opts Options) Options {
	if opts.EffectiveDate.IsZero() {
		opts.EffectiveDate = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if !opts.Dates.Start.IsZero() && !opts.Dates.End.IsZero() && opts.Dates.Start.After(opts.Dates.End) {
		p.logger.Warn("start date after end date, dropping start bound",
			slog.Time("start", opts.Dates.Start),
			slog.Time("end", opts.Dates.End))
		opts.Dates.Start = time.Time{}
	}
	return opts
}

// ledgerBranch builds canonical records from the movement ledger: pricing
// enrichment, a sales join to recover order numbers, then the internal
// transfer and consolidation depot exclusions.
func (p *Pipeline) ledgerBranch(ctx context.Context, path string, depots *reference.DepotTable, prices *reference.PricingTable, sales []*dataprocessing.SourceRow) ([]dataprocessing.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := p.loadRows(dataprocessing.SourcePKRD, p.mappings.PKRD, path)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		dataprocessing.EnrichDepot(r, depots)
		dataprocessing.EnrichPricing(r, prices)
	}

	dataprocessing.LeftJoin(rows, sales,
		(*dataprocessing.SourceRow).SKUMoveOrder,
		(*dataprocessing.SourceRow).SKUMoveOrder,
		func(l, r *dataprocessing.SourceRow) { l.OrderNumber = r.OrderNumber },
		func(l *dataprocessing.SourceRow, ok bool) { l.JoinMatch = ok },
	)

	records := p.buildRecords(rows)
	records = dataprocessing.Filter(records, dataprocessing.ExcludeMoveOrderPrefix(internalTransferPrefix))
	records = dataprocessing.Filter(records, dataprocessing.ExcludeDepotIDPrefix(consolidationDepotPrefix))
	return records, nil
}

// receiptBranch builds canonical records from one receipt feed. The sales
// join runs on the order number; matched Fresh and Frozen rows adopt the
// sales move order so both sides of the reconciliation share the
// sku/moveorder identity. Non-NFSI rows keep their own move order and are
// restricted to Non-NFSI depot categories afterwards.
func (p *Pipeline) receiptBranch(ctx context.Context, st dataprocessing.SourceType, m config.ColumnMapping, path string, depots *reference.DepotTable, sales []*dataprocessing.SourceRow) ([]dataprocessing.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := p.loadRows(st, m, path)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		dataprocessing.EnrichDepot(r, depots)
	}

	merge := func(l, r *dataprocessing.SourceRow) { l.MoveOrderRaw = r.MoveOrderRaw }
	if st == dataprocessing.SourceNonNFSI {
		merge = func(l, r *dataprocessing.SourceRow) {}
	}

	dataprocessing.LeftJoin(rows, sales,
		func(r *dataprocessing.SourceRow) string { return r.OrderNumber },
		func(r *dataprocessing.SourceRow) string { return r.OrderNumber },
		merge,
		func(l *dataprocessing.SourceRow, ok bool) { l.JoinMatch = ok },
	)

	records := p.buildRecords(rows)
	if st == dataprocessing.SourceNonNFSI {
		records = dataprocessing.Filter(records, dataprocessing.DepotCategoryPrefix(nonNFSICategoryPrefix))
	}
	return records, nil
}

func (p *Pipeline) buildRecords(rows []*dataprocessing.SourceRow) []dataprocessing.Record {
	records := make([]dataprocessing.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, dataprocessing.BuildRecord(p.logger, r))
	}
	return records
}

// buildReports runs the six aggregators. The reporting date window applies
// only to the frozen depot/SKU report; the remaining reports always see
// the full snapshot.
func (p *Pipeline) buildReports(records []dataprocessing.Record, dates dataprocessing.DateRange) []Report {
	var dated []dataprocessing.Record
	reports := make([]Report, 0, 6)

	for _, agg := range variance.Reports() {
		input := records
		if agg.Tag == variance.TagFrozenDepotSKU && !dates.IsZero() {
			if dated == nil {
				dated = dataprocessing.Filter(records, dataprocessing.InDateRange(dates))
			}
			input = dated
		}
		reports = append(reports, Report{Tag: agg.Tag, Aggregates: agg.Aggregate(input)})
	}
	return reports
}

// buildSummary rolls the three move-order/date level reports up by depot
// category and appends the grand totals per report type.
func (p *Pipeline) buildSummary(reports []Report) []variance.SummaryTotal {
	var summaries []variance.SummaryTotal
	for _, r := range reports {
		switch r.Tag {
		case variance.TagFreshMoveOrder:
			summaries = append(summaries, variance.Summarize(r.Aggregates, dataprocessing.SourceFresh.String())...)
		case variance.TagNonNFSIMoveOrder:
			summaries = append(summaries, variance.Summarize(r.Aggregates, dataprocessing.SourceNonNFSI.String())...)
		case variance.TagFrozenDepotDate:
			summaries = append(summaries, variance.Summarize(r.Aggregates, dataprocessing.SourceFrozen.String())...)
		}
	}
	return append(summaries, variance.GrandTotals(summaries)...)
}

func (p *Pipeline) loadRows(st dataprocessing.SourceType, m config.ColumnMapping, path string) ([]*dataprocessing.SourceRow, error) {
	table, err := ingest.ReadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("%s extract: %w", st, err)
	}

	rows := ingest.WellFormed(p.logger, table)
	out := make([]*dataprocessing.SourceRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, dataprocessing.Normalize(p.logger, st, m, row))
	}

	p.logger.Info("extract loaded",
		slog.String("source", st.String()),
		slog.String("path", path),
		slog.Int("row_count", len(out)))
	return out, nil
}

func (p *Pipeline) loadDepots(path string) (*reference.DepotTable, error) {
	table, err := ingest.ReadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("depot reference: %w", err)
	}
	return reference.NewDepotTable(ingest.WellFormed(p.logger, table)), nil
}

// loadPricing reads the transfer pricing extract. Workbooks are located by
// the SKU header column; anything else is treated as CSV.
func (p *Pipeline) loadPricing(path string, effectiveDate time.Time) ([]reference.Pricing, error) {
	var (
		table *ingest.Table
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		table, err = ingest.ReadExcel(path, p.mappings.Pricing.SKU)
	default:
		table, err = ingest.ReadCSV(path)
	}
	if err != nil {
		return nil, fmt.Errorf("pricing reference: %w", err)
	}

	rows := ingest.WellFormed(p.logger, table)
	records := make([]reference.Pricing, 0, len(rows))
	for _, row := range rows {
		records = append(records, reference.PricingFromRow(p.logger, p.mappings.Pricing, row, effectiveDate))
	}
	return records, nil
}

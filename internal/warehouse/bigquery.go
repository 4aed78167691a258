package warehouse

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/bigquery/v2"
	"google.golang.org/api/option"

	"finrec/internal/dataprocessing"
	"finrec/internal/reference"
	"finrec/internal/variance"
)

// Warehouse table names within the internal dataset.
const (
	Dataset       = "mm_fin_internal"
	TableData     = "fin_rec_data"
	TableVariance = "fin_rec_variance"
	TablePricing  = "fin_rec_pricing"
	TableSummary  = "fin_rec_summary"
)

// insertBatchSize bounds rows per insertAll request to stay under the API
// payload limit.
const insertBatchSize = 500

// Tables names the dataset and the four destination tables.
type Tables struct {
	Dataset  string
	Records  string
	Variance string
	Pricing  string
	Summary  string
}

// DefaultTables returns the standard internal dataset layout.
func DefaultTables() Tables {
	return Tables{
		Dataset:  Dataset,
		Records:  TableData,
		Variance: TableVariance,
		Pricing:  TablePricing,
		Summary:  TableSummary,
	}
}

// Writer streams result sets into BigQuery tables.
type Writer struct {
	service *bigquery.Service
	project string
	tables  Tables
	logger  *slog.Logger
}

// NewWriter creates a BigQuery writer for the given project. Credentials
// come from the environment unless overridden via opts.
func NewWriter(ctx context.Context, logger *slog.Logger, project string, tables Tables, opts ...option.ClientOption) (*Writer, error) {
	service, err := bigquery.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bigquery service: %w", err)
	}
	return &Writer{
		service: service,
		project: project,
		tables:  tables,
		logger:  logger,
	}, nil
}

// WriteRecords loads the canonical record set with a valid_from envelope.
func (w *Writer) WriteRecords(ctx context.Context, meta Metadata, records []dataprocessing.Record) error {
	envelope := meta.withValidFrom()
	rows := make([]map[string]any, 0, len(records))
	for i := range records {
		rows = append(rows, recordRow(envelope, &records[i]))
	}
	return w.insert(ctx, w.tables.Records, rows)
}

// WriteAggregates loads variance aggregates with an effective-date
// envelope.
func (w *Writer) WriteAggregates(ctx context.Context, meta Metadata, effectiveDate time.Time, aggs []variance.Aggregate) error {
	envelope := meta.withEffectiveDate(effectiveDate)
	rows := make([]map[string]any, 0, len(aggs))
	for i := range aggs {
		rows = append(rows, aggregateRow(envelope, &aggs[i]))
	}
	return w.insert(ctx, w.tables.Variance, rows)
}

// WriteSummaries loads the summary report with an effective-date envelope.
func (w *Writer) WriteSummaries(ctx context.Context, meta Metadata, effectiveDate time.Time, summaries []variance.SummaryTotal) error {
	envelope := meta.withEffectiveDate(effectiveDate)
	rows := make([]map[string]any, 0, len(summaries))
	for i := range summaries {
		rows = append(rows, summaryRow(envelope, &summaries[i]))
	}
	return w.insert(ctx, w.tables.Summary, rows)
}

// WritePricing loads the pricing extract with the base envelope.
func (w *Writer) WritePricing(ctx context.Context, meta Metadata, prices []reference.Pricing) error {
	envelope := meta.fields()
	rows := make([]map[string]any, 0, len(prices))
	for i := range prices {
		rows = append(rows, pricingRow(envelope, &prices[i]))
	}
	return w.insert(ctx, w.tables.Pricing, rows)
}

func (w *Writer) insert(ctx context.Context, table string, rows []map[string]any) error {
	w.logger.Info("loading rows into BigQuery",
		slog.String("dataset", w.tables.Dataset),
		slog.String("table", table),
		slog.Int("row_count", len(rows)))

	for start := 0; start < len(rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows) {
			end = len(rows)
		}

		req := &bigquery.TableDataInsertAllRequest{
			Rows: make([]*bigquery.TableDataInsertAllRequestRows, 0, end-start),
		}
		for _, row := range rows[start:end] {
			jsonRow := make(map[string]bigquery.JsonValue, len(row))
			for k, v := range row {
				jsonRow[k] = v
			}
			req.Rows = append(req.Rows, &bigquery.TableDataInsertAllRequestRows{Json: jsonRow})
		}

		resp, err := w.service.Tabledata.InsertAll(w.project, w.tables.Dataset, table, req).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to insert into %s.%s: %w", w.tables.Dataset, table, err)
		}
		if len(resp.InsertErrors) > 0 {
			first := resp.InsertErrors[0]
			detail := ""
			if len(first.Errors) > 0 {
				detail = first.Errors[0].Message
			}
			return fmt.Errorf("%s.%s rejected %d rows: row %d: %s",
				w.tables.Dataset, table, len(resp.InsertErrors), first.Index, detail)
		}
	}

	return nil
}

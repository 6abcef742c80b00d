// Package batch runs document pipelines across a directory of inputs.
// Each document is independent, so runs fan out over a bounded worker
// pool; one document failing never stops the rest.
package batch

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultWorkers bounds pipeline concurrency when the caller does not
// choose a limit.
const DefaultWorkers = 4

// ParseFunc is one document pipeline entry point, e.g.
// (*parser.Parser).ParseResume.
type ParseFunc func(ctx context.Context, raw string) (*types.ExtractionRecord, error)

// Item is the outcome for one document: a record or the error that
// prevented it. Exactly one of Record and Err is set.
type Item struct {
	Path   string
	Record *types.ExtractionRecord
	Err    error
}

// Run parses every document with fn over a pool of workers. Results
// keep the input order. Document failures land in their Item; Run
// itself only fails when the context is cancelled before all
// documents finish.
func Run(ctx context.Context, docs []*ingestion.Document, workers int, fn ParseFunc, logger *zap.Logger) ([]Item, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}

	items := make([]Item, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, err := fn(ctx, doc.Text)
			if err != nil {
				logger.Warn("document failed",
					zap.String("path", doc.Path),
					zap.Error(err))
				items[i] = Item{Path: doc.Path, Err: err}
				return nil
			}
			items[i] = Item{Path: doc.Path, Record: record}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// Records filters the successful results out of a batch.
func Records(items []Item) []*types.ExtractionRecord {
	var records []*types.ExtractionRecord
	for _, item := range items {
		if item.Err == nil && item.Record != nil {
			records = append(records, item.Record)
		}
	}
	return records
}

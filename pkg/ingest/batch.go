package ingest

import (
	"context"
	"fmt"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/logger"
)

type BatchRequest struct {
	Items []SeriesRecord `json:"items"`
}

// IngestBatch processes records sequentially in submission order. A record
// that fails on its own merits becomes a failure item and the batch moves on;
// an infrastructure failure aborts the whole call.
func (ing *Ingestor) IngestBatch(ctx context.Context, req BatchRequest) (*Response, error) {
	log := logger.FromCtx(ctx)

	items := make([]Item, 0, len(req.Items))
	for i, rec := range req.Items {
		item, err := ing.IngestSeries(ctx, rec)
		if err != nil {
			if IsItemError(err) {
				log.Debugw("record rejected", "externalId", rec.ExternalID, "error", err)
				items = append(items, FailureItem(rec.ExternalID, err))
				continue
			}
			return nil, fmt.Errorf("batch item %d (%s): %w", i, rec.ExternalID, err)
		}
		items = append(items, item)
	}

	return NewResponse(items), nil
}

package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/model"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/table"
)

// deriveStatus recomputes the rollup fields from the stored episode set and
// persists them. Runs after every reconcile inside the same transaction so
// readers never observe a stale rollup.
func (ing *Ingestor) deriveStatus(ctx context.Context, store storage.Storage, seriesID int64) error {
	series, err := store.GetSeries(ctx, table.Series.ID.EQ(sqlite.Int32(int32(seriesID))))
	if err != nil {
		return fmt.Errorf("loading series %d for rollup: %w", seriesID, err)
	}

	episodes, err := store.ListEpisodes(ctx, table.Episode.SeriesID.EQ(sqlite.Int32(int32(seriesID))))
	if err != nil {
		return fmt.Errorf("listing episodes for rollup: %w", err)
	}

	cutoff := ing.now().UTC().Add(-ing.updateWindow)
	count := countRecentlyPublished(episodes, cutoff)
	status := deriveUpdateStatus(episodes, series.Completed)

	if err := store.UpdateSeriesDerived(ctx, seriesID, count, status); err != nil {
		return fmt.Errorf("storing rollup for series %d: %w", seriesID, err)
	}
	return nil
}

func countRecentlyPublished(episodes []*model.Episode, cutoff time.Time) int32 {
	var count int32
	for _, ep := range episodes {
		if ep.Status != storage.EpisodeStatusPublished || ep.PublishedAt == nil {
			continue
		}
		if ep.PublishedAt.Before(cutoff) {
			continue
		}
		count++
	}
	return count
}

func deriveUpdateStatus(episodes []*model.Episode, completed bool) string {
	var max int32
	for _, ep := range episodes {
		if ep.EpisodeNumber > max {
			max = ep.EpisodeNumber
		}
	}
	if max == 0 {
		return "No episodes yet"
	}
	if completed {
		return fmt.Sprintf("All %d episodes", max)
	}
	return fmt.Sprintf("Updated to episode %d", max)
}

// Progress is the read-side view of a series' ingest state.
type Progress struct {
	ExternalID       string `json:"externalId"`
	SeriesID         int64  `json:"seriesId"`
	ShortID          string `json:"shortId"`
	UpdateCount      int32  `json:"updateCount"`
	UpdateStatus     string `json:"updateStatus"`
	EpisodeCount     int    `json:"episodeCount"`
	Completed        bool   `json:"completed"`
	PlayCountDisplay string `json:"playCountDisplay"`
}

func (ing *Ingestor) Progress(ctx context.Context, externalID string) (Progress, error) {
	var out Progress
	err := ing.storage.Transaction(ctx, func(store storage.Storage) error {
		series, err := store.GetSeries(ctx, table.Series.ExternalID.EQ(sqlite.String(externalID)))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrSeriesNotFound
			}
			return fmt.Errorf("looking up series %q: %w", externalID, err)
		}

		episodes, err := store.ListEpisodes(ctx, table.Episode.SeriesID.EQ(sqlite.Int32(series.ID)))
		if err != nil {
			return fmt.Errorf("listing episodes: %w", err)
		}

		out = Progress{
			ExternalID:       series.ExternalID,
			SeriesID:         int64(series.ID),
			ShortID:          series.ShortID,
			UpdateCount:      series.UpdateCount,
			UpdateStatus:     series.UpdateStatus,
			EpisodeCount:     len(episodes),
			Completed:        series.Completed,
			PlayCountDisplay: humanize.Comma(series.PlayCount),
		}
		return nil
	})
	if err != nil {
		return Progress{}, err
	}
	return out, nil
}

package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/oapi-codegen/nullable"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/model"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/table"
)

// IngestSeries upserts one create-shaped record. The record is matched to a
// stored series by external id; a miss creates, a hit overwrites every
// record-carried field and reconciles the nested collections. The whole
// record lands in a single transaction.
func (ing *Ingestor) IngestSeries(ctx context.Context, rec SeriesRecord) (Item, error) {
	if err := ing.validateRecord(rec); err != nil {
		return Item{}, err
	}

	unlock := ing.locks.Lock(rec.ExternalID)
	defer unlock()

	var item Item
	err := ing.storage.Transaction(ctx, func(store storage.Storage) error {
		tax, err := resolveTaxonomy(ctx, store, rec)
		if err != nil {
			return err
		}
		if err := checkCategory(ctx, store, rec.CategoryID); err != nil {
			return err
		}

		releaseDate, err := time.Parse(dateLayout, rec.ReleaseDate)
		if err != nil {
			return fieldErrorf("releaseDate", "must be a date formatted as %s", dateLayout)
		}

		existing, err := store.GetSeries(ctx, table.Series.ExternalID.EQ(sqlite.String(rec.ExternalID)))
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("looking up series %q: %w", rec.ExternalID, err)
		}

		series := model.Series{
			ExternalID:       rec.ExternalID,
			Title:            rec.Title,
			Description:      rec.Description,
			CoverURL:         rec.CoverURL,
			CategoryID:       int32(rec.CategoryID),
			Status:           rec.Status,
			ReleaseDate:      &releaseDate,
			Completed:        rec.Completed,
			Score:            rec.Score,
			PlayCount:        rec.PlayCount,
			Starring:         rec.Starring,
			Actors:           rec.Actors,
			Director:         rec.Director,
			RegionOptionID:   tax.regionID,
			LanguageOptionID: tax.languageID,
			StatusOptionID:   tax.statusID,
			YearOptionID:     tax.yearID,
		}
		var seriesID int64
		action := ActionUpdated

		if existing == nil {
			if series.Status == "" {
				series.Status = storage.SeriesStatusActive
			}
			series.ShortID = ing.keys.ShortID()
			seriesID, err = store.CreateSeries(ctx, series)
			if err != nil {
				return fmt.Errorf("creating series %q: %w", rec.ExternalID, err)
			}
			series.ID = int32(seriesID)
			action = ActionCreated
		} else {
			// an omitted status keeps the stored one, so a full resubmission
			// cannot silently resurrect a soft-deleted series
			if series.Status == "" {
				series.Status = existing.Status
			}
			// identity and derived fields survive the overwrite
			series.ID = existing.ID
			series.ShortID = existing.ShortID
			series.UpdateCount = existing.UpdateCount
			series.UpdateStatus = existing.UpdateStatus
			series.CreatedAt = existing.CreatedAt
			seriesID = int64(existing.ID)
			if err := store.UpdateSeries(ctx, series); err != nil {
				return fmt.Errorf("updating series %q: %w", rec.ExternalID, err)
			}
		}

		if rec.ReplaceGenres {
			if err := store.DeleteSeriesGenres(ctx, seriesID); err != nil {
				return fmt.Errorf("clearing genres: %w", err)
			}
		}
		if err := store.AddSeriesGenres(ctx, seriesID, tax.genreIDs); err != nil {
			return fmt.Errorf("linking genres: %w", err)
		}

		changes := changesFromRecord(rec.Episodes)
		opts := reconcileOptions{
			removeMissingEpisodes: rec.RemoveMissingEpisodes,
			removeMissingURLs:     rec.RemoveMissingUrls,
		}
		if err := ing.reconcileEpisodes(ctx, store, seriesID, changes, opts); err != nil {
			return err
		}

		if err := ing.deriveStatus(ctx, store, seriesID); err != nil {
			return err
		}

		item = Item{
			SeriesID:   seriesID,
			ShortID:    series.ShortID,
			ExternalID: rec.ExternalID,
			Action:     action,
		}
		return nil
	})
	if err != nil {
		return Item{}, err
	}
	return item, nil
}

// UpdateSeries applies an update-shaped record to an existing series. Unset
// fields are untouched, nulls clear where clearing is legal, and nested
// collections reconcile by business key. A missing series is the caller's
// error, not a create.
func (ing *Ingestor) UpdateSeries(ctx context.Context, rec SeriesUpdateRecord) (Item, error) {
	if err := ing.validateUpdateRecord(rec); err != nil {
		return Item{}, err
	}

	unlock := ing.locks.Lock(rec.ExternalID)
	defer unlock()

	var item Item
	err := ing.storage.Transaction(ctx, func(store storage.Storage) error {
		existing, err := store.GetSeries(ctx, table.Series.ExternalID.EQ(sqlite.String(rec.ExternalID)))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrSeriesNotFound
			}
			return fmt.Errorf("looking up series %q: %w", rec.ExternalID, err)
		}

		series := *existing
		if err := ing.applySeriesPatch(ctx, store, &series, rec); err != nil {
			return err
		}
		if err := store.UpdateSeries(ctx, series); err != nil {
			return fmt.Errorf("updating series %q: %w", rec.ExternalID, err)
		}

		if err := ing.applyGenrePatch(ctx, store, int64(series.ID), rec); err != nil {
			return err
		}

		if len(rec.Episodes) > 0 || rec.RemoveMissingEpisodes {
			changes := changesFromUpdateRecord(rec.Episodes)
			opts := reconcileOptions{
				removeMissingEpisodes: rec.RemoveMissingEpisodes,
				removeMissingURLs:     rec.RemoveMissingUrls,
			}
			if err := ing.reconcileEpisodes(ctx, store, int64(series.ID), changes, opts); err != nil {
				return err
			}
		}

		if err := ing.deriveStatus(ctx, store, int64(series.ID)); err != nil {
			return err
		}

		item = Item{
			SeriesID:   int64(series.ID),
			ShortID:    series.ShortID,
			ExternalID: rec.ExternalID,
			Action:     ActionUpdated,
		}
		return nil
	})
	if err != nil {
		return Item{}, err
	}
	return item, nil
}

func (ing *Ingestor) applySeriesPatch(ctx context.Context, store storage.Storage, series *model.Series, rec SeriesUpdateRecord) error {
	if v, ok := value(rec.Title); ok {
		series.Title = v
	}
	if v, ok := value(rec.Description); ok {
		series.Description = v
	}
	if isNull(rec.Description) {
		series.Description = ""
	}
	if v, ok := value(rec.CoverURL); ok {
		series.CoverURL = v
	}
	if v, ok := value(rec.CategoryID); ok {
		if err := checkCategory(ctx, store, v); err != nil {
			return err
		}
		series.CategoryID = int32(v)
	}
	if v, ok := value(rec.Status); ok {
		series.Status = v
	}
	if v, ok := value(rec.ReleaseDate); ok {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return fieldErrorf("releaseDate", "must be a date formatted as %s", dateLayout)
		}
		series.ReleaseDate = &t
	}
	if isNull(rec.ReleaseDate) {
		series.ReleaseDate = nil
	}
	if v, ok := value(rec.Completed); ok {
		series.Completed = v
	}
	if v, ok := value(rec.Score); ok {
		series.Score = v
	}
	if v, ok := value(rec.PlayCount); ok {
		series.PlayCount = v
	}
	if v, ok := value(rec.Starring); ok {
		series.Starring = v
	}
	if isNull(rec.Starring) {
		series.Starring = ""
	}
	if v, ok := value(rec.Actors); ok {
		series.Actors = v
	}
	if isNull(rec.Actors) {
		series.Actors = ""
	}
	if v, ok := value(rec.Director); ok {
		series.Director = v
	}
	if isNull(rec.Director) {
		series.Director = ""
	}

	for _, opt := range []struct {
		field      string
		optionType string
		name       nullable.Nullable[string]
		dest       *int32
	}{
		{"regionOptionName", storage.OptionTypeRegion, rec.RegionOptionName, &series.RegionOptionID},
		{"languageOptionName", storage.OptionTypeLanguage, rec.LanguageOptionName, &series.LanguageOptionID},
		{"statusOptionName", storage.OptionTypeStatus, rec.StatusOptionName, &series.StatusOptionID},
		{"yearOptionName", storage.OptionTypeYear, rec.YearOptionName, &series.YearOptionID},
	} {
		name, ok := value(opt.name)
		if !ok {
			continue
		}
		id, err := resolveOption(ctx, store, opt.optionType, name, opt.field)
		if err != nil {
			return err
		}
		*opt.dest = id
	}

	return nil
}

// applyGenrePatch handles the tri-state genre list: unset leaves links alone,
// null clears them all, and a list resolves and links (replacing when asked).
func (ing *Ingestor) applyGenrePatch(ctx context.Context, store storage.Storage, seriesID int64, rec SeriesUpdateRecord) error {
	if isNull(rec.GenreOptionNames) {
		if err := store.DeleteSeriesGenres(ctx, seriesID); err != nil {
			return fmt.Errorf("clearing genres: %w", err)
		}
		return nil
	}

	names, ok := value(rec.GenreOptionNames)
	if !ok {
		return nil
	}

	ids := make([]int32, 0, len(names))
	for i, name := range names {
		id, err := resolveOption(ctx, store, storage.OptionTypeGenre, name, fmt.Sprintf("genreOptionNames[%d]", i))
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	if rec.ReplaceGenres {
		if err := store.DeleteSeriesGenres(ctx, seriesID); err != nil {
			return fmt.Errorf("clearing genres: %w", err)
		}
	}
	if err := store.AddSeriesGenres(ctx, seriesID, ids); err != nil {
		return fmt.Errorf("linking genres: %w", err)
	}
	return nil
}

func checkCategory(ctx context.Context, store storage.CategoryStorage, id int64) error {
	if _, err := store.GetCategory(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &UnresolvedReferenceError{Field: "categoryId", Kind: "category", Name: fmt.Sprintf("%d", id)}
		}
		return fmt.Errorf("looking up category %d: %w", id, err)
	}
	return nil
}

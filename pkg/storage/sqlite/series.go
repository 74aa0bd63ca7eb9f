package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/model"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/table"
)

// CreateSeries stores a new series in the database
func (s *SQLite) CreateSeries(ctx context.Context, series model.Series) (int64, error) {
	insertColumns := table.Series.MutableColumns.
		Except(table.Series.CreatedAt, table.Series.UpdatedAt)

	stmt := table.Series.
		INSERT(insertColumns).
		MODEL(series).
		RETURNING(table.Series.ID)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create series: %w", err)
	}

	return result.LastInsertId()
}

// UpdateSeries overwrites all mutable columns of a series by id
func (s *SQLite) UpdateSeries(ctx context.Context, series model.Series) error {
	series.UpdatedAt = time.Now().UTC()

	updateColumns := table.Series.MutableColumns.
		Except(table.Series.CreatedAt)

	stmt := table.Series.
		UPDATE(updateColumns).
		MODEL(series).
		WHERE(table.Series.ID.EQ(sqlite.Int32(series.ID)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update series: %w", err)
	}

	return nil
}

// UpdateSeriesDerived stores the recomputed update-count and update-status
// of a series. These two columns are only ever written here.
func (s *SQLite) UpdateSeriesDerived(ctx context.Context, id int64, updateCount int32, updateStatus string) error {
	stmt := table.Series.
		UPDATE().
		SET(
			table.Series.UpdateCount.SET(sqlite.Int32(updateCount)),
			table.Series.UpdateStatus.SET(sqlite.String(updateStatus)),
		).
		WHERE(table.Series.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update series derived fields: %w", err)
	}

	return nil
}

// GetSeries looks for a series given a where condition
func (s *SQLite) GetSeries(ctx context.Context, where sqlite.BoolExpression) (*model.Series, error) {
	stmt := table.Series.
		SELECT(table.Series.AllColumns).
		FROM(table.Series).
		WHERE(where)

	var series model.Series
	err := stmt.QueryContext(ctx, s.dbx, &series)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get series: %w", err)
	}

	return &series, nil
}

// ListSeries lists all series
func (s *SQLite) ListSeries(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Series, error) {
	stmt := table.Series.
		SELECT(table.Series.AllColumns).
		FROM(table.Series).
		ORDER_BY(table.Series.ID.ASC())

	for _, w := range where {
		stmt = stmt.WHERE(w)
	}

	series := make([]*model.Series, 0)
	err := stmt.QueryContext(ctx, s.dbx, &series)
	if err != nil {
		return nil, fmt.Errorf("failed to list series: %w", err)
	}

	return series, nil
}

// AddSeriesGenres links genre options to a series, ignoring links that
// already exist
func (s *SQLite) AddSeriesGenres(ctx context.Context, seriesID int64, optionIDs []int32) error {
	if len(optionIDs) == 0 {
		return nil
	}

	genres := make([]model.SeriesGenre, 0, len(optionIDs))
	for _, optionID := range optionIDs {
		genres = append(genres, model.SeriesGenre{
			SeriesID: int32(seriesID),
			OptionID: optionID,
		})
	}

	stmt := table.SeriesGenre.
		INSERT(table.SeriesGenre.AllColumns).
		MODELS(genres).
		ON_CONFLICT(table.SeriesGenre.SeriesID, table.SeriesGenre.OptionID).
		DO_NOTHING()

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to add series genres: %w", err)
	}

	return nil
}

// DeleteSeriesGenres removes all genre links for a series
func (s *SQLite) DeleteSeriesGenres(ctx context.Context, seriesID int64) error {
	stmt := table.SeriesGenre.
		DELETE().
		WHERE(table.SeriesGenre.SeriesID.EQ(sqlite.Int64(seriesID)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete series genres: %w", err)
	}

	return nil
}

// ListSeriesGenres lists the genre options linked to a series
func (s *SQLite) ListSeriesGenres(ctx context.Context, seriesID int64) ([]*model.TaxonomyOption, error) {
	stmt := sqlite.
		SELECT(table.TaxonomyOption.AllColumns).
		FROM(
			table.SeriesGenre.
				INNER_JOIN(
					table.TaxonomyOption,
					table.SeriesGenre.OptionID.EQ(table.TaxonomyOption.ID)),
		).
		WHERE(table.SeriesGenre.SeriesID.EQ(sqlite.Int64(seriesID))).
		ORDER_BY(table.TaxonomyOption.ID.ASC())

	options := make([]*model.TaxonomyOption, 0)
	err := stmt.QueryContext(ctx, s.dbx, &options)
	if err != nil {
		return nil, fmt.Errorf("failed to list series genres: %w", err)
	}

	return options, nil
}

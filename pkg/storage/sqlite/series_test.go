package sqlite

import (
	"context"
	"testing"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/table"
)

func TestSeriesStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	create := testSeries("ext-001")
	id, err := store.CreateSeries(ctx, create)
	require.Nil(t, err)
	assert.NotZero(t, id)

	got, err := store.GetSeries(ctx, table.Series.ExternalID.EQ(sqlite.String("ext-001")))
	require.Nil(t, err)
	assert.Equal(t, create.Title, got.Title)
	assert.Equal(t, create.ShortID, got.ShortID)
	assert.NotEmpty(t, got.CreatedAt)

	got.Title = "Renamed"
	got.Score = 9.1
	err = store.UpdateSeries(ctx, *got)
	assert.Nil(t, err)

	updated, err := store.GetSeries(ctx, table.Series.ID.EQ(sqlite.Int32(got.ID)))
	require.Nil(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, 9.1, updated.Score)

	_, err = store.GetSeries(ctx, table.Series.ExternalID.EQ(sqlite.String("missing")))
	assert.ErrorIs(t, err, storage.ErrNotFound)

	series, err := store.ListSeries(ctx)
	assert.Nil(t, err)
	assert.Len(t, series, 1)
}

func TestSeriesDerivedFields(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	id, err := store.CreateSeries(ctx, testSeries("ext-derived"))
	require.Nil(t, err)

	err = store.UpdateSeriesDerived(ctx, id, 3, "Updated to episode 12")
	assert.Nil(t, err)

	got, err := store.GetSeries(ctx, table.Series.ExternalID.EQ(sqlite.String("ext-derived")))
	require.Nil(t, err)
	assert.Equal(t, int32(3), got.UpdateCount)
	assert.Equal(t, "Updated to episode 12", got.UpdateStatus)
}

func TestSeriesGenres(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	id, err := store.CreateSeries(ctx, testSeries("ext-genres"))
	require.Nil(t, err)

	romance, err := store.GetTaxonomyOption(ctx, storage.OptionTypeGenre, "romance")
	require.Nil(t, err)
	urban, err := store.GetTaxonomyOption(ctx, storage.OptionTypeGenre, "urban")
	require.Nil(t, err)

	err = store.AddSeriesGenres(ctx, id, []int32{romance.ID, urban.ID})
	assert.Nil(t, err)

	// linking again is a no-op
	err = store.AddSeriesGenres(ctx, id, []int32{romance.ID})
	assert.Nil(t, err)

	genres, err := store.ListSeriesGenres(ctx, id)
	assert.Nil(t, err)
	assert.Len(t, genres, 2)

	err = store.DeleteSeriesGenres(ctx, id)
	assert.Nil(t, err)

	genres, err = store.ListSeriesGenres(ctx, id)
	assert.Nil(t, err)
	assert.Empty(t, genres)
}

package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/model"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/table"
)

func TestEpisodeStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	seriesID, err := store.CreateSeries(ctx, testSeries("ext-episodes"))
	require.Nil(t, err)

	published := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	create := model.Episode{
		SeriesID:      int32(seriesID),
		EpisodeNumber: 1,
		Title:         "Pilot",
		Duration:      95,
		Status:        storage.EpisodeStatusPublished,
		Vertical:      true,
		ShortID:       "ep-short-1",
		AccessKey:     "ep-key-1",
		PublishedAt:   &published,
	}
	id, err := store.CreateEpisode(ctx, create)
	require.Nil(t, err)
	assert.NotZero(t, id)

	got, err := store.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int64(id)))
	require.Nil(t, err)
	assert.Equal(t, create.Title, got.Title)
	assert.Equal(t, create.Status, got.Status)
	require.NotNil(t, got.PublishedAt)
	assert.True(t, got.PublishedAt.Equal(published))

	got.Status = storage.EpisodeStatusHidden
	err = store.UpdateEpisode(ctx, *got)
	assert.Nil(t, err)

	updated, err := store.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int64(id)))
	require.Nil(t, err)
	assert.Equal(t, storage.EpisodeStatusHidden, updated.Status)

	err = store.DeleteEpisode(ctx, id)
	assert.Nil(t, err)

	episodes, err := store.ListEpisodes(ctx, table.Episode.SeriesID.EQ(sqlite.Int32(int32(seriesID))))
	assert.Nil(t, err)
	assert.Empty(t, episodes)
}

func TestListEpisodesOrdersByNumber(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	seriesID, err := store.CreateSeries(ctx, testSeries("ext-order"))
	require.Nil(t, err)

	for _, n := range []int32{3, 1, 2} {
		_, err := store.CreateEpisode(ctx, model.Episode{
			SeriesID:      int32(seriesID),
			EpisodeNumber: n,
			Duration:      60,
			Status:        storage.EpisodeStatusDraft,
			ShortID:       "ep-short-" + string(rune('0'+n)),
			AccessKey:     "ep-key-" + string(rune('0'+n)),
		})
		require.Nil(t, err)
	}

	episodes, err := store.ListEpisodes(ctx, table.Episode.SeriesID.EQ(sqlite.Int32(int32(seriesID))))
	require.Nil(t, err)
	require.Len(t, episodes, 3)
	for i, ep := range episodes {
		assert.Equal(t, int32(i+1), ep.EpisodeNumber)
	}
}

func TestDeleteEpisodeCascadesURLs(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	seriesID, err := store.CreateSeries(ctx, testSeries("ext-cascade"))
	require.Nil(t, err)

	episodeID, err := store.CreateEpisode(ctx, model.Episode{
		SeriesID:      int32(seriesID),
		EpisodeNumber: 1,
		Duration:      60,
		Status:        storage.EpisodeStatusPublished,
		ShortID:       "ep-short-c",
		AccessKey:     "ep-key-c",
	})
	require.Nil(t, err)

	_, err = store.CreateEpisodeURL(ctx, model.EpisodeURL{
		EpisodeID: int32(episodeID),
		Quality:   "720p",
		OriginURL: "https://origin.example.com/1",
		CdnURL:    "https://cdn.example.com/1",
		SourceURL: "https://src.example.com/1",
		AccessKey: "url-key-c",
	})
	require.Nil(t, err)

	err = store.DeleteEpisode(ctx, episodeID)
	require.Nil(t, err)

	urls, err := store.ListEpisodeURLs(ctx, table.EpisodeURL.EpisodeID.EQ(sqlite.Int32(int32(episodeID))))
	assert.Nil(t, err)
	assert.Empty(t, urls)
}

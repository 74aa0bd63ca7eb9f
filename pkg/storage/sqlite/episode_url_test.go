package sqlite

import (
	"context"
	"testing"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/model"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/table"
)

func TestEpisodeURLStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	seriesID, err := store.CreateSeries(ctx, testSeries("ext-urls"))
	require.Nil(t, err)

	episodeID, err := store.CreateEpisode(ctx, model.Episode{
		SeriesID:      int32(seriesID),
		EpisodeNumber: 1,
		Duration:      60,
		Status:        storage.EpisodeStatusPublished,
		ShortID:       "ep-short-u",
		AccessKey:     "ep-key-u",
	})
	require.Nil(t, err)

	subtitle := "https://cdn.example.com/sub.vtt"
	create := model.EpisodeURL{
		EpisodeID:   int32(episodeID),
		Quality:     "1080p",
		OriginURL:   "https://origin.example.com/hd",
		CdnURL:      "https://cdn.example.com/hd",
		SourceURL:   "https://src.example.com/hd",
		SubtitleURL: &subtitle,
		AccessKey:   "url-key-u",
	}
	id, err := store.CreateEpisodeURL(ctx, create)
	require.Nil(t, err)
	assert.NotZero(t, id)

	urls, err := store.ListEpisodeURLs(ctx, table.EpisodeURL.EpisodeID.EQ(sqlite.Int32(int32(episodeID))))
	require.Nil(t, err)
	require.Len(t, urls, 1)
	got := urls[0]
	assert.Equal(t, create.Quality, got.Quality)
	require.NotNil(t, got.SubtitleURL)
	assert.Equal(t, subtitle, *got.SubtitleURL)

	got.CdnURL = "https://cdn2.example.com/hd"
	got.SubtitleURL = nil
	err = store.UpdateEpisodeURL(ctx, *got)
	assert.Nil(t, err)

	urls, err = store.ListEpisodeURLs(ctx, table.EpisodeURL.ID.EQ(sqlite.Int32(got.ID)))
	require.Nil(t, err)
	require.Len(t, urls, 1)
	assert.Equal(t, "https://cdn2.example.com/hd", urls[0].CdnURL)
	assert.Nil(t, urls[0].SubtitleURL)

	err = store.DeleteEpisodeURL(ctx, int64(got.ID))
	assert.Nil(t, err)

	urls, err = store.ListEpisodeURLs(ctx, table.EpisodeURL.EpisodeID.EQ(sqlite.Int32(int32(episodeID))))
	assert.Nil(t, err)
	assert.Empty(t, urls)
}

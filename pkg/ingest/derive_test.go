package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/model"
)

func TestCountRecentlyPublished(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-24 * time.Hour)

	recent := now.Add(-time.Hour)
	stale := now.Add(-48 * time.Hour)

	episodes := []*model.Episode{
		{EpisodeNumber: 1, Status: storage.EpisodeStatusPublished, PublishedAt: &recent},
		{EpisodeNumber: 2, Status: storage.EpisodeStatusPublished, PublishedAt: &stale},
		{EpisodeNumber: 3, Status: storage.EpisodeStatusHidden, PublishedAt: &recent},
		{EpisodeNumber: 4, Status: storage.EpisodeStatusPublished, PublishedAt: nil},
		{EpisodeNumber: 5, Status: storage.EpisodeStatusPublished, PublishedAt: &recent},
	}

	assert.Equal(t, int32(2), countRecentlyPublished(episodes, cutoff))
	assert.Equal(t, int32(0), countRecentlyPublished(nil, cutoff))
}

func TestDeriveUpdateStatus(t *testing.T) {
	episodes := []*model.Episode{
		{EpisodeNumber: 2},
		{EpisodeNumber: 12},
		{EpisodeNumber: 7},
	}

	assert.Equal(t, "Updated to episode 12", deriveUpdateStatus(episodes, false))
	assert.Equal(t, "All 12 episodes", deriveUpdateStatus(episodes, true))
	assert.Equal(t, "No episodes yet", deriveUpdateStatus(nil, false))
	assert.Equal(t, "No episodes yet", deriveUpdateStatus(nil, true))
}

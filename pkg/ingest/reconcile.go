package ingest

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/oapi-codegen/nullable"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/model"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/table"
)

type reconcileOptions struct {
	removeMissingEpisodes bool
	removeMissingURLs     bool
}

// episodeChange is the normalized form both record shapes reduce to before
// reconciliation. The index is the record position, kept for error paths.
type episodeChange struct {
	index  int
	number int32

	title    nullable.Nullable[string]
	duration nullable.Nullable[int32]
	status   nullable.Nullable[string]
	vertical nullable.Nullable[bool]

	urls          []urlChange
	urlsSpecified bool
}

type urlChange struct {
	index   int
	quality string

	origin   nullable.Nullable[string]
	cdn      nullable.Nullable[string]
	source   nullable.Nullable[string]
	subtitle nullable.Nullable[string]
}

func changesFromRecord(episodes []EpisodeRecord) []episodeChange {
	changes := make([]episodeChange, 0, len(episodes))
	for i, ep := range episodes {
		change := episodeChange{
			index:         i,
			number:        ep.EpisodeNumber,
			title:         nullable.NewNullableWithValue(ep.Title),
			duration:      nullable.NewNullableWithValue(ep.Duration),
			status:        nullable.NewNullableWithValue(ep.Status),
			vertical:      nullable.NewNullableWithValue(ep.Vertical),
			urlsSpecified: true,
		}
		for j, u := range ep.Urls {
			uc := urlChange{
				index:   j,
				quality: u.Quality,
				origin:  nullable.NewNullableWithValue(u.OriginURL),
				cdn:     nullable.NewNullableWithValue(u.CdnURL),
				source:  nullable.NewNullableWithValue(u.SourceURL),
			}
			if u.SubtitleURL != nil {
				uc.subtitle = nullable.NewNullableWithValue(*u.SubtitleURL)
			}
			change.urls = append(change.urls, uc)
		}
		changes = append(changes, change)
	}
	return changes
}

func changesFromUpdateRecord(episodes []EpisodeUpdateRecord) []episodeChange {
	changes := make([]episodeChange, 0, len(episodes))
	for i, ep := range episodes {
		change := episodeChange{
			index:         i,
			number:        ep.EpisodeNumber,
			title:         ep.Title,
			duration:      ep.Duration,
			status:        ep.Status,
			vertical:      ep.Vertical,
			urlsSpecified: len(ep.Urls) > 0,
		}
		for j, u := range ep.Urls {
			change.urls = append(change.urls, urlChange{
				index:    j,
				quality:  u.Quality,
				origin:   u.OriginURL,
				cdn:      u.CdnURL,
				source:   u.SourceURL,
				subtitle: u.SubtitleURL,
			})
		}
		changes = append(changes, change)
	}
	return changes
}

// reconcileEpisodes diffs the submitted episode set against storage by
// episode number. Submitted episodes create or patch; persisted episodes
// absent from the record are deleted only when removal was asked for.
func (ing *Ingestor) reconcileEpisodes(ctx context.Context, store storage.Storage, seriesID int64, changes []episodeChange, opts reconcileOptions) error {
	persisted, err := store.ListEpisodes(ctx, table.Episode.SeriesID.EQ(sqlite.Int32(int32(seriesID))))
	if err != nil {
		return fmt.Errorf("listing episodes: %w", err)
	}

	byNumber := make(map[int32]*model.Episode, len(persisted))
	for _, ep := range persisted {
		byNumber[ep.EpisodeNumber] = ep
	}

	submitted := make(map[int32]bool, len(changes))
	for _, change := range changes {
		submitted[change.number] = true

		existing := byNumber[change.number]
		if existing == nil {
			if err := ing.createEpisode(ctx, store, seriesID, change); err != nil {
				return err
			}
			continue
		}
		if err := ing.patchEpisode(ctx, store, existing, change, opts); err != nil {
			return err
		}
	}

	if !opts.removeMissingEpisodes {
		return nil
	}
	for _, ep := range persisted {
		if submitted[ep.EpisodeNumber] {
			continue
		}
		// urls go with the episode via the cascade
		if err := store.DeleteEpisode(ctx, int64(ep.ID)); err != nil {
			return fmt.Errorf("deleting episode %d: %w", ep.EpisodeNumber, err)
		}
	}
	return nil
}

// createEpisode materializes a change with no stored counterpart. The update
// shape may omit fields, so the create-required ones are enforced here where
// the stored state is known.
func (ing *Ingestor) createEpisode(ctx context.Context, store storage.Storage, seriesID int64, change episodeChange) error {
	duration, ok := value(change.duration)
	if !ok {
		return fieldErrorf(fmt.Sprintf("episodes[%d].duration", change.index), "is required when creating an episode")
	}
	status, ok := value(change.status)
	if !ok {
		return fieldErrorf(fmt.Sprintf("episodes[%d].status", change.index), "is required when creating an episode")
	}
	if len(change.urls) == 0 {
		return fieldErrorf(fmt.Sprintf("episodes[%d].urls", change.index), "must contain at least 1 item(s) when creating an episode")
	}

	title, _ := value(change.title)
	vertical, _ := value(change.vertical)

	episode := model.Episode{
		SeriesID:      int32(seriesID),
		EpisodeNumber: change.number,
		Title:         title,
		Duration:      duration,
		Status:        status,
		Vertical:      vertical,
		ShortID:       ing.keys.ShortID(),
		AccessKey:     ing.keys.AccessKey(),
	}
	if status == storage.EpisodeStatusPublished {
		now := ing.now().UTC()
		episode.PublishedAt = &now
	}

	id, err := store.CreateEpisode(ctx, episode)
	if err != nil {
		return fmt.Errorf("creating episode %d: %w", change.number, err)
	}

	return ing.reconcileURLs(ctx, store, id, change, nil, false)
}

func (ing *Ingestor) patchEpisode(ctx context.Context, store storage.Storage, existing *model.Episode, change episodeChange, opts reconcileOptions) error {
	episode := *existing
	if v, ok := value(change.title); ok {
		episode.Title = v
	}
	if isNull(change.title) {
		episode.Title = ""
	}
	if v, ok := value(change.duration); ok {
		episode.Duration = v
	}
	if v, ok := value(change.status); ok {
		// stamp first publication, keep it across later transitions
		if v == storage.EpisodeStatusPublished && episode.Status != storage.EpisodeStatusPublished && episode.PublishedAt == nil {
			now := ing.now().UTC()
			episode.PublishedAt = &now
		}
		episode.Status = v
	}
	if v, ok := value(change.vertical); ok {
		episode.Vertical = v
	}

	if err := store.UpdateEpisode(ctx, episode); err != nil {
		return fmt.Errorf("updating episode %d: %w", change.number, err)
	}

	if !change.urlsSpecified {
		return nil
	}

	urls, err := store.ListEpisodeURLs(ctx, table.EpisodeURL.EpisodeID.EQ(sqlite.Int32(existing.ID)))
	if err != nil {
		return fmt.Errorf("listing urls for episode %d: %w", change.number, err)
	}
	return ing.reconcileURLs(ctx, store, int64(existing.ID), change, urls, opts.removeMissingURLs)
}

// reconcileURLs diffs a submitted url set against storage by quality label.
func (ing *Ingestor) reconcileURLs(ctx context.Context, store storage.Storage, episodeID int64, change episodeChange, persisted []*model.EpisodeURL, removeMissing bool) error {
	byQuality := make(map[string]*model.EpisodeURL, len(persisted))
	for _, u := range persisted {
		byQuality[u.Quality] = u
	}

	submitted := make(map[string]bool, len(change.urls))
	for _, uc := range change.urls {
		submitted[uc.quality] = true

		existing := byQuality[uc.quality]
		if existing == nil {
			if err := ing.createURL(ctx, store, episodeID, change.index, uc); err != nil {
				return err
			}
			continue
		}

		url := *existing
		if v, ok := value(uc.origin); ok {
			url.OriginURL = v
		}
		if v, ok := value(uc.cdn); ok {
			url.CdnURL = v
		}
		if v, ok := value(uc.source); ok {
			url.SourceURL = v
		}
		if v, ok := value(uc.subtitle); ok {
			url.SubtitleURL = &v
		}
		if isNull(uc.subtitle) {
			url.SubtitleURL = nil
		}
		if err := store.UpdateEpisodeURL(ctx, url); err != nil {
			return fmt.Errorf("updating %s url: %w", uc.quality, err)
		}
	}

	if !removeMissing {
		return nil
	}
	for _, u := range persisted {
		if submitted[u.Quality] {
			continue
		}
		if err := store.DeleteEpisodeURL(ctx, int64(u.ID)); err != nil {
			return fmt.Errorf("deleting %s url: %w", u.Quality, err)
		}
	}
	return nil
}

func (ing *Ingestor) createURL(ctx context.Context, store storage.Storage, episodeID int64, epIndex int, uc urlChange) error {
	path := func(field string) string {
		return fmt.Sprintf("episodes[%d].urls[%d].%s", epIndex, uc.index, field)
	}

	origin, ok := value(uc.origin)
	if !ok {
		return fieldErrorf(path("originUrl"), "is required when creating a url")
	}
	cdn, ok := value(uc.cdn)
	if !ok {
		return fieldErrorf(path("cdnUrl"), "is required when creating a url")
	}
	source, ok := value(uc.source)
	if !ok {
		return fieldErrorf(path("sourceUrl"), "is required when creating a url")
	}

	url := model.EpisodeURL{
		EpisodeID: int32(episodeID),
		Quality:   uc.quality,
		OriginURL: origin,
		CdnURL:    cdn,
		SourceURL: source,
		AccessKey: ing.keys.AccessKey(),
	}
	if v, ok := value(uc.subtitle); ok {
		url.SubtitleURL = &v
	}

	if _, err := store.CreateEpisodeURL(ctx, url); err != nil {
		return fmt.Errorf("creating %s url: %w", uc.quality, err)
	}
	return nil
}

package storage

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")

// Series lifecycle status values. A series is never hard-deleted by the
// ingest path; "deleted" is a status.
const (
	SeriesStatusActive  = "active"
	SeriesStatusDeleted = "deleted"
)

// Episode publication states.
const (
	EpisodeStatusPublished = "published"
	EpisodeStatusHidden    = "hidden"
	EpisodeStatusDraft     = "draft"
)

// Taxonomy option types.
const (
	OptionTypeRegion   = "region"
	OptionTypeLanguage = "language"
	OptionTypeStatus   = "status"
	OptionTypeYear     = "year"
	OptionTypeGenre    = "genre"
)

// Qualities is the closed set of playback quality labels.
var Qualities = []string{"360p", "480p", "720p", "1080p", "4K"}

type Storage interface {
	// Transaction runs fn against a store bound to a single database
	// transaction. The transaction commits when fn returns nil and rolls
	// back otherwise. Nested calls reuse the enclosing transaction.
	Transaction(ctx context.Context, fn func(Storage) error) error

	SeriesStorage
	EpisodeStorage
	EpisodeURLStorage
	TaxonomyStorage
	CategoryStorage
}

type SeriesStorage interface {
	CreateSeries(ctx context.Context, series model.Series) (int64, error)
	UpdateSeries(ctx context.Context, series model.Series) error
	UpdateSeriesDerived(ctx context.Context, id int64, updateCount int32, updateStatus string) error
	GetSeries(ctx context.Context, where sqlite.BoolExpression) (*model.Series, error)
	ListSeries(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Series, error)

	AddSeriesGenres(ctx context.Context, seriesID int64, optionIDs []int32) error
	DeleteSeriesGenres(ctx context.Context, seriesID int64) error
	ListSeriesGenres(ctx context.Context, seriesID int64) ([]*model.TaxonomyOption, error)
}

type EpisodeStorage interface {
	CreateEpisode(ctx context.Context, episode model.Episode) (int64, error)
	UpdateEpisode(ctx context.Context, episode model.Episode) error
	DeleteEpisode(ctx context.Context, id int64) error
	GetEpisode(ctx context.Context, where sqlite.BoolExpression) (*model.Episode, error)
	ListEpisodes(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Episode, error)
}

type EpisodeURLStorage interface {
	CreateEpisodeURL(ctx context.Context, url model.EpisodeURL) (int64, error)
	UpdateEpisodeURL(ctx context.Context, url model.EpisodeURL) error
	DeleteEpisodeURL(ctx context.Context, id int64) error
	ListEpisodeURLs(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.EpisodeURL, error)
}

type TaxonomyStorage interface {
	// GetTaxonomyOption looks up an option by type and case-folded name.
	GetTaxonomyOption(ctx context.Context, optionType, nameFold string) (*model.TaxonomyOption, error)
	ListTaxonomyOptions(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.TaxonomyOption, error)
	CreateTaxonomyOption(ctx context.Context, option model.TaxonomyOption) (int64, error)
}

type CategoryStorage interface {
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
}

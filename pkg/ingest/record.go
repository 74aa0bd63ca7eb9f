package ingest

import (
	"github.com/oapi-codegen/nullable"
)

// SeriesRecord is the create-shaped ingest record. The whole record is
// authoritative: resubmitting it overwrites every listed field, so a feed can
// safely resend its complete current truth for a series.
type SeriesRecord struct {
	ExternalID  string  `json:"externalId" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	CoverURL    string  `json:"coverUrl" validate:"required,url"`
	CategoryID  int64   `json:"categoryId" validate:"required,gt=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=active deleted"`
	ReleaseDate string  `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Completed   bool    `json:"completed"`
	Score       float64 `json:"score" validate:"gte=0,lte=10"`
	PlayCount   int64   `json:"playCount" validate:"gte=0"`
	Starring    string  `json:"starring"`
	Actors      string  `json:"actors"`
	Director    string  `json:"director"`

	RegionOptionName   string   `json:"regionOptionName" validate:"required"`
	LanguageOptionName string   `json:"languageOptionName" validate:"required"`
	StatusOptionName   string   `json:"statusOptionName" validate:"required"`
	YearOptionName     string   `json:"yearOptionName" validate:"required"`
	GenreOptionNames   []string `json:"genreOptionNames" validate:"omitempty,dive,required"`
	ReplaceGenres      bool     `json:"replaceGenres"`

	Episodes              []EpisodeRecord `json:"episodes" validate:"required,min=1,dive"`
	RemoveMissingEpisodes bool            `json:"removeMissingEpisodes"`
	RemoveMissingUrls     bool            `json:"removeMissingUrls"`
}

type EpisodeRecord struct {
	EpisodeNumber int32       `json:"episodeNumber" validate:"required,gte=1"`
	Title         string      `json:"title"`
	Duration      int32       `json:"duration" validate:"required,gt=0"`
	Status        string      `json:"status" validate:"required,oneof=published hidden draft"`
	Vertical      bool        `json:"vertical"`
	Urls          []URLRecord `json:"urls" validate:"required,min=1,dive"`
}

type URLRecord struct {
	Quality     string  `json:"quality" validate:"required,oneof=360p 480p 720p 1080p 4K"`
	OriginURL   string  `json:"originUrl" validate:"required,url"`
	CdnURL      string  `json:"cdnUrl" validate:"required,url"`
	SourceURL   string  `json:"sourceUrl" validate:"required,url"`
	SubtitleURL *string `json:"subtitleUrl" validate:"omitempty,url"`
}

// SeriesUpdateRecord is the update-shaped record: every field other than the
// external id is tri-state. Unset means no change, an explicit null clears
// the field where clearing is legal, and a value overwrites.
type SeriesUpdateRecord struct {
	ExternalID  string                     `json:"externalId"`
	Title       nullable.Nullable[string]  `json:"title,omitempty"`
	Description nullable.Nullable[string]  `json:"description,omitempty"`
	CoverURL    nullable.Nullable[string]  `json:"coverUrl,omitempty"`
	CategoryID  nullable.Nullable[int64]   `json:"categoryId,omitempty"`
	Status      nullable.Nullable[string]  `json:"status,omitempty"`
	ReleaseDate nullable.Nullable[string]  `json:"releaseDate,omitempty"`
	Completed   nullable.Nullable[bool]    `json:"completed,omitempty"`
	Score       nullable.Nullable[float64] `json:"score,omitempty"`
	PlayCount   nullable.Nullable[int64]   `json:"playCount,omitempty"`
	Starring    nullable.Nullable[string]  `json:"starring,omitempty"`
	Actors      nullable.Nullable[string]  `json:"actors,omitempty"`
	Director    nullable.Nullable[string]  `json:"director,omitempty"`

	RegionOptionName   nullable.Nullable[string]   `json:"regionOptionName,omitempty"`
	LanguageOptionName nullable.Nullable[string]   `json:"languageOptionName,omitempty"`
	StatusOptionName   nullable.Nullable[string]   `json:"statusOptionName,omitempty"`
	YearOptionName     nullable.Nullable[string]   `json:"yearOptionName,omitempty"`
	GenreOptionNames   nullable.Nullable[[]string] `json:"genreOptionNames,omitempty"`
	ReplaceGenres      bool                        `json:"replaceGenres"`

	Episodes              []EpisodeUpdateRecord `json:"episodes,omitempty"`
	RemoveMissingEpisodes bool                  `json:"removeMissingEpisodes"`
	RemoveMissingUrls     bool                  `json:"removeMissingUrls"`
}

type EpisodeUpdateRecord struct {
	EpisodeNumber int32                     `json:"episodeNumber"`
	Title         nullable.Nullable[string] `json:"title,omitempty"`
	Duration      nullable.Nullable[int32]  `json:"duration,omitempty"`
	Status        nullable.Nullable[string] `json:"status,omitempty"`
	Vertical      nullable.Nullable[bool]   `json:"vertical,omitempty"`
	Urls          []URLUpdateRecord         `json:"urls,omitempty"`
}

type URLUpdateRecord struct {
	Quality     string                    `json:"quality"`
	OriginURL   nullable.Nullable[string] `json:"originUrl,omitempty"`
	CdnURL      nullable.Nullable[string] `json:"cdnUrl,omitempty"`
	SourceURL   nullable.Nullable[string] `json:"sourceUrl,omitempty"`
	SubtitleURL nullable.Nullable[string] `json:"subtitleUrl,omitempty"`
}

// value unwraps a tri-state field, reporting ok only when the field was
// submitted with a non-null value.
func value[T any](n nullable.Nullable[T]) (T, bool) {
	if n.IsSpecified() && !n.IsNull() {
		return n.MustGet(), true
	}
	var zero T
	return zero, false
}

func isNull[T any](n nullable.Nullable[T]) bool {
	return n.IsSpecified() && n.IsNull()
}

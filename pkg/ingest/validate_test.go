package ingest

import (
	"testing"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord(externalID string) SeriesRecord {
	return SeriesRecord{
		ExternalID:         externalID,
		Title:              "Hidden Marriage",
		Description:        "A secret wedding unravels.",
		CoverURL:           "https://cdn.example.com/covers/1.jpg",
		CategoryID:         1,
		ReleaseDate:        "2025-01-15",
		Score:              8.7,
		PlayCount:          12000,
		RegionOptionName:   "Mainland",
		LanguageOptionName: "Mandarin",
		StatusOptionName:   "Airing",
		YearOptionName:     "2025",
		GenreOptionNames:   []string{"Romance", "Urban"},
		Episodes: []EpisodeRecord{
			{
				EpisodeNumber: 1,
				Title:         "The Contract",
				Duration:      95,
				Status:        "published",
				Vertical:      true,
				Urls: []URLRecord{
					{
						Quality:   "720p",
						OriginURL: "https://origin.example.com/1/720",
						CdnURL:    "https://cdn.example.com/1/720",
						SourceURL: "https://src.example.com/1/720",
					},
				},
			},
		},
	}
}

func testIngestor() *Ingestor {
	return &Ingestor{validate: newValidator()}
}

func TestValidateRecord(t *testing.T) {
	ing := testIngestor()

	t.Run("valid record passes", func(t *testing.T) {
		assert.Nil(t, ing.validateRecord(validRecord("ext-1")))
	})

	t.Run("missing required fields", func(t *testing.T) {
		rec := validRecord("ext-1")
		rec.ExternalID = ""
		rec.Title = ""

		err := ing.validateRecord(rec)
		ve := requireValidationError(t, err)
		assert.Contains(t, fields(ve), "externalId")
		assert.Contains(t, fields(ve), "title")
	})

	t.Run("nested field paths carry indexes", func(t *testing.T) {
		rec := validRecord("ext-1")
		rec.Episodes[0].Urls[0].Quality = "8K"

		err := ing.validateRecord(rec)
		ve := requireValidationError(t, err)
		assert.Contains(t, fields(ve), "episodes[0].urls[0].quality")
	})

	t.Run("score out of range", func(t *testing.T) {
		rec := validRecord("ext-1")
		rec.Score = 10.5

		err := ing.validateRecord(rec)
		ve := requireValidationError(t, err)
		assert.Contains(t, fields(ve), "score")
	})

	t.Run("bad release date", func(t *testing.T) {
		rec := validRecord("ext-1")
		rec.ReleaseDate = "15/01/2025"

		err := ing.validateRecord(rec)
		ve := requireValidationError(t, err)
		assert.Contains(t, fields(ve), "releaseDate")
	})

	t.Run("episodes required", func(t *testing.T) {
		rec := validRecord("ext-1")
		rec.Episodes = nil

		err := ing.validateRecord(rec)
		ve := requireValidationError(t, err)
		assert.Contains(t, fields(ve), "episodes")
	})

	t.Run("duplicate episode numbers", func(t *testing.T) {
		rec := validRecord("ext-1")
		rec.Episodes = append(rec.Episodes, rec.Episodes[0])

		err := ing.validateRecord(rec)
		ve := requireValidationError(t, err)
		assert.Contains(t, fields(ve), "episodes")
	})

	t.Run("duplicate url qualities", func(t *testing.T) {
		rec := validRecord("ext-1")
		rec.Episodes[0].Urls = append(rec.Episodes[0].Urls, rec.Episodes[0].Urls[0])

		err := ing.validateRecord(rec)
		ve := requireValidationError(t, err)
		assert.Contains(t, fields(ve), "episodes[0].urls")
	})
}

func TestValidateUpdateRecord(t *testing.T) {
	ing := testIngestor()

	t.Run("empty patch is valid", func(t *testing.T) {
		rec := SeriesUpdateRecord{ExternalID: "ext-1"}
		assert.Nil(t, ing.validateUpdateRecord(rec))
	})

	t.Run("external id required", func(t *testing.T) {
		err := ing.validateUpdateRecord(SeriesUpdateRecord{})
		ve := requireValidationError(t, err)
		assert.Contains(t, fields(ve), "externalId")
	})

	t.Run("null rejected on non-clearable fields", func(t *testing.T) {
		rec := SeriesUpdateRecord{ExternalID: "ext-1"}
		rec.Title.SetNull()
		rec.Score.SetNull()

		err := ing.validateUpdateRecord(rec)
		ve := requireValidationError(t, err)
		assert.Contains(t, fields(ve), "title")
		assert.Contains(t, fields(ve), "score")
	})

	t.Run("specified values still constrained", func(t *testing.T) {
		rec := SeriesUpdateRecord{ExternalID: "ext-1"}
		rec.Status = nullable.NewNullableWithValue("archived")
		rec.Score = nullable.NewNullableWithValue(11.0)
		rec.ReleaseDate = nullable.NewNullableWithValue("not-a-date")

		err := ing.validateUpdateRecord(rec)
		ve := requireValidationError(t, err)
		assert.Contains(t, fields(ve), "status")
		assert.Contains(t, fields(ve), "score")
		assert.Contains(t, fields(ve), "releaseDate")
	})

	t.Run("episode checks carry indexes", func(t *testing.T) {
		rec := SeriesUpdateRecord{ExternalID: "ext-1"}
		ep := EpisodeUpdateRecord{EpisodeNumber: 0}
		ep.Status = nullable.NewNullableWithValue("gone")
		rec.Episodes = []EpisodeUpdateRecord{ep}

		err := ing.validateUpdateRecord(rec)
		ve := requireValidationError(t, err)
		assert.Contains(t, fields(ve), "episodes[0].episodeNumber")
		assert.Contains(t, fields(ve), "episodes[0].status")
	})

	t.Run("malformed urls rejected", func(t *testing.T) {
		rec := SeriesUpdateRecord{ExternalID: "ext-1"}
		rec.CoverURL = nullable.NewNullableWithValue("not a url")

		u := URLUpdateRecord{Quality: "720p"}
		u.CdnURL = nullable.NewNullableWithValue("also not a url")
		u.SubtitleURL = nullable.NewNullableWithValue("nope")
		rec.Episodes = []EpisodeUpdateRecord{{
			EpisodeNumber: 1,
			Urls:          []URLUpdateRecord{u},
		}}

		err := ing.validateUpdateRecord(rec)
		ve := requireValidationError(t, err)
		assert.Contains(t, fields(ve), "coverUrl")
		assert.Contains(t, fields(ve), "episodes[0].urls[0].cdnUrl")
		assert.Contains(t, fields(ve), "episodes[0].urls[0].subtitleUrl")
	})

	t.Run("unknown quality rejected", func(t *testing.T) {
		rec := SeriesUpdateRecord{ExternalID: "ext-1"}
		rec.Episodes = []EpisodeUpdateRecord{{
			EpisodeNumber: 1,
			Urls:          []URLUpdateRecord{{Quality: "240p"}},
		}}

		err := ing.validateUpdateRecord(rec)
		ve := requireValidationError(t, err)
		assert.Contains(t, fields(ve), "episodes[0].urls[0].quality")
	})
}

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.NotNil(t, err)
	ve, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	require.NotEmpty(t, ve.Details)
	return ve
}

func fields(ve *ValidationError) []string {
	out := make([]string, 0, len(ve.Details))
	for _, d := range ve.Details {
		out = append(out, d.Field)
	}
	return out
}

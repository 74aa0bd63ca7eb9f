package ingest

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/nullable"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
)

const dateLayout = "2006-01-02"

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json field names so error paths match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(seriesRecordStructLevel, SeriesRecord{})
	v.RegisterStructValidation(episodeRecordStructLevel, EpisodeRecord{})

	return v
}

// duplicate episode numbers are a validation error, not last-write-wins
func seriesRecordStructLevel(sl validator.StructLevel) {
	rec := sl.Current().Interface().(SeriesRecord)

	seen := make(map[int32]bool, len(rec.Episodes))
	for _, ep := range rec.Episodes {
		if seen[ep.EpisodeNumber] {
			sl.ReportError(rec.Episodes, "episodes", "Episodes", "unique_episode_number", "")
			return
		}
		seen[ep.EpisodeNumber] = true
	}
}

func episodeRecordStructLevel(sl validator.StructLevel) {
	rec := sl.Current().Interface().(EpisodeRecord)

	seen := make(map[string]bool, len(rec.Urls))
	for _, u := range rec.Urls {
		if seen[u.Quality] {
			sl.ReportError(rec.Urls, "urls", "Urls", "unique_quality", "")
			return
		}
		seen[u.Quality] = true
	}
}

// validateRecord checks a create-shaped record, translating validator output
// into the field-path error report the envelope carries.
func (ing *Ingestor) validateRecord(rec SeriesRecord) error {
	err := ing.validate.Struct(rec)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:      fieldPath(fe.Namespace()),
			Constraint: constraintMessage(fe),
		})
	}

	return &ValidationError{Details: details}
}

// fieldPath strips the root struct name from a validator namespace, leaving
// "episodes[0].urls[1].quality" style paths.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "url":
		return "must be a valid url"
	case "datetime":
		return "must be a date formatted as " + dateLayout
	case "unique_episode_number":
		return "episode numbers must be unique within a record"
	case "unique_quality":
		return "url qualities must be unique within an episode"
	default:
		return fmt.Sprintf("failed constraint %s", fe.Tag())
	}
}

// validateUpdateRecord checks the update-shaped record. The tri-state
// wrappers can't carry struct tags usefully, so specified values are checked
// explicitly; the produced report has the same shape as the create path.
func (ing *Ingestor) validateUpdateRecord(rec SeriesUpdateRecord) error {
	var details []FieldError
	report := func(field, constraint string) {
		details = append(details, FieldError{Field: field, Constraint: constraint})
	}

	if rec.ExternalID == "" {
		report("externalId", "is required")
	}

	for _, f := range []struct {
		name string
		null bool
	}{
		{"title", isNull(rec.Title)},
		{"coverUrl", isNull(rec.CoverURL)},
		{"categoryId", isNull(rec.CategoryID)},
		{"status", isNull(rec.Status)},
		{"completed", isNull(rec.Completed)},
		{"score", isNull(rec.Score)},
		{"playCount", isNull(rec.PlayCount)},
		{"regionOptionName", isNull(rec.RegionOptionName)},
		{"languageOptionName", isNull(rec.LanguageOptionName)},
		{"statusOptionName", isNull(rec.StatusOptionName)},
		{"yearOptionName", isNull(rec.YearOptionName)},
	} {
		if f.null {
			report(f.name, "must not be null")
		}
	}

	if v, ok := value(rec.CoverURL); ok && ing.validate.Var(v, "url") != nil {
		report("coverUrl", "must be a valid url")
	}
	if v, ok := value(rec.Status); ok && v != storage.SeriesStatusActive && v != storage.SeriesStatusDeleted {
		report("status", "must be one of [active deleted]")
	}
	if v, ok := value(rec.Score); ok && (v < 0 || v > 10) {
		report("score", "must be between 0 and 10")
	}
	if v, ok := value(rec.PlayCount); ok && v < 0 {
		report("playCount", "must be at least 0")
	}
	if v, ok := value(rec.CategoryID); ok && v <= 0 {
		report("categoryId", "must be greater than 0")
	}
	if v, ok := value(rec.ReleaseDate); ok {
		if _, err := time.Parse(dateLayout, v); err != nil {
			report("releaseDate", "must be a date formatted as "+dateLayout)
		}
	}

	seen := make(map[int32]bool, len(rec.Episodes))
	for i, ep := range rec.Episodes {
		path := func(field string) string { return fmt.Sprintf("episodes[%d].%s", i, field) }

		if ep.EpisodeNumber < 1 {
			report(path("episodeNumber"), "must be at least 1")
		}
		if seen[ep.EpisodeNumber] {
			report(fmt.Sprintf("episodes[%d]", i), "episode numbers must be unique within a record")
		}
		seen[ep.EpisodeNumber] = true

		if isNull(ep.Title) {
			report(path("title"), "must not be null")
		}
		if isNull(ep.Duration) {
			report(path("duration"), "must not be null")
		}
		if v, ok := value(ep.Duration); ok && v <= 0 {
			report(path("duration"), "must be greater than 0")
		}
		if isNull(ep.Status) {
			report(path("status"), "must not be null")
		}
		if v, ok := value(ep.Status); ok && !validEpisodeStatus(v) {
			report(path("status"), "must be one of [published hidden draft]")
		}

		seenQuality := make(map[string]bool, len(ep.Urls))
		for j, u := range ep.Urls {
			urlPath := func(field string) string { return fmt.Sprintf("episodes[%d].urls[%d].%s", i, j, field) }

			if !validQuality(u.Quality) {
				report(urlPath("quality"), fmt.Sprintf("must be one of [%s]", strings.Join(storage.Qualities, " ")))
			}
			if seenQuality[u.Quality] {
				report(fmt.Sprintf("episodes[%d].urls[%d]", i, j), "url qualities must be unique within an episode")
			}
			seenQuality[u.Quality] = true

			for _, f := range []struct {
				name  string
				value nullable.Nullable[string]
			}{
				{"originUrl", u.OriginURL},
				{"cdnUrl", u.CdnURL},
				{"sourceUrl", u.SourceURL},
			} {
				if isNull(f.value) {
					report(urlPath(f.name), "must not be null")
				}
				if v, ok := value(f.value); ok && ing.validate.Var(v, "url") != nil {
					report(urlPath(f.name), "must be a valid url")
				}
			}
			if v, ok := value(u.SubtitleURL); ok && ing.validate.Var(v, "url") != nil {
				report(urlPath("subtitleUrl"), "must be a valid url")
			}
		}
	}

	if len(details) > 0 {
		return &ValidationError{Details: details}
	}

	return nil
}

func validEpisodeStatus(s string) bool {
	switch s {
	case storage.EpisodeStatusPublished, storage.EpisodeStatusHidden, storage.EpisodeStatusDraft:
		return true
	}
	return false
}

func validQuality(q string) bool {
	for _, known := range storage.Qualities {
		if q == known {
			return true
		}
	}
	return false
}

package ingest

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/cases"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
)

// foldName normalizes an option name for case-insensitive lookup. A fresh
// Caser each call since cases.Caser is not safe for concurrent use.
func foldName(name string) string {
	return cases.Fold().String(name)
}

type resolvedTaxonomy struct {
	regionID   int32
	languageID int32
	statusID   int32
	yearID     int32
	genreIDs   []int32
}

// resolveOption looks up one taxonomy option by type and folded name. Unknown
// names surface as unresolved references against the submitting field, not as
// storage errors.
func resolveOption(ctx context.Context, store storage.TaxonomyStorage, optionType, name, field string) (int32, error) {
	opt, err := store.GetTaxonomyOption(ctx, optionType, foldName(name))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, &UnresolvedReferenceError{Field: field, Kind: optionType, Name: name}
		}
		return 0, fmt.Errorf("resolving %s option: %w", optionType, err)
	}
	return opt.ID, nil
}

func resolveTaxonomy(ctx context.Context, store storage.TaxonomyStorage, rec SeriesRecord) (resolvedTaxonomy, error) {
	var out resolvedTaxonomy
	var err error

	if out.regionID, err = resolveOption(ctx, store, storage.OptionTypeRegion, rec.RegionOptionName, "regionOptionName"); err != nil {
		return out, err
	}
	if out.languageID, err = resolveOption(ctx, store, storage.OptionTypeLanguage, rec.LanguageOptionName, "languageOptionName"); err != nil {
		return out, err
	}
	if out.statusID, err = resolveOption(ctx, store, storage.OptionTypeStatus, rec.StatusOptionName, "statusOptionName"); err != nil {
		return out, err
	}
	if out.yearID, err = resolveOption(ctx, store, storage.OptionTypeYear, rec.YearOptionName, "yearOptionName"); err != nil {
		return out, err
	}

	for i, name := range rec.GenreOptionNames {
		id, err := resolveOption(ctx, store, storage.OptionTypeGenre, name, fmt.Sprintf("genreOptionNames[%d]", i))
		if err != nil {
			return out, err
		}
		out.genreIDs = append(out.genreIDs, id)
	}

	return out, nil
}

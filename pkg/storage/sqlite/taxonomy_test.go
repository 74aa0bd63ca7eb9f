package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/model"
)

func TestTaxonomyStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	opt, err := store.GetTaxonomyOption(ctx, storage.OptionTypeGenre, "romance")
	require.Nil(t, err)
	assert.Equal(t, "Romance", opt.Name)

	// lookup is by folded name only
	_, err = store.GetTaxonomyOption(ctx, storage.OptionTypeGenre, "Romance")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.GetTaxonomyOption(ctx, storage.OptionTypeRegion, "romance")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	id, err := store.CreateTaxonomyOption(ctx, model.TaxonomyOption{
		Type:     storage.OptionTypeGenre,
		Name:     "Thriller",
		NameFold: "thriller",
	})
	require.Nil(t, err)
	assert.NotZero(t, id)

	created, err := store.GetTaxonomyOption(ctx, storage.OptionTypeGenre, "thriller")
	require.Nil(t, err)
	assert.Equal(t, "Thriller", created.Name)
}

func TestCategoryStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	cat, err := store.GetCategory(ctx, 1)
	require.Nil(t, err)
	assert.Equal(t, "drama", cat.Name)

	_, err = store.GetCategory(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/mocks"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite/schema/gen/model"
)

func TestFoldName(t *testing.T) {
	assert.Equal(t, "mainland", foldName("MainLand"))
	assert.Equal(t, "hong kong", foldName("Hong Kong"))
	assert.Equal(t, "2024", foldName("2024"))
}

func TestResolveOption(t *testing.T) {
	ctx := context.Background()

	t.Run("folds the name before lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockTaxonomyStorage(ctrl)

		store.EXPECT().
			GetTaxonomyOption(ctx, storage.OptionTypeRegion, "mainland").
			Return(&model.TaxonomyOption{ID: 4, Type: storage.OptionTypeRegion, Name: "Mainland"}, nil)

		id, err := resolveOption(ctx, store, storage.OptionTypeRegion, "MAINLAND", "regionOptionName")
		assert.Nil(t, err)
		assert.Equal(t, int32(4), id)
	})

	t.Run("unknown name is an unresolved reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockTaxonomyStorage(ctrl)

		store.EXPECT().
			GetTaxonomyOption(ctx, storage.OptionTypeGenre, "atlantis").
			Return(nil, storage.ErrNotFound)

		_, err := resolveOption(ctx, store, storage.OptionTypeGenre, "Atlantis", "genreOptionNames[0]")
		require.NotNil(t, err)

		ur, ok := err.(*UnresolvedReferenceError)
		require.True(t, ok, "expected *UnresolvedReferenceError, got %T", err)
		assert.Equal(t, "genreOptionNames[0]", ur.Field)
		assert.Equal(t, storage.OptionTypeGenre, ur.Kind)
		assert.Equal(t, "Atlantis", ur.Name)
		assert.True(t, IsItemError(err))
	})

	t.Run("storage faults pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockTaxonomyStorage(ctrl)

		store.EXPECT().
			GetTaxonomyOption(ctx, storage.OptionTypeYear, "2024").
			Return(nil, assert.AnError)

		_, err := resolveOption(ctx, store, storage.OptionTypeYear, "2024", "yearOptionName")
		require.NotNil(t, err)
		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, IsItemError(err))
	})
}

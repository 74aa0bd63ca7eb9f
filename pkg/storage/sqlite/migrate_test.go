package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationVersion(t *testing.T) {
	store, err := New(":memory:")
	require.Nil(t, err)

	s, ok := store.(*SQLite)
	require.True(t, ok)

	version, dirty, err := s.GetMigrationVersion()
	assert.Nil(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(2), version)
}

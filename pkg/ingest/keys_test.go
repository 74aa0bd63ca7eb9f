package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDKeys(t *testing.T) {
	keys := uuidKeys{}

	t.Run("short ids are 11 chars from the url-safe alphabet", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			id := keys.ShortID()
			assert.Len(t, id, 11)
			for _, r := range id {
				assert.Contains(t, "0123456789abcdefghjkmnpqrstvwxyz", string(r))
			}
			assert.False(t, seen[id], "short id collision: %s", id)
			seen[id] = true
		}
	})

	t.Run("access keys are 32 hex chars", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			key := keys.AccessKey()
			assert.Len(t, key, 32)
			for _, r := range key {
				assert.Contains(t, "0123456789abcdef", string(r))
			}
			assert.False(t, seen[key], "access key collision: %s", key)
			seen[key] = true
		}
	})
}

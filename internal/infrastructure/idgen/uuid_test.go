package idgen

import (
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator(t *testing.T) {
	gen := New()

	ids := make([]string, 100)
	seen := make(map[string]struct{}, len(ids))
	for i := range ids {
		ids[i] = gen.Generate()
		parsed, err := uuid.Parse(ids[i])
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
		seen[ids[i]] = struct{}{}
	}

	assert.Len(t, seen, len(ids), "ID不应重复")
	assert.True(t, sort.StringsAreSorted(ids), "v7按生成顺序递增")
}

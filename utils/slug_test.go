package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomSlug(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		slug := RandomSlug()
		require.Len(t, slug, 10)

		_, err := hex.DecodeString(slug)
		require.NoError(t, err)

		require.False(t, seen[slug], "slug collision: %s", slug)
		seen[slug] = true
	}
}

// Package testutils provides utilities for testing, including Redis test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd35-sheet/internal/redis"
)

// CreateTestRedis returns a client together with its miniredis server so tests
// can inspect keys or fast-forward TTLs. Both are closed when the test ends.
func CreateTestRedis(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}

package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd35-sheet/internal/catalog"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Tordek Stonebeard"

// DefaultCatalog loads the embedded rules tables or fails the test
func DefaultCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err, "failed to load catalog")
	return cat
}

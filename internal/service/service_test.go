package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chesschain/chesschain/internal/database"
)

func loadCatalog(t *testing.T) Catalog {
	t.Helper()
	db, err := database.OpenCatalog(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	c, err := NewCatalogService(db).Load(context.Background())
	require.NoError(t, err)
	return c
}

func TestCatalogLoad(t *testing.T) {
	t.Parallel()
	c := loadCatalog(t)

	require.Len(t, c.Offers, 3)
	require.NotNil(t, c.Highlight)
	require.Len(t, c.Openings, 3)
	require.Equal(t, "0x93A1...bE7", c.Wallet.PlaceholderAddress)
	require.Len(t, c.Deposits, 3)
	require.Equal(t, 125.0, c.Swap.Rate)
	require.Equal(t, 0.0004, c.Swap.NetworkFee)
	require.Len(t, c.Liquidity, 3)
	require.Equal(t, 12, c.Security.RiskScore)
	require.Len(t, c.Security.Checks, 4)
}

func TestCatalogLoadFailsWithoutSwapPair(t *testing.T) {
	t.Parallel()
	db, err := database.OpenCatalog(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec("DELETE FROM liquidity_quotes; DELETE FROM swap_pairs")
	require.NoError(t, err)

	_, err = NewCatalogService(db).Load(context.Background())
	require.ErrorContains(t, err, "swap pair")
}

package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chesschain/chesschain/internal/database"
	"github.com/chesschain/chesschain/internal/database/repository"
)

func openCatalog(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenCatalog(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOfferRepoListsSeededOffers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := repository.NewOfferRepo(openCatalog(t))

	offers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []repository.MatchOffer{
		{ID: "1", OpponentName: "Carla", OpponentRating: 1480, LatencyMs: 42, WagerToken: "BNB", WagerAmount: 0.05},
		{ID: "2", OpponentName: "Leo", OpponentRating: 1522, LatencyMs: 35, WagerToken: "BUSD", WagerAmount: 12.0},
		{ID: "3", OpponentName: "Ryo", OpponentRating: 1610, LatencyMs: 80, WagerToken: "BNB", WagerAmount: 0.15},
	}, offers)

	got, err := repo.Get(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Leo", got.OpponentName)

	missing, err := repo.Get(ctx, "99")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestContentRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := repository.NewContentRepo(openCatalog(t))

	h, err := repo.Highlight(ctx)
	require.NoError(t, err)
	require.Equal(t, &repository.Highlight{Title: "Racha impecable", Subtitle: "+15 puntos esta semana"}, h)

	openings, err := repo.Openings(ctx)
	require.NoError(t, err)
	require.Len(t, openings, 3)
	require.Equal(t, "Defensa Siciliana", openings[0].Name)
	require.Equal(t, "Ataque Inglés", openings[1].Name)
	require.Equal(t, "Eslava", openings[2].Name)
	for _, o := range openings {
		require.Equal(t, "+6% winrate", o.Note)
	}
}

func TestWalletRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := repository.NewWalletRepo(openCatalog(t))

	p, err := repo.Profile(ctx, "BNB Chain")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, "0x93A1...bE7", p.PlaceholderAddress)
	require.Equal(t, 1.62, p.EstimatedBalance)
	require.Equal(t, "BNB", p.BalanceToken)

	deps, err := repo.Deposits(ctx, "BNB Chain")
	require.NoError(t, err)
	require.Equal(t, []repository.Deposit{
		{Amount: 0.25, Token: "BNB"},
		{Amount: 35, Token: "BUSD"},
		{Amount: 0.5, Token: "BNB"},
	}, deps)

	none, err := repo.Profile(ctx, "Ethereum")
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestSwapRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := repository.NewSwapRepo(openCatalog(t))

	pair, err := repo.Pair(ctx, "BNB", "CHECK")
	require.NoError(t, err)
	require.Equal(t, &repository.SwapPair{FromToken: "BNB", ToToken: "CHECK", Rate: 125.0, NetworkFee: 0.0004}, pair)

	quotes, err := repo.Liquidity(ctx, "BNB", "CHECK")
	require.NoError(t, err)
	rates := make([]float64, 0, len(quotes))
	for _, q := range quotes {
		rates = append(rates, q.Rate)
	}
	require.Equal(t, []float64{124.5, 125.2, 124.9}, rates)

	reverse, err := repo.Pair(ctx, "CHECK", "BNB")
	require.NoError(t, err)
	require.Nil(t, reverse)
}

func TestSecurityRepo(t *testing.T) {
	t.Parallel()
	repo := repository.NewSecurityRepo(openCatalog(t))

	rep, err := repo.Report(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rep)
	require.Equal(t, 12, rep.RiskScore)
	require.Equal(t, []repository.SecurityCheck{
		{Label: "Verificación biométrica", Passed: true},
		{Label: "Análisis anti-bot", Passed: true},
		{Label: "Tiempo de respuesta estable", Passed: true},
		{Label: "Patrón de movimientos sospechoso", Passed: false},
	}, rep.Checks)
}

package service

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chesschain/chesschain/internal/database/repository"
)

var bnbCheck = repository.SwapPair{FromToken: "BNB", ToToken: "CHECK", Rate: 125.0, NetworkFee: 0.0004}

func TestSwapDeskDefaults(t *testing.T) {
	d := NewSwapDesk(bnbCheck)
	require.Equal(t, 0.1, d.Amount())
	q := d.Quote()
	require.Equal(t, "BNB", q.FromToken)
	require.Equal(t, "CHECK", q.ToToken)
	require.Equal(t, 0.0004, q.NetworkFee)
	require.InDelta(t, 12.5, q.Output, 1e-9)
}

func TestQuoteOutputIsAmountTimesRate(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 1000; i++ {
		v := 0.01 + r.Float64()*(1.0-0.01)
		q := QuoteFor(bnbCheck, v)
		require.Equal(t, v*125.0, q.Output)
		require.Equal(t, 0.0004, q.NetworkFee)
	}
	require.Equal(t, 0.01*125.0, QuoteFor(bnbCheck, 0.01).Output)
	require.Equal(t, 125.0, QuoteFor(bnbCheck, 1.0).Output)
}

func TestSliderPositionsAreExact(t *testing.T) {
	d := NewSwapDesk(bnbCheck)
	d.SetAmount(MinAmount())
	for ticks := 1; ticks <= 100; ticks++ {
		want := float64(ticks) / 100
		require.Equal(t, want, d.Amount())
		require.Equal(t, want*125.0, d.Quote().Output)
		d.Nudge(FineStep)
	}
}

func TestSliderClamps(t *testing.T) {
	d := NewSwapDesk(bnbCheck)
	require.Equal(t, 1.0, d.SetAmount(3))
	require.Equal(t, 0.01, d.SetAmount(-1))
	require.Equal(t, 0.01, d.SetAmount(0))
	require.Equal(t, 0.01, d.Nudge(-CoarseStep))
	require.Equal(t, 0.11, d.Nudge(CoarseStep))
	d.SetAmount(0.95)
	require.Equal(t, 1.0, d.Nudge(CoarseStep))
	require.Equal(t, 1.0, d.SetAmount(math.NaN()), "NaN leaves the slider alone")
	require.Equal(t, MaxAmount(), d.Amount())
}

func TestSetAmountRoundsToHundredths(t *testing.T) {
	d := NewSwapDesk(bnbCheck)
	require.Equal(t, 0.37, d.SetAmount(0.3712))
	require.Equal(t, 0.38, d.SetAmount(0.376))
}

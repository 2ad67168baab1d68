package service

import (
	"math"

	"github.com/chesschain/chesschain/internal/database/repository"
)

// Slider bounds, in hundredths of the source token.
const (
	amountScale     = 100
	minAmountTicks  = 1
	maxAmountTicks  = 100
	initAmountTicks = 10

	FineStep   = 1
	CoarseStep = 10
)

// Quote is what the swap panel displays for one amount.
type Quote struct {
	FromToken  string
	ToToken    string
	Rate       float64
	NetworkFee float64
	Amount     float64
	Output     float64
}

// SwapDesk is the swap quote stub. The amount slider covers [0.01, 1.0] and is
// stored as whole hundredths so every position is an exact decimal.
type SwapDesk struct {
	pair  repository.SwapPair
	ticks int
}

func NewSwapDesk(pair repository.SwapPair) *SwapDesk {
	return &SwapDesk{pair: pair, ticks: initAmountTicks}
}

func (d *SwapDesk) Pair() repository.SwapPair { return d.pair }

// Amount is the slider value.
func (d *SwapDesk) Amount() float64 { return float64(d.ticks) / amountScale }

func MinAmount() float64 { return float64(minAmountTicks) / amountScale }
func MaxAmount() float64 { return float64(maxAmountTicks) / amountScale }

// SetAmount moves the slider to v, rounded to the nearest hundredth and
// clamped to the slider range. It returns the resulting amount.
func (d *SwapDesk) SetAmount(v float64) float64 {
	if math.IsNaN(v) {
		return d.Amount()
	}
	d.ticks = clampTicks(int(math.Round(v * amountScale)))
	return d.Amount()
}

// Nudge moves the slider by steps hundredths.
func (d *SwapDesk) Nudge(steps int) float64 {
	d.ticks = clampTicks(d.ticks + steps)
	return d.Amount()
}

// Quote recomputes the quote for the current amount.
func (d *SwapDesk) Quote() Quote {
	return QuoteFor(d.pair, d.Amount())
}

// QuoteFor prices amount with the pair's fixed rate and fee.
func QuoteFor(pair repository.SwapPair, amount float64) Quote {
	return Quote{
		FromToken:  pair.FromToken,
		ToToken:    pair.ToToken,
		Rate:       pair.Rate,
		NetworkFee: pair.NetworkFee,
		Amount:     amount,
		Output:     amount * pair.Rate,
	}
}

func clampTicks(t int) int {
	return max(minAmountTicks, min(maxAmountTicks, t))
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chesschain/chesschain/internal/service"
)

const sliderWidth = 24

func (a *App) updateSwap(msg tea.KeyMsg) tea.Cmd {
	scope := a.scope()
	steps := 0
	switch {
	case a.keys.IsAction(msg, actionAmountUp, scope):
		steps = service.FineStep
	case a.keys.IsAction(msg, actionAmountDown, scope):
		steps = -service.FineStep
	case a.keys.IsAction(msg, actionAmountUpBig, scope):
		steps = service.CoarseStep
	case a.keys.IsAction(msg, actionAmountDownBig, scope):
		steps = -service.CoarseStep
	case a.keys.IsAction(msg, actionSwapExecute, scope):
		a.setStatus("Swap no disponible en la demo: sin ejecución on-chain")
		a.log.Info().Float64("amount", a.swap.Amount()).Msg("swap execute pressed")
		return nil
	default:
		return nil
	}
	before := a.swap.Amount()
	after := a.swap.Nudge(steps)
	if after != before {
		a.log.Debug().Float64("amount", after).Msg("swap amount changed")
	}
	return nil
}

func (a *App) renderSwap() string {
	q := a.swap.Quote()
	rows := []string{
		titleStyle.Render("Intercambio instantáneo"),
		renderCard(a.width, true,
			fmt.Sprintf("%s %s → %.2f %s", formatPlain(q.Amount), q.FromToken, q.Output, q.ToToken),
			renderSlider(q.Amount),
			mutedStyle.Render("Tarifa de red: "+formatPlain(q.NetworkFee)+" "+q.FromToken),
		),
		renderButton("Ejecutar swap con protección MEV", true, true) + mutedStyle.Render("  [x]"),
		sectionStyle.Render("Cotizaciones dinámicas"),
	}
	for _, l := range a.content.Liquidity {
		rows = append(rows, fmt.Sprintf("• Liquidez agregada: %s %s/%s", formatPlain(l.Rate), l.ToToken, l.FromToken))
	}
	return strings.Join(rows, "\n")
}

func renderSlider(amount float64) string {
	lo, hi := service.MinAmount(), service.MaxAmount()
	pos := int((amount - lo) / (hi - lo) * float64(sliderWidth-1))
	pos = min(max(pos, 0), sliderWidth-1)
	bar := strings.Repeat("━", pos) + "●" + strings.Repeat("─", sliderWidth-1-pos)
	return mutedStyle.Render(formatPlain(lo)+" ") + bar + mutedStyle.Render(" "+formatPlain(hi))
}

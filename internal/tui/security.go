package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chesschain/chesschain/internal/service"
)

func (a *App) updateSecurity(msg tea.KeyMsg) tea.Cmd {
	if a.keys.IsAction(msg, actionShareReport, a.scope()) {
		a.setStatus("Compartir reporte no está disponible sin conexión")
		a.log.Info().Int("risk", a.security.RiskScore()).Msg("share report pressed")
	}
	return nil
}

func (a *App) renderSecurity() string {
	risk := fmt.Sprintf("Riesgo actual %d/100", a.security.RiskScore())
	rows := []string{
		titleStyle.Render("Centro antifraude"),
		riskStyle(a.security.RiskScore()).Render(risk),
	}
	for _, c := range a.security.Checks() {
		note := okStyle.Render(service.CheckNote(c))
		if !c.Passed {
			note = warnStyle.Render(service.CheckNote(c))
		}
		rows = append(rows, renderCard(a.width, !c.Passed, c.Label, note))
	}
	rows = append(rows, renderButton("Compartir reporte a soporte", true, true)+mutedStyle.Render("  [r]"))
	return strings.Join(rows, "\n")
}

func riskStyle(score int) lipgloss.Style {
	switch {
	case score >= 60:
		return badStyle
	case score >= 30:
		return warnStyle
	default:
		return okStyle
	}
}

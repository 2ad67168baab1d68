package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (a *App) updateWallet(msg tea.KeyMsg) tea.Cmd {
	if !a.keys.IsAction(msg, actionWalletToggle, a.scope()) {
		return nil
	}
	connected := a.session.ToggleWallet(a.content.Wallet.PlaceholderAddress)
	if connected {
		a.setStatus("Billetera conectada")
	} else {
		a.setStatus("Billetera desconectada")
	}
	a.log.Info().Bool("connected", connected).Str("network", a.content.Wallet.Network).Msg("wallet toggled")
	return nil
}

func (a *App) renderWallet() string {
	u, _ := a.session.Active()
	p := a.content.Wallet
	rows := []string{titleStyle.Render("Billetera " + p.Network)}
	if !u.WalletConnected() {
		rows = append(rows,
			badStyle.Render("Desconectado"),
			renderButton("Conectar billetera", true, true)+mutedStyle.Render("  [c]"),
			"",
			mutedStyle.Render("Conecta tu billetera para habilitar apuestas en línea y retiros instantáneos."),
		)
		return strings.Join(rows, "\n")
	}
	rows = append(rows,
		okStyle.Render("Conectado"),
		renderButton("Desconectar", true, true)+mutedStyle.Render("  [c]"),
		"",
		renderCard(a.width, true,
			u.Address(),
			"Saldo estimado: "+formatPlain(p.EstimatedBalance)+" "+p.BalanceToken,
		),
		sectionStyle.Render("Historial de depósitos"),
	)
	for _, d := range a.content.Deposits {
		rows = append(rows, "• "+formatPlain(d.Amount)+" "+d.Token+" en stake antifraude")
	}
	return strings.Join(rows, "\n")
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chesschain/chesschain/internal/database/repository"
)

const (
	searchLabel       = "Buscar oponente rated"
	cancelSearchLabel = "Cancel"
)

func (a *App) updateMatchmaking(msg tea.KeyMsg) tea.Cmd {
	scope := a.scope()
	visible := a.visibleOffers()
	switch {
	case a.keys.IsAction(msg, actionSearch, scope):
		return a.toggleSearch()
	case a.keys.IsAction(msg, actionCursorUp, scope):
		if a.offerCursor > 0 {
			a.offerCursor--
		}
	case a.keys.IsAction(msg, actionCursorDown, scope):
		if a.offerCursor < len(visible)-1 {
			a.offerCursor++
		}
	case a.keys.IsAction(msg, actionChallenge, scope):
		a.challengeSelected(visible)
	case a.keys.IsAction(msg, actionFilter, scope):
		a.filtering = true
		return a.filter.Focus()
	}
	return nil
}

func (a *App) toggleSearch() tea.Cmd {
	if a.match.Searching() {
		cancelled := a.tasks.Cancel(a.searchTask)
		a.match.CancelSearch()
		a.setStatus("Búsqueda cancelada")
		a.log.Info().Bool("task_cancelled", cancelled).Msg("search cancelled")
		return nil
	}
	if !a.match.BeginSearch() {
		return nil
	}
	id, cmd := a.tasks.Start(kindSearch, a.cfg.Timing.SearchDelay)
	a.searchTask = id
	a.setStatus("Buscando rival...")
	a.log.Info().Uint64("task", id).Dur("delay", a.cfg.Timing.SearchDelay).Msg("search started")
	return tea.Batch(cmd, a.spinner.Tick)
}

func (a *App) finishSearch() {
	o, ok := a.match.CompleteSearch()
	if !ok {
		a.setError("Sin rivales disponibles")
		a.log.Warn().Msg("search completed without offers")
		return
	}
	a.setStatus(fmt.Sprintf("Rival encontrado: %s • %d", o.OpponentName, o.OpponentRating))
	a.log.Info().Str("offer_id", o.ID).Msg("search completed")
}

func (a *App) challengeSelected(visible []repository.MatchOffer) {
	if a.offerCursor < 0 || a.offerCursor >= len(visible) {
		return
	}
	if a.match.Searching() {
		a.setError("Cancela la búsqueda antes de retar")
		return
	}
	o, ok := a.match.Challenge(visible[a.offerCursor].ID)
	if !ok {
		return
	}
	a.setStatus("Reto enviado a " + o.OpponentName)
	a.log.Info().Str("offer_id", o.ID).Msg("challenge sent")
}

func (a *App) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch {
	case a.keys.IsAction(msg, actionFilterDone, scopeFilter):
		a.filtering = false
		a.filter.Blur()
		return nil
	case a.keys.IsAction(msg, actionFilterClear, scopeFilter):
		a.filtering = false
		a.filter.Blur()
		a.filter.SetValue("")
		a.offerCursor = 0
		return nil
	}
	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	a.clampOfferCursor()
	return cmd
}

func (a *App) visibleOffers() []repository.MatchOffer {
	if a.match == nil {
		return nil
	}
	return a.match.Filter(a.filter.Value())
}

func (a *App) clampOfferCursor() {
	n := len(a.visibleOffers())
	if a.offerCursor >= n {
		a.offerCursor = max(0, n-1)
	}
}

func (a *App) renderMatchmaking() string {
	w := a.width
	status := "Listo"
	button := searchLabel
	if a.match.Searching() {
		status = a.spinner.View() + " Buscando rival..."
		button = cancelSearchLabel
	}
	rows := []string{
		titleStyle.Render("Emparejamiento inteligente"),
		"Estado: " + status,
		renderButton(button, true, true) + mutedStyle.Render("  [s]"),
	}
	if o, ok := a.match.Current(); ok {
		rows = append(rows, "", mutedStyle.Render("Rival asignado"), renderOffer(w, o, false))
	}

	title := "Retos destacados"
	if a.filtering {
		rows = append(rows, sectionStyle.Render(title), a.filter.View())
	} else if q := strings.TrimSpace(a.filter.Value()); q != "" {
		rows = append(rows, sectionStyle.Render(title+mutedStyle.Render("  filtro: "+q)))
	} else {
		rows = append(rows, sectionStyle.Render(title))
	}
	visible := a.visibleOffers()
	if len(visible) == 0 {
		rows = append(rows, mutedStyle.Render("Sin retos para ese filtro."))
	}
	for i, o := range visible {
		rows = append(rows, renderOffer(w, o, i == a.offerCursor))
	}
	return strings.Join(rows, "\n")
}

func renderOffer(width int, o repository.MatchOffer, selected bool) string {
	action := mutedStyle.Render("Retar ahora")
	if selected {
		action = titleStyle.Render("▶ Retar ahora")
	}
	return renderCard(width, selected,
		fmt.Sprintf("%s • %d", o.OpponentName, o.OpponentRating),
		mutedStyle.Render(fmt.Sprintf("Latencia %dms", o.LatencyMs)),
		fmt.Sprintf("Wager %s %s", formatDecimal(o.WagerAmount), o.WagerToken),
		action,
	)
}

package tui

import (
	"fmt"
	"strings"
)

func (a *App) renderDashboard() string {
	u, _ := a.session.Active()
	w := a.width
	rows := []string{
		titleStyle.Render("Hola, " + u.Name),
		mutedStyle.Render(fmt.Sprintf("Elo sincronizado: %d", u.Rating)),
	}
	if h := a.content.Highlight; h != nil {
		rows = append(rows, "", renderCard(w, true, titleStyle.Render(h.Title), h.Subtitle))
	}
	rows = append(rows, sectionStyle.Render("Líneas recomendadas"))
	for _, o := range a.content.Openings {
		rows = append(rows, renderCard(w, false, o.Name, mutedStyle.Render(o.Note)))
	}
	return strings.Join(rows, "\n")
}

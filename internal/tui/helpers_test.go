package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/chesschain/chesschain/internal/config"
	"github.com/chesschain/chesschain/internal/database"
	"github.com/chesschain/chesschain/internal/service"
	"github.com/chesschain/chesschain/internal/task"
)

type fixedPicker int

func (p fixedPicker) IntN(int) int { return int(p) }

func newTestApp(t *testing.T, pick int, mutate ...func(*config.Config)) (*App, *task.FakeClock) {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenCatalog(ctx)
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Default()
	cfg.Log.Path = ""
	for _, m := range mutate {
		m(&cfg)
	}
	clock := task.NewFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	a := New(ctx, cfg, Deps{
		Catalog: service.NewCatalogService(db),
		Clock:   clock,
		Picker:  fixedPicker(pick),
		Logger:  zerolog.Nop(),
	})
	a.Update(a.loadCatalog()())
	if !a.loaded {
		t.Fatalf("catalog not loaded: %s", a.status)
	}
	return a, clock
}

func guestApp(t *testing.T, pick int) *App {
	t.Helper()
	a, _ := newTestApp(t, pick)
	press(a, keyOf(tea.KeyCtrlG))
	if !a.session.LoggedIn() {
		t.Fatalf("guest shortcut should log in")
	}
	return a
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(kt tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: kt} }

// press feeds keys in order and returns the command of the last one.
func press(a *App, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = a.Update(k)
	}
	return cmd
}

func typeText(a *App, s string) {
	for _, r := range s {
		a.Update(runes(string(r)))
	}
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// settle runs cmd and feeds any task firings back into the app. Spinner
// ticks are dropped so nothing sleeps.
func settle(a *App, cmd tea.Cmd) int {
	fired := 0
	for _, msg := range collect(cmd) {
		if f, ok := msg.(task.Fired); ok {
			a.Update(f)
			fired++
		}
	}
	return fired
}

package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding maps keys to an action within scopes. A scope entry of "*"
// matches everything and a trailing "*" matches by prefix ("tab:*").
type KeyBinding struct {
	Keys        []string
	Help        string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	// shifted letters carry meaning ("L" is not "l")
	if len(k) == 1 {
		return k
	}
	return strings.ToLower(k)
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
		if prefix, ok := strings.CutSuffix(s, "*"); ok && prefix != "" && strings.HasPrefix(scope, prefix) {
			return true
		}
	}
	return false
}

const (
	scopeLogin       = "login"
	scopeFilter      = "filter:matchmaking"
	scopeTabsPattern = "tab:*"
)

const (
	actionQuit          = "quit"
	actionSwitchTab     = "switch-tab"
	actionTabNext       = "tab-next"
	actionTabPrev       = "tab-prev"
	actionFocusNext     = "focus-next"
	actionFocusPrev     = "focus-prev"
	actionActivate      = "activate"
	actionGuest         = "guest"
	actionSearch        = "search"
	actionCursorUp      = "cursor-up"
	actionCursorDown    = "cursor-down"
	actionChallenge     = "challenge"
	actionFilter        = "filter"
	actionFilterDone    = "filter-done"
	actionFilterClear   = "filter-clear"
	actionWalletToggle  = "wallet-toggle"
	actionAmountUp      = "amount-up"
	actionAmountDown    = "amount-down"
	actionAmountUpBig   = "amount-up-coarse"
	actionAmountDownBig = "amount-down-coarse"
	actionSwapExecute   = "swap-execute"
	actionShareReport   = "share-report"
)

func tabScope(tab string) string { return "tab:" + tab }

// DefaultKeyBindings is the full key map; footer help is derived from it.
func DefaultKeyBindings() []KeyBinding {
	matchmaking := []string{tabScope("matchmaking")}
	return []KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: actionQuit, Description: "salir", Scopes: []string{scopeLogin, scopeFilter}},
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "salir", Scopes: []string{scopeTabsPattern}},

		{Keys: []string{"tab", "down"}, Action: actionFocusNext, Description: "siguiente", Scopes: []string{scopeLogin}},
		{Keys: []string{"shift+tab", "up"}, Action: actionFocusPrev, Description: "anterior", Scopes: []string{scopeLogin}},
		{Keys: []string{"enter"}, Action: actionActivate, Description: "entrar", Scopes: []string{scopeLogin}},
		{Keys: []string{"ctrl+g"}, Action: actionGuest, Description: "invitado", Scopes: []string{scopeLogin}},

		{Keys: []string{"1", "2", "3", "4", "5"}, Help: "1-5", Action: actionSwitchTab, Description: "pestaña", Scopes: []string{scopeTabsPattern}},
		{Keys: []string{"tab"}, Action: actionTabNext, Description: "siguiente", Scopes: []string{scopeTabsPattern}},
		{Keys: []string{"shift+tab"}, Action: actionTabPrev, Description: "anterior", Scopes: []string{scopeTabsPattern}},

		{Keys: []string{"s"}, Action: actionSearch, Description: "buscar/cancelar", Scopes: matchmaking},
		{Keys: []string{"up", "k"}, Action: actionCursorUp, Description: "arriba", Scopes: matchmaking},
		{Keys: []string{"down", "j"}, Action: actionCursorDown, Description: "abajo", Scopes: matchmaking},
		{Keys: []string{"enter"}, Action: actionChallenge, Description: "retar", Scopes: matchmaking},
		{Keys: []string{"/"}, Action: actionFilter, Description: "filtrar", Scopes: matchmaking},
		{Keys: []string{"enter"}, Action: actionFilterDone, Description: "aplicar", Scopes: []string{scopeFilter}},
		{Keys: []string{"esc"}, Action: actionFilterClear, Description: "limpiar", Scopes: []string{scopeFilter}},

		{Keys: []string{"c"}, Action: actionWalletToggle, Description: "conectar/desconectar", Scopes: []string{tabScope("wallet")}},

		{Keys: []string{"right", "l"}, Action: actionAmountUp, Description: "+0.01", Scopes: []string{tabScope("swap")}},
		{Keys: []string{"left", "h"}, Action: actionAmountDown, Description: "-0.01", Scopes: []string{tabScope("swap")}},
		{Keys: []string{"shift+right", "L"}, Action: actionAmountUpBig, Description: "+0.1", Scopes: []string{tabScope("swap")}},
		{Keys: []string{"shift+left", "H"}, Action: actionAmountDownBig, Description: "-0.1", Scopes: []string{tabScope("swap")}},
		{Keys: []string{"x"}, Action: actionSwapExecute, Description: "ejecutar swap", Scopes: []string{tabScope("swap")}},

		{Keys: []string{"r"}, Action: actionShareReport, Description: "compartir reporte", Scopes: []string{tabScope("security")}},
	}
}

package session

// Tab is a top-level destination reachable after login.
type Tab string

const (
	TabDashboard   Tab = "dashboard"
	TabMatchmaking Tab = "matchmaking"
	TabWallet      Tab = "wallet"
	TabSwap        Tab = "swap"
	TabSecurity    Tab = "security"
)

var tabOrder = []Tab{TabDashboard, TabMatchmaking, TabWallet, TabSwap, TabSecurity}

var tabLabels = map[Tab]string{
	TabDashboard:   "Inicio",
	TabMatchmaking: "Jugar",
	TabWallet:      "Billetera",
	TabSwap:        "Swap",
	TabSecurity:    "Seguridad",
}

// Tabs returns the destinations in bar order.
func Tabs() []Tab {
	return append([]Tab(nil), tabOrder...)
}

// Label is the bar caption.
func (t Tab) Label() string { return tabLabels[t] }

// Valid reports whether t is one of the five destinations.
func (t Tab) Valid() bool {
	_, ok := tabLabels[t]
	return ok
}

func (t Tab) index() int {
	for i, x := range tabOrder {
		if x == t {
			return i
		}
	}
	return -1
}

package session

import "github.com/google/uuid"

// Session holds the active user and the tab selection. While no user is
// active only the login form is reachable; afterwards exactly one tab is
// selected at any time.
type Session struct {
	id   string
	user *User
	tab  Tab
}

func New() *Session {
	return &Session{id: uuid.NewString(), tab: TabDashboard}
}

// ID is a per-process correlation id for logs; it is not the user id.
func (s *Session) ID() string { return s.id }

// Active returns the active user, if any.
func (s *Session) Active() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	u := *s.user
	if u.WalletAddress != nil {
		a := *u.WalletAddress
		u.WalletAddress = &a
	}
	return u, true
}

// LoggedIn reports whether a user is active.
func (s *Session) LoggedIn() bool { return s.user != nil }

// Login makes the user built from the credentials active and opens the dashboard.
func (s *Session) Login(username, password string) User {
	return s.begin(FromCredentials(username, password))
}

// LoginAsGuest makes the guest identity active, whatever was typed.
func (s *Session) LoginAsGuest() User {
	return s.begin(Guest())
}

func (s *Session) begin(u User) User {
	s.user = &u
	s.tab = TabDashboard
	return u
}

// ConnectWallet attaches address to the active user.
func (s *Session) ConnectWallet(address string) {
	if s.user == nil {
		return
	}
	a := address
	*s.user = s.user.withWallet(&a)
}

// DisconnectWallet clears the active user's wallet address.
func (s *Session) DisconnectWallet() {
	if s.user == nil {
		return
	}
	*s.user = s.user.withWallet(nil)
}

// ToggleWallet flips the wallet connection and reports the new state.
func (s *Session) ToggleWallet(address string) bool {
	if s.user == nil {
		return false
	}
	if s.user.WalletConnected() {
		s.DisconnectWallet()
		return false
	}
	s.ConnectWallet(address)
	return true
}

// ActiveTab returns the selected tab.
func (s *Session) ActiveTab() Tab { return s.tab }

// IsSelected reports whether t is the selected tab.
func (s *Session) IsSelected(t Tab) bool { return s.user != nil && s.tab == t }

// Select makes t the sole selected tab. Unknown tabs, and any selection
// before login, are ignored. It reports whether the selection changed.
func (s *Session) Select(t Tab) bool {
	if s.user == nil || !t.Valid() || s.tab == t {
		return false
	}
	s.tab = t
	return true
}

// Next selects the following tab, wrapping around.
func (s *Session) Next() Tab { return s.step(1) }

// Prev selects the preceding tab, wrapping around.
func (s *Session) Prev() Tab { return s.step(-1) }

func (s *Session) step(delta int) Tab {
	if s.user == nil {
		return s.tab
	}
	n := len(tabOrder)
	s.tab = tabOrder[(s.tab.index()+delta+n)%n]
	return s.tab
}

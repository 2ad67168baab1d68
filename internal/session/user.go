package session

import "strings"

// User is the locally held identity of the logged-in (or guest) actor.
type User struct {
	ID            string
	Name          string
	Rating        int
	WalletAddress *string
}

const (
	LoginUserID   = "1"
	DefaultRating = 1420

	GuestID     = "guest"
	GuestName   = "Invitado"
	GuestRating = 1200
)

// Guest is the fixed guest identity.
func Guest() User {
	return User{ID: GuestID, Name: GuestName, Rating: GuestRating}
}

// FromCredentials builds the user produced by a completed login. Blank names
// become the guest display name; the password is never inspected.
func FromCredentials(username, _ string) User {
	name := username
	if strings.TrimSpace(name) == "" {
		name = GuestName
	}
	return User{ID: LoginUserID, Name: name, Rating: DefaultRating}
}

// WalletConnected reports whether a wallet address is attached.
func (u User) WalletConnected() bool {
	return u.WalletAddress != nil
}

// Address returns the attached wallet address or "".
func (u User) Address() string {
	if u.WalletAddress == nil {
		return ""
	}
	return *u.WalletAddress
}

func (u User) withWallet(address *string) User {
	u.WalletAddress = address
	return u
}

package service

import (
	"math/rand/v2"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/chesschain/chesschain/internal/database/repository"
)

// Picker chooses an index in [0, n). *math/rand/v2.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// Matchmaker is the matchmaking stub: a searching flag and a current-match
// slot filled by a uniform random pick from the static offers.
type Matchmaker struct {
	offers    []repository.MatchOffer
	picker    Picker
	searching bool
	current   *repository.MatchOffer
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// NewMatchmaker copies offers. A nil picker uses the global random source.
func NewMatchmaker(offers []repository.MatchOffer, picker Picker) *Matchmaker {
	if picker == nil {
		picker = globalPicker{}
	}
	return &Matchmaker{offers: append([]repository.MatchOffer(nil), offers...), picker: picker}
}

// Offers returns the featured challenges.
func (m *Matchmaker) Offers() []repository.MatchOffer {
	return append([]repository.MatchOffer(nil), m.offers...)
}

func (m *Matchmaker) Searching() bool { return m.searching }

// Current returns the current match, if one was picked.
func (m *Matchmaker) Current() (repository.MatchOffer, bool) {
	if m.current == nil {
		return repository.MatchOffer{}, false
	}
	return *m.current, true
}

// BeginSearch raises the searching flag. It reports false when a search is
// already running or there is nothing to search.
func (m *Matchmaker) BeginSearch() bool {
	if m.searching || len(m.offers) == 0 {
		return false
	}
	m.searching = true
	return true
}

// CompleteSearch lowers the flag and picks the current match.
func (m *Matchmaker) CompleteSearch() (repository.MatchOffer, bool) {
	if !m.searching {
		return repository.MatchOffer{}, false
	}
	m.searching = false
	idx := m.picker.IntN(len(m.offers))
	if idx < 0 || idx >= len(m.offers) {
		idx = 0
	}
	m.current = &m.offers[idx]
	return *m.current, true
}

// CancelSearch lowers the flag and keeps the previous current match.
func (m *Matchmaker) CancelSearch() bool {
	if !m.searching {
		return false
	}
	m.searching = false
	return true
}

// Challenge copies the offer with id into the current-match slot. Not allowed
// while searching.
func (m *Matchmaker) Challenge(id string) (repository.MatchOffer, bool) {
	if m.searching {
		return repository.MatchOffer{}, false
	}
	for i := range m.offers {
		if m.offers[i].ID == id {
			m.current = &m.offers[i]
			return m.offers[i], true
		}
	}
	return repository.MatchOffer{}, false
}

// Filter returns the offers matching query; an empty query matches all.
func (m *Matchmaker) Filter(query string) []repository.MatchOffer {
	return FilterOffers(m.offers, query)
}

// FilterOffers keeps offers whose opponent name contains query, whose wager
// token equals it, or whose name is within a small edit distance of it.
func FilterOffers(offers []repository.MatchOffer, query string) []repository.MatchOffer {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]repository.MatchOffer, 0, len(offers))
	for _, o := range offers {
		if q == "" || offerMatches(o, q) {
			out = append(out, o)
		}
	}
	return out
}

func offerMatches(o repository.MatchOffer, q string) bool {
	name := strings.ToLower(o.OpponentName)
	if strings.Contains(name, q) || strings.EqualFold(o.WagerToken, q) {
		return true
	}
	budget := typoBudget(q)
	if budget == 0 {
		return false
	}
	return levenshtein.ComputeDistance(q, name) <= budget
}

// typoBudget allows one edit per three typed runes, at most two.
func typoBudget(q string) int {
	n := len([]rune(q)) / 3
	if n > 2 {
		return 2
	}
	return n
}

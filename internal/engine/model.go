package engine

import "codeberg.org/snonux/milo/internal/card"

// Model is the single immutable snapshot of viewer state: which pair is
// showing and which face is up. Every transition returns a new Model; the
// reducer replaces its current snapshot rather than mutating it.
type Model struct {
	Current     card.WordPair
	ShowingBack bool
}

// Flip turns the card from front to back. Flipping is one-directional: a
// model already showing its back is returned unchanged, and returning to
// the front only happens via Advance.
func Flip(m Model) Model {
	if m.ShowingBack {
		return m
	}
	m.ShowingBack = true
	return m
}

// Advance swaps in the chosen pair and resets to the front face. The reset
// is unconditional, even when chosen equals the current pair.
func Advance(m Model, chosen card.WordPair) Model {
	return Model{Current: chosen, ShowingBack: false}
}

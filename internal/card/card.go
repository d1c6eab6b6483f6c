package card

// WordPair is a single flashcard: the French word on the front and its
// English translation on the back. Immutable value; equality by content.
type WordPair struct {
	Front string // French word shown on the card front
	Back  string // English translation shown on the card back
}

// Store is an immutable ordered collection of word pairs. It is built once
// at startup and read-only for the lifetime of the process.
type Store struct {
	pairs []WordPair
}

// NewStore creates a store from the given pairs. The slice is copied so the
// caller cannot mutate the store afterwards.
func NewStore(pairs []WordPair) Store {
	copied := make([]WordPair, len(pairs))
	copy(copied, pairs)
	return Store{pairs: copied}
}

// Len returns the number of pairs in the store.
func (s Store) Len() int {
	return len(s.pairs)
}

// At returns the pair at index i.
func (s Store) At(i int) WordPair {
	return s.pairs[i]
}

// Contains reports whether the store holds the given pair.
func (s Store) Contains(p WordPair) bool {
	for _, q := range s.pairs {
		if q == p {
			return true
		}
	}
	return false
}

package card

import (
	"fmt"
	"math/rand"
)

// SelectionPolicy decides which pair the viewer shows first and which pair
// comes next when the user advances. Implementations consume entropy only
// from the random source they were constructed with, so tests can seed them
// deterministically.
type SelectionPolicy interface {
	Initial(store Store) WordPair
	Next(current WordPair, store Store) WordPair
}

// RandomPolicy picks uniformly at random. Next may return the same pair
// that is currently showing; there is no anti-repeat guarantee.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy creates a uniform random selection policy.
func NewRandomPolicy(rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

func (p *RandomPolicy) Initial(store Store) WordPair {
	return store.At(p.rng.Intn(store.Len()))
}

func (p *RandomPolicy) Next(current WordPair, store Store) WordPair {
	return store.At(p.rng.Intn(store.Len()))
}

// NonRepeatingPolicy picks uniformly at random but never returns the pair
// that is currently showing, provided the store has more than one entry.
type NonRepeatingPolicy struct {
	rng *rand.Rand
}

// NewNonRepeatingPolicy creates a random policy that avoids immediate
// repeats.
func NewNonRepeatingPolicy(rng *rand.Rand) *NonRepeatingPolicy {
	return &NonRepeatingPolicy{rng: rng}
}

func (p *NonRepeatingPolicy) Initial(store Store) WordPair {
	return store.At(p.rng.Intn(store.Len()))
}

func (p *NonRepeatingPolicy) Next(current WordPair, store Store) WordPair {
	if store.Len() == 1 {
		return store.At(0)
	}
	// Draw from the n-1 other indices so a repeat is impossible without
	// retry loops.
	currentIdx := -1
	for i := 0; i < store.Len(); i++ {
		if store.At(i) == current {
			currentIdx = i
			break
		}
	}
	idx := p.rng.Intn(store.Len() - 1)
	if currentIdx >= 0 && idx >= currentIdx {
		idx++
	}
	return store.At(idx)
}

// SequentialPolicy walks the store in order, wrapping around at the end.
type SequentialPolicy struct {
	next int
}

// NewSequentialPolicy creates a policy that shows pairs in store order.
func NewSequentialPolicy() *SequentialPolicy {
	return &SequentialPolicy{}
}

func (p *SequentialPolicy) Initial(store Store) WordPair {
	p.next = 1 % store.Len()
	return store.At(0)
}

func (p *SequentialPolicy) Next(current WordPair, store Store) WordPair {
	pair := store.At(p.next)
	p.next = (p.next + 1) % store.Len()
	return pair
}

// ParsePolicy maps a policy name from the CLI or config file to a
// SelectionPolicy instance.
func ParsePolicy(name string, rng *rand.Rand) (SelectionPolicy, error) {
	switch name {
	case "random":
		return NewRandomPolicy(rng), nil
	case "no-repeat":
		return NewNonRepeatingPolicy(rng), nil
	case "sequential":
		return NewSequentialPolicy(), nil
	default:
		return nil, fmt.Errorf("unknown selection policy %q (want random, no-repeat or sequential)", name)
	}
}

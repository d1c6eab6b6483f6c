package engine

// Event is an intent carried on the bus. The set is closed: input edges and
// the scheduler only ever say "something should change"; what it changes to
// is resolved by the selection policy when the reducer consumes the event.
type Event int

const (
	// EventAdvance asks for the next card.
	EventAdvance Event = iota
	// EventAutoFlip asks to reveal the back face. Harmlessly dropped when
	// the back is already showing.
	EventAutoFlip
)

func (e Event) String() string {
	switch e {
	case EventAdvance:
		return "Advance"
	case EventAutoFlip:
		return "AutoFlip"
	default:
		return "Unknown"
	}
}

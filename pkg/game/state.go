package game

// State is the state of a game
type State int

// State constants
const (
	StatePlaying State = iota
	StateDone
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateDone:
		return "done"
	}

	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

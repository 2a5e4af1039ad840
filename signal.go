// signal
package exhibition

import (
	"fmt"
)

// Signal is the only message type exchanged between a player and the
// grandmaster. A signal carries no payload beyond its tag.
type Signal int

const (
	// MakeMove announces a move by whoever sends it.
	MakeMove Signal = iota
	// Resign ends the sender's participation at that board.
	Resign
	// GrandmasterArrives tells a player the grandmaster is at its
	// board and it must move now.
	GrandmasterArrives
)

func (s Signal) String() string {
	switch s {
	case MakeMove:
		return "MakeMove"
	case Resign:
		return "Resign"
	case GrandmasterArrives:
		return "GrandmasterArrives"
	}
	return fmt.Sprintf("Signal(%v)", int(s))
}

// check valid reply to the grandmaster's arrival
func (s Signal) isResponse() bool {
	return s == MakeMove || s == Resign
}

// ProtocolError reports a signal that is not a legal response to the
// grandmaster's arrival. It indicates a bug in an actor, not a
// runtime condition to tolerate; the whole run is torn down.
type ProtocolError struct {
	Table int
	Got   Signal
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("Player #%v answered the grandmaster with %v", e.Table, e.Got)
}

// board
package exhibition

// Mailbox depth for each direction of a board. The protocol never has
// more than two signals in flight at once, but the headroom means a
// send can never block on a peer that has already left the table.
const mailboxSize = 10

// Board is the pair of channels shared by exactly one player and the
// grandmaster. The exhibition creates every board up front and keeps
// them for the whole run; neither side ever closes a channel.
type Board struct {
	index         int
	toGrandmaster chan Signal
	toPlayer      chan Signal
}

func newBoard(index int) *Board {
	return &Board{
		index:         index,
		toGrandmaster: make(chan Signal, mailboxSize),
		toPlayer:      make(chan Signal, mailboxSize),
	}
}

// Index is the table number, fixed at creation.
func (b *Board) Index() int {
	return b.index
}

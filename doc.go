// exhibition project doc.go

/*
The exhibition package simulates a simultaneous chess exhibition: one
itinerant grandmaster rotates among many boards, each with an
independent player. All interaction is in-process message passing -
every board is a pair of channels shared by exactly one player and the
grandmaster, and the actors synchronize only by sending and receiving
on them.

Each player runs in its own goroutine. On each move it races a random
"thinking" timer against the grandmaster's arrival; whichever wins
decides how likely the player is to resign. A player that does not
resign makes its move and then waits at the board for the grandmaster
to reply with a move or a resignation.

The grandmaster runs in one goroutine, sweeping the boards in
ascending order and skipping players that are already done. It keeps
the only record of which boards are finished and exits when every
board is.

An Exhibition is assembled with a builder and played to natural
completion with Run:

	ex, err := exhibition.BuildExhibition().
		WithPlayers(10).
		Build()
	if err != nil {
		// bad configuration
	}
	err = ex.Run()

Progress is logged on every transition, and the same transitions are
published as TableEvents on the exhibition's event bus, so other code
can observe a run without scraping log output.

There are no chess rules here: moves carry no payload, and the only
outcomes are resignations.
*/
package exhibition

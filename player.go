// player
package exhibition

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// player simulates one exhibition player. All the players have the
// White pieces and move first.
//
// On each move the player thinks until it finds a move, or until the
// grandmaster shows up and forces it to move. Either way it then has
// a chance of resigning - higher if it was forced to move early.
type player struct {
	board *Board
	cfg   Config
	rand  Randomizer
	bus   *EventBus
}

// run is the player's main loop. It exits when the player resigns or
// when the grandmaster resigns at this board; there is no other way
// out.
func (p *player) run() error {
	table := p.board.Index()
	for move := 1; ; move++ {
		log.WithFields(log.Fields{
			"player": table,
			"move":   move,
		}).Info("Considering move")
		p.bus.Publish(TopicPlayerThinking, TableEvent{Table: table, Move: move})

		// Race the thinking timer against the grandmaster's arrival.
		// The select commits exactly one of the two: if the timer
		// wins, a concurrent arrival stays queued on the board for
		// the wait phase below, and if the arrival wins the timer is
		// stopped. No signal is ever half-consumed.
		min, max := p.cfg.thinkTime(p.cfg.ThinkMin, p.cfg.ThinkMax)
		timer := time.NewTimer(p.rand.Duration(min, max))
		finishedThinking := false
		select {
		case <-timer.C:
			finishedThinking = true
		case <-p.board.toPlayer:
			// grandmaster has arrived; forced to move now
			timer.Stop()
		}

		resignChance := p.cfg.ResignWhenPressed
		if finishedThinking {
			resignChance = p.cfg.ResignAfterThinking
			log.WithFields(log.Fields{
				"player": table,
				"move":   move,
			}).Info("Making move after finishing thinking, now waiting for grandmaster")
		} else {
			log.WithFields(log.Fields{
				"player": table,
				"move":   move,
			}).Info("Making move because grandmaster has shown up")
		}

		if p.rand.Chance(resignChance) {
			log.WithFields(log.Fields{
				"player": table,
				"move":   move,
			}).Info("Resigns")
			p.bus.Publish(TopicPlayerResign, TableEvent{Table: table, Move: move})
			p.board.toGrandmaster <- Resign
			p.bus.Publish(TopicPlayerFinished, TableEvent{Table: table, Move: move})
			return nil
		}

		p.board.toGrandmaster <- MakeMove
		p.bus.Publish(TopicPlayerMove, TableEvent{Table: table, Move: move})

		// The move is made; wait at the board until the grandmaster
		// answers it. An arrival notification read here is the stale
		// loser of the race above and is skipped, not an error.
	waiting:
		for {
			switch sig := <-p.board.toPlayer; sig {
			case MakeMove:
				break waiting
			case Resign:
				log.WithFields(log.Fields{
					"player": table,
					"move":   move,
				}).Info("The grandmaster has resigned")
				p.bus.Publish(TopicPlayerFinished, TableEvent{Table: table, Move: move})
				return nil
			case GrandmasterArrives:
				// stale arrival; keep waiting
			}
		}
	}
}

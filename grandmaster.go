// grandmaster
package exhibition

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// grandmaster rotates among the boards until every player is done.
// It keeps the only record of which boards are finished; nothing else
// ever reads or writes it, so no locking is needed.
type grandmaster struct {
	boards []*Board
	cfg    Config
	rand   Randomizer
	bus    *EventBus
}

// run sweeps the boards in ascending order, visiting every unfinished
// player exactly once per sweep, until the finished set covers every
// board. A reply that is neither MakeMove nor Resign is a protocol
// violation and kills the run.
func (g *grandmaster) run() error {
	finished := make(map[int]struct{})
	for len(finished) < len(g.boards) {
		for _, board := range g.boards {
			table := board.Index()
			if _, done := finished[table]; done {
				log.WithFields(log.Fields{
					"player": table,
				}).Info("Grandmaster skipping player because they are done")
				g.bus.Publish(TopicGrandmasterSkip, TableEvent{Table: table})
				continue
			}

			// Declare that we have arrived at the table, then wait
			// for this player to move.
			board.toPlayer <- GrandmasterArrives
			g.bus.Publish(TopicGrandmasterArrive, TableEvent{Table: table})

			reply := <-board.toGrandmaster
			if !reply.isResponse() {
				return &ProtocolError{Table: table, Got: reply}
			}
			if reply == Resign {
				finished[table] = struct{}{}
				continue
			}

			log.WithFields(log.Fields{
				"player": table,
			}).Info("Grandmaster considering move")
			g.bus.Publish(TopicGrandmasterThink, TableEvent{Table: table})
			min, max := g.cfg.thinkTime(g.cfg.GrandmasterThinkMin, g.cfg.GrandmasterThinkMax)
			time.Sleep(g.rand.Duration(min, max))

			if g.rand.Chance(g.cfg.GrandmasterResign) {
				log.WithFields(log.Fields{
					"player": table,
				}).Info("Grandmaster resigns")
				g.bus.Publish(TopicGrandmasterResign, TableEvent{Table: table})
				board.toPlayer <- Resign
				finished[table] = struct{}{}
				continue
			}

			log.WithFields(log.Fields{
				"player": table,
			}).Info("Grandmaster making move")
			g.bus.Publish(TopicGrandmasterMove, TableEvent{Table: table})
			board.toPlayer <- MakeMove
		}
	}
	return nil
}

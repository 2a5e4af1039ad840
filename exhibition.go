// exhibition
package exhibition

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Exhibition wires one grandmaster to N players and plays the whole
// thing out. It owns every board for the full duration of the run.
type Exhibition struct {
	cfg     Config
	bus     *EventBus
	boards  []*Board
	newRand func(table int) Randomizer
	faults  chan error
	wg      sync.WaitGroup
}

// Bus is the exhibition's event bus. Subscribe before calling Run to
// observe every transition.
func (e *Exhibition) Bus() *EventBus {
	return e.bus
}

// Players is the number of players in the exhibition.
func (e *Exhibition) Players() int {
	return e.cfg.Players
}

// Run plays the exhibition to natural completion. It blocks until the
// grandmaster and every player have exited and returns the first
// fault, if any. A fault - a protocol violation or a panic recovered
// from an actor - is fatal; the run is abandoned immediately and the
// surviving actors are not waited for.
func (e *Exhibition) Run() error {
	for i := 0; i < e.cfg.Players; i++ {
		p := &player{
			board: e.boards[i],
			cfg:   e.cfg,
			rand:  e.newRand(i),
			bus:   e.bus,
		}
		e.spawn(fmt.Sprintf("player#%v", i), p.run)
	}
	gm := &grandmaster{
		boards: e.boards,
		cfg:    e.cfg,
		rand:   e.newRand(e.cfg.Players),
		bus:    e.bus,
	}
	e.spawn("grandmaster", gm.run)

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		select {
		case err := <-e.faults:
			return err
		default:
			return nil
		}
	case err := <-e.faults:
		return err
	}
}

// spawn starts one actor goroutine. A panic inside the actor is
// recovered and reported as a fault, like an error return.
func (e *Exhibition) spawn(name string, fn func() error) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer func() {
			if x := recover(); x != nil {
				e.fault(fmt.Errorf("%v caught panic: %v", name, x))
			}
		}()
		log.Debugf("%v running", name)
		if err := fn(); err != nil {
			e.fault(err)
			return
		}
		log.Debugf("%v exited", name)
	}()
}

// record the first fault; later ones are dropped
func (e *Exhibition) fault(err error) {
	select {
	case e.faults <- err:
	default:
	}
}

// defaultRandomizers seeds one generator per actor. Index Players is
// the grandmaster's.
func defaultRandomizers(cfg Config) func(table int) Randomizer {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return func(table int) Randomizer {
		return NewRandomizer(seed + uint64(table) + 1)
	}
}

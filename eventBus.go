// eventBus
package exhibition

import (
	"regexp"
	"sync"
	"time"
)

// Topics published while an exhibition runs.
const (
	TopicPlayerThinking    = "player.thinking"
	TopicPlayerMove        = "player.move"
	TopicPlayerResign      = "player.resign"
	TopicPlayerFinished    = "player.finished"
	TopicGrandmasterArrive = "grandmaster.arrive"
	TopicGrandmasterThink  = "grandmaster.thinking"
	TopicGrandmasterMove   = "grandmaster.move"
	TopicGrandmasterResign = "grandmaster.resign"
	TopicGrandmasterSkip   = "grandmaster.skip"
)

// TableEvent describes one transition at one table. Move is zero for
// transitions that are not tied to a particular move number.
type TableEvent struct {
	Topic     string
	Table     int
	Move      int
	Timestamp time.Time
}

// internal book-keeping
type subscriber struct {
	ch     chan<- TableEvent
	regexp *regexp.Regexp
	filter func(TableEvent) bool
}

// EventBus fans exhibition transitions out to subscribers - not much
// to it really! Subscribers must keep draining their channels while
// the exhibition runs; a full subscriber channel blocks the actor
// publishing to it.
type EventBus struct {
	sync.Mutex
	subscribers []subscriber
}

func NewEventBus() *EventBus {
	return &EventBus{subscribers: make([]subscriber, 0)}
}

// Subscribe a channel to every topic matching the regexp pattern. An
// empty pattern matches all topics. The optional filter narrows the
// events further.
func (bus *EventBus) Subscribe(ch chan<- TableEvent, pattern string, filter func(TableEvent) bool) error {
	bus.Lock()
	defer bus.Unlock()
	for _, subs := range bus.subscribers {
		if ch == subs.ch {
			return nil
		}
	}
	var rx *regexp.Regexp
	if pattern != "" {
		var err error
		rx, err = regexp.Compile(pattern)
		if err != nil {
			return err
		}
	}
	bus.subscribers = append(bus.subscribers, subscriber{ch, rx, filter})
	return nil
}

// Unsubscribe the channel from the event bus.
func (bus *EventBus) Unsubscribe(ch chan<- TableEvent) {
	bus.Lock()
	defer bus.Unlock()
	for idx, subs := range bus.subscribers {
		if ch == subs.ch {
			bus.subscribers = append(bus.subscribers[:idx], bus.subscribers[idx+1:]...)
			return
		}
	}
}

// publish to all matching subscribers
func (bus *EventBus) Publish(topic string, ev TableEvent) {
	ev.Topic = topic
	ev.Timestamp = time.Now()

	bus.Lock()
	subscribers := make([]subscriber, len(bus.subscribers))
	copy(subscribers, bus.subscribers)
	bus.Unlock()

	for _, subs := range subscribers {
		if (subs.regexp == nil || subs.regexp.MatchString(topic)) &&
			(subs.filter == nil || subs.filter(ev)) {
			subs.ch <- ev
		}
	}
}

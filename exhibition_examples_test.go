// exhibition_examples_test
package exhibition

import (
	"fmt"
)

func ExampleBuildExhibition() {
	// builder errors surface when the chain is finished
	_, err := BuildExhibition().WithPlayers(0).Build()
	fmt.Println(err)

	// Output:
	// Exhibition must have at least 1 player (0)
}

func ExampleEventBus() {
	bus := NewEventBus()

	// only player moves, nothing else
	moves := make(chan TableEvent, 4)
	bus.Subscribe(moves, `^player\.move$`, nil)

	bus.Publish(TopicPlayerMove, TableEvent{Table: 3, Move: 1})
	bus.Publish(TopicGrandmasterMove, TableEvent{Table: 3})

	ev := <-moves
	fmt.Printf("%v at table %v, move %v\n", ev.Topic, ev.Table, ev.Move)
	fmt.Printf("pending %v\n", len(moves))

	// Output:
	// player.move at table 3, move 1
	// pending 0
}

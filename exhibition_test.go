// exhibition_test
package exhibition

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
)

func TestBuilderRejectsBadConfig(t *testing.T) {
	if _, err := BuildExhibition().WithPlayers(0).Build(); err == nil {
		t.Error("expected error for zero players")
	}
	if _, err := BuildExhibition().WithTimeUnit(0).Build(); err == nil {
		t.Error("expected error for zero time unit")
	}
	if _, err := BuildExhibition().WithResignChance(1.5, 0.1).Build(); err == nil {
		t.Error("expected error for probability above 1")
	}
	if _, err := BuildExhibition().WithThinkRange(5, 1).Build(); err == nil {
		t.Error("expected error for inverted think range")
	}
	if _, err := BuildExhibition().WithGrandmasterResignChance(-0.1).Build(); err == nil {
		t.Error("expected error for negative probability")
	}
}

// test a full single-board run with scripted randomness: the player
// finds move 1 in time, plays the round out against the grandmaster,
// then resigns on move 2 and the driver returns
func TestSingleBoardDeterministicRun(t *testing.T) {
	log.SetLevel(log.DebugLevel)
	playerScript := &scriptRand{durations: []time.Duration{0, 0}, chances: []bool{false, true}}
	gmScript := &scriptRand{}

	ex, err := BuildExhibition().
		WithPlayers(1).
		WithTimeUnit(time.Nanosecond).
		withRandomizers(func(table int) Randomizer {
			if table == 1 {
				return gmScript
			}
			return playerScript
		}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	events := make(chan TableEvent, 64)
	if err := ex.Bus().Subscribe(events, `^player\.`, nil); err != nil {
		t.Fatal(err)
	}

	if err := ex.Run(); err != nil {
		t.Fatalf("exhibition failed: %v", err)
	}

	var story []string
	for len(events) > 0 {
		ev := <-events
		story = append(story, fmt.Sprintf("%v#%v", ev.Topic, ev.Move))
	}
	want := []string{
		"player.thinking#1",
		"player.move#1",
		"player.thinking#2",
		"player.resign#2",
		"player.finished#2",
	}
	if !reflect.DeepEqual(story, want) {
		t.Errorf("expected %v, got %v", want, story)
	}
}

// test a grandmaster forced to resign on first contact at every
// board: one sweep finishes all three tables and every player exits
func TestGrandmasterResignationFinishesEveryBoard(t *testing.T) {
	log.SetLevel(log.DebugLevel)
	ex, err := BuildExhibition().
		WithPlayers(3).
		WithTimeUnit(time.Nanosecond).
		withRandomizers(func(table int) Randomizer {
			if table == 3 {
				return &scriptRand{chances: []bool{true, true, true}}
			}
			// players think far too long and are pressed to move
			return &scriptRand{durations: []time.Duration{time.Hour}}
		}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	resigns := make(chan TableEvent, 8)
	finished := make(chan TableEvent, 8)
	ex.Bus().Subscribe(resigns, `^grandmaster\.resign$`, nil)
	ex.Bus().Subscribe(finished, `^player\.finished$`, nil)

	if err := ex.Run(); err != nil {
		t.Fatalf("exhibition failed: %v", err)
	}

	// visits happen in ascending table order within the sweep
	for i := 0; i < 3; i++ {
		ev := <-resigns
		if ev.Table != i {
			t.Errorf("grandmaster resigned at table %v, expected %v", ev.Table, i)
		}
	}
	if len(finished) != 3 {
		t.Errorf("expected 3 finished players, got %v", len(finished))
	}
}

// run a seeded exhibition with the real probabilities end to end and
// check that every table terminates exactly once
func TestSeededRunTerminates(t *testing.T) {
	log.SetLevel(log.ErrorLevel)
	const players = 4
	ex, err := BuildExhibition().
		WithPlayers(players).
		WithSeed(12345).
		WithTimeUnit(time.Microsecond).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	// each table ends in exactly one of these
	terminal := make(chan TableEvent, 16)
	ex.Bus().Subscribe(terminal, `(player|grandmaster)\.resign$`, nil)

	if err := ex.Run(); err != nil {
		t.Fatalf("exhibition failed: %v", err)
	}

	seen := make(map[int]int)
	for len(terminal) > 0 {
		seen[(<-terminal).Table]++
	}
	if len(seen) != players {
		t.Fatalf("expected %v finished tables, got %v", players, len(seen))
	}
	for table, n := range seen {
		if n != 1 {
			t.Errorf("table %v terminated %v times", table, n)
		}
	}
}

// exhibitionBuilder
package exhibition

import (
	"fmt"
	"time"
)

// ExhibitionBuilder assembles an Exhibition. Obtain one from
// BuildExhibition, decorate it, and finish with Build. The first
// configuration error sticks and is reported by Build.
type ExhibitionBuilder struct {
	cfg     Config
	newRand func(table int) Randomizer
	err     error
}

// Start building an exhibition from the default configuration.
func BuildExhibition() *ExhibitionBuilder {
	return &ExhibitionBuilder{cfg: DefaultConfig()}
}

// Set the number of players.
func (b *ExhibitionBuilder) WithPlayers(n int) *ExhibitionBuilder {
	if b.err == nil && n < 1 {
		b.err = fmt.Errorf("Exhibition must have at least 1 player (%v)", n)
		return b
	}
	b.cfg.Players = n
	return b
}

// Seed the simulation's randomness. Zero seeds from the clock.
func (b *ExhibitionBuilder) WithSeed(seed uint64) *ExhibitionBuilder {
	b.cfg.Seed = seed
	return b
}

// Set the wall-clock length of one simulation time unit.
func (b *ExhibitionBuilder) WithTimeUnit(d time.Duration) *ExhibitionBuilder {
	if b.err == nil && d <= 0 {
		b.err = fmt.Errorf("Time unit must be positive (%v)", d)
		return b
	}
	b.cfg.TimeUnit = d
	return b
}

// Set the player thinking range, in time units.
func (b *ExhibitionBuilder) WithThinkRange(min, max int) *ExhibitionBuilder {
	b.cfg.ThinkMin = min
	b.cfg.ThinkMax = max
	return b
}

// Set the grandmaster thinking range, in time units.
func (b *ExhibitionBuilder) WithGrandmasterThinkRange(min, max int) *ExhibitionBuilder {
	b.cfg.GrandmasterThinkMin = min
	b.cfg.GrandmasterThinkMax = max
	return b
}

// Set the player resignation probabilities: afterThinking applies
// when the player found its move in time, whenPressed when the
// grandmaster's arrival forced the move.
func (b *ExhibitionBuilder) WithResignChance(afterThinking, whenPressed float64) *ExhibitionBuilder {
	b.cfg.ResignAfterThinking = afterThinking
	b.cfg.ResignWhenPressed = whenPressed
	return b
}

// Set the grandmaster's per-move resignation probability.
func (b *ExhibitionBuilder) WithGrandmasterResignChance(p float64) *ExhibitionBuilder {
	b.cfg.GrandmasterResign = p
	return b
}

// Replace the whole configuration.
func (b *ExhibitionBuilder) WithConfig(cfg Config) *ExhibitionBuilder {
	b.cfg = cfg
	return b
}

// Private method to substitute scripted Randomizers. Tables 0..N-1
// are the players; table N is the grandmaster.
func (b *ExhibitionBuilder) withRandomizers(fn func(table int) Randomizer) *ExhibitionBuilder {
	b.newRand = fn
	return b
}

// This must be the last call in the builder chain. It validates the
// configuration and creates the exhibition with all of its boards.
func (b *ExhibitionBuilder) Build() (*Exhibition, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.validate(); err != nil {
		return nil, err
	}

	boards := make([]*Board, b.cfg.Players)
	for i := range boards {
		boards[i] = newBoard(i)
	}
	newRand := b.newRand
	if newRand == nil {
		newRand = defaultRandomizers(b.cfg)
	}
	return &Exhibition{
		cfg:     b.cfg,
		bus:     NewEventBus(),
		boards:  boards,
		newRand: newRand,
		faults:  make(chan error, 1),
	}, nil
}

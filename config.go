// config
package exhibition

import (
	"fmt"
	"time"
)

// Simulation defaults, matching the exhibition's reference behavior.
const (
	DefaultPlayers = 10

	// Thinking times, in simulation time units.
	DefaultThinkMin            = 5
	DefaultThinkMax            = 15
	DefaultGrandmasterThinkMin = 1
	DefaultGrandmasterThinkMax = 2

	// Resignation probabilities. A player pressed into moving by the
	// grandmaster's arrival resigns more readily than one that found
	// its move in time.
	DefaultResignAfterThinking = 0.05
	DefaultResignWhenPressed   = 0.10
	DefaultGrandmasterResign   = 0.01

	// Wall-clock length of one simulation time unit.
	DefaultTimeUnit = 10 * time.Millisecond
)

// Config carries every simulation parameter. Start from DefaultConfig
// or the exhibition builder; a zero Config is not usable.
type Config struct {
	// Number of players (and boards) in the exhibition.
	Players int

	// Player thinking time per move, drawn uniformly from the
	// inclusive range [ThinkMin, ThinkMax] time units.
	ThinkMin int
	ThinkMax int

	// Grandmaster thinking time per move, same scheme.
	GrandmasterThinkMin int
	GrandmasterThinkMax int

	// Per-move resignation probabilities.
	ResignAfterThinking float64
	ResignWhenPressed   float64
	GrandmasterResign   float64

	// Wall-clock length of one time unit.
	TimeUnit time.Duration

	// Seed for the default Randomizers. Zero seeds from the clock.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Players:             DefaultPlayers,
		ThinkMin:            DefaultThinkMin,
		ThinkMax:            DefaultThinkMax,
		GrandmasterThinkMin: DefaultGrandmasterThinkMin,
		GrandmasterThinkMax: DefaultGrandmasterThinkMax,
		ResignAfterThinking: DefaultResignAfterThinking,
		ResignWhenPressed:   DefaultResignWhenPressed,
		GrandmasterResign:   DefaultGrandmasterResign,
		TimeUnit:            DefaultTimeUnit,
	}
}

// check the configuration is playable
func (c Config) validate() error {
	if c.Players < 1 {
		return fmt.Errorf("Exhibition must have at least 1 player (%v)", c.Players)
	}
	if c.ThinkMin < 0 || c.ThinkMax < c.ThinkMin {
		return fmt.Errorf("Invalid player think range [%v, %v]", c.ThinkMin, c.ThinkMax)
	}
	if c.GrandmasterThinkMin < 0 || c.GrandmasterThinkMax < c.GrandmasterThinkMin {
		return fmt.Errorf("Invalid grandmaster think range [%v, %v]",
			c.GrandmasterThinkMin, c.GrandmasterThinkMax)
	}
	for _, p := range []float64{c.ResignAfterThinking, c.ResignWhenPressed, c.GrandmasterResign} {
		if p < 0 || p > 1 {
			return fmt.Errorf("Resignation probability %v outside [0, 1]", p)
		}
	}
	if c.TimeUnit <= 0 {
		return fmt.Errorf("Time unit must be positive (%v)", c.TimeUnit)
	}
	return nil
}

// thinkTime converts a unit range to wall-clock bounds.
func (c Config) thinkTime(min, max int) (time.Duration, time.Duration) {
	return time.Duration(min) * c.TimeUnit, time.Duration(max) * c.TimeUnit
}

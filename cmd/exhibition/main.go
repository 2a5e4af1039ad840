package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pacs008/exhibition"
	log "github.com/sirupsen/logrus"
)

// Run a chess exhibition to completion. Flags override environment
// variables, which override the built-in defaults; a .env file in the
// working directory is loaded first if present.
func main() {
	_ = godotenv.Load()

	players := flag.Int("players", envInt("EXHIBITION_PLAYERS", exhibition.DefaultPlayers),
		"number of players in the exhibition")
	seed := flag.Uint64("seed", envUint("EXHIBITION_SEED", 0),
		"random seed (0 seeds from the clock)")
	unit := flag.Duration("unit", envDuration("EXHIBITION_UNIT", exhibition.DefaultTimeUnit),
		"wall-clock length of one simulation time unit")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := log.InfoLevel
	if *verbose {
		level = log.DebugLevel
	}
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		parsed, err := log.ParseLevel(s)
		if err != nil {
			log.Fatalf("Bad LOG_LEVEL %q: %v", s, err)
		}
		level = parsed
	}
	log.SetLevel(level)

	ex, err := exhibition.BuildExhibition().
		WithPlayers(*players).
		WithSeed(*seed).
		WithTimeUnit(*unit).
		Build()
	if err != nil {
		log.Fatalf("Bad configuration: %v", err)
	}

	log.Infof("Exhibition starting with %v players", ex.Players())
	if err := ex.Run(); err != nil {
		log.Fatalf("Exhibition failed: %v", err)
	}
	log.Info("Exhibition complete")
}

func envInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
		log.Warnf("Ignoring bad %v=%q", key, s)
	}
	return fallback
}

func envUint(key string, fallback uint64) uint64 {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			return v
		}
		log.Warnf("Ignoring bad %v=%q", key, s)
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if s := os.Getenv(key); s != "" {
		if v, err := time.ParseDuration(s); err == nil {
			return v
		}
		log.Warnf("Ignoring bad %v=%q", key, s)
	}
	return fallback
}

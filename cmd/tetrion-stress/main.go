package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetrion/session"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 1, "Seed for the first game; each following game uses the next seed.")
	frameRate := flag.Int("fps", 60, "Simulated frames per second.")
	actionRate := flag.Float64("actions", 0.5, "Probability that the bot issues a command on a frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := session.LoadConfigFromEnv()
	dt := 1 / float64(*frameRate)

	log.Println("Starting tetrion stress test...")

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		FrameRate:      *frameRate,
		Gravity:        cfg.Gravity,
		LockDelay:      cfg.LockDelay,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running games for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

Loop:
	for game := uint64(0); ; game++ {
		cfg.Seed = *seed + game
		s, err := session.New(cfg, session.WithLogger(quiet))
		if err != nil {
			log.Fatalf("Failed to start game: %v", err)
		}
		bot := newBot(cfg.Seed, *actionRate)

		for !s.Over() {
			select {
			case <-ctx.Done():
				report.add(s.Stats(), false)
				break Loop
			default:
			}

			bot.play(s)

			updateStart := time.Now()
			s.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}

		report.add(s.Stats(), true)
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// bot issues random player commands, leaning towards moves and hard drops
type bot struct {
	rng        *rand.Rand
	actionRate float64
}

func newBot(seed uint64, actionRate float64) *bot {
	return &bot{
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		actionRate: actionRate,
	}
}

func (b *bot) play(s *session.Session) {
	if !s.Current().HasFallingPiece() || b.rng.Float64() >= b.actionRate {
		return
	}
	cmd := session.PlayerCommands[b.rng.IntN(len(session.PlayerCommands))]
	if err := s.Apply(cmd); err != nil && !errors.Is(err, session.ErrGameOver) {
		log.Printf("Unexpected command failure: %v", err)
	}
}

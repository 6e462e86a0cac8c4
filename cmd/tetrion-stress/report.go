package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetrion/session"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Seed      uint64
	FrameRate int
	Gravity   float64
	LockDelay time.Duration

	// Results
	GamesFinished  int
	Frames         int64
	PiecesLocked   int64
	LinesCleared   int64
	HardDrops      int64
	LongestGame    int64
	TotalTime      time.Duration
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

func (r *Report) add(stats session.Stats, finished bool) {
	if finished {
		r.GamesFinished++
	}
	r.Frames += stats.Frames
	r.PiecesLocked += stats.PiecesLocked
	r.LinesCleared += stats.LinesCleared
	r.HardDrops += stats.HardDrops
	if stats.PiecesLocked > r.LongestGame {
		r.LongestGame = stats.PiecesLocked
	}
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetrion Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **First Seed:** {{.Seed}}
- **Simulated FPS:** {{.FrameRate}}
- **Gravity:** {{.Gravity}} rows/s
- **Lock Delay:** {{.LockDelay}}

## Game Results
- **Games Finished:** {{.GamesFinished}}
- **Frames:** {{.Frames}}
- **Pieces Locked:** {{.PiecesLocked}} (longest game: {{.LongestGame}})
- **Lines Cleared:** {{.LinesCleared}}
- **Hard Drops:** {{.HardDrops}}

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}

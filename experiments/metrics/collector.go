package metrics

import (
	"sync/atomic"
	"time"
)

// GameMetric describes one finished game.
type GameMetric struct {
	Outcome     string
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	Plays       int // Tiles placed by both sides
	Draws       int // Tiles drawn by both sides
	PlayerDraws int
	Passes      int
	BoardLength int
}

type Collector interface {
	Start()
	AddPlayerDraw()
	AddPass()
	Complete(outcome string, plays, draws, boardLength int) GameMetric
}

type collector struct {
	startTime   time.Time
	playerDraws atomic.Int32
	passes      atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.playerDraws.Store(0)
	m.passes.Store(0)
}

func (m *collector) AddPlayerDraw() {
	m.playerDraws.Add(1)
}

func (m *collector) AddPass() {
	m.passes.Add(1)
}

func (m *collector) Complete(outcome string, plays, draws, boardLength int) GameMetric {
	end := time.Now()
	return GameMetric{
		Outcome:     outcome,
		StartTime:   m.startTime,
		EndTime:     end,
		Duration:    end.Sub(m.startTime),
		Plays:       plays,
		Draws:       draws,
		PlayerDraws: int(m.playerDraws.Load()),
		Passes:      int(m.passes.Load()),
		BoardLength: boardLength,
	}
}

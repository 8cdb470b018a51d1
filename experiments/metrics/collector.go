package metrics

import (
	"time"

	"othello/game"
)

type SearchMetric struct {
	MaxDepth  int
	MaxTime   time.Duration
	MaxNodes  int
	Depth     int // Deepest completed iteration
	Nodes     int
	Cutoffs   int
	TableHits int
	Duration  time.Duration
	Score     int // Root score of the deepest completed iteration, from the mover's view
	Aborted   bool
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Position
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Result         game.Result
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

// Collector accumulates the counters of a single search call. The search
// runs on one goroutine so implementations need no synchronisation.
type Collector interface {
	Start(maxDepth int, maxTime time.Duration, maxNodes int)
	AddNode()
	AddCutoff()
	AddTableHit()
	CompleteDepth(depth, score int)
	SetAborted()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(maxDepth int, maxTime time.Duration, maxNodes int) {
	m.startTime = time.Now()
	m.metric = SearchMetric{
		MaxDepth: maxDepth,
		MaxTime:  maxTime,
		MaxNodes: maxNodes,
	}
}

func (m *collector) AddNode() {
	m.metric.Nodes++
}

func (m *collector) AddCutoff() {
	m.metric.Cutoffs++
}

func (m *collector) AddTableHit() {
	m.metric.TableHits++
}

func (m *collector) CompleteDepth(depth, score int) {
	m.metric.Depth = depth
	m.metric.Score = score
}

func (m *collector) SetAborted() {
	m.metric.Aborted = true
}

func (m *collector) Complete() SearchMetric {
	m.metric.Duration = time.Since(m.startTime)
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(maxDepth int, maxTime time.Duration, maxNodes int) {}
func (m *dummyCollector) AddNode()                                                {}
func (m *dummyCollector) AddCutoff()                                              {}
func (m *dummyCollector) AddTableHit()                                            {}
func (m *dummyCollector) CompleteDepth(depth, score int)                          {}
func (m *dummyCollector) SetAborted()                                             {}
func (m *dummyCollector) Complete() SearchMetric                                  { return SearchMetric{} }

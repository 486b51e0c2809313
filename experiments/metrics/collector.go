package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	MaxDepth     int
	MaxSequences int
	Duration     time.Duration
	Nodes        int
	Sequences    int
	IsTruncated  bool
}

type MoveMetric struct {
	Turn   int
	Player int // Player ID
	SearchMetric
}

type GameMetric struct {
	ID             string
	Index          int
	StartingPlayer int // Player ID
	Winner         string
	Loser          string
	Reason         string
	Turns          int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

type Collector interface {
	Start(maxDepth, maxSequences int)
	SetTruncated()
	AddNode()
	AddSequence()
	Complete() SearchMetric
}

type collector struct {
	maxDepth     int
	maxSequences int
	startTime    time.Time
	nodes        atomic.Int32
	sequences    atomic.Int32
	isTruncated  atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(maxDepth, maxSequences int) {
	m.startTime = time.Now()
	m.maxDepth = maxDepth
	m.maxSequences = maxSequences
}

func (m *collector) SetTruncated() {
	m.isTruncated.Store(true)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddSequence() {
	m.sequences.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		MaxDepth:     m.maxDepth,
		MaxSequences: m.maxSequences,
		Duration:     time.Since(m.startTime),
		Nodes:        int(m.nodes.Load()),
		Sequences:    int(m.sequences.Load()),
		IsTruncated:  m.isTruncated.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(maxDepth, maxSequences int) {}
func (m *dummyCollector) SetTruncated()                    {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddSequence()                     {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }

// Package searcher enumerates the action sequences a player can take during
// one turn.
package searcher

import (
	"hearth/experiments/metrics"
	"hearth/game"
)

const (
	DefaultMaxDepth     = 8
	DefaultMaxSequences = 2000
)

type Option func(s *Searcher)

// Searcher walks the tree of legal actions depth first and records every
// prefix it visits as a candidate sequence.
type Searcher struct {
	maxDepth     int
	maxSequences int
	dedupe       bool
	newCollector func() metrics.Collector
}

// WithMaxDepth bounds the number of actions in one sequence.
func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithMaxSequences bounds the size of the returned collection.
func WithMaxSequences(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.maxSequences = n
		}
	}
}

// WithDedupe keeps only the first sequence reaching each distinct world.
func WithDedupe(dedupe bool) Option {
	return func(s *Searcher) {
		s.dedupe = dedupe
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.newCollector = metrics.NewCollector
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		maxDepth:     DefaultMaxDepth,
		maxSequences: DefaultMaxSequences,
		dedupe:       true,
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

type search struct {
	*Searcher
	me      game.PlayerID
	result  *game.Collection
	seen    map[uint64]bool
	metrics metrics.Collector
}

// Search returns every sequence me can play from w, starting with the empty
// one. w is not modified.
func (s *Searcher) Search(w *game.World, me game.PlayerID) (*game.Collection, metrics.SearchMetric) {
	run := &search{
		Searcher: s,
		me:       me,
		result:   game.NewCollection(me),
		seen:     map[uint64]bool{},
		metrics:  s.newCollector(),
	}
	run.metrics.Start(s.maxDepth, s.maxSequences)
	run.expand(game.NewSequence(w.Copy()))
	return run.result, run.metrics.Complete()
}

func (r *search) expand(seq *game.Sequence) {
	r.metrics.AddNode()
	w := seq.World()
	if r.dedupe {
		h := w.Hash()
		if r.seen[h] {
			return
		}
		r.seen[h] = true
	}
	if r.full() {
		return
	}
	r.result.Add(seq)
	r.metrics.AddSequence()

	if _, over := w.Loser(); over {
		return
	}
	actions := w.LegalActions(r.me)
	if seq.Len()-1 >= r.maxDepth {
		if len(actions) > 0 {
			r.metrics.SetTruncated()
		}
		return
	}
	for _, a := range actions {
		if !inOrder(seq, a) {
			continue
		}
		seq.Update(a, w.Play(a))
		r.expand(seq)
		seq.Pop(w)
		if r.full() {
			return
		}
	}
}

func (r *search) full() bool {
	if r.result.Len() >= r.maxSequences {
		r.metrics.SetTruncated()
		return true
	}
	return false
}

// inOrder prunes permutations of back to back minion plays: they are only
// explored with card names in ascending order.
func inOrder(seq *game.Sequence, a game.Action) bool {
	next, ok := a.(game.MinionPlay)
	if !ok {
		return true
	}
	prev, ok := seq.Latest().(game.MinionPlay)
	if !ok {
		return true
	}
	return next.Card.Name >= prev.Card.Name
}

package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"hearth/experiments/metrics"
	"hearth/game"
)

const DefaultWindow = 1000

// Match alternates turns between player1 (odd turns) and player2 (even
// turns) until one of them loses. It can be played many times; both agents
// are reset after every match.
type Match struct {
	player1 Agent
	player2 Agent
	window  *Window
	played  int
}

func NewMatch(player1, player2 Agent, window int) *Match {
	if player1 == nil || player2 == nil {
		panic("need two players")
	}
	if player1.ID() != game.Player1 || player2.ID() != game.Player2 {
		panic(fmt.Sprintf("players seated as %s and %s", player1.ID(), player2.ID()))
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Match{
		player1: player1,
		player2: player2,
		window:  NewWindow(window),
	}
}

func (m *Match) opponent(a Agent) Agent {
	if a == m.player1 {
		return m.player2
	}
	return m.player1
}

// WinRate is player1's win rate over the recent matches kept in the window.
func (m *Match) WinRate() (rate float64, matches int) {
	return m.window.Rate(), m.window.Len()
}

// Run plays the next match.
func (m *Match) Run() (string, metrics.GameMetric, []metrics.MoveRecord) {
	gameMetric, moveRecords := m.PlayOne(m.played)
	return gameMetric.Winner, gameMetric, moveRecords
}

// PlayN plays n matches in a row.
func (m *Match) PlayN(n int) ([]metrics.GameMetric, []metrics.MoveRecord) {
	start := time.Now()
	var gameMetrics []metrics.GameMetric
	var moveRecords []metrics.MoveRecord
	for i := 0; i < n; i++ {
		g, moves := m.PlayOne(m.played)
		gameMetrics = append(gameMetrics, g)
		moveRecords = append(moveRecords, moves...)
	}
	log.Info().Msgf("playing %d matches takes %v", n, time.Since(start))
	return gameMetrics, moveRecords
}

// PlayOne plays a single match to the end and resets both players.
func (m *Match) PlayOne(idx int) (metrics.GameMetric, []metrics.MoveRecord) {
	start := time.Now()
	p1, p2 := m.player1.Record(), m.player2.Record()

	var (
		w      *game.World
		winner Agent
		reason string
		over   bool
	)
	turn := 0
	for !over {
		turn++
		active := m.player2
		if turn%2 == 1 {
			active = m.player1
		}

		noCard := active.TurnBeginInit(turn)
		w = game.Build(p1, p2, turn)
		log.Debug().Msgf("Turn %d. %v", turn, active)

		if noCard {
			winner = m.opponent(active)
			reason = fmt.Sprintf("%s has no card to draw", active.Record().Name)
			break
		}

		if turn > 2 {
			active.PostAction(w, false, false)
		}

		a := active.SearchAndPickAction(w)
		for a.Kind() != game.NullKind {
			w = w.Play(a)
			w.Commit(p1, p2)
			log.Debug().Msgf("%v\n%v", a, w)
			winner, reason, over = m.CheckForMatchEnd(w)
			if over {
				break
			}
			active.PostAction(w, false, false)
			a = active.SearchAndPickAction(w)
		}
	}

	loser := m.opponent(winner)
	gameMetric := metrics.GameMetric{
		ID:             uuid.NewString(),
		Index:          idx,
		StartingPlayer: int(game.Player1),
		Winner:         winner.Record().Name,
		Loser:          loser.Record().Name,
		Reason:         reason,
		Turns:          turn,
		StartTime:      start,
		EndTime:        time.Now(),
	}
	gameMetric.Duration = gameMetric.EndTime.Sub(start)
	moveRecords := m.postOneMatch(w, winner, loser, gameMetric)
	return gameMetric, moveRecords
}

// CheckForMatchEnd reports whether a hero is dead in w. Player1 is checked
// first, so it loses when both heroes die at once.
func (m *Match) CheckForMatchEnd(w *game.World) (winner Agent, reason string, over bool) {
	loser, over := w.Loser()
	if !over {
		return nil, "", false
	}
	if loser == game.Player1 {
		return m.player2, "player1 health<=0", true
	}
	return m.player1, "player2 health<=0", true
}

func (m *Match) postOneMatch(w *game.World, winner, loser Agent, g metrics.GameMetric) []metrics.MoveRecord {
	log.Info().Msgf("%dth match ends at turn %d. winner=%s, loser=%s, reason=%s",
		g.Index, g.Turns, g.Winner, g.Loser, g.Reason)
	winner.PostAction(w, true, true)
	loser.PostAction(w, true, false)
	m.window.Add(winner == m.player1)
	m.player1.PostMatch()
	m.player2.PostMatch()
	m.played++

	rate, n := m.WinRate()
	log.Info().Msgf("last %d player 1 win rate: %.3f", n, rate)

	moves := append(slices.Clone(m.player1.Moves()), m.player2.Moves()...)
	slices.SortStableFunc(moves, func(a, b metrics.MoveMetric) int {
		return a.Turn - b.Turn
	})
	records := make([]metrics.MoveRecord, len(moves))
	for i, move := range moves {
		records[i] = metrics.MoveRecord{Game: g.ID, MoveMetric: move}
	}

	m.player1.Reset()
	m.player2.Reset()
	return records
}

package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// killerSlots holds the two most recent quiet moves that caused a beta
// cutoff at a given ply, preferred during move ordering.
type killerSlots [2]Move

// Searcher owns everything long-lived across one search call: the
// transposition table (retained across calls), killer moves and history
// scores (cleared at the start of each call), and node/timing counters.
// It never touches process-global state, so independent Searchers can
// coexist in one process.
type Searcher struct {
	tt      *TranspositionTable
	killers [MaxPly]killerSlots
	history [2][64][64]int

	logger zerolog.Logger

	nodes      int64
	ttHits     int64
	startTime  time.Time
	maxTimeMS  int64
	timeUp     bool
	ctx        context.Context
}

// NewSearcher constructs a Searcher with its own transposition table sized
// for hashSizeMB megabytes. A nil logger disables logging entirely, so a
// Searcher never writes anything unless a caller opts in.
func NewSearcher(hashSizeMB int, logger *zerolog.Logger) *Searcher {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Searcher{
		tt:     NewTranspositionTable(hashSizeMB),
		logger: l,
	}
}

// Result summarizes one Search call's outcome and diagnostics.
type Result struct {
	BestMove Move
	Score    int
	Depth    int
	Nodes    int64
	ElapsedMS int64
	TTHits   int64
	TTStores int64
}

// Search runs iterative deepening from depth 1 to maxDepth (0 means
// unbounded, capped at 100 since time governs it), returning once the
// budget is exhausted, ctx is canceled, or a mate score is found.
// timeBudgetMS <= 0 disables the internal clock (ctx cancellation still
// works). Killers and history are cleared at the start of every call; the
// transposition table persists across calls on the same Searcher.
func (s *Searcher) Search(ctx context.Context, b *Board, maxDepth int, timeBudgetMS int64) Result {
	s.ctx = ctx
	s.startTime = time.Now()
	s.maxTimeMS = timeBudgetMS
	s.timeUp = false
	s.nodes = 0
	s.ttHits = 0
	s.killers = [MaxPly]killerSlots{}
	s.history = [2][64][64]int{}

	var result Result

	var legal [MaxMoves]Move
	n := b.GenerateLegalMoves(legal[:])
	if n == 0 {
		result.ElapsedMS = time.Since(s.startTime).Milliseconds()
		return result
	}
	result.BestMove = legal[0]

	if maxDepth <= 0 {
		maxDepth = 100
	}

	for depth := 1; depth <= maxDepth; depth++ {
		var best Move
		var score int

		if depth >= 5 {
			delta := 50
			alpha := result.Score - delta
			beta := result.Score + delta
			score, best = s.rootSearch(b, depth, alpha, beta)
			if s.timeUp {
				break
			}
			if score <= alpha || score >= beta {
				score, best = s.rootSearch(b, depth, -Infinity, Infinity)
			}
		} else {
			score, best = s.rootSearch(b, depth, -Infinity, Infinity)
		}

		if s.timeUp && depth > 1 {
			break
		}

		if !best.IsNull() {
			result.BestMove = best
			result.Score = score
			result.Depth = depth
			s.logger.Debug().
				Int("depth", depth).
				Int("score", score).
				Int64("nodes", s.nodes).
				Str("move", best.UCI()).
				Msg("iteration complete")
		}

		if abs(score) > MateScore-100 {
			break
		}

		elapsed := time.Since(s.startTime).Milliseconds()
		if timeBudgetMS > 0 && elapsed > timeBudgetMS/2 {
			break
		}
	}

	result.Nodes = s.nodes
	result.ElapsedMS = time.Since(s.startTime).Milliseconds()
	result.TTHits = s.ttHits
	result.TTStores = s.tt.Stores()
	return result
}

// checkTime polls the wall clock and ctx every 4096 nodes; once time_up
// latches, every pending recursive call unwinds returning 0.
func (s *Searcher) checkTime() {
	if s.nodes&4095 != 0 {
		return
	}
	if s.ctx != nil && s.ctx.Err() != nil {
		s.timeUp = true
		return
	}
	if s.maxTimeMS <= 0 {
		return
	}
	if time.Since(s.startTime).Milliseconds() >= s.maxTimeMS {
		s.timeUp = true
	}
}

// rootSearch generates legal moves, orders them, and negamax-scores each
// child at the top level. It always walks the full move list rather than
// trusting a stored TT score, per the reference's root-search design:
// the TT is consulted only for move-ordering at the root.
func (s *Searcher) rootSearch(b *Board, depth, alpha, beta int) (int, Move) {
	var moves [MaxMoves]Move
	n := b.GenerateLegalMoves(moves[:])
	if n == 0 {
		if b.InCheck() {
			return -MateScore, Move{}
		}
		return 0, Move{}
	}

	var scores [MaxMoves]int
	_, ttBest, _ := s.tt.Probe(b.Hash, 0, -Infinity, Infinity)
	s.scoreMoves(b, moves[:n], n, 0, ttBest, scores[:n])

	bestScore := -Infinity
	bestMove := moves[0]
	a := alpha

	var undo UndoInfo
	for i := 0; i < n; i++ {
		sortMoves(moves[:], scores[:], n, i)

		b.MakeMove(moves[i], &undo)
		score := -s.alphaBeta(b, depth-1, -beta, -a, 1, true)
		b.UnmakeMove(moves[i], undo)

		if s.timeUp {
			break
		}

		if score > bestScore {
			bestScore = score
			bestMove = moves[i]
		}
		if score > a {
			a = score
		}
	}

	s.tt.Store(b.Hash, depth, bestScore, TTExact, bestMove)
	return bestScore, bestMove
}

// alphaBeta is the negamax core: check extension, null-move pruning, late
// move reductions, and TT-backed move ordering, exactly per the reference
// search's structure.
func (s *Searcher) alphaBeta(b *Board, depth, alpha, beta, ply int, nullOK bool) int {
	s.nodes++
	s.checkTime()
	if s.timeUp {
		return 0
	}

	if b.IsDraw() {
		return 0
	}

	ttScore, ttBest, ttHit := s.tt.Probe(b.Hash, depth, alpha, beta)
	if ttHit && ply > 0 {
		s.ttHits++
		return ttScore
	}

	if depth <= 0 {
		return s.quiescence(b, alpha, beta, ply)
	}

	inCheck := b.InCheck()
	if inCheck {
		depth++
	}

	if nullOK && !inCheck && depth >= 3 && !IsEndgame(b) {
		r := 2
		if depth >= 6 {
			r = 3
		}
		var undo UndoInfo
		b.MakeNullMove(&undo)
		nullScore := -s.alphaBeta(b, depth-1-r, -beta, -beta+1, ply+1, false)
		b.UnmakeNullMove(undo)
		if s.timeUp {
			return 0
		}
		if nullScore >= beta {
			return beta
		}
	}

	var moves [MaxMoves]Move
	n := b.GenerateLegalMoves(moves[:])
	if n == 0 {
		if inCheck {
			return -(MateScore - ply)
		}
		return 0
	}

	var scores [MaxMoves]int
	s.scoreMoves(b, moves[:n], n, ply, ttBest, scores[:n])

	bestScore := -Infinity
	bestMove := moves[0]
	flag := TTUpper

	var undo UndoInfo
	for i := 0; i < n; i++ {
		sortMoves(moves[:], scores[:], n, i)
		m := moves[i]

		isCap := m.Captured != Empty
		isPromo := m.Promotion != Empty

		b.MakeMove(m, &undo)
		givesCheck := b.InCheck()

		var score int
		if i >= 3 && depth >= 3 && !inCheck && !givesCheck && !isCap && !isPromo {
			r := 1
			if i >= 6 {
				r++
			}
			if depth >= 6 {
				r++
			}
			score = -s.alphaBeta(b, depth-1-r, -alpha-1, -alpha, ply+1, true)
			if score > alpha {
				score = -s.alphaBeta(b, depth-1, -beta, -alpha, ply+1, true)
			}
		} else {
			score = -s.alphaBeta(b, depth-1, -beta, -alpha, ply+1, true)
		}

		b.UnmakeMove(m, undo)
		if s.timeUp {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}

		if score > alpha {
			alpha = score
			flag = TTExact

			if score >= beta {
				flag = TTLower
				if !isCap && !isPromo && ply < MaxPly {
					if !m.Equal(s.killers[ply][0]) {
						s.killers[ply][1] = s.killers[ply][0]
						s.killers[ply][0] = m
					}
					side := PieceSide(b.Squares[m.From])
					s.history[side][m.From][m.To] += depth * depth
					if s.history[side][m.From][m.To] > 1000000 {
						s.ageHistory()
					}
				}
				break
			}
		}
	}

	s.tt.Store(b.Hash, depth, bestScore, flag, bestMove)
	return bestScore
}

// ageHistory right-shifts every history entry by 1, keeping the table from
// saturating over a long search.
func (s *Searcher) ageHistory() {
	for side := range s.history {
		for from := range s.history[side] {
			for to := range s.history[side][from] {
				s.history[side][from][to] >>= 1
			}
		}
	}
}

// quiescence extends the search along captures/promotions only, avoiding
// horizon-effect misjudgments right at the search frontier.
func (s *Searcher) quiescence(b *Board, alpha, beta, ply int) int {
	s.nodes++
	s.checkTime()
	if s.timeUp {
		return 0
	}

	standPat := Evaluate(b)
	if b.Side == Black {
		standPat = -standPat
	}

	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	const bigDelta = 900
	if standPat+bigDelta < alpha {
		return alpha
	}

	var moves [MaxMoves]Move
	n := b.GenerateCaptures(moves[:])

	var scores [MaxMoves]int
	scoreCaptures(b, moves[:n], n, scores[:n])

	var undo UndoInfo
	for i := 0; i < n; i++ {
		sortMoves(moves[:], scores[:], n, i)

		if scores[i] < -200 && !b.InCheck() {
			continue
		}

		b.MakeMove(moves[i], &undo)
		if b.IsAttacked(b.KingSquare[b.Side^1], b.Side) {
			b.UnmakeMove(moves[i], undo)
			continue
		}

		score := -s.quiescence(b, -beta, -alpha, ply+1)
		b.UnmakeMove(moves[i], undo)

		if s.timeUp {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

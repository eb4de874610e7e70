package engine

// Move ordering score bands, highest first.
const (
	scoreTTMove       = 10000000
	scoreCaptureBase  = 5000000
	scorePromoBase    = 4500000
	scoreKiller1      = 4000000
	scoreKiller2      = 3900000
)

// scoreMoves fills scores[i] for each moves[i], using ttMove/killers/history
// from the owning Searcher's state at ply.
func (s *Searcher) scoreMoves(b *Board, moves []Move, n int, ply int, ttMove Move, scores []int) {
	for i := 0; i < n; i++ {
		m := moves[i]
		switch {
		case m.Equal(ttMove) && !ttMove.IsNull():
			scores[i] = scoreTTMove
		case m.Captured != Empty:
			victim := PieceValue[PieceType(m.Captured)]
			attacker := PieceValue[PieceType(b.Squares[m.From])]
			scores[i] = scoreCaptureBase + victim*10 - attacker
		case m.Promotion != Empty:
			scores[i] = scorePromoBase + PieceValue[PieceType(m.Promotion)]
		case ply < MaxPly && m.Equal(s.killers[ply][0]):
			scores[i] = scoreKiller1
		case ply < MaxPly && m.Equal(s.killers[ply][1]):
			scores[i] = scoreKiller2
		default:
			side := PieceSide(b.Squares[m.From])
			scores[i] = s.history[side][m.From][m.To]
		}
	}
}

// sortMoves realizes a partial selection sort: it finds the best-scored
// move at or after start and swaps it into start. Called once per index
// before that move is visited, so it pays O(n) per expanded move instead
// of sorting the whole list up front — cheaper when beta cutoffs happen
// early, which they usually do.
func sortMoves(moves []Move, scores []int, n int, start int) {
	best := start
	for i := start + 1; i < n; i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	if best != start {
		moves[start], moves[best] = moves[best], moves[start]
		scores[start], scores[best] = scores[best], scores[start]
	}
}

// scoreCaptures scores quiescence's capture-only move list by plain
// MVV-LVA, with no TT/killer/history involvement.
func scoreCaptures(b *Board, moves []Move, n int, scores []int) {
	for i := 0; i < n; i++ {
		victim := PieceValue[PieceType(moves[i].Captured)]
		attacker := PieceValue[PieceType(b.Squares[moves[i].From])]
		scores[i] = victim*10 - attacker
	}
}

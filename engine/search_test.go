package engine

import (
	"context"
	"testing"
)

func TestSearchFindsMateInOne(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	s := NewSearcher(1, nil)
	res := s.Search(context.Background(), b, 4, 5000)

	if res.BestMove.UCI() != "a1a8" {
		t.Errorf("best move = %s, want a1a8", res.BestMove.UCI())
	}
	if res.Score < MateScore-10 {
		t.Errorf("score = %d, want a near-mate score", res.Score)
	}
}

func TestSearchStalemateReturnsNullMoveAndZeroScore(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	s := NewSearcher(1, nil)
	res := s.Search(context.Background(), b, 4, 1000)

	if !res.BestMove.IsNull() {
		t.Errorf("expected null best move in stalemate, got %s", res.BestMove.UCI())
	}
	if res.Score != 0 {
		t.Errorf("expected score 0 in stalemate, got %d", res.Score)
	}
}

func TestSearchRespectsContextCancellation(t *testing.T) {
	b := NewBoard()
	s := NewSearcher(1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := s.Search(ctx, b, 20, 0)
	if res.BestMove.IsNull() {
		t.Errorf("even a canceled search should return one of the root legal moves")
	}
}

func TestSearchRootDoesNotTrustStaleTTScore(t *testing.T) {
	b := NewBoard()
	s := NewSearcher(1, nil)

	// Poison the table with a bogus exact score for the root position at a
	// deep draft; rootSearch must still walk the full move list rather than
	// returning this stored score untouched.
	s.tt.Store(b.Hash, 30, 12345, TTExact, Move{})

	res := s.Search(context.Background(), b, 3, 5000)
	if res.Score == 12345 {
		t.Errorf("root search must not trust a stored TT score directly")
	}
}

func TestSearchCompletesAtLeastOneIteration(t *testing.T) {
	b := NewBoard()
	s := NewSearcher(1, nil)
	res := s.Search(context.Background(), b, 3, 5000)
	if res.Depth < 1 {
		t.Errorf("expected at least depth 1 to complete, got %d", res.Depth)
	}
	if res.Nodes == 0 {
		t.Errorf("expected search to visit nodes")
	}
}

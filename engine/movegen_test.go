package engine

import "testing"

// perft counts leaf positions at depth by exhaustively making and
// unmaking every legal move, the classical move-generator correctness
// check.
func perft(b *Board, depth int) int {
	if depth == 0 {
		return 1
	}
	var moves [MaxMoves]Move
	n := b.GenerateLegalMoves(moves[:])
	if depth == 1 {
		return n
	}
	count := 0
	var undo UndoInfo
	for i := 0; i < n; i++ {
		b.MakeMove(moves[i], &undo)
		count += perft(b, depth-1)
		b.UnmakeMove(moves[i], undo)
	}
	return count
}

func TestPerftInitialPosition(t *testing.T) {
	want := []int{20, 400, 8902, 197281, 4865609}
	for depth, expected := range want {
		b := NewBoard()
		got := perft(b, depth+1)
		if got != expected {
			t.Errorf("perft(%d) = %d, want %d", depth+1, got, expected)
		}
	}
}

func TestGenerateLegalMovesExcludesSelfCheck(t *testing.T) {
	// White knight on e3 pinned to its king on the e-file by a black rook;
	// the pinned knight may not move off the file.
	b := &Board{}
	if err := b.SetFEN("4r3/8/8/8/8/4N3/8/4K3 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	var pseudo [MaxMoves]Move
	pn := b.GeneratePseudoMoves(pseudo[:])

	var legal [MaxMoves]Move
	ln := b.GenerateLegalMoves(legal[:])

	for i := 0; i < pn; i++ {
		m := pseudo[i]
		if m.From == uint8(MakeSquare(4, 2)) && SquareFile(int(m.To)) != 4 {
			for j := 0; j < ln; j++ {
				if legal[j].Equal(m) {
					t.Errorf("pinned knight move %s should have been excluded", m.UCI())
				}
			}
		}
	}
}

func TestEnPassantCapture(t *testing.T) {
	b := NewBoard()
	for _, uci := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		m := b.MoveFromUCI(uci)
		var undo UndoInfo
		b.MakeMove(m, &undo)
	}
	if b.EPSquare != MakeSquare(3, 5) {
		t.Fatalf("expected ep square d6, got file=%d rank=%d", SquareFile(b.EPSquare), SquareRank(b.EPSquare))
	}

	var moves [MaxMoves]Move
	n := b.GenerateLegalMoves(moves[:])
	found := false
	for i := 0; i < n; i++ {
		if moves[i].From == uint8(MakeSquare(4, 4)) && moves[i].To == uint8(MakeSquare(3, 5)) {
			if moves[i].Flags&FlagEP == 0 {
				t.Errorf("e5d6 missing en-passant flag")
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("e5d6 en-passant capture not generated")
	}
}

func TestCastlingThroughCheckIllegal(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("5r2/8/8/8/8/8/8/4K2R w K - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	var moves [MaxMoves]Move
	n := b.GenerateLegalMoves(moves[:])
	for i := 0; i < n; i++ {
		if moves[i].Flags&FlagCastle != 0 {
			t.Errorf("castling move %s generated despite rook attacking the f-file transit square", moves[i].UCI())
		}
	}
}

func TestPromotionChoices(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("7k/4P3/8/8/8/8/8/7K w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	var moves [MaxMoves]Move
	n := b.GenerateLegalMoves(moves[:])

	want := map[Piece]bool{Queen: false, Rook: false, Bishop: false, Knight: false}
	for i := 0; i < n; i++ {
		m := moves[i]
		if m.From == uint8(MakeSquare(4, 6)) && m.To == uint8(MakeSquare(4, 7)) {
			want[PieceType(m.Promotion)] = true
		}
	}
	for pt, seen := range want {
		if !seen {
			t.Errorf("missing promotion to piece type %d", pt)
		}
	}
}

func TestStalemateHasNoLegalMoves(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if !b.IsStalemate() {
		t.Fatalf("expected stalemate")
	}
	if b.InCheck() {
		t.Fatalf("stalemate position must not be in check")
	}
}

func TestCheckmateMateInOne(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	m := b.MoveFromUCI("a1a8")
	if !b.IsLegal(m) {
		t.Fatalf("a1a8 should be legal")
	}
	var undo UndoInfo
	b.MakeMove(m, &undo)
	if !b.IsCheckmate() {
		t.Fatalf("expected checkmate after a1a8")
	}
}

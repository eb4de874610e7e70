package engine

import "testing"

func TestIsAttackedPawn(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("8/8/8/8/3p4/8/8/8 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if !b.IsAttacked(MakeSquare(2, 2), Black) {
		t.Errorf("black pawn on d4 should attack c3")
	}
	if !b.IsAttacked(MakeSquare(4, 2), Black) {
		t.Errorf("black pawn on d4 should attack e3")
	}
	if b.IsAttacked(MakeSquare(3, 1), Black) {
		t.Errorf("black pawn on d4 does not attack d2 (straight ahead)")
	}
}

func TestIsAttackedKnight(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("8/8/8/4N3/8/8/8/8 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if !b.IsAttacked(MakeSquare(5, 6), White) {
		t.Errorf("knight on e5 should attack f7")
	}
	if b.IsAttacked(MakeSquare(4, 6), White) {
		t.Errorf("knight on e5 should not attack e7")
	}
}

func TestIsAttackedSliderStopsAtBlocker(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("8/8/8/8/8/8/8/R3K3 w Q - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if !b.IsAttacked(MakeSquare(3, 0), White) {
		t.Errorf("rook on a1 should attack d1 (path clear)")
	}
	if b.IsAttacked(MakeSquare(6, 0), White) {
		t.Errorf("rook on a1 should not attack g1: own king on e1 blocks the ray")
	}
}

func TestIsAttackedSliderNoWraparound(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("7k/8/8/8/8/8/8/7R w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if b.IsAttacked(MakeSquare(0, 1), White) {
		t.Errorf("rook on h1 must not wrap around the board edge to attack a2")
	}
}

func TestIsAttackedKing(t *testing.T) {
	b := &Board{}
	if err := b.SetFEN("8/8/8/4k3/8/8/8/8 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if !b.IsAttacked(MakeSquare(4, 3), Black) {
		t.Errorf("king on e5 should attack e4")
	}
	if b.IsAttacked(MakeSquare(4, 1), Black) {
		t.Errorf("king on e5 should not attack e2")
	}
}

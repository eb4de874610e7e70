package engine

import "testing"

func TestTTStoreAndProbeExact(t *testing.T) {
	tt := NewTranspositionTable(1)
	m := Move{From: uint8(MakeSquare(4, 1)), To: uint8(MakeSquare(4, 3))}
	tt.Store(0xABCD, 6, 42, TTExact, m)

	score, best, hit := tt.Probe(0xABCD, 6, -Infinity, Infinity)
	if !hit {
		t.Fatalf("expected hit for exact-bound entry covering the requested depth")
	}
	if score != 42 {
		t.Errorf("score = %d, want 42", score)
	}
	if !best.Equal(m) {
		t.Errorf("best move = %v, want %v", best, m)
	}
}

func TestTTProbeMissesOnKeyMismatch(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(0x1111, 6, 10, TTExact, Move{})
	_, _, hit := tt.Probe(0x2222, 6, -Infinity, Infinity)
	if hit {
		t.Fatalf("probe on a different key must not hit")
	}
}

func TestTTProbeRespectsBoundSemantics(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(0x5555, 8, 100, TTLower, Move{})

	// A lower bound of 100 only guarantees a cutoff when beta <= 100.
	if _, _, hit := tt.Probe(0x5555, 8, -Infinity, 150); hit {
		t.Fatalf("lower bound of 100 must not report a hit against beta=150")
	}
	if _, _, hit := tt.Probe(0x5555, 8, -Infinity, 100); !hit {
		t.Fatalf("lower bound of 100 should report a hit against beta=100")
	}

	tt2 := NewTranspositionTable(1)
	tt2.Store(0x6666, 8, -100, TTUpper, Move{})
	if _, _, hit := tt2.Probe(0x6666, 8, -150, Infinity); hit {
		t.Fatalf("upper bound of -100 must not report a hit against alpha=-150")
	}
	if _, _, hit := tt2.Probe(0x6666, 8, -100, Infinity); !hit {
		t.Fatalf("upper bound of -100 should report a hit against alpha=-100")
	}
}

func TestTTStoreReplacesOnlyWhenDeeperOrEmpty(t *testing.T) {
	tt := NewTranspositionTable(1)
	deep := Move{From: uint8(MakeSquare(0, 0)), To: uint8(MakeSquare(0, 1))}
	shallow := Move{From: uint8(MakeSquare(0, 0)), To: uint8(MakeSquare(0, 2))}

	tt.Store(0x9999, 10, 5, TTExact, deep)
	tt.Store(0x9999, 3, 99, TTExact, shallow)

	_, best, _ := tt.Probe(0x9999, 0, -Infinity, Infinity)
	if !best.Equal(deep) {
		t.Errorf("shallower store must not overwrite a deeper entry for the same key, got %v", best)
	}

	tt.Store(0x9999, 12, 7, TTExact, shallow)
	_, best2, _ := tt.Probe(0x9999, 0, -Infinity, Infinity)
	if !best2.Equal(shallow) {
		t.Errorf("deeper-or-equal store must overwrite, got %v", best2)
	}
}

func TestTTClearResetsStoresAndEntries(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(0xAAAA, 4, 1, TTExact, Move{})
	if tt.Stores() != 1 {
		t.Fatalf("expected 1 store, got %d", tt.Stores())
	}
	tt.Clear()
	if tt.Stores() != 0 {
		t.Errorf("Clear should reset the store counter, got %d", tt.Stores())
	}
	if _, _, hit := tt.Probe(0xAAAA, 4, -Infinity, Infinity); hit {
		t.Errorf("Clear should evict all entries")
	}
}

func TestNewTranspositionTableSizeIsPowerOfTwo(t *testing.T) {
	tt := NewTranspositionTable(1)
	n := len(tt.entries)
	if n&(n-1) != 0 {
		t.Errorf("table size %d is not a power of two", n)
	}
	if tt.mask != uint64(n-1) {
		t.Errorf("mask %d does not match size-1 (%d)", tt.mask, n-1)
	}
}

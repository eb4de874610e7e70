package engine

import (
	"context"

	"github.com/rs/zerolog"
)

// SearchRequest describes one search: the position to search from, a
// depth cap (0 = unbounded, governed by the time budget), and a time
// budget in milliseconds (<= 0 disables the internal clock; ctx
// cancellation still applies).
type SearchRequest struct {
	FEN          string
	MaxDepth     int
	TimeBudgetMS int64
}

// SearchResult is the engine's answer: a best move plus search
// diagnostics. BestMove is the zero Move (UCI "0000") when the position
// has no legal moves.
type SearchResult struct {
	BestMove  string
	ScoreCP   int
	Depth     int
	Nodes     int64
	ElapsedMS int64
	TTHits    int64
	TTStores  int64
}

// Engine is the public entry point: one Engine owns one Searcher (and
// thus one transposition table) and can run any number of sequential
// searches. Multiple independent Engines may coexist in a process.
type Engine struct {
	cfg      Config
	searcher *Searcher
	logger   zerolog.Logger
}

// NewEngine constructs an Engine from cfg. An unset Logger disables
// logging entirely (zerolog.Nop()), so building an Engine never writes to
// stderr unless a caller opts in.
func NewEngine(cfg Config) *Engine {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	e := &Engine{
		cfg:    cfg,
		logger: logger,
	}
	e.searcher = NewSearcher(cfg.hashSizeMB(), cfg.Logger)
	e.logger.Debug().Int("hash_mb", cfg.hashSizeMB()).Msg("engine constructed")
	return e
}

// Search parses req.FEN into a board and runs iterative-deepening search
// on it, returning a coordinate-notation best move plus diagnostics. A
// malformed FEN is coerced leniently by Board.SetFEN; callers that need
// strict validation should validate before calling Search.
func (e *Engine) Search(ctx context.Context, req SearchRequest) SearchResult {
	b := NewBoard()
	_ = b.SetFEN(req.FEN)

	if e.cfg.ClearHashOnNewGame {
		e.searcher.tt.Clear()
	}

	res := e.searcher.Search(ctx, b, req.MaxDepth, req.TimeBudgetMS)

	e.logger.Debug().
		Str("fen", req.FEN).
		Str("best_move", res.BestMove.UCI()).
		Int("score_cp", res.Score).
		Int("depth", res.Depth).
		Int64("nodes", res.Nodes).
		Msg("search complete")

	return SearchResult{
		BestMove:  res.BestMove.UCI(),
		ScoreCP:   res.Score,
		Depth:     res.Depth,
		Nodes:     res.Nodes,
		ElapsedMS: res.ElapsedMS,
		TTHits:    res.TTHits,
		TTStores:  res.TTStores,
	}
}

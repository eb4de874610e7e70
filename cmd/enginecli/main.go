// Command enginecli is a thin line-protocol front end over engine.Engine:
// it owns no game rules, no HTTP, and no presentation. Each stdin line is
// either a command (ping, quit) or a position request of the form
// `FEN | max_depth | movetime_ms`, answered with one bestmove line on
// stdout. Diagnostics go to stderr so stdout stays a clean line protocol.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wllclngn/mailbox-chess-engine/engine"
)

const defaultMoveTimeMS = 120000

func main() {
	logLevel := zerolog.InfoLevel
	if lv, err := zerolog.ParseLevel(os.Getenv("ENGINE_LOG_LEVEL")); err == nil {
		logLevel = lv
	}
	logger := zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()

	hashMB := 64
	if v, err := strconv.Atoi(os.Getenv("ENGINE_HASH_MB")); err == nil && v > 0 {
		hashMB = v
	}

	e := engine.NewEngine(engine.Config{HashSizeMB: hashMB, Logger: &logger})

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "quit":
			return
		case "ping":
			fmt.Fprintln(out, "pong")
			out.Flush()
			continue
		}

		req, err := parseRequest(line)
		if err != nil {
			logger.Warn().Err(err).Str("line", line).Msg("malformed request")
			continue
		}

		res := runSearch(e, req)
		fmt.Fprintf(out, "bestmove %s depth %d eval %d nodes %d time %d tt_hits %d tt_stores %d\n",
			res.BestMove, res.Depth, res.ScoreCP, res.Nodes, res.ElapsedMS, res.TTHits, res.TTStores)
		out.Flush()
	}
}

// runSearch builds the per-request context and always releases it before
// returning, rather than deferring to main's return (which would pin every
// request's timer until the whole session ends).
func runSearch(e *engine.Engine, req engine.SearchRequest) engine.SearchResult {
	ctx := context.Background()
	if req.TimeBudgetMS > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(req.TimeBudgetMS)*time.Millisecond)
		defer cancel()
	}
	return e.Search(ctx, req)
}

// parseRequest parses "FEN | max_depth | movetime_ms". Missing movetime
// defaults to 120000ms; missing depth means 0 (purely time-bounded).
func parseRequest(line string) (engine.SearchRequest, error) {
	parts := strings.Split(line, "|")
	if len(parts) == 0 || strings.TrimSpace(parts[0]) == "" {
		return engine.SearchRequest{}, fmt.Errorf("enginecli: empty FEN field in %q", line)
	}

	req := engine.SearchRequest{
		FEN:          strings.TrimSpace(parts[0]),
		MaxDepth:     0,
		TimeBudgetMS: defaultMoveTimeMS,
	}
	if len(parts) > 1 {
		if d, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			req.MaxDepth = d
		}
	}
	if len(parts) > 2 {
		if t, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64); err == nil {
			req.TimeBudgetMS = t
		}
	}
	return req, nil
}

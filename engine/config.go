package engine

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

// Config configures a new Engine. It is immutable after construction;
// changing HashSizeMB requires building a new Engine, matching the
// reference design's "TT lives for the lifetime of one searcher" model.
type Config struct {
	// HashSizeMB is the transposition table budget in megabytes. Zero or
	// negative defaults to 64.
	HashSizeMB int
	// Logger receives structured diagnostics. Nil defaults to a disabled
	// logger (zerolog.Nop()), so constructing an Engine never writes to
	// stderr unless a caller opts in.
	Logger *zerolog.Logger
	// ClearHashOnNewGame, when true, clears the transposition table at
	// the start of every Search call instead of retaining it across
	// moves of the same game.
	ClearHashOnNewGame bool
}

const defaultHashSizeMB = 64

func (c Config) hashSizeMB() int {
	if c.HashSizeMB <= 0 {
		return defaultHashSizeMB
	}
	return c.HashSizeMB
}

// Option is a named, self-validating engine tunable. It mirrors the
// option surface a UCI-style front end would drive, without this module
// speaking UCI itself.
type Option interface {
	Name() string
	String() string
	Set(s string) error
}

// BoolOption is a boolean-valued Option backed by a *bool.
type BoolOption struct {
	OptName string
	Value   *bool
}

func (o *BoolOption) Name() string { return o.OptName }

func (o *BoolOption) String() string {
	return fmt.Sprintf("%s (bool, default %v)", o.OptName, *o.Value)
}

func (o *BoolOption) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*o.Value = v
	return nil
}

// IntOption is an integer-valued Option backed by a *int, with an
// inclusive [Min, Max] range enforced on Set.
type IntOption struct {
	OptName  string
	Min, Max int
	Value    *int
}

func (o *IntOption) Name() string { return o.OptName }

func (o *IntOption) String() string {
	return fmt.Sprintf("%s (int, default %d, min %d, max %d)", o.OptName, *o.Value, o.Min, o.Max)
}

func (o *IntOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < o.Min || v > o.Max {
		return errors.New("engine: option value out of range")
	}
	*o.Value = v
	return nil
}

// Options returns the standard tunable set for cfg, bound to cfg's own
// fields so calling Set on the returned options mutates cfg in place.
func (cfg *Config) Options() []Option {
	return []Option{
		&IntOption{OptName: "HashSizeMB", Min: 1, Max: 4096, Value: &cfg.HashSizeMB},
		&BoolOption{OptName: "ClearHashOnNewGame", Value: &cfg.ClearHashOnNewGame},
	}
}

package beetree

import (
	"cmp"
	"fmt"
)

const (
	// DefaultFanout is the max number of entries per node used when a Config
	// does not set one.
	DefaultFanout = 12
	// MinFanout is the smallest fanout for which a split leaves both halves
	// non-empty.
	MinFanout = 3
)

// Config configures a Map.
type Config[K any] struct {
	// Fanout is the max number of entries per node before a split is required.
	// Zero selects DefaultFanout.
	Fanout int
	// Compare defines the total order of keys. It returns a negative number
	// for a < b, zero for a == b and a positive number for a > b.
	Compare func(a, b K) int
}

// OrderedConfig returns the default configuration for naturally ordered keys.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{
		Fanout:  DefaultFanout,
		Compare: cmp.Compare[K],
	}
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Fanout == 0 {
		cfg.Fanout = DefaultFanout
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Fanout < MinFanout {
		return fmt.Errorf("%w: fanout must be >= %d, is %d", ErrInvalidConfig, MinFanout, cfg.Fanout)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}

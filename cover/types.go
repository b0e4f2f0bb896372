// SPDX-License-Identifier: MIT

package cover

import "errors"

var (
	// ErrNoCover is returned when no subset of buttons XORs to the target lights.
	ErrNoCover = errors.New("cover: no button combination matches the lights")

	// ErrTooManyButtons is returned before searching when the button count
	// exceeds the configured limit.
	ErrTooManyButtons = errors.New("cover: too many buttons for exhaustive search")
)

const (
	// DefaultMaxButtons bounds the search at 2^24 selections.
	DefaultMaxButtons = 24

	// HardMaxButtons is the widest selection mask the search can represent.
	HardMaxButtons = 63
)

const panicMaxButtonsInvalid = "cover: WithMaxButtons: n must be in [0, 63]"

// Option configures MinPresses.
type Option func(*Options)

// Options holds the resolved MinPresses configuration.
type Options struct {
	// MaxButtons is the largest button count MinPresses will search.
	MaxButtons int
}

// WithMaxButtons overrides DefaultMaxButtons. Panics if n is outside [0, HardMaxButtons].
func WithMaxButtons(n int) Option {
	if n < 0 || n > HardMaxButtons {
		panic(panicMaxButtonsInvalid)
	}

	return func(o *Options) { o.MaxButtons = n }
}

// DefaultOptions returns Options with MaxButtons = DefaultMaxButtons.
func DefaultOptions() Options {
	return Options{MaxButtons: DefaultMaxButtons}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}

package sequence

import (
	"strconv"

	"github.com/rs/xid"
)

// TokenSource hands out instance tokens for repeatable components
type TokenSource interface {
	Next() string
}

// TokenSourceFunc adapts a function to TokenSource
type TokenSourceFunc func() string

func (f TokenSourceFunc) Next() string { return f() }

// XIDSource issues globally unique, time-ordered tokens
type XIDSource struct{}

func (XIDSource) Next() string { return xid.New().String() }

// CounterSource issues "c1", "c2", ... and gives stable ids for tests and
// for output that must not change between runs.
type CounterSource struct {
	n int
}

func (c *CounterSource) Next() string {
	c.n++
	return "c" + strconv.Itoa(c.n)
}

type options struct {
	tokens TokenSource
}

// Option configures how components are instantiated
type Option func(*options)

// WithTokenSource replaces the default xid-based token source
func WithTokenSource(src TokenSource) Option {
	return func(o *options) {
		if src != nil {
			o.tokens = src
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{tokens: XIDSource{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

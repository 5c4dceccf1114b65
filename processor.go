package untag

import (
	"log/slog"
	"time"
)

// DefaultMaxDepth is the nesting depth limit used when none is
// configured.
const DefaultMaxDepth = 10000

// ProcessorOption can be used to customise the behaviour of a
// [Processor].
type ProcessorOption func(*Processor)

// Processor decodes type-tagged JSON documents.
//
// Your application should only ever need one of them; a Processor is
// safe for concurrent use since a transform mutates no shared state.
//
// Create one with [NewProcessor] and pass any [ProcessorOption] to
// configure it.
type Processor struct {
	loc      *time.Location
	logger   *slog.Logger
	maxDepth int
}

// NewProcessor creates a new processor.
//
// By default:
//   - Timestamps are interpreted in the system local time zone. Change
//     it with [WithLocation].
//   - Logger is [slog.DiscardHandler]. Set it with [WithLogger]. The
//     logger is only used to emit warnings for skipped malformed
//     structures.
//   - Nesting depth is limited to [DefaultMaxDepth]. Change it with
//     [WithMaxDepth].
func NewProcessor(options ...ProcessorOption) *Processor {
	p := &Processor{
		loc:      time.Local,
		logger:   slog.New(slog.DiscardHandler),
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// WithLocation sets the time zone used to interpret timestamp strings.
//
// The tagged format writes timestamps with a literal Z suffix but the
// inherited behaviour interprets them as wall time in the processor's
// zone, not UTC. Pass [time.UTC] to honor the suffix instead.
func WithLocation(loc *time.Location) ProcessorOption {
	return func(p *Processor) {
		if loc != nil {
			p.loc = loc
		}
	}
}

// WithLogger sets the logger that'll be used to emit warnings during
// processing.
//
// Without a logger, malformed wrappers and unknown tags are dropped
// silently.
func WithLogger(l *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMaxDepth limits how deeply nested a document may be before
// [Processor.Transform] aborts with [ErrDepthExceeded].
func WithMaxDepth(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

package engine

import "go.uber.org/zap"

// DefaultCompactionThreshold is the dead-byte tally a write operation checks
// against to decide whether to trigger an implicit compaction: 1 MiB.
const DefaultCompactionThreshold int64 = 1024 * 1024

// Options collects the configurable parameters of a Store. Zero value fields
// are filled in by Open with the package defaults.
type Options struct {
	// CompactionThreshold is the uncompacted-byte count a write operation
	// compares against after it completes; once exceeded, compact runs
	// implicitly before the write returns.
	CompactionThreshold int64

	// SyncOnWrite, when true, fsyncs the log file after every append on top
	// of the buffered flush the write path always performs. The spec does
	// not require this; it is an optional durability knob.
	SyncOnWrite bool

	// Logger receives structured, purely observational logging from the
	// store. A no-op logger is used when nil.
	Logger *zap.SugaredLogger
}

// Option mutates Options when applied by Open.
type Option func(*Options)

// WithCompactionThreshold overrides the default 1 MiB compaction trigger.
func WithCompactionThreshold(bytes int64) Option {
	return func(o *Options) {
		if bytes > 0 {
			o.CompactionThreshold = bytes
		}
	}
}

// WithSyncOnWrite enables an fsync after every append, in addition to the
// buffered flush the write path always performs.
func WithSyncOnWrite(sync bool) Option {
	return func(o *Options) { o.SyncOnWrite = sync }
}

// WithLogger attaches a structured logger to the store. Passing nil restores
// the no-op default.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *Options) {
		if logger == nil {
			logger = zap.NewNop().Sugar()
		}
		o.Logger = logger
	}
}

func defaultOptions() Options {
	return Options{
		CompactionThreshold: DefaultCompactionThreshold,
		Logger:              zap.NewNop().Sugar(),
	}
}

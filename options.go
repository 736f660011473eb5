package unitable

// DefaultTag is the diagnostic label used when WithTag is not supplied.
const DefaultTag = "unitable"

type options struct {
	tag      string
	capacity int
	logger   *Logger
	metrics  MetricsCollector
}

// Option configures store construction behavior.
//
// Options are shared by both backing stores; an option with no meaning for
// a particular backing (WithCapacity on Persistent) is silently ignored.
type Option func(*options)

func defaultOptions() options {
	return options{
		tag:     DefaultTag,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// WithTag sets the fixed diagnostic label identifying the key/value kind
// stored in this table (e.g. "ty-var", "region-var"). The tag appears in
// log records and contract-violation panics.
func WithTag(tag string) Option {
	return func(o *options) {
		if tag == "" {
			tag = DefaultTag
		}
		o.tag = tag
	}
}

// WithCapacity pre-allocates room for n slots in the in-place store.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger configures structured logging of the snapshot lifecycle.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics configures operational metrics collection.
//
// If nil is passed, collection stays disabled.
func WithMetrics(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

package boruvka

// Edge is one spanning-tree edge in the caller's original point-id space,
// weighted by true-distance mutual reachability (never rdist).
type Edge struct {
	Source int
	Sink   int
	Weight float64
}

// Config controls a single SpanningTree run. Metric choice lives outside
// Config entirely — callers build a distance.Oracle once and pass it to
// NewDriver alongside the TreeView, so Config only ever carries knobs the
// traversal itself consults.
type Config struct {
	// MinSamples is m: core distance is measured to the m-th nearest
	// neighbor (self at rank 0). Forwarded to coredist.Initialize.
	MinSamples int
	// Alpha scales the pairwise term of mutual reachability: mr(p,q) =
	// max(d(p,q)/Alpha, core(p), core(q)) when Alpha != 1, else
	// max(d(p,q), core(p), core(q)). On KD-tree runs d and the core
	// distances are reduced distances, so Alpha divides the rdist (for
	// Euclidean the true-distance term becomes d(p,q)/sqrt(Alpha)).
	Alpha float64
	// ApproxMinSpanTree relaxes the reset policy: when a sweep makes no
	// progress, bounds are left as-is instead of reset to +Inf, and the
	// run tolerates a sweep without a merge instead of failing with
	// ErrUnreachable. Trades exactness for resilience against a stuck
	// traversal.
	ApproxMinSpanTree bool
	// LeafSize is advisory sizing for whatever builds the caller's
	// TreeView; the driver validates it but does not otherwise use it or
	// pass it anywhere.
	LeafSize int
	// NJobs is the worker count for coredist's chunked kNN pass.
	NJobs int
	// OnWarning, if set, is called with a human-readable message whenever
	// the driver takes a degraded-but-non-fatal path (currently: a sweep
	// in approximate mode that made no progress).
	OnWarning func(string)
}

// Option customizes a Config. As a rule, option constructors never panic
// and silently ignore a value that would make the Config invalid; NewDriver
// validates the fully-applied Config once, after every option has run.
type Option func(cfg *Config)

// DefaultConfig returns a Config with the engine's defaults applied: a
// single nearest neighbor beyond self for core distance, no alpha scaling,
// exact-mode spanning trees, and a four-way kNN split.
func DefaultConfig() Config {
	return Config{
		MinSamples:        1,
		Alpha:             1.0,
		ApproxMinSpanTree: false,
		LeafSize:          20,
		NJobs:             4,
	}
}

// WithMinSamples sets MinSamples. Values < 1 are ignored.
func WithMinSamples(m int) Option {
	return func(cfg *Config) {
		if m >= 1 {
			cfg.MinSamples = m
		}
	}
}

// WithAlpha sets Alpha. Values <= 0 are ignored.
func WithAlpha(a float64) Option {
	return func(cfg *Config) {
		if a > 0 {
			cfg.Alpha = a
		}
	}
}

// WithApproxMinSpanTree toggles the relaxed reset/progress policy.
func WithApproxMinSpanTree(b bool) Option {
	return func(cfg *Config) {
		cfg.ApproxMinSpanTree = b
	}
}

// WithLeafSize sets LeafSize. Values <= 0 are ignored.
func WithLeafSize(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.LeafSize = n
		}
	}
}

// WithNJobs sets NJobs. Values < 1 are ignored.
func WithNJobs(n int) Option {
	return func(cfg *Config) {
		if n >= 1 {
			cfg.NJobs = n
		}
	}
}

// WithOnWarning installs a warning callback. A nil fn is a no-op.
func WithOnWarning(fn func(string)) Option {
	return func(cfg *Config) {
		if fn != nil {
			cfg.OnWarning = fn
		}
	}
}

func validateConfig(cfg Config) error {
	switch {
	case cfg.MinSamples < 1:
		return ErrBadMinSamples
	case cfg.Alpha <= 0:
		return ErrBadAlpha
	case cfg.LeafSize <= 0:
		return ErrBadLeafSize
	case cfg.NJobs < 1:
		return ErrBadNJobs
	default:
		return nil
	}
}

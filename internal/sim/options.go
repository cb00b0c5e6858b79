package sim

// Option configures a simulation run.
type Option func(*options)

type options struct {
	workers int
	passes  int
}

// WithWorkers evaluates each pass on up to n goroutines. Values below 1
// mean sequential evaluation.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithPasses replaces the longest-path pass count with n.
func WithPasses(n int) Option {
	return func(o *options) {
		o.passes = n
	}
}

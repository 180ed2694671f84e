package sweep

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithInverter sets the velocity solver used for each power point.
func WithInverter(inv Inverter) Option {
	return func(e *Engine) {
		if inv != nil {
			e.inverter = inv
		}
	}
}

// WithParallelism bounds the number of power points solved concurrently.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.parallelism = n
		}
	}
}

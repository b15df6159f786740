package tether

// KeyOption configures a key at construction.
type KeyOption func(*keyConfig)

// keyConfig collects construction options before the slot is built.
type keyConfig struct {
	name   string
	atomic bool
}

// WithName sets the diagnostic name reported by Keys and carried on
// signals. Names do not affect identity; two keys may share one.
func WithName(name string) KeyOption {
	return func(c *keyConfig) {
		c.name = name
	}
}

// WithAtomic makes reads and writes of the key lock-free with respect
// to each other. Only retaining keys accept it: NewWeakKey and
// NewBorrowKey panic if given this option, since they never hold the
// value and have nothing to swap atomically.
func WithAtomic() KeyOption {
	return func(c *keyConfig) {
		c.atomic = true
	}
}

// applyOptions folds opts into a keyConfig.
func applyOptions(opts []KeyOption) keyConfig {
	var cfg keyConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

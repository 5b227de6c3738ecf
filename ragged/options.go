package ragged

// ListConfig defines construction settings for a List.
type ListConfig struct {
	Capacity int
}

// ListOption mutates a ListConfig.
type ListOption func(*ListConfig)

// DefaultListConfig returns the default construction settings.
func DefaultListConfig() ListConfig {
	return ListConfig{}
}

// WithCapacity reserves room for n payload scalars up front.
func WithCapacity(n int) ListOption {
	return func(cfg *ListConfig) {
		if n > 0 {
			cfg.Capacity = n
		}
	}
}

// TupleConfig defines construction settings for a Tuple.
type TupleConfig struct {
	Immutable bool
}

// TupleOption mutates a TupleConfig.
type TupleOption func(*TupleConfig)

// WithImmutable freezes the tuple's content at construction. The flag is
// one-way: there is no way to make a frozen tuple writable again.
func WithImmutable() TupleOption {
	return func(cfg *TupleConfig) {
		cfg.Immutable = true
	}
}

package mapper

// DefaultMaxDepth bounds recursion so a cyclic object graph surfaces as
// ErrDepthExceeded instead of exhausting the stack.
const DefaultMaxDepth = 32

type Option func(*walker)

// WithMaxDepth replaces the default recursion limit. Values below one are
// ignored.
func WithMaxDepth(levels int) Option {
	return func(w *walker) {
		if levels > 0 {
			w.maxDepth = levels
		}
	}
}

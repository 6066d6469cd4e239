package topology

import (
	"fmt"
	"iter"
)

// Group splits items into consecutive, non-overlapping chunks of exactly size elements.
// It fails with ErrInvalidGroupSize instead of padding or dropping a partial trailing chunk.
// The returned chunks share the backing array of items.
func Group[T any](items []T, size int) (iter.Seq[[]T], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: group size %d must be positive", ErrInvalidGroupSize, size)
	}
	if len(items)%size != 0 {
		return nil, fmt.Errorf("%w: %d items can not be split into groups of %d", ErrInvalidGroupSize,
			len(items), size)
	}
	return func(yield func([]T) bool) {
		for i := 0; i < len(items); i += size {
			if !yield(items[i : i+size : i+size]) {
				return
			}
		}
	}, nil
}

package dml

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/dml/internal/parallel"
)

// ResolveShapes resolves a batch of shapes concurrently. Results are
// index-aligned with descs. Shapes are independent of each other and the
// theme is shared read-only, so no ordering between items is implied.
//
// Per-shape failures are joined into the returned error, each prefixed
// with its index; the corresponding result is the zero ResolvedShape.
// When ctx is done before the batch completes, ctx.Err() is returned.
func ResolveShapes(ctx context.Context, descs []ShapeDescriptor, opts ...Option) ([]ResolvedShape, error) {
	o := applyOptions(opts)
	out := make([]ResolvedShape, len(descs))
	errs := make([]error, len(descs))

	pool := parallel.NewPool(o.workers)
	defer pool.Close()

	err := pool.Run(ctx, len(descs), func(i int) {
		rs, err := resolveShape(descs[i], o)
		if err != nil {
			errs[i] = fmt.Errorf("shape %d: %w", i, err)
			return
		}
		out[i] = rs
	})
	if err != nil {
		return out, err
	}
	return out, errors.Join(errs...)
}

package catalog

import (
	"context"
	"iter"

	"github.com/go-leo/solid/filter"
	"github.com/go-leo/solid/specification"
)

// ProductFilter has one method per supported criterion. Every new criterion means a new
// method here; prefer filter.Slice with a specification, which needs no change.
type ProductFilter struct {
	Options []filter.Option
}

func (pf ProductFilter) ByColor(ctx context.Context, products []Product, color Color) iter.Seq[Product] {
	return filter.Slice(ctx, products, ColorIs(color), pf.Options...)
}

func (pf ProductFilter) BySize(ctx context.Context, products []Product, size Size) iter.Seq[Product] {
	return filter.Slice(ctx, products, SizeIs(size), pf.Options...)
}

func (pf ProductFilter) BySizeAndColor(ctx context.Context, products []Product, size Size, color Color) iter.Seq[Product] {
	return filter.Slice(ctx, products, specification.Conjunction(SizeIs(size), ColorIs(color)), pf.Options...)
}

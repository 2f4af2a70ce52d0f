// Package visibility computes which cells of a rectangular grid are
// visible from an eye at a given origin using recursive shadowcasting
// refined with integer-exact gradients, a scalar opacity budget, and
// per-cell direction bitmaps for split-cell rendering.
package visibility

import "shadowfov/internal/coord"

// Context is reusable scratch space for one caller's repeated
// observations. Reuse it across calls to avoid reallocating the interval
// queues; a Context must not be shared between concurrent calls, but
// distinct Contexts are fully independent.
type Context struct {
	queueA     []scanParams
	queueASwap []scanParams
	queueB     []scanParams
	queueBSwap []scanParams
}

// NewContext creates an empty, ready-to-use Context.
func NewContext() *Context {
	return &Context{}
}

// ForEach reports every cell visible from origin on grid within distance,
// starting with initialVisibility budget, to sink. The origin cell is
// always reported first, fully visible. Ordering beyond that follows
// non-decreasing depth within each octant pair.
func (ctx *Context) ForEach(origin coord.Coord, grid InputGrid, distance Distance, initialVisibility uint8, sink Sink) {
	sink(origin, coord.All(), initialVisibility)

	size := grid.Size()
	static := &staticParams{
		origin:   origin,
		distance: distance,
		grid:     grid,
		width:    size.Width,
		height:   size.Height,
	}

	ctx.observePair(topLeft{}, leftTop{}, static, sink, initialVisibility)
	ctx.observePair(topRight{width: size.Width}, rightTop{width: size.Width}, static, sink, initialVisibility)
	ctx.observePair(bottomLeft{height: size.Height}, leftBottom{height: size.Height}, static, sink, initialVisibility)
	ctx.observePair(bottomRight{width: size.Width, height: size.Height}, rightBottom{width: size.Width, height: size.Height}, static, sink, initialVisibility)
}

// observePair runs the BFS-over-depth driver for one octant pair,
// reconciling the shared diagonal cell each depth produces (§4.3).
func (ctx *Context) observePair(octantA, octantB octant, static *staticParams, sink Sink, initialVisibility uint8) {
	ctx.queueA = append(ctx.queueA, baseScanParams(initialVisibility))
	ctx.queueB = append(ctx.queueB, baseScanParams(initialVisibility))

	for {
		var cornerBitmap coord.DirectionBitmap
		var cornerVisibility uint8
		var cornerCoord coord.Coord
		haveCorner := false

		for len(ctx.queueA) > 0 {
			p := ctx.queueA[len(ctx.queueA)-1]
			ctx.queueA = ctx.queueA[:len(ctx.queueA)-1]
			if info, ok := scan(octantA, p, static, &ctx.queueASwap, sink); ok {
				cornerBitmap = cornerBitmap.Or(info.bitmap)
				if info.visibility > cornerVisibility {
					cornerVisibility = info.visibility
				}
				cornerCoord = info.coord
				haveCorner = true
			}
		}

		for len(ctx.queueB) > 0 {
			p := ctx.queueB[len(ctx.queueB)-1]
			ctx.queueB = ctx.queueB[:len(ctx.queueB)-1]
			if info, ok := scan(octantB, p, static, &ctx.queueBSwap, sink); ok {
				cornerBitmap = cornerBitmap.Or(info.bitmap)
				if info.visibility > cornerVisibility {
					cornerVisibility = info.visibility
				}
				cornerCoord = info.coord
				haveCorner = true
			}
		}

		if haveCorner {
			if !cornerBitmap.IsFull() && cornerBitmap.HasAny(coord.AllCardinal()) {
				cornerBitmap = cornerBitmap.And(coord.AllCardinal())
			}
			sink(cornerCoord, cornerBitmap, cornerVisibility)
		}

		if len(ctx.queueASwap) == 0 && len(ctx.queueBSwap) == 0 {
			break
		}
		ctx.queueA, ctx.queueASwap = ctx.queueASwap, ctx.queueA
		ctx.queueB, ctx.queueBSwap = ctx.queueBSwap, ctx.queueB
	}
}

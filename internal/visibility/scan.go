package visibility

import "shadowfov/internal/coord"

// scanParams is one angular wedge (interval) within a single octant at a
// given depth, carrying the visibility budget it enters the row with.
type scanParams struct {
	minGradient  gradient
	maxGradient  gradient
	minInclusive bool
	depth        int
	visibility   uint8
}

func baseScanParams(initialVisibility uint8) scanParams {
	return scanParams{
		minGradient:  newGradient(0, 1),
		maxGradient:  newGradient(1, 1),
		minInclusive: true,
		depth:        1,
		visibility:   initialVisibility,
	}
}

// cornerInfo is the partial view one octant has of the diagonal cell it
// shares with its paired octant; the driver reconciles the two.
type cornerInfo struct {
	bitmap     coord.DirectionBitmap
	coord      coord.Coord
	visibility uint8
}

type staticParams struct {
	origin   coord.Coord
	distance Distance
	grid     InputGrid
	width    int
	height   int
}

// scan walks one depth strip of one octant: it emits a sink callback per
// visible cell, pushes narrowed sub-intervals for the next depth onto
// next, and reports at most one corner observation when the strip reaches
// its diagonal terminal cell.
func scan(o octant, params scanParams, static *staticParams, next *[]scanParams, sink Sink) (cornerInfo, bool) {
	minGradient := params.minGradient
	maxGradient := params.maxGradient
	minInclusive := params.minInclusive
	depth := params.depth
	visibility := params.visibility

	depthIndex, ok := o.depthIndex(static.origin, depth)
	if !ok {
		return cornerInfo{}, false
	}

	frontGradientDepth := depth*2 - 1
	backGradientDepth := frontGradientDepth + 2

	// A cell is scanned when any part of it within the row lies inside the
	// wedge: the min gradient is taken at the row's front edge and the max
	// gradient at its back edge. An exclusive min skips the cell whose
	// leading edge the min gradient meets exactly.
	minNum := minGradient.depth + minGradient.lateral*frontGradientDepth
	lateralMin := minNum / (minGradient.depth * 2)
	if !minInclusive && minNum%(minGradient.depth*2) == 0 {
		lateralMin++
	}

	lateralMax := (maxGradient.depth + maxGradient.lateral*backGradientDepth - 1) / (maxGradient.depth * 2)
	if bound := o.lateralMax(static.origin); lateralMax > bound {
		lateralMax = bound
	}

	firstLateral := lateralMin
	var prevVisibility uint8
	var prevOpaque bool

	for lateralIndex := lateralMin; lateralIndex <= lateralMax; lateralIndex++ {
		c := o.makeCoord(static.origin, lateralIndex, depthIndex)
		if c.X < 0 || c.X >= static.width || c.Y < 0 || c.Y >= static.height {
			break
		}

		opacity := static.grid.GetOpacity(c)

		delta := c.Sub(static.origin)
		inRange := static.distance.InRange(delta)

		gradientLateral := lateralIndex*2 - 1
		directionBitmap := coord.Empty()

		var curVisibility uint8
		var curOpaque bool
		if visibility > opacity {
			curVisibility = visibility - opacity
			curOpaque = false
		} else {
			curVisibility = 0
			curOpaque = true
		}

		if lateralIndex != firstLateral && curVisibility != prevVisibility {
			gradientDepth := frontGradientDepth
			if curVisibility < prevVisibility {
				gradientDepth = backGradientDepth
			}
			g := newGradient(gradientLateral, gradientDepth)

			if !prevOpaque {
				*next = append(*next, scanParams{
					minGradient:  minGradient,
					maxGradient:  g,
					minInclusive: minInclusive,
					depth:        depth + 1,
					visibility:   prevVisibility,
				})
			}

			minGradient = g
			minInclusive = false
			directionBitmap = directionBitmap.Or(o.acrossBitmap())
		}

		if curOpaque {
			if maxGradient.lateral*frontGradientDepth > gradientLateral*maxGradient.depth {
				directionBitmap = directionBitmap.Or(o.facingBitmap())
			} else if directionBitmap.IsEmpty() {
				directionBitmap = directionBitmap.Or(o.facingCornerBitmap())
			}
		} else {
			directionBitmap = coord.All()
		}

		if lateralIndex == lateralMax {
			if !curOpaque && !minGradient.equal(maxGradient) {
				*next = append(*next, scanParams{
					minGradient:  minGradient,
					maxGradient:  maxGradient,
					minInclusive: minInclusive,
					depth:        depth + 1,
					visibility:   curVisibility,
				})
			}
			if inRange && lateralIndex == depth {
				return cornerInfo{bitmap: directionBitmap, coord: c, visibility: curVisibility}, true
			}
		}

		if inRange && o.shouldSee(lateralIndex) {
			sink(c, directionBitmap, curVisibility)
		}

		prevVisibility = curVisibility
		prevOpaque = curOpaque
	}

	return cornerInfo{}, false
}

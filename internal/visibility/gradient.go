package visibility

// gradient is a slope lateral/depth in half-cell units. It is never
// reduced; every comparison is done by cross-multiplication so that
// gradient arithmetic stays exact.
type gradient struct {
	lateral int
	depth   int
}

func newGradient(lateral, depth int) gradient {
	return gradient{lateral: lateral, depth: depth}
}

// equal reports whether two gradients represent the same slope.
func (g gradient) equal(o gradient) bool {
	return g.lateral*o.depth == g.depth*o.lateral
}

package phylorank

import "math"

// A RED is a Relative Evolutionary Divergence score, between 0 at the
// root of a decorated tree and 1 at its leaves.
type RED float64

// Abs returns the absolute value of the score, useful when comparing
// distances to per-rank median values.
func (r RED) Abs() RED {
	return RED(math.Abs(float64(r)))
}

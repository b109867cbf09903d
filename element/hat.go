package element

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// spacingTol bounds the allowed relative deviation between interval widths
// when validating a uniform node set.
const spacingTol = 1e-12

// HatBasis is the nodal piecewise-linear Lagrange basis on a uniformly
// spaced, strictly increasing node set. Basis function i has support width
// 2h centered on node i, value 1 at its own node and 0 at every other node.
type HatBasis struct {
	Nodes []float64
	H     float64 // spacing between adjacent nodes
}

// NewHatBasis validates the node set and builds the basis. The nodes must be
// strictly increasing and uniformly spaced.
func NewHatBasis(nodes []float64) (*HatBasis, error) {
	if len(nodes) < 2 {
		return nil, fmt.Errorf("hat basis needs at least 2 nodes, got %d", len(nodes))
	}
	h := nodes[1] - nodes[0]
	for i := 1; i < len(nodes); i++ {
		d := nodes[i] - nodes[i-1]
		if d <= 0 {
			return nil, fmt.Errorf("nodes must be strictly increasing: node %d (%g) <= node %d (%g)",
				i, nodes[i], i-1, nodes[i-1])
		}
		if math.Abs(d-h) > spacingTol*math.Max(1, math.Abs(h)) {
			return nil, fmt.Errorf("nodes must be uniformly spaced: interval %d has width %g, expected %g",
				i-1, d, h)
		}
	}
	return &HatBasis{Nodes: nodes, H: h}, nil
}

// GetProperties returns the element metadata for this basis.
func (b *HatBasis) GetProperties() Properties {
	return Properties{
		Name:       "Linear Lagrange Line",
		ShortName:  "Line1",
		Order:      1,
		Np:         len(b.Nodes),
		Dimensions: D1,
	}
}

// Eval returns the [Np x len(points)] matrix of basis values
// phi_i(x) = max(0, 1 - |x - x_i|/h). Every entry lies in [0,1] and each
// column sums to 1 for points inside the node span.
func (b *HatBasis) Eval(points []float64) *mat.Dense {
	phi := mat.NewDense(len(b.Nodes), len(points), nil)
	for i, xi := range b.Nodes {
		for q, x := range points {
			if v := 1 - math.Abs(x-xi)/b.H; v > 0 {
				phi.Set(i, q, v)
			}
		}
	}
	return phi
}

// GradEval returns the [Np x len(points)] matrix of basis derivatives:
// -1/h on the right support interval, +1/h on the left, 0 outside. The
// right interval is open at the node (x > x_i) and the left interval is
// closed there (x <= x_i), so a point exactly on node i reports +1/h for
// basis i and 0 for its neighbors, even at the leftmost node. Both support
// edges x_i -+ h report 0.
func (b *HatBasis) GradEval(points []float64) *mat.Dense {
	grad := mat.NewDense(len(b.Nodes), len(points), nil)
	for i, xi := range b.Nodes {
		for q, x := range points {
			switch {
			case x > xi && x < xi+b.H:
				grad.Set(i, q, -1/b.H)
			case x <= xi && x > xi-b.H:
				grad.Set(i, q, 1/b.H)
			}
		}
	}
	return grad
}

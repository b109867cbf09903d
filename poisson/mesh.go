// Package poisson solves the one-dimensional Poisson boundary-value problem
// -u'' = f on (0,1) with a Dirichlet condition at the left end and a natural
// zero-flux condition at the right end, using linear finite elements, and
// measures L2 and H1-seminorm errors against a known exact solution for
// convergence verification.
package poisson

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Mesh is a uniform discretization of the unit interval [0,1].
type Mesh struct {
	Nodes []float64 // strictly increasing, uniformly spaced
	H     float64   // spacing between adjacent nodes
}

// NewUniformMesh builds a mesh of n equally spaced nodes spanning [0,1].
func NewUniformMesh(n int) (*Mesh, error) {
	if n < 2 {
		return nil, fmt.Errorf("mesh needs at least 2 nodes, got %d", n)
	}
	nodes := make([]float64, n)
	floats.Span(nodes, 0, 1)
	return &Mesh{Nodes: nodes, H: 1 / float64(n-1)}, nil
}

// NumNodes returns the node count.
func (m *Mesh) NumNodes() int { return len(m.Nodes) }

// NumIntervals returns the element count.
func (m *Mesh) NumIntervals() int { return len(m.Nodes) - 1 }

// FineGrid returns an evaluation grid with factor points per mesh interval,
// spanning [0,1]. It is used for plotting and reference comparison only; it
// plays no part in the solved system.
func (m *Mesh) FineGrid(factor int) []float64 {
	pts := make([]float64, factor*m.NumIntervals()+1)
	floats.Span(pts, 0, 1)
	return pts
}

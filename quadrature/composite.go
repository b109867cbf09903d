package quadrature

import "fmt"

// CompositeRule applies an n-point Gauss-Legendre rule on every interval of
// an ascending node sequence, merging all abscissas into a single ascending
// sequence. For the 2-point rule each interval contributes abscissas at
// fractions 0.5 -+ 1/(2*sqrt(3)) of its width, with weight h/2 apiece, so
// no abscissa ever lands on a node.
type CompositeRule struct {
	Points  []float64 // ascending, n per interval
	Weights []float64 // Weights[q] belongs to Points[q]
}

// NewCompositeRule builds the composite rule with n Gauss-Legendre points
// per interval of nodes.
func NewCompositeRule(nodes []float64, n int) (*CompositeRule, error) {
	if len(nodes) < 2 {
		return nil, fmt.Errorf("composite rule needs at least 2 nodes, got %d", len(nodes))
	}
	for i := 1; i < len(nodes); i++ {
		if nodes[i] <= nodes[i-1] {
			return nil, fmt.Errorf("nodes must be strictly increasing: node %d (%g) <= node %d (%g)",
				i, nodes[i], i-1, nodes[i-1])
		}
	}
	xi, wi, err := GaussLegendre(n)
	if err != nil {
		return nil, err
	}

	nq := n * (len(nodes) - 1)
	r := &CompositeRule{
		Points:  make([]float64, 0, nq),
		Weights: make([]float64, 0, nq),
	}
	// Intervals ascend and the reference points ascend within each, so the
	// merged sequence comes out sorted.
	for k := 0; k+1 < len(nodes); k++ {
		mid := (nodes[k] + nodes[k+1]) / 2
		half := (nodes[k+1] - nodes[k]) / 2
		for j := 0; j < n; j++ {
			r.Points = append(r.Points, mid+half*xi[j])
			r.Weights = append(r.Weights, half*wi[j])
		}
	}
	return r, nil
}

// Len returns the total number of abscissas.
func (r *CompositeRule) Len() int { return len(r.Points) }

// Sum returns the quadrature approximation of the integral of f over the
// node span.
func (r *CompositeRule) Sum(f func(float64) float64) float64 {
	var total float64
	for q, x := range r.Points {
		total += r.Weights[q] * f(x)
	}
	return total
}

// Package element provides the piecewise-linear Lagrange ("hat") basis on
// one-dimensional node sets, evaluating basis values and gradients at
// arbitrary points as dense matrices.
package element

// Dimensionality represents the spatial dimension of an element
type Dimensionality uint8

const (
	D1 Dimensionality = iota + 1 // 1D elements (lines, edges)
	D2                           // 2D elements (triangles, quadrilaterals)
	D3                           // 3D elements (tetrahedra, hexahedra, etc.)
)

// Properties contains metadata describing a basis/element type
type Properties struct {
	Name       string         // Full descriptive name (e.g., "Linear Lagrange Line")
	ShortName  string         // Abbreviated name (e.g., "Line1")
	Order      int            // Polynomial order
	Np         int            // Total number of nodes
	Dimensions Dimensionality // Spatial dimension
}

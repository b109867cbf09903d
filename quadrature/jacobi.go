// Package quadrature implements Gauss quadrature: single-interval
// Gauss-Legendre rules via the Golub-Welsch eigenvalue method, and the
// composite per-interval rule over a mesh used for stiffness assembly.
package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// GaussLegendre returns the n-point Gauss-Legendre rule on [-1,1]. The
// points are the zeros of the Legendre polynomial P_n in ascending order;
// the weights sum to 2. The rule is exact for polynomials up to degree
// 2n-1.
func GaussLegendre(n int) (x, w []float64, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("gauss-legendre rule needs at least 1 point, got %d", n)
	}
	x, w = jacobiGQ(0, 0, n-1)
	return x, w, nil
}

// jacobiGQ computes the N+1 point Gauss quadrature rule for the Jacobi
// weight (1-x)^alpha (1+x)^beta on [-1,1] by eigendecomposition of the
// symmetric tridiagonal Jacobi matrix. The points are the eigenvalues; the
// weight of point j is the squared first component of eigenvector j scaled
// by the total weight mass mu0.
func jacobiGQ(alpha, beta float64, N int) (x, w []float64) {
	if N == 0 {
		return []float64{-(alpha - beta) / (alpha + beta + 2)},
			[]float64{gamma0(alpha, beta)}
	}

	h1 := make([]float64, N+1)
	for i := range h1 {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: d0[i] = -(beta^2-alpha^2)/((2i+alpha+beta)*(2i+alpha+beta+2))
	d0 := make([]float64, N+1)
	fac := beta*beta - alpha*alpha
	for i := range d0 {
		d0[i] = fac / (h1[i] * (h1[i] + 2))
	}
	const eps = 1e-16
	if alpha+beta < 10*eps {
		d0[0] = 0
	}

	// first superdiagonal
	d1 := make([]float64, N)
	for i := range d1 {
		ip1 := float64(i + 1)
		d1[i] = 2 / (h1[i] + 2) * math.Sqrt(
			ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/(h1[i]+1)/(h1[i]+3),
		)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(symTriDiagonal(d0, d1), true); !ok {
		panic("jacobi matrix eigendecomposition failed")
	}
	x = eig.Values(nil)

	var vv mat.Dense
	eig.VectorsTo(&vv)
	mu0 := gamma0(alpha, beta)
	w = make([]float64, len(x))
	for j := range w {
		v0 := vv.At(0, j)
		w[j] = v0 * v0 * mu0
	}
	return x, w
}

// gamma0 is the total mass of the Jacobi weight on [-1,1].
func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1
	return math.Gamma(alpha+1) * math.Gamma(beta+1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

func symTriDiagonal(d0, d1 []float64) *mat.SymDense {
	n := len(d0)
	tri := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		tri.SetSym(i, i, d0[i])
		if i < n-1 {
			tri.SetSym(i, i+1, d1[i])
		}
	}
	return tri
}

package poisson

import (
	"gonum.org/v1/gonum/mat"

	"github.com/natrask/ENM5320/quadrature"
)

// assemble builds the stiffness matrix S(i,j) = sum_q w_q phi_i'(x_q) phi_j'(x_q)
// and load vector F(i) = sum_q w_q f(x_q) phi_i(x_q) from the basis value and
// gradient matrices evaluated at the quadrature abscissas. S is symmetric and
// tridiagonal in structure but stored dense.
func assemble(phi, grad *mat.Dense, rule *quadrature.CompositeRule, f func(float64) float64) (*mat.Dense, *mat.VecDense) {
	np, nq := grad.Dims()

	w := mat.NewDiagDense(nq, rule.Weights)
	var gw mat.Dense
	gw.Mul(grad, w)
	s := mat.NewDense(np, np, nil)
	s.Mul(&gw, grad.T())

	fq := mat.NewVecDense(nq, nil)
	for q, x := range rule.Points {
		fq.SetVec(q, rule.Weights[q]*f(x))
	}
	load := mat.NewVecDense(np, nil)
	load.MulVec(phi, fq)
	return s, load
}

// imposeDirichlet overwrites the first row of the system with the one-hot
// constraint row for node 0 and pins the first right-hand-side entry to the
// boundary value. The last row is left untouched: the zero-flux Neumann
// condition at the right end is already satisfied by the variational form.
func imposeDirichlet(s *mat.Dense, load *mat.VecDense, value float64) {
	_, nc := s.Dims()
	row := make([]float64, nc)
	row[0] = 1
	s.SetRow(0, row)
	load.SetVec(0, value)
}

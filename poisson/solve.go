package poisson

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/natrask/ENM5320/element"
	"github.com/natrask/ENM5320/quadrature"
)

// Result holds the outcome of one pipeline run.
type Result struct {
	Mesh  *Mesh
	Basis *element.HatBasis
	Rule  *quadrature.CompositeRule
	U     *mat.VecDense // nodal solution values

	// Error norms against the exact solution, NaN when the problem
	// carries no exact solution pair.
	L2Error float64
	H1Error float64
}

// Solve runs the pipeline: mesh, basis and gradient evaluation at the
// quadrature abscissas, assembly, Dirichlet imposition, dense solve, and
// (when the problem provides an exact solution) error norms.
func Solve(p Problem) (*Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	m, err := NewUniformMesh(p.MeshSize)
	if err != nil {
		return nil, err
	}
	basis, err := element.NewHatBasis(m.Nodes)
	if err != nil {
		return nil, fmt.Errorf("building hat basis: %w", err)
	}
	rule, err := quadrature.NewCompositeRule(m.Nodes, 2)
	if err != nil {
		return nil, fmt.Errorf("building quadrature rule: %w", err)
	}

	phi := basis.Eval(rule.Points)
	grad := basis.GradEval(rule.Points)
	s, load := assemble(phi, grad, rule, p.Source)
	imposeDirichlet(s, load, p.DirichletValue)

	var u mat.VecDense
	if err := u.SolveVec(s, load); err != nil {
		return nil, fmt.Errorf("solving the constrained %dx%d system: %w", p.MeshSize, p.MeshSize, err)
	}

	res := &Result{
		Mesh:    m,
		Basis:   basis,
		Rule:    rule,
		U:       &u,
		L2Error: math.NaN(),
		H1Error: math.NaN(),
	}
	if p.Exact != nil && p.ExactGrad != nil {
		res.L2Error = discreteNorm(evalAt(phi, &u), rule.Points, p.Exact, m.H)
		res.H1Error = discreteNorm(evalAt(grad, &u), rule.Points, p.ExactGrad, m.H)
	}
	return res, nil
}

// EvalSolution evaluates the finite-element solution at arbitrary points.
func (r *Result) EvalSolution(points []float64) []float64 {
	return evalAt(r.Basis.Eval(points), r.U)
}

// EvalGradient evaluates the finite-element solution derivative at
// arbitrary points, following the basis breakpoint convention.
func (r *Result) EvalGradient(points []float64) []float64 {
	return evalAt(r.Basis.GradEval(points), r.U)
}

// evalAt contracts nodal coefficients with a basis matrix: out_q = sum_i u_i B(i,q).
func evalAt(b *mat.Dense, u *mat.VecDense) []float64 {
	_, nq := b.Dims()
	var v mat.VecDense
	v.MulVec(b.T(), u)
	out := make([]float64, nq)
	for q := range out {
		out[q] = v.AtVec(q)
	}
	return out
}

// discreteNorm is sqrt(h * sum_q (got_q - exact(x_q))^2), the discrete norm
// used for both the L2 and the H1-seminorm errors.
func discreteNorm(got, points []float64, exact func(float64) float64, h float64) float64 {
	var sum float64
	for q, x := range points {
		d := got[q] - exact(x)
		sum += d * d
	}
	return math.Sqrt(h * sum)
}

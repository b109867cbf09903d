package poisson

import "fmt"

// Problem configures one run of the pipeline: -u'' = f on (0,1) with
// u(0) = DirichletValue and the natural condition u'(1) = 0.
type Problem struct {
	MeshSize       int                   // number of mesh nodes, at least 2
	Source         func(float64) float64 // right-hand side f
	DirichletValue float64               // prescribed solution value at x=0

	// Exact and ExactGrad, when both are set, enable error-norm
	// computation against the closed-form solution.
	Exact     func(float64) float64
	ExactGrad func(float64) float64
}

func (p Problem) validate() error {
	if p.MeshSize < 2 {
		return fmt.Errorf("meshsize must be at least 2, got %d", p.MeshSize)
	}
	if p.Source == nil {
		return fmt.Errorf("source term must be set")
	}
	return nil
}

// NewReferenceProblem is the verification problem -u'' = 1, u(0) = 0,
// u'(1) = 0, with exact solution u(x) = x(1 - x/2) and u'(x) = 1 - x.
func NewReferenceProblem(meshSize int) Problem {
	return Problem{
		MeshSize:       meshSize,
		Source:         func(float64) float64 { return 1 },
		DirichletValue: 0,
		Exact:          func(x float64) float64 { return x * (1 - x/2) },
		ExactGrad:      func(x float64) float64 { return 1 - x },
	}
}

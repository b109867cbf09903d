package poisson

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/natrask/ENM5320/element"
	"github.com/natrask/ENM5320/quadrature"
)

// assembleFor runs mesh, basis, quadrature and assembly for a reference-style
// problem at the given size, without boundary imposition.
func assembleFor(t *testing.T, n int, f func(float64) float64) (*Mesh, *mat.Dense, *mat.VecDense) {
	t.Helper()
	m, err := NewUniformMesh(n)
	require.NoError(t, err)
	basis, err := element.NewHatBasis(m.Nodes)
	require.NoError(t, err)
	rule, err := quadrature.NewCompositeRule(m.Nodes, 2)
	require.NoError(t, err)
	s, load := assemble(basis.Eval(rule.Points), basis.GradEval(rule.Points), rule, f)
	return m, s, load
}

// TestStiffnessSymmetryAndRowSums checks the two structural invariants of
// the unconstrained stiffness matrix: symmetry and zero row sums.
func TestStiffnessSymmetryAndRowSums(t *testing.T) {
	one := func(float64) float64 { return 1 }
	for _, n := range []int{2, 4, 8, 16, 32} {
		t.Run(fmt.Sprintf("meshsize=%d", n), func(t *testing.T) {
			_, s, _ := assembleFor(t, n, one)
			for i := 0; i < n; i++ {
				var rowSum float64
				for j := 0; j < n; j++ {
					assert.InDelta(t, s.At(j, i), s.At(i, j), 1e-12, "symmetry (%d,%d)", i, j)
					rowSum += s.At(i, j)
				}
				assert.InDelta(t, 0, rowSum, 1e-12, "row %d sum", i)
			}
		})
	}
}

// TestStiffnessTridiagonalValues checks the assembled entries against the
// closed-form integrals: 2/h on the interior diagonal, 1/h at the two
// boundary diagonal entries, -1/h on the sub/superdiagonal, 0 elsewhere.
func TestStiffnessTridiagonalValues(t *testing.T) {
	n := 8
	m, s, _ := assembleFor(t, n, func(float64) float64 { return 1 })
	h := m.H
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var want float64
			switch {
			case i == j && (i == 0 || i == n-1):
				want = 1 / h
			case i == j:
				want = 2 / h
			case i == j+1 || i == j-1:
				want = -1 / h
			}
			assert.InDelta(t, want, s.At(i, j), 1e-12, "S(%d,%d)", i, j)
		}
	}
}

// TestLoadVectorConstantSource checks F against the exact integrals of the
// hat functions for f = 1: h for interior nodes, h/2 at the two ends.
func TestLoadVectorConstantSource(t *testing.T) {
	n := 16
	m, _, load := assembleFor(t, n, func(float64) float64 { return 1 })
	for i := 0; i < n; i++ {
		want := m.H
		if i == 0 || i == n-1 {
			want = m.H / 2
		}
		assert.InDelta(t, want, load.AtVec(i), 1e-14, "F(%d)", i)
	}
}

func TestImposeDirichlet(t *testing.T) {
	n := 6
	_, s, load := assembleFor(t, n, func(float64) float64 { return 1 })
	before := mat.DenseCopyOf(s)
	imposeDirichlet(s, load, 0.7)

	assert.Equal(t, 1.0, s.At(0, 0))
	for j := 1; j < n; j++ {
		assert.Equal(t, 0.0, s.At(0, j))
	}
	assert.Equal(t, 0.7, load.AtVec(0))
	// Every other row, the last in particular, is untouched.
	for i := 1; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, before.At(i, j), s.At(i, j))
		}
	}
}

// TestAssemblyRoundTrip inserts the exact nodal values into the constrained
// system directly, bypassing the solver: the product must reproduce the
// constrained load vector, since the two-point rule integrates every term
// exactly for this problem.
func TestAssemblyRoundTrip(t *testing.T) {
	for _, n := range []int{4, 8, 16, 32} {
		t.Run(fmt.Sprintf("meshsize=%d", n), func(t *testing.T) {
			p := NewReferenceProblem(n)
			m, s, load := assembleFor(t, n, p.Source)
			imposeDirichlet(s, load, p.DirichletValue)

			exact := mat.NewVecDense(n, nil)
			for i, x := range m.Nodes {
				exact.SetVec(i, p.Exact(x))
			}
			var got mat.VecDense
			got.MulVec(s, exact)
			for i := 0; i < n; i++ {
				assert.InDelta(t, load.AtVec(i), got.AtVec(i), 1e-12, "row %d", i)
			}
		})
	}
}

// TestPartitionOfUnityAtQuadraturePoints ties the basis and quadrature
// layers together: summing each column of the value matrix gives 1.
func TestPartitionOfUnityAtQuadraturePoints(t *testing.T) {
	m, err := NewUniformMesh(9)
	require.NoError(t, err)
	basis, err := element.NewHatBasis(m.Nodes)
	require.NoError(t, err)
	rule, err := quadrature.NewCompositeRule(m.Nodes, 2)
	require.NoError(t, err)

	phi := basis.Eval(rule.Points)
	for q := 0; q < rule.Len(); q++ {
		var sum float64
		for i := 0; i < m.NumNodes(); i++ {
			sum += phi.At(i, q)
		}
		assert.InDelta(t, 1.0, sum, 1e-14)
	}
}

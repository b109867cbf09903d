package poisson

import (
	"fmt"
	"math"
)

// Level is one row of a convergence table.
type Level struct {
	MeshSize int
	H        float64
	L2Error  float64
	H1Error  float64
	L2Order  float64 // observed order vs the previous level, NaN on the first
	H1Order  float64
}

// ObservedOrder returns the convergence order implied by errors e1, e2 at
// mesh spacings h1, h2.
func ObservedOrder(e1, h1, e2, h2 float64) float64 {
	return math.Log(e1/e2) / math.Log(h1/h2)
}

// Study runs the pipeline at each mesh size and tabulates errors and
// observed convergence orders. The build function maps a mesh size to the
// problem solved at that size; every problem must carry an exact solution
// pair, or the tabulated errors stay NaN.
func Study(meshSizes []int, build func(meshSize int) Problem) ([]Level, error) {
	levels := make([]Level, 0, len(meshSizes))
	for i, n := range meshSizes {
		res, err := Solve(build(n))
		if err != nil {
			return nil, fmt.Errorf("meshsize %d: %w", n, err)
		}
		lv := Level{
			MeshSize: n,
			H:        res.Mesh.H,
			L2Error:  res.L2Error,
			H1Error:  res.H1Error,
			L2Order:  math.NaN(),
			H1Order:  math.NaN(),
		}
		if i > 0 {
			prev := levels[i-1]
			lv.L2Order = ObservedOrder(prev.L2Error, prev.H, lv.L2Error, lv.H)
			lv.H1Order = ObservedOrder(prev.H1Error, prev.H, lv.H1Error, lv.H)
		}
		levels = append(levels, lv)
	}
	return levels, nil
}

package equilibrium_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fieldlab/internal/equilibrium"
	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/vec"
)

var _ = Describe("Solver", func() {
	var (
		kernel field.Kernel
		solver *equilibrium.Solver
	)

	BeforeEach(func() {
		kernel = field.Defaults()
		solver = equilibrium.NewSolver(kernel)
	})

	pair := func(x1, q1, x2, q2 float64) []field.Source {
		return []field.Source{
			{ID: 0, Pos: vec.Vec3{X: x1}, Value: q1},
			{ID: 1, Pos: vec.Vec3{X: x2}, Value: q2},
		}
	}

	Describe("like-signed pairs", func() {
		It("finds the midpoint for equal charges", func() {
			sources := pair(-1.0, 2e-9, 1.0, 2e-9)
			res := solver.Solve(sources, field.Electric)

			Expect(res.Found()).To(BeTrue())
			Expect(res.Pos.Length()).To(BeNumerically("<", 1e-9))
			Expect(kernel.At(res.Pos, sources, field.Electric).Length()).
				To(BeNumerically("<=", solver.Tolerance))
		})

		It("sits closer to the weaker charge", func() {
			// sqrt ratio 1:2 puts the null a third of the way from source 0.
			res := solver.Solve(pair(-1.5, 1e-9, 1.5, 4e-9), field.Electric)

			Expect(res.Found()).To(BeTrue())
			Expect(res.Pos.X).To(BeNumerically("~", -0.5, 1e-6))
			Expect(res.Pos.Y).To(BeNumerically("~", 0, 1e-9))
		})
	})

	Describe("opposite-signed pairs", func() {
		It("solves outside the segment beyond the weaker source", func() {
			sources := pair(-0.27, 3.3e-9, 0.18, -1.0e-8)
			res := solver.Solve(sources, field.Electric)

			d := 0.45
			sw := math.Sqrt(3.3e-9)
			ss := math.Sqrt(1.0e-8)
			wantX := -0.27 - sw*d/(ss-sw)

			Expect(res.Found()).To(BeTrue())
			Expect(res.Pos.X).To(BeNumerically("~", wantX, 1e-3))
			Expect(res.Pos.X).To(BeNumerically("<", -0.27))
			Expect(res.Residual).To(BeNumerically("<=", solver.Tolerance))
		})

		It("reports no equilibrium for equal magnitudes", func() {
			res := solver.Solve(pair(-1.0, 5e-9, 1.0, -5e-9), field.Electric)
			Expect(res.Status).To(Equal(equilibrium.NoEquilibrium))
			Expect(res.Found()).To(BeFalse())
		})
	})

	Describe("degenerate configurations", func() {
		It("rejects sources under the distance floor", func() {
			res := solver.Solve(pair(0, 1e-9, kernel.MinDistance/2, 2e-9), field.Electric)
			Expect(res.Status).To(Equal(equilibrium.NoEquilibrium))
		})

		It("rejects a zero-valued source", func() {
			res := solver.Solve(pair(-1, 0, 1, 1e-9), field.Electric)
			Expect(res.Status).To(Equal(equilibrium.NoEquilibrium))
		})
	})

	Describe("unsupported configurations", func() {
		It("rejects source counts other than two", func() {
			one := []field.Source{{Pos: vec.Vec3{}, Value: 1e-9}}
			Expect(solver.Solve(one, field.Electric).Status).To(Equal(equilibrium.Unsupported))

			three := append(pair(-1, 1e-9, 1, 1e-9), field.Source{ID: 2, Pos: vec.Vec3{Y: 1}, Value: 1e-9})
			Expect(solver.Solve(three, field.Electric).Status).To(Equal(equilibrium.Unsupported))

			Expect(solver.Solve(nil, field.Electric).Status).To(Equal(equilibrium.Unsupported))
		})

		It("rejects gravity mode, where fields never cancel", func() {
			res := solver.Solve(pair(-1, 5e10, 1, 5e10), field.Gravity)
			Expect(res.Status).To(Equal(equilibrium.Unsupported))
		})
	})

	Describe("refinement", func() {
		It("returns the best estimate when the budget runs out", func() {
			solver.Tolerance = 0 // unreachable
			solver.MaxIters = 4
			res := solver.Solve(pair(-1.0, 1e-9, 1.0, 3e-9), field.Electric)

			Expect(res.Status).To(Equal(equilibrium.NonConverged))
			Expect(res.Iters).To(Equal(4))
			Expect(res.Found()).To(BeTrue(), "non-converged results stay usable")
			Expect(res.Pos.IsValid()).To(BeTrue())
		})
	})
})

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mvparker810/free-form/internal/sketch"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	verbose := io.ArgToBool(0, true)
	tolerance := io.ArgToFloat(1, 1e-9)
	maxSteps := io.ArgToInt(2, 50)

	if verbose {
		io.PfWhite("\nfree-form -- a 2D parametric geometric constraint solver\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"show messages", "verbose", verbose,
			"convergence tolerance", "tolerance", tolerance,
			"maximum Gauss-Newton steps", "maxSteps", maxSteps,
		))
	}

	// build a tiny demonstration sketch: two points pinned to a fixed
	// separation distance, the way a caller wires up the solver core.
	sk := sketch.New(8, 8, 8)
	p := demoPoint(sk, 0, 0)
	q := demoPoint(sk, 1, 0)
	target := sk.AddParam(sketch.ParamDef{Value: 2, Fixed: true})

	def, ok := sketch.BuildDistance(sk, p, q, target)
	if !ok {
		chk.Panic("failed to build the demonstration distance constraint")
	}
	if h := sk.AddConstraint(def); h == sketch.InvalidHandle {
		chk.Panic("failed to add the demonstration distance constraint")
	}

	if verbose {
		io.Pf("\nbuilt sketch: %d parameters, %d entities, %d constraints\n",
			sk.Params.AliveCount(), sk.Entities.AliveCount(), sk.Constraints.AliveCount())
	}

	converged := sk.Solve(tolerance, maxSteps)
	if !converged {
		chk.Panic("solve did not converge within %d steps", maxSteps)
	}

	pp, _ := sk.PointPos(p)
	qq, _ := sk.PointPos(q)
	if verbose {
		io.Pf("converged: p=(%g,%g) q=(%g,%g)\n", pp.X, pp.Y, qq.X, qq.Y)
	}
}

// demoPoint creates a Point entity with two fresh parameters.
func demoPoint(sk *sketch.Sketch, x, y float64) sketch.EntityHandle {
	def := sketch.DefaultEntityDef(sketch.Point)
	def.X = sk.AddParam(sketch.ParamDef{Value: x})
	def.Y = sk.AddParam(sketch.ParamDef{Value: y})
	return sk.AddEntity(def)
}

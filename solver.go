package greensim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSolverFailed reports that the integrator could not complete a
// step within the step size and Newton iteration limits.
var ErrSolverFailed = errors.New("solver failed")

// derivFunc evaluates dx/dt at time t into dx. Returning an error
// aborts the integration.
type derivFunc func(t float64, x, dx []float64) error

// sqrtEps is the Jacobian perturbation scale, the square root of the
// float64 machine epsilon.
const sqrtEps = 1.4901161193847656e-08

type solverOptions struct {
	atol      float64 // absolute tolerance
	rtol      float64 // relative tolerance
	firstStep float64 // initial step size [s]
	maxStep   float64 // step size ceiling [s]
	minStep   float64 // step size floor [s]
	safety    float64
	minScale  float64
	maxScale  float64
	maxNewton int // Newton iterations per step
}

func defaultSolverOptions() solverOptions {
	return solverOptions{
		atol:      1e-6,
		rtol:      1e-3,
		firstStep: 60,
		maxStep:   3600,
		minStep:   1e-4,
		safety:    0.9,
		minScale:  0.2,
		maxScale:  10,
		maxNewton: 8,
	}
}

// solution holds the accepted integration steps: times in seconds and
// one state vector per accepted step.
type solution struct {
	times  []float64
	states [][]float64
}

/*
bdf integrates a stiff system with variable-step backward
differentiation formulas of order 1 and 2.

Each step solves the implicit equation with a modified Newton
iteration: the Jacobian is built once per step by forward differences
and factorized with an LU decomposition, and the update is halved when
the residual grows. The local error is estimated against a polynomial
predictor and the step size follows the usual safety-factor
controller. The first step runs at order 1, all further steps at
order 2.
*/
type bdf struct {
	f   derivFunc
	opt solverOptions
	n   int

	fx    []float64
	pred  []float64
	resid []float64
	delta []float64
	xTry  []float64
	fPert []float64
	jac   *mat.Dense
	iter  *mat.Dense
	lu    mat.LU
}

func newBDF(f derivFunc, n int, opt solverOptions) *bdf {
	return &bdf{
		f:     f,
		opt:   opt,
		n:     n,
		fx:    make([]float64, n),
		pred:  make([]float64, n),
		resid: make([]float64, n),
		delta: make([]float64, n),
		xTry:  make([]float64, n),
		fPert: make([]float64, n),
		jac:   mat.NewDense(n, n, nil),
		iter:  mat.NewDense(n, n, nil),
	}
}

// solve integrates from t0 to t1 starting at x0 and returns every
// accepted step, including the initial condition.
func solveBDF(ctx context.Context, f derivFunc, t0, t1 float64, x0 []float64, opt solverOptions) (*solution, error) {
	s := newBDF(f, len(x0), opt)
	sol := &solution{}
	sol.append(t0, x0)

	x := append([]float64(nil), x0...)
	var xPrev []float64 // state one accepted step back
	var hPrev float64

	h := opt.firstStep
	if h > t1-t0 {
		h = t1 - t0
	}
	t := t0
	for t < t1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if t+h > t1 {
			h = t1 - t
		}

		xNew, errNorm, err := s.step(t, h, x, xPrev, hPrev)
		if err != nil {
			return nil, err
		}
		if xNew == nil || errNorm > 1 {
			// Newton failed or the error estimate is too large.
			scale := opt.minScale
			if xNew != nil {
				scale = math.Max(opt.minScale, opt.safety*math.Pow(errNorm, -0.5))
			}
			h *= scale
			if h < opt.minStep {
				return nil, fmt.Errorf("%w: step size %g below minimum at t=%g", ErrSolverFailed, h, t)
			}
			continue
		}

		xPrev = x
		hPrev = h
		x = xNew
		t += h
		sol.append(t, x)

		if errNorm > 0 {
			h *= math.Min(opt.maxScale, opt.safety*math.Pow(errNorm, -1.0/3.0))
		} else {
			h *= opt.maxScale
		}
		if h > opt.maxStep {
			h = opt.maxStep
		}
	}
	return sol, nil
}

func (sol *solution) append(t float64, x []float64) {
	sol.times = append(sol.times, t)
	sol.states = append(sol.states, append([]float64(nil), x...))
}

/*
step advances one step of size h from state x at time t. xPrev and
hPrev describe the previously accepted step; a nil xPrev selects
order 1. It returns the new state and the weighted error norm, or a
nil state when the Newton iteration did not converge.
*/
func (s *bdf) step(t, h float64, x, xPrev []float64, hPrev float64) ([]float64, float64, error) {
	// Implicit equation: xNew = rhs + beta*h*f(t+h, xNew).
	rhs := make([]float64, s.n)
	beta := 1.0
	if xPrev == nil {
		copy(rhs, x)
		// Forward Euler predictor, so the error estimate measures
		// curvature rather than motion.
		if err := s.f(t, x, s.fx); err != nil {
			return nil, 0, err
		}
		for i := range s.pred {
			s.pred[i] = x[i] + h*s.fx[i]
		}
	} else {
		rho := h / hPrev
		a1 := (1 + rho) * (1 + rho) / (1 + 2*rho)
		a2 := -rho * rho / (1 + 2*rho)
		beta = (1 + rho) / (1 + 2*rho)
		for i := range rhs {
			rhs[i] = a1*x[i] + a2*xPrev[i]
			s.pred[i] = x[i] + rho*(x[i]-xPrev[i])
		}
	}

	if err := s.factorize(t+h, s.pred, beta*h); err != nil {
		return nil, 0, err
	}

	xNew := append([]float64(nil), s.pred...)
	residNorm := math.Inf(1)
	converged := false
	for k := 0; k < s.opt.maxNewton; k++ {
		if err := s.f(t+h, xNew, s.fx); err != nil {
			return nil, 0, err
		}
		for i := range s.resid {
			s.resid[i] = xNew[i] - rhs[i] - beta*h*s.fx[i]
		}
		rn := s.wrms(s.resid, xNew)
		if !math.IsInf(residNorm, 1) && rn > 2*residNorm {
			// Diverging; halve the previous update and try again.
			for i := range xNew {
				xNew[i] += 0.5 * s.delta[i]
			}
			for i := range s.delta {
				s.delta[i] *= 0.5
			}
			residNorm = rn
			continue
		}
		residNorm = rn

		rv := mat.NewVecDense(s.n, s.resid)
		dv := mat.NewVecDense(s.n, s.delta)
		if err := s.lu.SolveVecTo(dv, false, rv); err != nil {
			return nil, 0, nil
		}
		for i := range xNew {
			xNew[i] -= s.delta[i]
		}
		if s.wrms(s.delta, xNew) < 0.1 {
			converged = true
			break
		}
	}
	if !converged {
		return nil, 0, nil
	}

	for i := range s.resid {
		s.resid[i] = xNew[i] - s.pred[i]
	}
	errNorm := 0.5 * s.wrms(s.resid, xNew)
	if math.IsNaN(errNorm) {
		return nil, math.Inf(1), nil
	}
	return xNew, errNorm, nil
}

// factorize builds I - gamma*J by forward differences around x and
// LU-factorizes it for the Newton iteration of this step.
func (s *bdf) factorize(t float64, x []float64, gamma float64) error {
	if err := s.f(t, x, s.fx); err != nil {
		return err
	}
	base := append([]float64(nil), s.fx...)
	copy(s.xTry, x)
	for j := 0; j < s.n; j++ {
		dxj := sqrtEps * math.Max(math.Abs(x[j]), 1e-5)
		s.xTry[j] = x[j] + dxj
		if err := s.f(t, s.xTry, s.fPert); err != nil {
			return err
		}
		s.xTry[j] = x[j]
		for i := 0; i < s.n; i++ {
			s.jac.Set(i, j, (s.fPert[i]-base[i])/dxj)
		}
	}
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			v := -gamma * s.jac.At(i, j)
			if i == j {
				v += 1
			}
			s.iter.Set(i, j, v)
		}
	}
	s.lu.Factorize(s.iter)
	return nil
}

// wrms is the weighted root mean square norm with per-component
// weights atol + rtol*|x_i|.
func (s *bdf) wrms(v, x []float64) float64 {
	sum := 0.0
	for i := range v {
		w := s.opt.atol + s.opt.rtol*math.Abs(x[i])
		r := v[i] / w
		sum += r * r
	}
	return math.Sqrt(sum / float64(len(v)))
}

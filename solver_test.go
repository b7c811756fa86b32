package greensim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOpts() solverOptions {
	opt := defaultSolverOptions()
	opt.firstStep = 1e-3
	opt.maxStep = 0.5
	opt.minStep = 1e-12
	return opt
}

func TestSolveBDFExponentialDecay(t *testing.T) {
	f := func(tm float64, x, dx []float64) error {
		dx[0] = -x[0]
		return nil
	}
	sol, err := solveBDF(context.Background(), f, 0, 3, []float64{1}, testOpts())
	require.NoError(t, err)

	last := sol.states[len(sol.states)-1]
	assert.InDelta(t, 3.0, sol.times[len(sol.times)-1], 1e-9)
	assert.InDelta(t, math.Exp(-3), last[0], 1e-2)

	// The initial condition is part of the solution.
	assert.Equal(t, 0.0, sol.times[0])
	assert.Equal(t, 1.0, sol.states[0][0])
}

func TestSolveBDFStiffProblem(t *testing.T) {
	// x' = -1000 (x - sin t) + cos t has the smooth solution
	// x = sin t for x(0) = 0; an explicit method at these step
	// sizes would blow up.
	f := func(tm float64, x, dx []float64) error {
		dx[0] = -1000*(x[0]-math.Sin(tm)) + math.Cos(tm)
		return nil
	}
	sol, err := solveBDF(context.Background(), f, 0, 1, []float64{0}, testOpts())
	require.NoError(t, err)

	last := sol.states[len(sol.states)-1]
	assert.InDelta(t, math.Sin(1), last[0], 1e-2)
}

func TestSolveBDFCoupledSystem(t *testing.T) {
	// Harmonic oscillator: energy should be roughly conserved over
	// one period at the default tolerances.
	f := func(tm float64, x, dx []float64) error {
		dx[0] = x[1]
		dx[1] = -x[0]
		return nil
	}
	sol, err := solveBDF(context.Background(), f, 0, 2*math.Pi, []float64{1, 0}, testOpts())
	require.NoError(t, err)

	last := sol.states[len(sol.states)-1]
	assert.InDelta(t, 1, last[0], 5e-2)
	assert.InDelta(t, 0, last[1], 5e-2)
}

func TestSolveBDFPropagatesEvalError(t *testing.T) {
	boom := errors.New("boom")
	f := func(tm float64, x, dx []float64) error {
		if tm > 0.5 {
			return boom
		}
		dx[0] = 1
		return nil
	}
	_, err := solveBDF(context.Background(), f, 0, 1, []float64{0}, testOpts())
	assert.ErrorIs(t, err, boom)
}

func TestSolveBDFHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := func(tm float64, x, dx []float64) error {
		dx[0] = -x[0]
		return nil
	}
	_, err := solveBDF(ctx, f, 0, 3, []float64{1}, testOpts())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveBDFStepTimes(t *testing.T) {
	f := func(tm float64, x, dx []float64) error {
		dx[0] = -x[0]
		return nil
	}
	sol, err := solveBDF(context.Background(), f, 0, 2, []float64{1}, testOpts())
	require.NoError(t, err)

	for k := 1; k < len(sol.times); k++ {
		assert.Greater(t, sol.times[k], sol.times[k-1])
	}
	assert.Equal(t, len(sol.times), len(sol.states))
}

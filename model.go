package greensim

import (
	"context"
	"fmt"
	"log"
)

// OutputStep is the default resolution of the result trajectories, in
// seconds.
const OutputStep = 300.0

/*
Model bundles everything one simulation run needs: the greenhouse
parameters, the disturbance trajectories, an optional prescribed
control schedule, and the initial state. The zero value is not usable;
construct with NewModel.
*/
type Model struct {
	Params   *Params
	Disturb  *Series
	Schedule *Schedule // nil runs the rule-based climate controller
	Initial  State
	Step     float64 // output resolution [s], OutputStep when zero
	Solver   solverOptions
}

/*
Result holds the simulated trajectories on the uniform output grid:
the state vector, the disturbances, the actuator settings and the
auxiliary quantities, all as Series over the same time grid.
*/
type Result struct {
	States   *Series
	Disturb  *Series
	Controls *Series
	Aux      *Series

	final State // state at the exact end of the integration
}

/*
NewModel assembles a model from parameters, a disturbance set and an
initial state. When sched is non-nil the run follows the prescribed
settings and pipe temperatures instead of the controller rules; the
pipe channels of the schedule are merged into the disturbance set.

	Args:
	    p: parameters, dependent values already derived
	    dist: disturbance series, times in seconds from the run start
	    sched: prescribed control schedule, or nil
	    x0: initial state

	Returns:
	    the model, or an error when the schedule's pipe channels
	    cannot be merged into the disturbance set
*/
func NewModel(p *Params, dist *Series, sched *Schedule, x0 State) (*Model, error) {
	if sched != nil {
		times, tPipe, tGroPipe, pipeOff, groPipeOff := sched.pipeDisturbances()
		merged, err := mergePipeChannels(dist, times, tPipe, tGroPipe, pipeOff, groPipeOff)
		if err != nil {
			return nil, fmt.Errorf("merge pipe channels: %w", err)
		}
		dist = merged
	}
	return &Model{
		Params:   p,
		Disturb:  dist,
		Schedule: sched,
		Initial:  x0,
		Step:     OutputStep,
		Solver:   defaultSolverOptions(),
	}, nil
}

// mergePipeChannels adds the prescribed pipe channels to the
// disturbance set, interpolated from the schedule's grid onto the
// disturbance grid.
func mergePipeChannels(dist *Series, times, tPipe, tGroPipe, pipeOff, groPipeOff []float64) (*Series, error) {
	out, err := NewSeries(dist.Times())
	if err != nil {
		return nil, err
	}
	for _, name := range dist.Names() {
		if err := out.Add(name, dist.Col(name)); err != nil {
			return nil, err
		}
	}
	add := func(name string, col []float64) error {
		interp := make([]float64, len(out.Times()))
		for k, t := range out.Times() {
			interp[k] = interp1(times, col, t)
		}
		return out.Add(name, interp)
	}
	if err := add("tPipe", tPipe); err != nil {
		return nil, err
	}
	if err := add("tGroPipe", tGroPipe); err != nil {
		return nil, err
	}
	if err := add("pipeSwitchOff", pipeOff); err != nil {
		return nil, err
	}
	if err := add("groPipeSwitchOff", groPipeOff); err != nil {
		return nil, err
	}
	return out, nil
}

/*
Run integrates the model over the full span of the disturbance set and
returns the trajectories on the uniform output grid.

The integration covers [t0, tN] of the disturbance series. After the
solve, the controller is replayed over the accepted steps to rebuild
the settings and auxiliary trajectories, and everything is
interpolated onto the half-open uniform grid.
*/
func (m *Model) Run(ctx context.Context) (*Result, error) {
	times := m.Disturb.Times()
	t0, t1 := times[0], times[len(times)-1]
	return m.run(ctx, t0, t1, m.Initial)
}

func (m *Model) run(ctx context.Context, t0, t1 float64, x0 State) (*Result, error) {
	step := m.Step
	if step <= 0 {
		step = OutputStep
	}

	r := newRHS(m.Params, m.Disturb, m.Schedule)
	xv := make([]float64, stateDim)
	x0.Vector(xv)

	log.Printf("greensim: integrating %.0f s to %.0f s", t0, t1)
	sol, err := solveBDF(ctx, r.eval, t0, t1, xv, m.Solver)
	if err != nil {
		return nil, fmt.Errorf("integrate: %w", err)
	}
	log.Printf("greensim: %d accepted steps, rebuilding trajectories", len(sol.times))

	uRows, aRows := rebuildRows(m.Params, m.Disturb, m.Schedule, sol)
	states, err := rowSeries(sol.times, stateChannels, sol.states)
	if err != nil {
		return nil, err
	}
	controls, err := rowSeries(sol.times, controlChannels, uRows)
	if err != nil {
		return nil, err
	}
	aux, err := rowSeries(sol.times, auxChannels, aRows)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	res.final.SetVector(sol.states[len(sol.states)-1])
	if res.States, err = resampleSeries(states, step); err != nil {
		return nil, err
	}
	if res.Controls, err = resampleSeries(controls, step); err != nil {
		return nil, err
	}
	if res.Aux, err = resampleSeries(aux, step); err != nil {
		return nil, err
	}
	if res.Disturb, err = resampleWindow(m.Disturb, t0, t1, step); err != nil {
		return nil, err
	}
	return res, nil
}

// resampleWindow interpolates s onto the uniform grid covering
// [t0, t1), matching the grid of the other result series.
func resampleWindow(s *Series, t0, t1, step float64) (*Series, error) {
	grid := arange(t0, t1, step)
	out, err := NewSeries(grid)
	if err != nil {
		return nil, err
	}
	for _, name := range s.Names() {
		col := make([]float64, len(grid))
		for k, t := range grid {
			col[k] = s.Sample(name, t)
		}
		if err := out.Add(name, col); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FinalState returns the state at the exact end of the integration,
// for chaining season segments. The uniform output grid is half open
// and does not carry this sample.
func (res *Result) FinalState() State {
	return res.final
}

/*
RunSeason integrates a long season as back-to-back segments, each
continuing from the final state of the previous one, and returns one
result per segment. segmentLen is in seconds. The last segment is
shortened to the end of the disturbance set.
*/
func (m *Model) RunSeason(ctx context.Context, segmentLen float64) ([]*Result, error) {
	if segmentLen <= 0 {
		return nil, fmt.Errorf("season segment length %g must be positive", segmentLen)
	}
	times := m.Disturb.Times()
	t0, t1 := times[0], times[len(times)-1]

	var out []*Result
	x := m.Initial
	for start := t0; start < t1; start += segmentLen {
		end := start + segmentLen
		if end > t1 {
			end = t1
		}
		log.Printf("greensim: season segment %.0f s to %.0f s", start, end)
		res, err := m.run(ctx, start, end, x)
		if err != nil {
			return out, fmt.Errorf("segment starting at %.0f s: %w", start, err)
		}
		out = append(out, res)
		x = res.FinalState()
	}
	return out, nil
}

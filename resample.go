package greensim

/*
Reconstruction of the control and auxiliary trajectories. The solver
only records state vectors at its accepted steps; the actuator
settings and auxiliary quantities are rebuilt afterwards by replaying
the controller over those rows. Each row runs the same two passes as
the derivative evaluation, with the settings carrying over from row
to row, so the replayed trajectories match what the integrator saw.
*/

// rebuildRows replays the controller over the accepted solver rows
// and returns one settings row and one auxiliary row per step.
func rebuildRows(p *Params, dist *Series, sched *Schedule, sol *solution) (uRows, aRows [][]float64) {
	var (
		x State
		d Disturbances
		u = newRuleControls()
		a Aux
	)
	uRows = make([][]float64, len(sol.times))
	aRows = make([][]float64, len(sol.times))
	for k, t := range sol.times {
		x.SetVector(sol.states[k])
		sampleDisturbances(dist, t, &d)
		evalAux(p, &x, &d, &u, &a)
		if sched != nil {
			sched.sampleInto(t, &u)
		} else {
			u.applyRules(p, &x, &d, &a)
		}
		evalAux(p, &x, &d, &u, &a)
		uRows[k] = append([]float64(nil), u.row()...)
		aRows[k] = append([]float64(nil), a.row()...)
	}
	return uRows, aRows
}

// rowSeries builds a series from per-step rows: rows[k][i] is the
// value of channel names[i] at times[k].
func rowSeries(times []float64, names []string, rows [][]float64) (*Series, error) {
	s, err := NewSeries(times)
	if err != nil {
		return nil, err
	}
	col := make([]float64, len(times))
	for i, name := range names {
		for k := range rows {
			col[k] = rows[k][i]
		}
		if err := s.Add(name, append([]float64(nil), col...)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// resampleSeries interpolates every channel of s onto a uniform grid
// with the given step, starting at the first sample time. The grid is
// half open: the last grid point falls strictly before the final
// sample time.
func resampleSeries(s *Series, step float64) (*Series, error) {
	times := s.Times()
	grid := arange(times[0], times[len(times)-1], step)
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

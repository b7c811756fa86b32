package greensim

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

/*
Write the series as CSV: a time column in seconds followed by one
column per channel, in channel order.

Args:

	w: destination
	header: write the column names as the first record

Returns: an error when writing fails.
*/
func (s *Series) WriteCSV(w io.Writer, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		rec := append([]string{"time"}, s.names...)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	rec := make([]string, 1+len(s.names))
	for k, t := range s.times {
		rec[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for i := range s.names {
			rec[i+1] = strconv.FormatFloat(s.cols[i][k], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

/*
Write the resampled state trajectories of one or more runs into a
single CSV file. Segments of a season run share one header and are
written in order.
*/
func WriteResultsCSV(path string, results ...*Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	for i, res := range results {
		if err := res.States.WriteCSV(f, i == 0); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

package models

import "time"

// DateLayout is the wire format for all calendar dates exchanged with
// the upstream provider and emitted in the matrix (ISO 8601, no time
// component).
const DateLayout = "2006-01-02"

// MatrixRow is one calendar date of the rate matrix: the date plus one
// optional price per known property, in site-list order.
//
// A nil price means "no quote observed" and is rendered as JSON null;
// it is never conflated with zero.
type MatrixRow struct {
	Date   time.Time
	Prices []*float64
}

// RateMatrix is the chart-ready aggregation result.
//
// Invariants:
//   - Header is ["Date", primaryName...] in site-list order.
//   - Rows are strictly ascending by date, contiguous, covering exactly
//     [today, today+horizonDays-1]; len(Rows) == horizonDays.
//   - len(row.Prices) == len(Header)-1 for every row.
type RateMatrix struct {
	Header []string
	Rows   []MatrixRow
}

// Chart flattens the matrix into the array-of-arrays payload consumed
// directly by charting libraries: the header row first, then one
// [date, price-or-null, ...] row per day.
func (m *RateMatrix) Chart() [][]any {
	out := make([][]any, 0, len(m.Rows)+1)

	header := make([]any, len(m.Header))
	for i, h := range m.Header {
		header[i] = h
	}
	out = append(out, header)

	for _, row := range m.Rows {
		cells := make([]any, 0, len(row.Prices)+1)
		cells = append(cells, row.Date.Format(DateLayout))
		for _, p := range row.Prices {
			if p == nil {
				cells = append(cells, nil)
			} else {
				cells = append(cells, *p)
			}
		}
		out = append(out, cells)
	}
	return out
}

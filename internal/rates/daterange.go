// Package rates implements the rate-aggregation core: building the
// date×property skeleton, splitting horizons into provider-sized query
// windows, folding raw quote batches into the matrix, and applying
// currency conversion. Everything here is pure computation over domain
// models; fetching and caching live in their own packages.
package rates

import (
	"time"

	"github.com/guttosm/ratepulse/internal/domain/models"
)

// BuildSkeleton produces one MatrixRow per calendar date in
// [today, today+horizonDays), strictly ascending, each with
// propertyCount empty price slots. horizonDays <= 0 yields nil, not an
// error. The caller fixes today once per request so a request spanning
// multiple upstream calls cannot drift across a day boundary.
func BuildSkeleton(horizonDays int, today time.Time, propertyCount int) []models.MatrixRow {
	if horizonDays <= 0 {
		return nil
	}
	day := truncateToDate(today)

	rows := make([]models.MatrixRow, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		rows = append(rows, models.MatrixRow{
			Date:   day.AddDate(0, 0, i),
			Prices: make([]*float64, propertyCount),
		})
	}
	return rows
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

package rates

import (
	"github.com/guttosm/ratepulse/internal/domain/models"
	"github.com/guttosm/ratepulse/internal/provider"
)

// MergeRates folds one raw quote batch into the skeleton, mutating rows
// in place. The batch's site order is positional: site i fills price
// column i, so callers must request sites in the same stable order the
// skeleton was built with.
//
// For every rate record, the price is tier 0 of the record's price
// array, field selected by occ; records without a price for that mode
// are skipped. A cell keeps the minimum price seen across calls, which
// makes repeated merges (one per sub-window, overlapping windows,
// multiple room types) commutative and idempotent. Checkin dates
// outside the skeleton are ignored.
func MergeRates(rows []models.MatrixRow, sites []provider.SiteRates, occ models.Occupancy) {
	if len(rows) == 0 || len(sites) == 0 {
		return
	}

	byDate := make(map[string]int, len(rows))
	for i, row := range rows {
		byDate[row.Date.Format(models.DateLayout)] = i
	}

	for col, site := range sites {
		for _, rate := range site.Rates {
			if len(rate.Price) == 0 {
				continue
			}
			price := rate.Price[0].For(occ)
			if price == nil {
				continue
			}
			idx, ok := byDate[rate.Checkin]
			if !ok {
				continue
			}
			cells := rows[idx].Prices
			if col >= len(cells) {
				continue
			}
			if cur := cells[col]; cur == nil || *price < *cur {
				v := *price
				cells[col] = &v
			}
		}
	}
}

package rates

import "time"

// Provider limits: at most 30 days per rate query, at most two queries
// (60 days) per aggregation request.
const (
	WindowLimit  = 30
	HorizonLimit = 60
)

// Window is one upstream rate query: Days in [1, WindowLimit] starting
// at Start.
type Window struct {
	Days  int
	Start time.Time
}

// SplitWindows computes the 1-2 sub-windows needed to cover a horizon
// under the provider's per-call limit.
//
//   - horizonDays <= 0 yields nil.
//   - horizonDays in [1, 30] yields a single window.
//   - horizonDays in [31, 60] yields (30, start) and
//     (horizonDays-30, start+30d): the second window begins exactly
//     where the first ends, so the union covers
//     [start, start+horizonDays) with no gap and no overlap.
//
// horizonDays > HorizonLimit is a caller contract violation; callers
// must clamp or reject at the validation boundary.
func SplitWindows(horizonDays int, start time.Time) []Window {
	if horizonDays <= 0 {
		return nil
	}
	start = truncateToDate(start)

	if horizonDays <= WindowLimit {
		return []Window{{Days: horizonDays, Start: start}}
	}
	return []Window{
		{Days: WindowLimit, Start: start},
		{Days: horizonDays - WindowLimit, Start: start.AddDate(0, 0, WindowLimit)},
	}
}

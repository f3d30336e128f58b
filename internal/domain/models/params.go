package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the request taxonomy. InvalidInput is rejected
// before any fetch; UpstreamUnavailable means the provider could not be
// reached at all (retries exhausted on a required call). A sub-window
// fetch failing while another succeeds is partial data, not an error.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// Currency is a display currency code from the fixed supported set.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	CAD Currency = "CAD"

	// DefaultCurrency is used when a request omits the currency.
	DefaultCurrency = EUR
)

// ParseCurrency validates a currency code against the supported set.
// An empty string yields the default (EUR).
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case "":
		return DefaultCurrency, nil
	case EUR, USD, GBP, JPY, CAD:
		return Currency(s), nil
	default:
		return "", fmt.Errorf("%w: unsupported currency %q", ErrInvalidInput, s)
	}
}

// Occupancy selects which pricing tier field of a rate record applies:
// single occupancy ("pr1") or double occupancy ("pr2").
type Occupancy string

const (
	Single Occupancy = "pr1"
	Couple Occupancy = "pr2"
)

// ParseOccupancy validates an occupancy selector. An empty string
// yields single occupancy.
func ParseOccupancy(s string) (Occupancy, error) {
	switch Occupancy(s) {
	case "":
		return Single, nil
	case Single, Couple:
		return Occupancy(s), nil
	default:
		return "", fmt.Errorf("%w: unsupported occupancy %q", ErrInvalidInput, s)
	}
}

// Horizon tokens accepted by the API, mapped to day counts. Only these
// four rolling horizons are exposed; anything else is rejected at the
// validation boundary, keeping every horizon within the 60-day limit
// the window splitter supports.
var horizons = map[string]int{
	"DAYS_7":  7,
	"DAYS_14": 14,
	"DAYS_30": 30,
	"DAYS_60": 60,
}

// ParseHorizon maps a horizon token (e.g. "DAYS_14") to its day count.
func ParseHorizon(s string) (int, error) {
	if d, ok := horizons[s]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: unsupported horizon %q", ErrInvalidInput, s)
}

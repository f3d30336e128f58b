package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/ratepulse/internal/cache"
	"github.com/guttosm/ratepulse/internal/domain/models"
	"github.com/guttosm/ratepulse/internal/logger"
	"github.com/guttosm/ratepulse/internal/provider"
	"github.com/guttosm/ratepulse/internal/rates"
)

// RateService defines the aggregation operations exposed to the HTTP
// layer.
type RateService interface {
	// GetMatrix aggregates the lowest rate per date and property over
	// the horizon into a chart-ready matrix in the display currency.
	GetMatrix(ctx context.Context, horizonDays int, cur models.Currency, occ models.Occupancy) (*models.RateMatrix, error)

	// GetProperties returns rich property metadata for card display.
	GetProperties(ctx context.Context) ([]models.Property, error)

	// Ping reports whether the upstream provider is reachable. Served
	// from cache when the site list is warm.
	Ping(ctx context.Context) error
}

type rateService struct {
	api     provider.API
	cache   *cache.Cache
	factors rates.FactorSource
	now     func() time.Time // indirection for tests
	log     zerolog.Logger
}

// NewRateService wires the aggregation pipeline over a provider client
// and a shared cache.
func NewRateService(api provider.API, c *cache.Cache) RateService {
	return &rateService{
		api:     api,
		cache:   c,
		factors: rates.DefaultFactors,
		now:     time.Now,
		log:     logger.With("service"),
	}
}

// GetMatrix implements the aggregation pipeline: site access (cached)
// → skeleton → window split → per-window cached fetches (concurrent)
// → serialized min-merges → currency conversion.
//
// A failed sub-window fetch is logged and skipped; partial data is
// returned with the affected cells left empty. Only a site-access
// failure or invalid input surfaces as an error. Occupancy travels as
// a parameter, never as service state, so concurrent requests with
// different modes cannot interfere.
func (s *rateService) GetMatrix(ctx context.Context, horizonDays int, cur models.Currency, occ models.Occupancy) (*models.RateMatrix, error) {
	if horizonDays > rates.HorizonLimit {
		return nil, fmt.Errorf("%w: horizon %d exceeds %d days", models.ErrInvalidInput, horizonDays, rates.HorizonLimit)
	}
	if _, ok := s.factors.Factor(cur); !ok {
		return nil, fmt.Errorf("%w: unsupported currency %q", models.ErrInvalidInput, cur)
	}

	access, err := s.siteAccess(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: site access: %w", models.ErrUpstreamUnavailable, err)
	}

	header := make([]string, 0, len(access.SiteList)+1)
	header = append(header, "Date")
	siteIDs := make([]int, 0, len(access.SiteList))
	for _, site := range access.SiteList {
		if site.SiteID <= 0 {
			return nil, fmt.Errorf("%w: site ID %d must be a positive integer", models.ErrInvalidInput, site.SiteID)
		}
		header = append(header, site.PrimaryName)
		siteIDs = append(siteIDs, site.SiteID)
	}

	if horizonDays <= 0 {
		return &models.RateMatrix{Header: header}, nil
	}

	// Today is fixed once so both sub-windows and the skeleton agree on
	// the date range even if the request straddles midnight.
	today := s.now()
	skeleton := rates.BuildSkeleton(horizonDays, today, len(siteIDs))
	windows := rates.SplitWindows(horizonDays, today)

	// Fetch windows concurrently; merge strictly after all fetches so
	// the skeleton is never mutated from two goroutines.
	results := make([]*provider.RatesResult, len(windows))
	g, gctx := errgroup.WithContext(ctx)
	for i, w := range windows {
		i, w := i, w
		g.Go(func() error {
			res, err := s.fetchWindow(gctx, siteIDs, w)
			if err != nil {
				s.log.Error().
					Int("window_days", w.Days).
					Str("window_start", w.Start.Format(models.DateLayout)).
					Err(err).
					Msg("rate window fetch failed, returning partial data")
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	for _, res := range results {
		if res == nil {
			continue
		}
		rates.MergeRates(skeleton, res.SiteList, occ)
	}

	rates.ConvertCurrency(skeleton, cur, s.factors)

	return &models.RateMatrix{Header: header, Rows: skeleton}, nil
}

// GetProperties returns the property cards for every accessible site,
// cached for a day alongside the site list itself.
func (s *rateService) GetProperties(ctx context.Context) ([]models.Property, error) {
	access, err := s.siteAccess(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: site access: %w", models.ErrUpstreamUnavailable, err)
	}

	siteIDs := make([]int, 0, len(access.SiteList))
	for _, site := range access.SiteList {
		siteIDs = append(siteIDs, site.SiteID)
	}

	info, err := cache.Fetch(s.cache, cache.PropertyInfoKey, cache.SitesTTL, func() (*provider.PropertyInfoResult, error) {
		return s.api.FetchPropertyInfo(ctx, siteIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: property info: %w", models.ErrUpstreamUnavailable, err)
	}
	return info.SiteList, nil
}

// Ping exercises the cheapest upstream path for readiness probes.
func (s *rateService) Ping(ctx context.Context) error {
	_, err := s.siteAccess(ctx)
	return err
}

func (s *rateService) siteAccess(ctx context.Context) (*provider.SiteAccessResult, error) {
	return cache.Fetch(s.cache, cache.SiteAccessKey, cache.SitesTTL, func() (*provider.SiteAccessResult, error) {
		return s.api.FetchSiteAccess(ctx)
	})
}

func (s *rateService) fetchWindow(ctx context.Context, siteIDs []int, w rates.Window) (*provider.RatesResult, error) {
	key := cache.RatesKey(siteIDs, w.Days, w.Start)
	return cache.Fetch(s.cache, key, cache.RatesTTL, func() (*provider.RatesResult, error) {
		return s.api.FetchRates(ctx, siteIDs, w.Days, w.Start)
	})
}

package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/guttosm/ratepulse/internal/domain/models"
)

func testClient(url string) *Client {
	return New(Config{
		URL:        url,
		Username:   "user",
		Password:   "pass",
		RetryDelay: time.Millisecond,
	})
}

func TestFetchRates_RequestEnvelope(t *testing.T) {
	var got rpcRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(RatesResult{})
	}))
	defer srv.Close()

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if _, err := testClient(srv.URL).FetchRates(context.Background(), []int{11, 22}, 14, start); err != nil {
		t.Fatal(err)
	}

	if got.Operation != "getRates" {
		t.Fatalf("operation = %q", got.Operation)
	}
	if got.UserAuth.Username != "user" || got.UserAuth.Password != "pass" {
		t.Fatalf("userAuth = %+v", got.UserAuth)
	}
	if got.StartDate != "2026-09-01" || got.InventoryHorizon != 14 {
		t.Fatalf("window params: start=%q horizon=%d", got.StartDate, got.InventoryHorizon)
	}
	if len(got.LOSOptions) != 1 || got.LOSOptions[0] != 1 {
		t.Fatalf("losOptions = %v", got.LOSOptions)
	}
	if len(got.SiteIDList) != 2 || got.SiteIDList[0] != 11 {
		t.Fatalf("siteIDList = %v", got.SiteIDList)
	}
}

func TestFetchRates_WindowValidation(t *testing.T) {
	c := testClient("http://unreachable.invalid")
	for _, days := range []int{0, -1, 31} {
		if _, err := c.FetchRates(context.Background(), []int{11}, days, time.Now()); err == nil {
			t.Fatalf("windowDays=%d: expected error before any network call", days)
		}
	}
}

func TestFetchRates_EmptySiteIDs(t *testing.T) {
	// Unreachable URL proves no network call happens.
	c := testClient("http://unreachable.invalid")
	res, err := c.FetchRates(context.Background(), nil, 7, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.SiteList) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestFetchPropertyInfo_EmptySiteIDs(t *testing.T) {
	c := testClient("http://unreachable.invalid")
	res, err := c.FetchPropertyInfo(context.Background(), nil)
	if err != nil || len(res.SiteList) != 0 {
		t.Fatalf("res=%+v err=%v", res, err)
	}
}

func TestFetchSiteAccess_RetriesThenSucceeds(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(SiteAccessResult{SiteList: []Site{{SiteID: 11, PrimaryName: "Dromoland Castle"}}})
	}))
	defer srv.Close()

	res, err := testClient(srv.URL).FetchSiteAccess(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if hits.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", hits.Load())
	}
	if len(res.SiteList) != 1 || res.SiteList[0].SiteID != 11 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestFetchSiteAccess_ExhaustsRetries(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).FetchSiteAccess(context.Background()); err == nil {
		t.Fatalf("expected error after exhausted retries")
	}
	if hits.Load() != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", hits.Load())
	}
}

func TestFetchSiteAccess_NetworkError(t *testing.T) {
	if _, err := testClient("http://unreachable.invalid").FetchSiteAccess(context.Background()); err == nil {
		t.Fatalf("expected network error")
	}
}

func TestPriceTier_For(t *testing.T) {
	one, two := 100.0, 150.0
	tier := PriceTier{Pr1: &one, Pr2: &two}

	if got := tier.For(models.Single); got == nil || *got != 100 {
		t.Fatalf("single = %v", got)
	}
	if got := tier.For(models.Couple); got == nil || *got != 150 {
		t.Fatalf("couple = %v", got)
	}
	if got := (PriceTier{}).For(models.Single); got != nil {
		t.Fatalf("empty tier single = %v", got)
	}
}

package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGetOrFetch_HitSkipsFetch(t *testing.T) {
	c := New(0)

	calls := 0
	fetch := func() (any, error) { calls++; return "value", nil }

	v, err := c.GetOrFetch("k", time.Minute, fetch)
	if err != nil || v != "value" {
		t.Fatalf("first call: v=%v err=%v", v, err)
	}
	v, err = c.GetOrFetch("k", time.Minute, fetch)
	if err != nil || v != "value" {
		t.Fatalf("second call: v=%v err=%v", v, err)
	}
	if calls != 1 {
		t.Fatalf("fetch invoked %d times, want 1", calls)
	}
}

func TestGetOrFetch_ExpiryIsAMiss(t *testing.T) {
	c := New(0)

	calls := 0
	fetch := func() (any, error) { calls++; return calls, nil }

	if _, err := c.GetOrFetch("k", 10*time.Millisecond, fetch); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	v, err := c.GetOrFetch("k", 10*time.Millisecond, fetch)
	if err != nil {
		t.Fatal(err)
	}
	if v != 2 || calls != 2 {
		t.Fatalf("expired entry not refetched: v=%v calls=%d", v, calls)
	}
}

func TestGetOrFetch_ErrorsNotCached(t *testing.T) {
	c := New(0)

	calls := 0
	boom := errors.New("boom")
	fetch := func() (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return "ok", nil
	}

	if _, err := c.GetOrFetch("k", time.Minute, fetch); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	v, err := c.GetOrFetch("k", time.Minute, fetch)
	if err != nil || v != "ok" {
		t.Fatalf("retry after failure: v=%v err=%v", v, err)
	}
	if calls != 2 {
		t.Fatalf("fetch invoked %d times, want 2", calls)
	}
}

func TestGetOrFetch_ColdKeyCollapses(t *testing.T) {
	c := New(0)

	var calls atomic.Int32
	release := make(chan struct{})
	fetch := func() (any, error) {
		calls.Add(1)
		<-release
		return "v", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.GetOrFetch("cold", time.Minute, fetch)
			if err != nil || v != "v" {
				t.Errorf("v=%v err=%v", v, err)
			}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("fetch invoked %d times, want 1 (single flight)", got)
	}
}

func TestFetch_Typed(t *testing.T) {
	c := New(0)

	type payload struct{ N int }
	v, err := Fetch(c, "k", time.Minute, func() (*payload, error) { return &payload{N: 7}, nil })
	if err != nil || v.N != 7 {
		t.Fatalf("v=%+v err=%v", v, err)
	}

	// Error path returns the zero value.
	boom := errors.New("boom")
	out, err := Fetch(c, "other", time.Minute, func() (*payload, error) { return nil, boom })
	if !errors.Is(err, boom) || out != nil {
		t.Fatalf("out=%v err=%v", out, err)
	}
}

func TestRatesKey_CanonicalOrder(t *testing.T) {
	start := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	a := RatesKey([]int{22, 11, 33}, 30, start)
	b := RatesKey([]int{11, 33, 22}, 30, start)
	if a != b {
		t.Fatalf("same ID set must share a key: %q vs %q", a, b)
	}

	if a == RatesKey([]int{11, 22, 33}, 14, start) {
		t.Fatalf("window length must be part of the key")
	}
	if a == RatesKey([]int{11, 22, 33}, 30, start.AddDate(0, 0, 1)) {
		t.Fatalf("start date must be part of the key")
	}
	if a == RatesKey([]int{11, 22}, 30, start) {
		t.Fatalf("ID set must be part of the key")
	}
}

func TestRatesKey_DoesNotMutateInput(t *testing.T) {
	ids := []int{3, 1, 2}
	_ = RatesKey(ids, 7, time.Now())
	if ids[0] != 3 || ids[1] != 1 || ids[2] != 2 {
		t.Fatalf("input slice mutated: %v", ids)
	}
}

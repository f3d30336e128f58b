package models

import (
	"errors"
	"testing"
)

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		in      string
		want    Currency
		wantErr bool
	}{
		{"", EUR, false},
		{"EUR", EUR, false},
		{"USD", USD, false},
		{"GBP", GBP, false},
		{"JPY", JPY, false},
		{"CAD", CAD, false},
		{"BTC", "", true},
		{"eur", "", true}, // codes are case-sensitive
	}
	for _, c := range cases {
		got, err := ParseCurrency(c.in)
		if c.wantErr {
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("ParseCurrency(%q): err=%v, want ErrInvalidInput", c.in, err)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Fatalf("ParseCurrency(%q)=%q err=%v", c.in, got, err)
		}
	}
}

func TestParseOccupancy(t *testing.T) {
	if got, err := ParseOccupancy(""); err != nil || got != Single {
		t.Fatalf("default occupancy: got=%q err=%v", got, err)
	}
	if got, err := ParseOccupancy("pr2"); err != nil || got != Couple {
		t.Fatalf("pr2: got=%q err=%v", got, err)
	}
	if _, err := ParseOccupancy("pr3"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("pr3: err=%v, want ErrInvalidInput", err)
	}
}

func TestParseHorizon(t *testing.T) {
	cases := map[string]int{
		"DAYS_7":  7,
		"DAYS_14": 14,
		"DAYS_30": 30,
		"DAYS_60": 60,
	}
	for token, want := range cases {
		if got, err := ParseHorizon(token); err != nil || got != want {
			t.Fatalf("ParseHorizon(%q)=%d err=%v", token, got, err)
		}
	}
	for _, token := range []string{"", "DAYS_90", "7"} {
		if _, err := ParseHorizon(token); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ParseHorizon(%q): err=%v, want ErrInvalidInput", token, err)
		}
	}
}

package domain

import (
	"testing"
	"time"
)

func at(d, h int) time.Time {
	return time.Date(2026, 8, d, h, 0, 0, 0, time.Local)
}

func TestDurationDaysRoundsUp(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"tepat 24 jam", at(1, 8), at(2, 8), 1},
		{"25 jam", at(1, 8), at(2, 9), 2},
		{"1 menit", at(1, 8), at(1, 8).Add(time.Minute), 1},
		{"tepat 48 jam", at(1, 8), at(3, 8), 2},
		{"end sebelum start", at(2, 8), at(1, 8), 1},
	}
	for _, tc := range cases {
		if got := DurationDays(tc.start, tc.end); got != tc.want {
			t.Fatalf("%s: got %d hari, want %d", tc.name, got, tc.want)
		}
	}
}

func TestResolveBaseRatePrecedence(t *testing.T) {
	car := Car{Price24h: 300000, Pricing: map[string]int64{"12 Jam": 200000}}

	override := int64(150000)
	if got := ResolveBaseRate(car, "12 Jam", &override); got != 150000 {
		t.Fatalf("override should win, got %d", got)
	}
	if got := ResolveBaseRate(car, "12 Jam", nil); got != 200000 {
		t.Fatalf("package rate should win over fallback, got %d", got)
	}
	if got := ResolveBaseRate(car, "6 Jam", nil); got != 300000 {
		t.Fatalf("unknown package should fall back to price24h, got %d", got)
	}
	if got := ResolveBaseRate(Car{}, "24 Jam", nil); got != 0 {
		t.Fatalf("car without any rate should price at 0, got %d", got)
	}
}

func TestComputePricingTotalIsSumOfParts(t *testing.T) {
	car := Car{ID: "car-1", Price24h: 300000}
	driver := &Driver{ID: "drv-1", DailyRate: 100000}

	p := ComputePricing(car, driver, at(1, 8), at(2, 8), "24 Jam", nil, 50000, 25000, nil)
	if p.DurationDays != 1 {
		t.Fatalf("duration got %d, want 1", p.DurationDays)
	}
	if p.BasePrice != 300000 || p.DriverFee != 100000 {
		t.Fatalf("unexpected base/driver fee: %d / %d", p.BasePrice, p.DriverFee)
	}
	want := p.BasePrice + p.DriverFee + p.HighSeasonFee + p.DeliveryFee + p.OvertimeFee
	if p.TotalPrice != want {
		t.Fatalf("total %d is not the sum of parts %d", p.TotalPrice, want)
	}
	if p.TotalPrice != 475000 {
		t.Fatalf("total got %d, want 475000", p.TotalPrice)
	}
}

func TestComputePricingHighSeasonStacking(t *testing.T) {
	car := Car{Price24h: 300000}
	seasons := []HighSeason{
		{ID: "hs1", StartDate: day(1), EndDate: day(10), PriceIncrease: 50000},
		{ID: "hs2", StartDate: day(2), EndDate: day(4), PriceIncrease: 20000},
		{ID: "hs3", StartDate: day(20), EndDate: day(25), PriceIncrease: 99000},
	}

	// window overlaps hs1 and hs2, 2 days, both rules stack on every day
	p := ComputePricing(car, nil, day(2), day(4), "24 Jam", seasons, 0, 0, nil)
	if p.DurationDays != 2 {
		t.Fatalf("duration got %d, want 2", p.DurationDays)
	}
	wantFee := int64(50000+20000) * 2
	if p.HighSeasonFee != wantFee {
		t.Fatalf("high season fee got %d, want %d", p.HighSeasonFee, wantFee)
	}
	if p.TotalPrice != 600000+wantFee {
		t.Fatalf("total got %d, want %d", p.TotalPrice, 600000+wantFee)
	}

	// window outside all rules
	p = ComputePricing(car, nil, day(12), day(14), "24 Jam", seasons, 0, 0, nil)
	if p.HighSeasonFee != 0 {
		t.Fatalf("high season fee should be 0 outside rules, got %d", p.HighSeasonFee)
	}
}

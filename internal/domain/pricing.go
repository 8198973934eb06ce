package domain

import "time"

// PriceBreakdown is the priced result of a booking window.
// TotalPrice is always the exact sum of the five fee components.
type PriceBreakdown struct {
	DurationDays  int   `json:"durationDays"`
	BasePrice     int64 `json:"basePrice"`
	DriverFee     int64 `json:"driverFee"`
	HighSeasonFee int64 `json:"highSeasonFee"`
	DeliveryFee   int64 `json:"deliveryFee"`
	OvertimeFee   int64 `json:"overtimeFee"`
	TotalPrice    int64 `json:"totalPrice"`
}

// DurationDays bills partial days as whole days, minimum 1 day.
func DurationDays(start, end time.Time) int {
	d := end.Sub(start)
	days := int(d / (24 * time.Hour))
	if time.Duration(days)*24*time.Hour < d {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// ResolveBaseRate picks the daily rate: manual override first, then the
// car's per-package price, then the 24h fallback rate.
func ResolveBaseRate(car Car, packageType string, override *int64) int64 {
	if override != nil {
		return *override
	}
	if rate, ok := car.Pricing[packageType]; ok {
		return rate
	}
	return car.Price24h
}

// ComputePricing prices a booking window. High-season rules stack
// additively: every rule intersecting the window contributes
// priceIncrease x durationDays, without deduplication or capping.
func ComputePricing(car Car, driver *Driver, start, end time.Time, packageType string, highSeasons []HighSeason, deliveryFee, overtimeFee int64, baseRateOverride *int64) PriceBreakdown {
	days := DurationDays(start, end)

	baseRate := ResolveBaseRate(car, packageType, baseRateOverride)
	basePrice := baseRate * int64(days)

	var driverFee int64
	if driver != nil {
		driverFee = driver.DailyRate * int64(days)
	}

	var highSeasonFee int64
	for _, hs := range highSeasons {
		if Overlaps(start, end, hs.StartDate, hs.EndDate) {
			highSeasonFee += hs.PriceIncrease * int64(days)
		}
	}

	return PriceBreakdown{
		DurationDays:  days,
		BasePrice:     basePrice,
		DriverFee:     driverFee,
		HighSeasonFee: highSeasonFee,
		DeliveryFee:   deliveryFee,
		OvertimeFee:   overtimeFee,
		TotalPrice:    basePrice + driverFee + highSeasonFee + deliveryFee + overtimeFee,
	}
}

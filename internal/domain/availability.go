package domain

import "time"

type ResourceKind string

const (
	ResourceCar    ResourceKind = "car"
	ResourceDriver ResourceKind = "driver"
)

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// IsAvailable reports whether the car or driver is free for [start, end).
// Cancelled bookings never hold a claim, and excludeBookingID lets an edit
// ignore the booking being edited. Callers must reject end <= start before
// calling; an empty resourceID trivially matches nothing.
func IsAvailable(bookings []Booking, resourceID string, start, end time.Time, kind ResourceKind, excludeBookingID string) bool {
	if resourceID == "" {
		return true
	}
	for _, b := range bookings {
		if b.ID == excludeBookingID || b.Status == StatusCancelled {
			continue
		}
		switch kind {
		case ResourceDriver:
			if b.DriverID != resourceID {
				continue
			}
		default:
			if b.CarID != resourceID {
				continue
			}
		}
		if Overlaps(b.StartDate, b.EndDate, start, end) {
			return false
		}
	}
	return true
}

package domain

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.Local)
}

func TestOverlapsOpenInterval(t *testing.T) {
	// back-to-back windows share only the boundary instant
	if Overlaps(day(1), day(3), day(3), day(5)) {
		t.Fatalf("back-to-back windows should not overlap")
	}
	if !Overlaps(day(1), day(4), day(3), day(5)) {
		t.Fatalf("partially intersecting windows should overlap")
	}
	// containment both ways
	if !Overlaps(day(1), day(10), day(3), day(5)) {
		t.Fatalf("containing window should overlap")
	}
	if !Overlaps(day(3), day(5), day(1), day(10)) {
		t.Fatalf("contained window should overlap")
	}
}

func TestIsAvailableConflictAndExclusion(t *testing.T) {
	bookings := []Booking{
		{ID: "b1", CarID: "car-1", DriverID: "drv-1", Status: StatusBooked, StartDate: day(5), EndDate: day(8)},
		{ID: "b2", CarID: "car-1", Status: StatusCancelled, StartDate: day(10), EndDate: day(12)},
	}

	if IsAvailable(bookings, "car-1", day(6), day(7), ResourceCar, "") {
		t.Fatalf("car-1 should be busy inside b1 window")
	}
	if !IsAvailable(bookings, "car-1", day(8), day(10), ResourceCar, "") {
		t.Fatalf("window starting at b1 end should be free")
	}
	// cancelled bookings never hold a claim
	if !IsAvailable(bookings, "car-1", day(10), day(12), ResourceCar, "") {
		t.Fatalf("cancelled booking should not block availability")
	}
	// editing b1 itself must ignore its own claim
	if !IsAvailable(bookings, "car-1", day(5), day(8), ResourceCar, "b1") {
		t.Fatalf("edit of b1 should exclude its own window")
	}
	if IsAvailable(bookings, "drv-1", day(6), day(7), ResourceDriver, "") {
		t.Fatalf("drv-1 should be busy inside b1 window")
	}
	if !IsAvailable(bookings, "car-2", day(5), day(8), ResourceCar, "") {
		t.Fatalf("unrelated car should be free")
	}
}

func TestIsAvailableEmptyResourceID(t *testing.T) {
	bookings := []Booking{
		{ID: "b1", CarID: "car-1", DriverID: "", Status: StatusBooked, StartDate: day(5), EndDate: day(8)},
	}
	// bookings without drivers must never collide with a "no driver" request
	if !IsAvailable(bookings, "", day(5), day(8), ResourceDriver, "") {
		t.Fatalf("empty resource id should always be available")
	}
}

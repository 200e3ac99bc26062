package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	bookModel "schoolku_backend/internals/features/school/scheduling/bookings/model"
	"schoolku_backend/internals/features/school/scheduling/timeslot"
)

func slot(t *testing.T, date, start, end string) timeslot.TimeSlot {
	t.Helper()
	ts, err := timeslot.New(date, start, end)
	if err != nil {
		t.Fatalf("timeslot.New: %v", err)
	}
	return ts
}

func booking(resourceID uuid.UUID, ts timeslot.TimeSlot, status bookModel.BookingStatus) bookModel.ResourceBookingModel {
	return bookModel.ResourceBookingModel{
		ResourceBookingID:         uuid.New(),
		ResourceBookingResourceID: resourceID,
		ResourceBookingDate:       ts.Date,
		ResourceBookingStartTime:  ts.Start,
		ResourceBookingEndTime:    ts.End,
		ResourceBookingStatus:     status,
	}
}

func TestCheckEmptyAlwaysAccepts(t *testing.T) {
	r1 := uuid.New()
	if err := Check(r1, slot(t, "2024-03-04", "09:00", "10:00"), nil); err != nil {
		t.Fatalf("resource without bookings must accept: %v", err)
	}
}

func TestCheckExactDuplicateConflicts(t *testing.T) {
	r1 := uuid.New()
	ts := slot(t, "2024-03-04", "09:00", "10:00")
	ex := booking(r1, ts, bookModel.BookingStatusConfirmed)

	err := Check(r1, ts, []bookModel.ResourceBookingModel{ex})
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
	if ce.ConflictingBookingID != ex.ResourceBookingID {
		t.Fatalf("conflict must reference the prior booking id")
	}
}

// Skenario normatif: R1 punya booking confirmed 09:00–10:00 pada 2024-03-04.
// Kandidat 10:00–11:00 di tanggal sama DITOLAK (batas inklusif),
// kandidat 10:01–11:00 diterima.
func TestCheckInclusiveBoundaryScenario(t *testing.T) {
	r1 := uuid.New()
	ex := booking(r1, slot(t, "2024-03-04", "09:00", "10:00"), bookModel.BookingStatusConfirmed)
	existing := []bookModel.ResourceBookingModel{ex}

	err := Check(r1, slot(t, "2024-03-04", "10:00", "11:00"), existing)
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("candidate starting at existing end must conflict, got %v", err)
	}
	if ce.ConflictingBookingID != ex.ResourceBookingID {
		t.Fatalf("conflict id = %s, want %s", ce.ConflictingBookingID, ex.ResourceBookingID)
	}

	if err := Check(r1, slot(t, "2024-03-04", "10:01", "11:00"), existing); err != nil {
		t.Fatalf("10:01–11:00 must be accepted: %v", err)
	}
}

func TestCheckCancelledNeverBlocks(t *testing.T) {
	r1 := uuid.New()
	ts := slot(t, "2024-03-04", "09:00", "10:00")
	ex := booking(r1, ts, bookModel.BookingStatusCancelled)

	// Identik dengan booking cancelled → tetap diterima.
	if err := Check(r1, ts, []bookModel.ResourceBookingModel{ex}); err != nil {
		t.Fatalf("cancelled booking must never block: %v", err)
	}
}

func TestCheckIgnoresOtherResources(t *testing.T) {
	r1, r2 := uuid.New(), uuid.New()
	ts := slot(t, "2024-03-04", "09:00", "10:00")
	other := booking(r2, ts, bookModel.BookingStatusConfirmed)

	if err := Check(r1, ts, []bookModel.ResourceBookingModel{other}); err != nil {
		t.Fatalf("bookings of other resources must not block: %v", err)
	}
}

func TestCheckSequentialNonOverlappingSet(t *testing.T) {
	r1 := uuid.New()
	slots := []timeslot.TimeSlot{
		slot(t, "2024-03-04", "07:00", "07:59"),
		slot(t, "2024-03-04", "08:00", "08:59"),
		slot(t, "2024-03-04", "09:00", "09:59"),
		slot(t, "2024-03-05", "07:00", "07:59"), // hari lain, jam sama
	}

	var existing []bookModel.ResourceBookingModel
	for _, ts := range slots {
		if err := Check(r1, ts, existing); err != nil {
			t.Fatalf("non-overlapping slot %v rejected: %v", ts, err)
		}
		existing = append(existing, booking(r1, ts, bookModel.BookingStatusPending))
	}

	// Kandidat yang menabrak salah satu anggota harus ditolak dengan id yang benar.
	err := Check(r1, slot(t, "2024-03-04", "08:30", "09:30"), existing)
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("overlapping candidate must conflict, got %v", err)
	}
	if ce.ConflictingBookingID != existing[1].ResourceBookingID {
		t.Fatalf("conflict id = %s, want %s (first overlapping member)", ce.ConflictingBookingID, existing[1].ResourceBookingID)
	}
}

func TestCheckRejectsInvalidCandidate(t *testing.T) {
	r1 := uuid.New()
	bad := timeslot.TimeSlot{} // tanpa date, start == end
	err := Check(r1, bad, nil)
	if !errors.Is(err, timeslot.ErrInvalidTimeSlot) {
		t.Fatalf("invalid candidate must fail before any comparison, got %v", err)
	}
}

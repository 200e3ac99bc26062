package timeslot

import (
	"errors"
	"testing"
)

func mustSlot(t *testing.T, date, start, end string) TimeSlot {
	t.Helper()
	ts, err := New(date, start, end)
	if err != nil {
		t.Fatalf("New(%s %s-%s): %v", date, start, end, err)
	}
	return ts
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name             string
		date, start, end string
		wantErr          bool
	}{
		{"ok", "2024-03-04", "09:00", "10:00", false},
		{"start equals end", "2024-03-04", "09:00", "09:00", true},
		{"start after end", "2024-03-04", "11:00", "10:00", true},
		{"bad date", "04-03-2024", "09:00", "10:00", true},
		{"empty date", "", "09:00", "10:00", true},
		{"bad start", "2024-03-04", "9am", "10:00", true},
		{"bad end", "2024-03-04", "09:00", "ten", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.date, tc.start, tc.end)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr && err != nil && !errors.Is(err, ErrInvalidTimeSlot) {
				t.Fatalf("error %v is not ErrInvalidTimeSlot", err)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	base := mustSlot(t, "2024-03-04", "09:00", "10:00")

	cases := []struct {
		name  string
		other TimeSlot
		want  bool
	}{
		{"identical interval", mustSlot(t, "2024-03-04", "09:00", "10:00"), true},
		{"contained inside", mustSlot(t, "2024-03-04", "09:15", "09:45"), true},
		{"partial overlap front", mustSlot(t, "2024-03-04", "08:30", "09:30"), true},
		{"partial overlap back", mustSlot(t, "2024-03-04", "09:30", "10:30"), true},
		// Batas inklusif: menyentuh endpoint tetap bentrok.
		{"touching at end", mustSlot(t, "2024-03-04", "10:00", "11:00"), true},
		{"touching at start", mustSlot(t, "2024-03-04", "08:00", "09:00"), true},
		{"one minute after", mustSlot(t, "2024-03-04", "10:01", "11:00"), false},
		{"one minute before", mustSlot(t, "2024-03-04", "07:00", "08:59"), false},
		{"same clock other date", mustSlot(t, "2024-03-05", "09:00", "10:00"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(base, tc.other); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", base, tc.other, got, tc.want)
			}
			// simetris
			if got := Overlaps(tc.other, base); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v (symmetry)", tc.other, base, got, tc.want)
			}
		})
	}
}

func TestOverlapsTouchingBoundaryAlwaysConflicts(t *testing.T) {
	// Untuk slot x, slot yang mulai tepat di x.End selalu bentrok.
	x := mustSlot(t, "2024-03-04", "13:00", "14:00")
	y := mustSlot(t, "2024-03-04", "14:00", "14:30")
	if !Overlaps(x, y) {
		t.Fatalf("slot starting at x.End must conflict with x")
	}
}

func TestWireFormatRoundTrip(t *testing.T) {
	ts := mustSlot(t, "2024-03-04", "07:05", "08:40")
	if ts.DateString() != "2024-03-04" || ts.StartString() != "07:05" || ts.EndString() != "08:40" {
		t.Fatalf("unexpected serialization: %s %s %s", ts.DateString(), ts.StartString(), ts.EndString())
	}
}

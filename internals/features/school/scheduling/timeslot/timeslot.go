// file: internals/features/school/scheduling/timeslot/timeslot.go
package timeslot

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

/* =======================================================
   TimeSlot — representasi kanonik rentang waktu bookable
   (date + start/end time-of-day). Dipakai semua modul
   scheduling; predikat overlap-nya adalah kontrak tetap.
   ======================================================= */

// ErrInvalidTimeSlot dikembalikan Validate untuk slot yang malformed.
var ErrInvalidTimeSlot = errors.New("invalid time slot")

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type TimeSlot struct {
	Date  time.Time // date-only (jam diabaikan)
	Start time.Time // time-of-day
	End   time.Time // time-of-day
}

// New membangun TimeSlot dari string wire format (YYYY-MM-DD, HH:MM).
func New(dateStr, startStr, endStr string) (TimeSlot, error) {
	var ts TimeSlot

	d, err := time.Parse(DateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return ts, fmt.Errorf("%w: date %q (want YYYY-MM-DD)", ErrInvalidTimeSlot, dateStr)
	}
	st, err := time.Parse(TimeLayout, strings.TrimSpace(startStr))
	if err != nil {
		return ts, fmt.Errorf("%w: start_time %q (want HH:MM)", ErrInvalidTimeSlot, startStr)
	}
	en, err := time.Parse(TimeLayout, strings.TrimSpace(endStr))
	if err != nil {
		return ts, fmt.Errorf("%w: end_time %q (want HH:MM)", ErrInvalidTimeSlot, endStr)
	}

	ts = TimeSlot{Date: d, Start: st, End: en}
	if err := ts.Validate(); err != nil {
		return TimeSlot{}, err
	}
	return ts, nil
}

// Validate: date wajib ada dan start harus < end.
func (ts TimeSlot) Validate() error {
	if ts.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidTimeSlot)
	}
	if MinuteOfDay(ts.Start) >= MinuteOfDay(ts.End) {
		return fmt.Errorf("%w: start_time must be before end_time", ErrInvalidTimeSlot)
	}
	return nil
}

// MinuteOfDay mengabaikan tanggal; hanya jam & menit yang dibandingkan.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// SameDate membandingkan kalender saja (Y/M/D), bukan instant.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Overlaps: beda tanggal tidak pernah overlap; di tanggal yang sama
// overlap iff a.Start <= b.End && b.Start <= a.End.
//
// Batas INKLUSIF: slot yang berakhir 10:00 bentrok dengan slot yang
// mulai 10:00 (tidak ada buffer serah-terima ruangan). Back-to-back
// booking ditolak — ini kontrak, bukan detail implementasi.
func Overlaps(a, b TimeSlot) bool {
	if !SameDate(a.Date, b.Date) {
		return false
	}
	return MinuteOfDay(a.Start) <= MinuteOfDay(b.End) &&
		MinuteOfDay(b.Start) <= MinuteOfDay(a.End)
}

// DateString / StartString / EndString — serialisasi wire format.
func (ts TimeSlot) DateString() string  { return ts.Date.Format(DateLayout) }
func (ts TimeSlot) StartString() string { return ts.Start.Format(TimeLayout) }
func (ts TimeSlot) EndString() string   { return ts.End.Format(TimeLayout) }

func (ts TimeSlot) String() string {
	return fmt.Sprintf("%s %s–%s", ts.DateString(), ts.StartString(), ts.EndString())
}

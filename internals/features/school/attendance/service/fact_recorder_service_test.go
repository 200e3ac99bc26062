package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	factModel "schoolku_backend/internals/features/school/attendance/model"
)

func baseInput() RecordInput {
	note := "hadir tepat waktu"
	return RecordInput{
		SchoolID: uuid.New(),
		EntityID: uuid.New(),
		Date:     time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Kind:     "LUNCH",
		Status:   factModel.FactStatusPresent,
		Note:     &note,
		ActorID:  uuid.New(),
	}
}

func TestApplyPayloadCreate(t *testing.T) {
	in := baseInput()
	got := ApplyPayload(nil, in)

	if got.AttendanceFactSchoolID != in.SchoolID ||
		got.AttendanceFactEntityID != in.EntityID ||
		got.AttendanceFactKind != in.Kind {
		t.Fatalf("natural key fields not carried over")
	}
	if got.AttendanceFactStatus != factModel.FactStatusPresent {
		t.Fatalf("status = %s, want present", got.AttendanceFactStatus)
	}
	if got.AttendanceFactRecordedBy != in.ActorID {
		t.Fatalf("recorded_by must be the first observer")
	}
}

// Skenario normatif: (enrollment_42, 2024-03-04, LUNCH) dicatat PRESENT,
// lalu dicatat ulang ABSENT → satu fakta dengan status ABSENT,
// recorded_by & created_at observasi pertama tidak berubah.
func TestApplyPayloadReReportLastWins(t *testing.T) {
	in := baseInput()
	first := ApplyPayload(nil, in)
	first.AttendanceFactID = uuid.New()
	first.AttendanceFactCreatedAt = time.Date(2024, 3, 4, 7, 30, 0, 0, time.UTC)

	second := in
	second.Status = factModel.FactStatusAbsent
	second.Note = nil
	second.ActorID = uuid.New() // aktor lain melapor ulang

	got := ApplyPayload(&first, second)

	if got.AttendanceFactStatus != factModel.FactStatusAbsent {
		t.Fatalf("status = %s, want absent (last report wins)", got.AttendanceFactStatus)
	}
	if got.AttendanceFactNote != nil {
		t.Fatalf("note must follow the latest payload")
	}
	if got.AttendanceFactRecordedBy != in.ActorID {
		t.Fatalf("recorded_by must stay the FIRST observer")
	}
	if !got.AttendanceFactCreatedAt.Equal(first.AttendanceFactCreatedAt) {
		t.Fatalf("created_at must not change on re-report")
	}
	if got.AttendanceFactID != first.AttendanceFactID {
		t.Fatalf("re-report must update in place, never a new row")
	}
}

func TestApplyPayloadIdempotent(t *testing.T) {
	in := baseInput()
	first := ApplyPayload(nil, in)
	first.AttendanceFactID = uuid.New()

	again := ApplyPayload(&first, in)
	if again.AttendanceFactID != first.AttendanceFactID ||
		again.AttendanceFactStatus != first.AttendanceFactStatus ||
		again.AttendanceFactRecordedBy != first.AttendanceFactRecordedBy {
		t.Fatalf("same payload twice must be equivalent to once")
	}
	if (again.AttendanceFactNote == nil) != (first.AttendanceFactNote == nil) {
		t.Fatalf("note mismatch on idempotent re-apply")
	}
}

func TestRecordInputNormalize(t *testing.T) {
	note := "  terlambat 5 menit  "
	in := RecordInput{Kind: " lunch ", Note: &note}
	in.Normalize()
	if in.Kind != "LUNCH" {
		t.Fatalf("kind = %q, want LUNCH", in.Kind)
	}
	if *in.Note != "terlambat 5 menit" {
		t.Fatalf("note not trimmed: %q", *in.Note)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		msg  string
		want bool
	}{
		{`ERROR: duplicate key value violates unique constraint "uq_attendance_fact_natural_key" (SQLSTATE 23505)`, true},
		{"ERROR: relation does not exist", false},
	}
	for _, tc := range cases {
		if got := isUniqueViolation(errFromString(tc.msg)); got != tc.want {
			t.Fatalf("isUniqueViolation(%q) = %v, want %v", tc.msg, got, tc.want)
		}
	}
	if isUniqueViolation(nil) {
		t.Fatalf("nil must not be a unique violation")
	}
}

type stringError string

func (e stringError) Error() string { return string(e) }

func errFromString(s string) error { return stringError(s) }

// file: internals/features/school/attendance/service/fact_recorder_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	factModel "schoolku_backend/internals/features/school/attendance/model"
)

/* =======================================================
   Idempotent Fact Recorder
   Upsert by natural key (entity_id, date, kind):
   - belum ada  → create, recorded_by = actor
   - sudah ada  → update status/note SAJA; recorded_by dan
                  created_at milik observasi pertama
   Record dua kali dengan payload sama ≡ satu kali.
   Payload beda → yang terakhir menang, tanpa baris ganda.
   Ini invariant correctness: satu makan siang / satu arah
   perjalanan / satu hari tidak punya dua kebenaran.
   ======================================================= */

// ErrUnknownEntity: natural key menunjuk parent yang tidak ada /
// bukan milik tenant. Recorder menolak defensif daripada membuat
// fakta menggantung, walau caller seharusnya sudah memverifikasi.
var ErrUnknownEntity = errors.New("unknown entity for attendance fact")

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

type RecordInput struct {
	SchoolID uuid.UUID
	EntityID uuid.UUID // enrollment / peserta
	Date     time.Time // date-only
	Kind     string    // sub-dimensi, mis. "LUNCH", "TRIP_OUT"
	Status   factModel.FactStatus
	Note     *string
	ActorID  uuid.UUID
}

func (in *RecordInput) Normalize() {
	in.Kind = strings.ToUpper(strings.TrimSpace(in.Kind))
	if in.Note != nil {
		v := strings.TrimSpace(*in.Note)
		in.Note = &v
	}
}

// ApplyPayload menentukan hasil upsert terhadap baris eksisting (nil =
// belum ada). Dipisah murni supaya invariant idempotensinya gampang
// diuji tanpa DB.
func ApplyPayload(existing *factModel.AttendanceFactModel, in RecordInput) factModel.AttendanceFactModel {
	if existing == nil {
		return factModel.AttendanceFactModel{
			AttendanceFactSchoolID:   in.SchoolID,
			AttendanceFactEntityID:   in.EntityID,
			AttendanceFactDate:       in.Date,
			AttendanceFactKind:       in.Kind,
			AttendanceFactStatus:     in.Status,
			AttendanceFactNote:       in.Note,
			AttendanceFactRecordedBy: in.ActorID,
		}
	}
	out := *existing
	out.AttendanceFactStatus = in.Status
	out.AttendanceFactNote = in.Note
	// recorded_by & created_at sengaja tidak disentuh
	return out
}

// parent-existence check: enrollment harus alive dan milik tenant.
// Skema class_section_enrollments dikelola migration eksternal.
func (s *Service) entityExists(tx *gorm.DB, schoolID, entityID uuid.UUID) (bool, error) {
	var n int64
	err := tx.Table("class_section_enrollments").
		Where("class_section_enrollment_id = ? AND class_section_enrollment_school_id = ? AND class_section_enrollment_deleted_at IS NULL",
			entityID, schoolID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Record: upsert atomik per natural key.
// Lookup pakai FOR UPDATE di dalam transaksi; unique index komposit
// (school, entity, date, kind) jadi backstop race — kalau insert kalah
// race dan kena 23505, dibaca ulang lalu jatuh ke jalur update.
func (s *Service) Record(ctx context.Context, in RecordInput) (*factModel.AttendanceFactModel, error) {
	in.Normalize()
	if in.Kind == "" {
		return nil, errors.New("kind is required")
	}
	if !in.Status.Valid() {
		return nil, errors.New("status invalid (present|absent|excused|late)")
	}
	if in.Date.IsZero() {
		return nil, errors.New("date is required")
	}

	var out factModel.AttendanceFactModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, er := s.entityExists(tx, in.SchoolID, in.EntityID)
		if er != nil {
			return er
		}
		if !ok {
			return ErrUnknownEntity
		}

		var existing factModel.AttendanceFactModel
		er = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("attendance_fact_school_id = ?", in.SchoolID).
			Where("attendance_fact_entity_id = ?", in.EntityID).
			Where("attendance_fact_date = ?", in.Date).
			Where("attendance_fact_kind = ?", in.Kind).
			Take(&existing).Error

		switch {
		case errors.Is(er, gorm.ErrRecordNotFound):
			out = ApplyPayload(nil, in)
			if cer := tx.Create(&out).Error; cer != nil {
				if isUniqueViolation(cer) {
					// kalah race dengan recorder lain → baca ulang, update in place
					if rer := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
						Where("attendance_fact_school_id = ?", in.SchoolID).
						Where("attendance_fact_entity_id = ?", in.EntityID).
						Where("attendance_fact_date = ?", in.Date).
						Where("attendance_fact_kind = ?", in.Kind).
						Take(&existing).Error; rer != nil {
						return rer
					}
					return s.updateInPlace(tx, &existing, in, &out)
				}
				return cer
			}
			return nil

		case er != nil:
			return er

		default:
			return s.updateInPlace(tx, &existing, in, &out)
		}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) updateInPlace(tx *gorm.DB, existing *factModel.AttendanceFactModel, in RecordInput, out *factModel.AttendanceFactModel) error {
	merged := ApplyPayload(existing, in)
	if er := tx.Model(&factModel.AttendanceFactModel{}).
		Where("attendance_fact_id = ?", existing.AttendanceFactID).
		Updates(map[string]interface{}{
			"attendance_fact_status": merged.AttendanceFactStatus,
			"attendance_fact_note":   merged.AttendanceFactNote,
		}).Error; er != nil {
		return er
	}
	return tx.Where("attendance_fact_id = ?", existing.AttendanceFactID).Take(out).Error
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}

// file: internals/features/school/attendance/model/attendance_fact_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Enum status kehadiran
   ======================================================= */

type FactStatus string

const (
	FactStatusPresent FactStatus = "present"
	FactStatusAbsent  FactStatus = "absent"
	FactStatusExcused FactStatus = "excused"
	FactStatusLate    FactStatus = "late"
)

func (s FactStatus) Valid() bool {
	switch s {
	case FactStatusPresent, FactStatusAbsent, FactStatusExcused, FactStatusLate:
		return true
	default:
		return false
	}
}

/* =======================================================
   AttendanceFactModel — map ke tabel attendance_facts
   Fakta status per-hari dengan NATURAL KEY
   (entity_id, date, kind): satu enrollment, satu hari,
   satu dimensi (LUNCH / TRIP_OUT / ...) = maksimal SATU
   baris. Duplikasi dicegah recorder + unique index
   komposit di storage (lihat idx di tag gorm).
   ======================================================= */

type AttendanceFactModel struct {
	// PK
	AttendanceFactID uuid.UUID `json:"attendance_fact_id" gorm:"type:uuid;primaryKey;column:attendance_fact_id;default:gen_random_uuid()"`

	// Tenant / scope
	AttendanceFactSchoolID uuid.UUID `json:"attendance_fact_school_id" gorm:"type:uuid;not null;column:attendance_fact_school_id;uniqueIndex:uq_attendance_fact_natural_key"`

	// Natural key
	AttendanceFactEntityID uuid.UUID `json:"attendance_fact_entity_id" gorm:"type:uuid;not null;column:attendance_fact_entity_id;uniqueIndex:uq_attendance_fact_natural_key"`
	AttendanceFactDate     time.Time `json:"attendance_fact_date" gorm:"type:date;not null;column:attendance_fact_date;uniqueIndex:uq_attendance_fact_natural_key"`
	AttendanceFactKind     string    `json:"attendance_fact_kind" gorm:"type:varchar(50);not null;column:attendance_fact_kind;uniqueIndex:uq_attendance_fact_natural_key"`

	// Payload (mutable saat re-report)
	AttendanceFactStatus FactStatus `json:"attendance_fact_status" gorm:"type:text;not null;column:attendance_fact_status"`
	AttendanceFactNote   *string    `json:"attendance_fact_note,omitempty" gorm:"type:text;column:attendance_fact_note"`

	// Pencatat pertama — TIDAK berubah saat re-report
	AttendanceFactRecordedBy uuid.UUID `json:"attendance_fact_recorded_by" gorm:"type:uuid;not null;column:attendance_fact_recorded_by"`

	// Timestamps (created_at juga tidak berubah saat re-report)
	AttendanceFactCreatedAt time.Time      `json:"attendance_fact_created_at" gorm:"column:attendance_fact_created_at;not null;autoCreateTime"`
	AttendanceFactUpdatedAt time.Time      `json:"attendance_fact_updated_at" gorm:"column:attendance_fact_updated_at;not null;autoUpdateTime"`
	AttendanceFactDeletedAt gorm.DeletedAt `json:"attendance_fact_deleted_at" gorm:"column:attendance_fact_deleted_at;index"`
}

func (AttendanceFactModel) TableName() string {
	return "attendance_facts"
}

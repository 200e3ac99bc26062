// file: internals/features/school/attendance/dto/attendance_fact_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	factModel "schoolku_backend/internals/features/school/attendance/model"
)

/* =======================================================
   REQUEST DTO — record (upsert by natural key)
   ======================================================= */

type RecordFactRequest struct {
	AttendanceFactEntityID string  `json:"attendance_fact_entity_id" validate:"required,uuid"`
	AttendanceFactDate     string  `json:"attendance_fact_date" validate:"required"` // YYYY-MM-DD
	AttendanceFactKind     string  `json:"attendance_fact_kind" validate:"required,min=2,max=50"`
	AttendanceFactStatus   string  `json:"attendance_fact_status" validate:"required,oneof=present absent excused late"`
	AttendanceFactNote     *string `json:"attendance_fact_note,omitempty" validate:"omitempty,max=500"`
}

func (r *RecordFactRequest) Normalize() {
	r.AttendanceFactKind = strings.ToUpper(strings.TrimSpace(r.AttendanceFactKind))
	r.AttendanceFactStatus = strings.ToLower(strings.TrimSpace(r.AttendanceFactStatus))
}

func (r *RecordFactRequest) Date() (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(r.AttendanceFactDate))
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type FactResponse struct {
	AttendanceFactID         uuid.UUID `json:"attendance_fact_id"`
	AttendanceFactSchoolID   uuid.UUID `json:"attendance_fact_school_id"`
	AttendanceFactEntityID   uuid.UUID `json:"attendance_fact_entity_id"`
	AttendanceFactDate       string    `json:"attendance_fact_date"`
	AttendanceFactKind       string    `json:"attendance_fact_kind"`
	AttendanceFactStatus     string    `json:"attendance_fact_status"`
	AttendanceFactNote       *string   `json:"attendance_fact_note,omitempty"`
	AttendanceFactRecordedBy uuid.UUID `json:"attendance_fact_recorded_by"`
	AttendanceFactCreatedAt  time.Time `json:"attendance_fact_created_at"`
	AttendanceFactUpdatedAt  time.Time `json:"attendance_fact_updated_at"`
}

func FromModel(m *factModel.AttendanceFactModel) FactResponse {
	return FactResponse{
		AttendanceFactID:         m.AttendanceFactID,
		AttendanceFactSchoolID:   m.AttendanceFactSchoolID,
		AttendanceFactEntityID:   m.AttendanceFactEntityID,
		AttendanceFactDate:       m.AttendanceFactDate.Format("2006-01-02"),
		AttendanceFactKind:       m.AttendanceFactKind,
		AttendanceFactStatus:     string(m.AttendanceFactStatus),
		AttendanceFactNote:       m.AttendanceFactNote,
		AttendanceFactRecordedBy: m.AttendanceFactRecordedBy,
		AttendanceFactCreatedAt:  m.AttendanceFactCreatedAt,
		AttendanceFactUpdatedAt:  m.AttendanceFactUpdatedAt,
	}
}

func FromModels(ms []factModel.AttendanceFactModel) []FactResponse {
	out := make([]FactResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

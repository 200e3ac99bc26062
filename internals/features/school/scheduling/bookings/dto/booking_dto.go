// file: internals/features/school/scheduling/bookings/dto/booking_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	bookModel "schoolku_backend/internals/features/school/scheduling/bookings/model"
	"schoolku_backend/internals/features/school/scheduling/timeslot"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateBookingRequest struct {
	ResourceBookingResourceID string  `json:"resource_booking_resource_id" validate:"required,uuid"`
	ResourceBookingSectionID  string  `json:"resource_booking_section_id" validate:"required,uuid"`
	ResourceBookingDate       string  `json:"resource_booking_date" validate:"required"`       // YYYY-MM-DD
	ResourceBookingStartTime  string  `json:"resource_booking_start_time" validate:"required"` // HH:MM
	ResourceBookingEndTime    string  `json:"resource_booking_end_time" validate:"required"`   // HH:MM
	ResourceBookingSubjectID  *string `json:"resource_booking_subject_id,omitempty" validate:"omitempty,uuid"`
	ResourceBookingPurpose    *string `json:"resource_booking_purpose,omitempty" validate:"omitempty,max=200"`
	// pending (default) atau confirmed — cancelled tidak boleh jadi status awal
	ResourceBookingStatus string `json:"resource_booking_status,omitempty" validate:"omitempty,oneof=pending confirmed"`
}

func (r *CreateBookingRequest) Normalize() {
	r.ResourceBookingStatus = strings.ToLower(strings.TrimSpace(r.ResourceBookingStatus))
	if r.ResourceBookingPurpose != nil {
		v := strings.TrimSpace(*r.ResourceBookingPurpose)
		r.ResourceBookingPurpose = &v
	}
}

func (r *CreateBookingRequest) Slot() (timeslot.TimeSlot, error) {
	return timeslot.New(r.ResourceBookingDate, r.ResourceBookingStartTime, r.ResourceBookingEndTime)
}

func (r *CreateBookingRequest) InitialStatus() bookModel.BookingStatus {
	if r.ResourceBookingStatus == "" {
		return bookModel.BookingStatusPending
	}
	return bookModel.BookingStatus(r.ResourceBookingStatus)
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type BookingResponse struct {
	ResourceBookingID              uuid.UUID  `json:"resource_booking_id"`
	ResourceBookingSchoolID        uuid.UUID  `json:"resource_booking_school_id"`
	ResourceBookingAcademicYearID  uuid.UUID  `json:"resource_booking_academic_year_id"`
	ResourceBookingResourceID      uuid.UUID  `json:"resource_booking_resource_id"`
	ResourceBookingDate            string     `json:"resource_booking_date"`
	ResourceBookingStartTime       string     `json:"resource_booking_start_time"`
	ResourceBookingEndTime         string     `json:"resource_booking_end_time"`
	ResourceBookingStatus          string     `json:"resource_booking_status"`
	ResourceBookingRequesterUserID uuid.UUID  `json:"resource_booking_requester_user_id"`
	ResourceBookingSectionID       uuid.UUID  `json:"resource_booking_section_id"`
	ResourceBookingSubjectID       *uuid.UUID `json:"resource_booking_subject_id,omitempty"`
	ResourceBookingPurpose         *string    `json:"resource_booking_purpose,omitempty"`
	ResourceBookingCreatedAt       time.Time  `json:"resource_booking_created_at"`
	ResourceBookingUpdatedAt       time.Time  `json:"resource_booking_updated_at"`
}

func FromModel(m *bookModel.ResourceBookingModel) BookingResponse {
	slot := m.Slot()
	return BookingResponse{
		ResourceBookingID:              m.ResourceBookingID,
		ResourceBookingSchoolID:        m.ResourceBookingSchoolID,
		ResourceBookingAcademicYearID:  m.ResourceBookingAcademicYearID,
		ResourceBookingResourceID:      m.ResourceBookingResourceID,
		ResourceBookingDate:            slot.DateString(),
		ResourceBookingStartTime:       slot.StartString(),
		ResourceBookingEndTime:         slot.EndString(),
		ResourceBookingStatus:          string(m.ResourceBookingStatus),
		ResourceBookingRequesterUserID: m.ResourceBookingRequesterUserID,
		ResourceBookingSectionID:       m.ResourceBookingSectionID,
		ResourceBookingSubjectID:       m.ResourceBookingSubjectID,
		ResourceBookingPurpose:         m.ResourceBookingPurpose,
		ResourceBookingCreatedAt:       m.ResourceBookingCreatedAt,
		ResourceBookingUpdatedAt:       m.ResourceBookingUpdatedAt,
	}
}

func FromModels(ms []bookModel.ResourceBookingModel) []BookingResponse {
	out := make([]BookingResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

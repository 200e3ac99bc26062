// file: internals/features/school/scheduling/bookings/model/booking_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/scheduling/timeslot"
)

/* =======================================================
   Enum status booking
   Lifecycle: pending → confirmed → cancelled.
   cancelled final — tidak pernah keluar lagi, dan tidak
   pernah memblok cek konflik (soft-cancel untuk audit).
   ======================================================= */

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// Blocks: status yang ikut dihitung saat cek konflik.
func (s BookingStatus) Blocks() bool {
	return s != BookingStatusCancelled
}

/* =======================================================
   ResourceBookingModel — map ke tabel resource_bookings
   Satu booking = satu resource + satu time slot + satu
   consumer (section), dibuat oleh satu requester.
   ======================================================= */

type ResourceBookingModel struct {
	// PK
	ResourceBookingID uuid.UUID `json:"resource_booking_id" gorm:"type:uuid;primaryKey;column:resource_booking_id;default:gen_random_uuid()"`

	// Tenant / scope (opaque, diteruskan apa adanya dari caller)
	ResourceBookingSchoolID       uuid.UUID `json:"resource_booking_school_id" gorm:"type:uuid;not null;column:resource_booking_school_id"`
	ResourceBookingAcademicYearID uuid.UUID `json:"resource_booking_academic_year_id" gorm:"type:uuid;not null;column:resource_booking_academic_year_id"`

	// Target
	ResourceBookingResourceID uuid.UUID `json:"resource_booking_resource_id" gorm:"type:uuid;not null;index;column:resource_booking_resource_id"`

	// Slot waktu
	ResourceBookingDate      time.Time `json:"resource_booking_date" gorm:"type:date;not null;column:resource_booking_date"`
	ResourceBookingStartTime time.Time `json:"resource_booking_start_time" gorm:"type:time;not null;column:resource_booking_start_time"`
	ResourceBookingEndTime   time.Time `json:"resource_booking_end_time" gorm:"type:time;not null;column:resource_booking_end_time"`

	// Status
	ResourceBookingStatus BookingStatus `json:"resource_booking_status" gorm:"type:text;not null;default:'pending';column:resource_booking_status"`

	// Pihak-pihak
	ResourceBookingRequesterUserID uuid.UUID  `json:"resource_booking_requester_user_id" gorm:"type:uuid;not null;column:resource_booking_requester_user_id"`
	ResourceBookingSectionID       uuid.UUID  `json:"resource_booking_section_id" gorm:"type:uuid;not null;column:resource_booking_section_id"`
	ResourceBookingSubjectID       *uuid.UUID `json:"resource_booking_subject_id,omitempty" gorm:"type:uuid;column:resource_booking_subject_id"`
	ResourceBookingPurpose         *string    `json:"resource_booking_purpose,omitempty" gorm:"type:text;column:resource_booking_purpose"`

	// Timestamps
	ResourceBookingCreatedAt time.Time      `json:"resource_booking_created_at" gorm:"column:resource_booking_created_at;not null;autoCreateTime"`
	ResourceBookingUpdatedAt time.Time      `json:"resource_booking_updated_at" gorm:"column:resource_booking_updated_at;not null;autoUpdateTime"`
	ResourceBookingDeletedAt gorm.DeletedAt `json:"resource_booking_deleted_at" gorm:"column:resource_booking_deleted_at;index"`
}

func (ResourceBookingModel) TableName() string {
	return "resource_bookings"
}

// Slot mengangkat kolom date/start/end menjadi TimeSlot.
func (m ResourceBookingModel) Slot() timeslot.TimeSlot {
	return timeslot.TimeSlot{
		Date:  m.ResourceBookingDate,
		Start: m.ResourceBookingStartTime,
		End:   m.ResourceBookingEndTime,
	}
}

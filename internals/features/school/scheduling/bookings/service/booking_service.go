// file: internals/features/school/scheduling/bookings/service/booking_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookModel "schoolku_backend/internals/features/school/scheduling/bookings/model"
	"schoolku_backend/internals/features/school/scheduling/policy"
	resModel "schoolku_backend/internals/features/school/scheduling/resources/model"
	"schoolku_backend/internals/features/school/scheduling/timeslot"
)

/* =======================================================
   Booking service: komposisi Policy Resolver + Conflict
   Detector + persist. Satu panggilan Reserve = satu
   transaksi logis; tidak ada state in-memory bersama.
   ======================================================= */

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrSectionNotFound  = errors.New("section not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingCancelled = errors.New("booking already cancelled")
)

type Service struct {
	DB       *gorm.DB
	Resolver *policy.Resolver
}

func New(db *gorm.DB, r *policy.Resolver) *Service {
	return &Service{DB: db, Resolver: r}
}

type ReserveInput struct {
	SchoolID       uuid.UUID
	AcademicYearID uuid.UUID
	ResourceID     uuid.UUID
	Slot           timeslot.TimeSlot
	RequesterID    uuid.UUID
	SectionID      uuid.UUID
	SubjectID      *uuid.UUID
	Purpose        *string
	InitialStatus  bookModel.BookingStatus // pending atau confirmed (policy caller)
}

// proyeksi minimal class_sections (CRUD section ada di luar scope;
// skemanya dikelola migration eksternal)
type sectionRow struct {
	ID    uuid.UUID `gorm:"column:class_section_id"`
	Level string    `gorm:"column:class_section_education_level"`
}

func (s *Service) loadConsumer(ctx context.Context, schoolID, sectionID uuid.UUID) (policy.Consumer, error) {
	var row sectionRow
	err := s.DB.WithContext(ctx).
		Table("class_sections").
		Select("class_section_id, class_section_education_level").
		Where("class_section_id = ? AND class_section_school_id = ? AND class_section_deleted_at IS NULL",
			sectionID, schoolID).
		Limit(1).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return policy.Consumer{}, ErrSectionNotFound
	}
	if err != nil {
		return policy.Consumer{}, err
	}

	consumer := policy.Consumer{SectionID: row.ID, Level: row.Level}

	// resource tetap milik section (kalau ada)
	var assigned resModel.SchoolResourceModel
	err = s.DB.WithContext(ctx).
		Where("school_resource_school_id = ? AND school_resource_assigned_section_id = ?", schoolID, sectionID).
		Limit(1).Take(&assigned).Error
	if err == nil {
		consumer.AssignedResourceID = &assigned.SchoolResourceID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return policy.Consumer{}, err
	}
	return consumer, nil
}

// Reserve: validasi slot → policy → (dalam SATU transaksi) lock resource
// row FOR UPDATE → baca booking non-cancelled → Check → insert.
//
// Lock baris resource menserialisasi reserve concurrent per resource;
// tanpa itu dua caller bisa sama-sama melihat "tidak ada konflik" dan
// dua-duanya sukses (double-booking). Konflik TIDAK di-retry di sini —
// caller yang memutuskan slot pengganti. Retry transient (deadlock dsb.)
// juga urusan caller, dan harus mengulang cek dari state segar.
func (s *Service) Reserve(ctx context.Context, in ReserveInput) (*bookModel.ResourceBookingModel, error) {
	if err := in.Slot.Validate(); err != nil {
		return nil, err
	}
	if !in.InitialStatus.Valid() || in.InitialStatus == bookModel.BookingStatusCancelled {
		return nil, fmt.Errorf("invalid initial status %q", in.InitialStatus)
	}

	consumer, err := s.loadConsumer(ctx, in.SchoolID, in.SectionID)
	if err != nil {
		return nil, err
	}
	mode, err := s.Resolver.ResolveMode(consumer.Level)
	if err != nil {
		return nil, err
	}

	booking := &bookModel.ResourceBookingModel{
		ResourceBookingSchoolID:        in.SchoolID,
		ResourceBookingAcademicYearID:  in.AcademicYearID,
		ResourceBookingResourceID:      in.ResourceID,
		ResourceBookingDate:            in.Slot.Date,
		ResourceBookingStartTime:       in.Slot.Start,
		ResourceBookingEndTime:         in.Slot.End,
		ResourceBookingStatus:          in.InitialStatus,
		ResourceBookingRequesterUserID: in.RequesterID,
		ResourceBookingSectionID:       in.SectionID,
		ResourceBookingSubjectID:       in.SubjectID,
		ResourceBookingPurpose:         in.Purpose,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) lock resource (tenant guard) — titik serialisasi per resource
		var res resModel.SchoolResourceModel
		er := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("school_resource_id = ? AND school_resource_school_id = ?", in.ResourceID, in.SchoolID).
			Take(&res).Error
		if errors.Is(er, gorm.ErrRecordNotFound) {
			return ErrResourceNotFound
		}
		if er != nil {
			return er
		}

		// 2) policy guard (fixed consumer hanya boleh resource tetapnya)
		if er := s.Resolver.AllowsResource(consumer, mode, res); er != nil {
			return er
		}

		// 3) booking eksisting non-cancelled di tanggal yang sama
		var existing []bookModel.ResourceBookingModel
		if er := tx.
			Where("resource_booking_resource_id = ?", in.ResourceID).
			Where("resource_booking_school_id = ?", in.SchoolID).
			Where("resource_booking_academic_year_id = ?", in.AcademicYearID).
			Where("resource_booking_status <> ?", bookModel.BookingStatusCancelled).
			Where("resource_booking_date = ?", in.Slot.Date).
			Find(&existing).Error; er != nil {
			return er
		}

		// 4) cek overlap (batas inklusif)
		if er := Check(in.ResourceID, in.Slot, existing); er != nil {
			return er
		}

		// 5) insert
		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Confirm: pending → confirmed. cancelled final.
func (s *Service) Confirm(ctx context.Context, schoolID, bookingID uuid.UUID) (*bookModel.ResourceBookingModel, error) {
	return s.transition(ctx, schoolID, bookingID, bookModel.BookingStatusConfirmed)
}

// Cancel: soft-cancel (status berubah, baris tetap untuk audit).
// Cancel dua kali idempotent.
func (s *Service) Cancel(ctx context.Context, schoolID, bookingID uuid.UUID) (*bookModel.ResourceBookingModel, error) {
	return s.transition(ctx, schoolID, bookingID, bookModel.BookingStatusCancelled)
}

func (s *Service) transition(ctx context.Context, schoolID, bookingID uuid.UUID, target bookModel.BookingStatus) (*bookModel.ResourceBookingModel, error) {
	var m bookModel.ResourceBookingModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		er := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("resource_booking_id = ? AND resource_booking_school_id = ?", bookingID, schoolID).
			Take(&m).Error
		if errors.Is(er, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		if er != nil {
			return er
		}

		if m.ResourceBookingStatus == bookModel.BookingStatusCancelled {
			if target == bookModel.BookingStatusCancelled {
				return nil // idempotent
			}
			return ErrBookingCancelled
		}
		if m.ResourceBookingStatus == target {
			return nil // idempotent
		}

		m.ResourceBookingStatus = target
		return tx.Model(&bookModel.ResourceBookingModel{}).
			Where("resource_booking_id = ?", m.ResourceBookingID).
			Update("resource_booking_status", target).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// file: internals/features/school/scheduling/bookings/controller/booking_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	d "schoolku_backend/internals/features/school/scheduling/bookings/dto"
	m "schoolku_backend/internals/features/school/scheduling/bookings/model"
	svc "schoolku_backend/internals/features/school/scheduling/bookings/service"
	"schoolku_backend/internals/features/school/scheduling/policy"
	"schoolku_backend/internals/features/school/scheduling/timeslot"
)

/* =========================
   Controller & Constructor
   ========================= */

type BookingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *svc.Service
}

func New(db *gorm.DB, v *validator.Validate, s *svc.Service) *BookingController {
	return &BookingController{DB: db, Validate: v, Service: s}
}

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23503 = foreign_key_violation, 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

// writeReserveError menerjemahkan error typed service → HTTP.
// Konflik & policy selalu bawa detail terstruktur.
func writeReserveError(c *fiber.Ctx, err error) error {
	var ce *svc.ConflictError
	if errors.As(err, &ce) {
		return helper.JsonErrorWithDetails(c, http.StatusConflict, "Slot bentrok dengan booking lain", fiber.Map{
			"conflicting_booking_id": ce.ConflictingBookingID,
			"conflicting_date":       ce.ConflictingSlot.DateString(),
			"conflicting_start_time": ce.ConflictingSlot.StartString(),
			"conflicting_end_time":   ce.ConflictingSlot.EndString(),
		})
	}

	var pe *policy.PolicyError
	if errors.As(err, &pe) {
		return helper.JsonErrorWithDetails(c, http.StatusUnprocessableEntity, "Ditolak resource policy", fiber.Map{
			"policy_code": pe.Code,
			"category":    pe.Category,
			"detail":      pe.Detail,
		})
	}

	switch {
	case errors.Is(err, timeslot.ErrInvalidTimeSlot):
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, svc.ErrResourceNotFound), errors.Is(err, svc.ErrSectionNotFound), errors.Is(err, svc.ErrBookingNotFound):
		return helper.JsonError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, svc.ErrBookingCancelled):
		return helper.JsonError(c, http.StatusConflict, err.Error())
	}

	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}

/* =========================
   Create (reserve)
   ========================= */

func (ctl *BookingController) Create(c *fiber.Ctx) error {
	// --- guard
	if !(helperAuth.IsOwner(c) || helperAuth.IsAdmin(c) || helperAuth.IsTeacher(c) || helperAuth.IsStaff(c)) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	yearID, err := helperAuth.GetAcademicYearIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	// --- body
	var req d.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Booking.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()

	// --- validate
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			log.Printf("[Booking.Create] Validation error: %v", err)
			return helper.JsonValidationError(c, err)
		}
	}

	slot, err := req.Slot()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	resourceID, _ := uuid.Parse(req.ResourceBookingResourceID)
	sectionID, _ := uuid.Parse(req.ResourceBookingSectionID)

	var subjectID *uuid.UUID
	if req.ResourceBookingSubjectID != nil && strings.TrimSpace(*req.ResourceBookingSubjectID) != "" {
		id, er := uuid.Parse(*req.ResourceBookingSubjectID)
		if er != nil {
			return helper.JsonError(c, http.StatusBadRequest, "resource_booking_subject_id invalid")
		}
		subjectID = &id
	}

	booking, err := ctl.Service.Reserve(c.UserContext(), svc.ReserveInput{
		SchoolID:       schoolID,
		AcademicYearID: yearID,
		ResourceID:     resourceID,
		Slot:           slot,
		RequesterID:    userID,
		SectionID:      sectionID,
		SubjectID:      subjectID,
		Purpose:        req.ResourceBookingPurpose,
		InitialStatus:  req.InitialStatus(),
	})
	if err != nil {
		log.Printf("[Booking.Create] Reserve error: %v", err)
		return writeReserveError(c, err)
	}

	return helper.JsonCreated(c, "Booking berhasil dibuat", d.FromModel(booking))
}

/* =========================
   List
   ========================= */

func (ctl *BookingController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext()).
		Model(&m.ResourceBookingModel{}).
		Where("resource_booking_school_id = ?", schoolID)

	// Filters
	if v := strings.TrimSpace(c.Query("resource_id")); v != "" {
		id, er := uuid.Parse(v)
		if er != nil {
			return helper.JsonError(c, http.StatusBadRequest, "resource_id invalid")
		}
		db = db.Where("resource_booking_resource_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("section_id")); v != "" {
		id, er := uuid.Parse(v)
		if er != nil {
			return helper.JsonError(c, http.StatusBadRequest, "section_id invalid")
		}
		db = db.Where("resource_booking_section_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		st := m.BookingStatus(strings.ToLower(v))
		if !st.Valid() {
			return helper.JsonError(c, http.StatusBadRequest, "status invalid (pending|confirmed|cancelled)")
		}
		db = db.Where("resource_booking_status = ?", st)
	}
	if yearID, er := helperAuth.GetAcademicYearIDFromToken(c); er == nil && yearID != uuid.Nil {
		db = db.Where("resource_booking_academic_year_id = ?", yearID)
	}

	from, err := helper.ParseDateQuery(c, "from")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	to, err := helper.ParseDateQuery(c, "to")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if !from.IsZero() {
		db = db.Where("resource_booking_date >= ?", from)
	}
	if !to.IsZero() {
		db = db.Where("resource_booking_date <= ?", to)
	}

	// Pagination
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		code, msg := mapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	var rows []m.ResourceBookingModel
	if err := db.
		Order("resource_booking_date ASC, resource_booking_start_time ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		code, msg := mapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonList(c, "OK", d.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================
   GetByID
   ========================= */

func (ctl *BookingController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.ResourceBookingModel
	er := ctl.DB.WithContext(c.UserContext()).
		Where("resource_booking_id = ? AND resource_booking_school_id = ?", id, schoolID).
		Take(&row).Error
	if errors.Is(er, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, http.StatusNotFound, "Booking tidak ditemukan")
	}
	if er != nil {
		code, msg := mapPGError(er)
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonOK(c, "OK", d.FromModel(&row))
}

/* =========================
   Confirm / Cancel
   ========================= */

func (ctl *BookingController) Confirm(c *fiber.Ctx) error {
	return ctl.transition(c, "confirm")
}

func (ctl *BookingController) Cancel(c *fiber.Ctx) error {
	return ctl.transition(c, "cancel")
}

func (ctl *BookingController) transition(c *fiber.Ctx, op string) error {
	if !(helperAuth.IsOwner(c) || helperAuth.IsAdmin(c) || helperAuth.IsTeacher(c) || helperAuth.IsStaff(c)) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row *m.ResourceBookingModel
	if op == "confirm" {
		row, err = ctl.Service.Confirm(c.UserContext(), schoolID, id)
	} else {
		row, err = ctl.Service.Cancel(c.UserContext(), schoolID, id)
	}
	if err != nil {
		log.Printf("[Booking.%s] error: %v", op, err)
		return writeReserveError(c, err)
	}

	return helper.JsonUpdated(c, "Status booking diperbarui", d.FromModel(row))
}

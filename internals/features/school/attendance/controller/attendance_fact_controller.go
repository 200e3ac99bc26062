// file: internals/features/school/attendance/controller/attendance_fact_controller.go
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

	d "schoolku_backend/internals/features/school/attendance/dto"
	m "schoolku_backend/internals/features/school/attendance/model"
	svc "schoolku_backend/internals/features/school/attendance/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type AttendanceFactController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *svc.Service
}

func New(db *gorm.DB, v *validator.Validate, s *svc.Service) *AttendanceFactController {
	return &AttendanceFactController{DB: db, Validate: v, Service: s}
}

/* =========================
   Record (idempotent upsert)
   PUT karena melapor ulang natural key yang sama memang
   mengganti state, bukan menambah baris.
   ========================= */

func (ctl *AttendanceFactController) Record(c *fiber.Ctx) error {
	// --- guard
	if !(helperAuth.IsOwner(c) || helperAuth.IsAdmin(c) || helperAuth.IsTeacher(c) || helperAuth.IsStaff(c)) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	// --- body
	var req d.RecordFactRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[AttendanceFact.Record] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()

	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}

	date, err := req.Date()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "attendance_fact_date invalid (YYYY-MM-DD)")
	}
	entityID, _ := uuid.Parse(req.AttendanceFactEntityID)

	fact, err := ctl.Service.Record(c.UserContext(), svc.RecordInput{
		SchoolID: schoolID,
		EntityID: entityID,
		Date:     date,
		Kind:     req.AttendanceFactKind,
		Status:   m.FactStatus(req.AttendanceFactStatus),
		Note:     req.AttendanceFactNote,
		ActorID:  actorID,
	})
	if err != nil {
		if errors.Is(err, svc.ErrUnknownEntity) {
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		}
		log.Printf("[AttendanceFact.Record] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Fakta kehadiran tercatat", d.FromModel(fact))
}

/* =========================
   List
   ========================= */

func (ctl *AttendanceFactController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext()).
		Model(&m.AttendanceFactModel{}).
		Where("attendance_fact_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("entity_id")); v != "" {
		id, er := uuid.Parse(v)
		if er != nil {
			return helper.JsonError(c, http.StatusBadRequest, "entity_id invalid")
		}
		db = db.Where("attendance_fact_entity_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("kind")); v != "" {
		db = db.Where("attendance_fact_kind = ?", strings.ToUpper(v))
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		st := m.FactStatus(strings.ToLower(v))
		if !st.Valid() {
			return helper.JsonError(c, http.StatusBadRequest, "status invalid")
		}
		db = db.Where("attendance_fact_status = ?", st)
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
		db = db.Where("attendance_fact_date >= ?", from)
	}
	if !to.IsZero() {
		db = db.Where("attendance_fact_date <= ?", to)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.AttendanceFactModel
	if err := db.
		Order("attendance_fact_date DESC, attendance_fact_kind ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", d.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

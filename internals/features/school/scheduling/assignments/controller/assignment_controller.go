// file: internals/features/school/scheduling/assignments/controller/assignment_controller.go
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

	d "schoolku_backend/internals/features/school/scheduling/assignments/dto"
	svc "schoolku_backend/internals/features/school/scheduling/assignments/service"
	"schoolku_backend/internals/features/school/scheduling/policy"
)

/* =========================
   Controller & Constructor
   ========================= */

type AssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *svc.Service
}

func New(db *gorm.DB, v *validator.Validate, s *svc.Service) *AssignmentController {
	return &AssignmentController{DB: db, Validate: v, Service: s}
}

/* =========================
   Create
   ========================= */

func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	// --- guard
	if !(helperAuth.IsOwner(c) || helperAuth.IsAdmin(c)) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	// --- body
	var req d.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Assignment.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()

	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}

	sectionID, _ := uuid.Parse(req.SectionTeacherAssignmentSectionID)
	teacherID, _ := uuid.Parse(req.SectionTeacherAssignmentTeacherID)

	row, err := ctl.Service.Assign(c.UserContext(), svc.AssignInput{
		SchoolID:  schoolID,
		SectionID: sectionID,
		Level:     req.SectionTeacherAssignmentLevel,
		SubjectID: req.SubjectID(),
		TeacherID: teacherID,
	})
	if err != nil {
		var perr *policy.PolicyError
		switch {
		case errors.As(err, &perr):
			return helper.JsonErrorWithDetails(c, http.StatusUnprocessableEntity, perr.Error(), fiber.Map{
				"policy_code": perr.Code,
			})
		case errors.Is(err, svc.ErrSubjectForbidden), errors.Is(err, svc.ErrSubjectRequired):
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, svc.ErrDuplicateAssign):
			return helper.JsonError(c, http.StatusConflict, err.Error())
		default:
			log.Printf("[Assignment.Create] error: %v", err)
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonCreated(c, "Penugasan guru berhasil dibuat", d.FromModel(row))
}

/* =========================
   List by section
   ========================= */

func (ctl *AssignmentController) ListBySection(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	v := strings.TrimSpace(c.Query("section_id"))
	if v == "" {
		return helper.JsonError(c, http.StatusBadRequest, "section_id wajib diisi")
	}
	sectionID, er := uuid.Parse(v)
	if er != nil {
		return helper.JsonError(c, http.StatusBadRequest, "section_id invalid")
	}

	rows, err := ctl.Service.ListBySection(c.UserContext(), schoolID, sectionID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", d.FromModels(rows))
}

/* =========================
   Delete (soft)
   ========================= */

func (ctl *AssignmentController) Delete(c *fiber.Ctx) error {
	if !(helperAuth.IsOwner(c) || helperAuth.IsAdmin(c)) {
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

	if err := ctl.Service.Unassign(c.UserContext(), schoolID, id); err != nil {
		if errors.Is(err, svc.ErrAssignNotFound) {
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Penugasan guru dihapus", fiber.Map{"section_teacher_assignment_id": id})
}

// file: internals/features/school/scheduling/resources/controller/resource_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	d "schoolku_backend/internals/features/school/scheduling/resources/dto"
	m "schoolku_backend/internals/features/school/scheduling/resources/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type ResourceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ResourceController {
	return &ResourceController{DB: db, Validate: v}
}

// Deteksi unique violation Postgres (kode "23505")
// tanpa import pgx/pgconn biar portable: cek substring.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}

/* =========================
   Create
   ========================= */

func (ctl *ResourceController) Create(c *fiber.Ctx) error {
	if !(helperAuth.IsOwner(c) || helperAuth.IsAdmin(c)) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Resource.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()

	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}

	model, err := req.ToModel(schoolID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(model).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Nama/kode resource sudah dipakai")
		}
		log.Printf("[Resource.Create] DB.Create error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Resource berhasil dibuat", d.FromModel(model))
}

/* =========================
   List
   ========================= */

func (ctl *ResourceController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext()).
		Model(&m.SchoolResourceModel{}).
		Where("school_resource_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("type")); v != "" {
		rt := m.ResourceType(strings.ToLower(v))
		if !rt.Valid() {
			return helper.JsonError(c, http.StatusBadRequest, "type invalid (room|lab|vehicle)")
		}
		db = db.Where("school_resource_type = ?", rt)
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		db = db.Where("school_resource_is_active = ?", v == "true" || v == "1")
	}
	if v := strings.TrimSpace(c.Query("shareable")); v != "" {
		db = db.Where("school_resource_is_shareable = ?", v == "true" || v == "1")
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		db = db.Where("school_resource_name ILIKE ?", "%"+v+"%")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.SchoolResourceModel
	if err := db.
		Order("school_resource_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", d.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================
   GetByID
   ========================= */

func (ctl *ResourceController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.SchoolResourceModel
	er := ctl.DB.WithContext(c.UserContext()).
		Where("school_resource_id = ? AND school_resource_school_id = ?", id, schoolID).
		Take(&row).Error
	if errors.Is(er, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, http.StatusNotFound, "Resource tidak ditemukan")
	}
	if er != nil {
		return helper.JsonError(c, http.StatusInternalServerError, er.Error())
	}

	return helper.JsonOK(c, "OK", d.FromModel(&row))
}

/* =========================
   Patch (tri-state)
   ========================= */

func (ctl *ResourceController) Patch(c *fiber.Ctx) error {
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

	var req d.PatchResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()

	up := req.BuildUpdateMap()
	if len(up) == 0 {
		return helper.JsonError(c, http.StatusBadRequest, "Tidak ada field yang diubah")
	}
	if name, ok := up["school_resource_name"].(string); ok && strings.TrimSpace(name) == "" {
		return helper.JsonError(c, http.StatusBadRequest, "school_resource_name tidak boleh kosong")
	}

	var row m.SchoolResourceModel
	if err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		er := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("school_resource_id = ? AND school_resource_school_id = ?", id, schoolID).
			Take(&row).Error
		if er != nil {
			return er
		}
		if er := tx.Model(&row).Updates(up).Error; er != nil {
			return er
		}
		return tx.
			Where("school_resource_id = ?", id).
			Take(&row).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Resource tidak ditemukan")
		}
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Nama/kode resource sudah dipakai")
		}
		log.Printf("[Resource.Patch] error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Resource diperbarui", d.FromModel(&row))
}

/* =========================
   Delete (soft)
   ========================= */

func (ctl *ResourceController) Delete(c *fiber.Ctx) error {
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

	res := ctl.DB.WithContext(c.UserContext()).
		Where("school_resource_id = ? AND school_resource_school_id = ?", id, schoolID).
		Delete(&m.SchoolResourceModel{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Resource tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Resource dihapus", fiber.Map{"school_resource_id": id})
}

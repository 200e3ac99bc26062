// file: internals/helpers/auth/token_locals.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

/* =======================================================
   Locals yang dihydrate middleware AuthJWT.
   school_id & academic_year_id adalah nilai scoping OPAQUE:
   core scheduling meneruskannya apa adanya ke setiap query,
   tidak pernah menginterpretasi isinya.
   ======================================================= */

const (
	LocUserID         = "user_id"          // string uuid
	LocSchoolID       = "school_id"        // string uuid (tenant)
	LocAcademicYearID = "academic_year_id" // string uuid
	LocRoles          = "roles"            // []string
	LocTeacherID      = "teacher_id"       // string uuid (opsional)
)

func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan di token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format "+key+" tidak valid di token")
	}
	return id, nil
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocUserID)
}

// GetSchoolIDFromToken: tenant scope. Wajib ada untuk semua
// endpoint scheduling — query tanpa scope tenant bisa mendeteksi
// konflik lintas sekolah.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocSchoolID)
}

func GetAcademicYearIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocAcademicYearID)
}

/* =======================================================
   Role guards
   ======================================================= */

func rolesFromLocals(c *fiber.Ctx) []string {
	v := c.Locals(LocRoles)
	switch t := v.(type) {
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(t) != "" {
			return []string{t}
		}
	}
	return nil
}

func hasRole(c *fiber.Ctx, role string) bool {
	for _, r := range rolesFromLocals(c) {
		if strings.EqualFold(strings.TrimSpace(r), role) {
			return true
		}
	}
	return false
}

func IsOwner(c *fiber.Ctx) bool   { return hasRole(c, constants.RoleOwner) }
func IsAdmin(c *fiber.Ctx) bool   { return hasRole(c, constants.RoleAdmin) }
func IsTeacher(c *fiber.Ctx) bool { return hasRole(c, constants.RoleTeacher) }
func IsStaff(c *fiber.Ctx) bool   { return hasRole(c, constants.RoleStaff) }

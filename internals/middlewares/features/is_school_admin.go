// file: internals/middlewares/features/is_school_admin.go
package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
	helper "schoolku_backend/internals/helpers/auth"
)

/* ==========================
   STRICT ROLE CHECK
   Token single-session: satu token = satu school_id aktif,
   roles flat di klaim "roles". Guard di sini lapis pertama;
   controller tetap cek ulang sebelum aksi tulis.
========================== */

// IsSchoolAdmin:
// - Hanya izinkan owner/admin (teacher TIDAK otomatis lolos).
// - school_id wajib sudah ter-hydrate dari token.
func IsSchoolAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Println("🔐 [MIDDLEWARE] IsSchoolAdmin | Path:", c.Path(), "| Method:", c.Method())

		if _, err := helper.GetSchoolIDFromToken(c); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Scope school belum ditentukan")
		}
		if helper.IsOwner(c) || helper.IsAdmin(c) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("pengelolaan resource"))
	}
}

// IsSchoolStaff:
// - Izinkan admin/teacher/staff (plus owner).
func IsSchoolStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Println("🔐 [MIDDLEWARE] IsSchoolStaff | Path:", c.Path(), "| Method:", c.Method())

		if _, err := helper.GetSchoolIDFromToken(c); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Scope school belum ditentukan")
		}
		if helper.IsOwner(c) || helper.IsAdmin(c) || helper.IsTeacher(c) || helper.IsStaff(c) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher("booking & kehadiran"))
	}
}

// file: internals/features/school/attendance/route/teacher_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	factctl "schoolku_backend/internals/features/school/attendance/controller"
	svc "schoolku_backend/internals/features/school/attendance/service"
)

// AttendanceFactRoutes mendaftarkan route pencatatan kehadiran
// untuk group teacher/admin.
func AttendanceFactRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := factctl.New(db, v, svc.New(db))

	grp := r.Group("/attendance-facts")
	grp.Get("/", ctl.List)
	grp.Put("/", ctl.Record)
}

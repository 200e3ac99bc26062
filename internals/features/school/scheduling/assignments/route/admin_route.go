// file: internals/features/school/scheduling/assignments/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asgctl "schoolku_backend/internals/features/school/scheduling/assignments/controller"
	svc "schoolku_backend/internals/features/school/scheduling/assignments/service"
	"schoolku_backend/internals/features/school/scheduling/policy"
)

// AssignmentAdminRoutes mendaftarkan route penugasan guru
// untuk group admin.
func AssignmentAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, resolver *policy.Resolver) {
	ctl := asgctl.New(db, v, svc.New(db, resolver))

	grp := r.Group("/teacher-assignments")
	grp.Get("/", ctl.ListBySection)
	grp.Post("/", ctl.Create)
	grp.Delete("/:id", ctl.Delete)
}

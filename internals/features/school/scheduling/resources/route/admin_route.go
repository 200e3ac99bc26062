// file: internals/features/school/scheduling/resources/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resourcectl "schoolku_backend/internals/features/school/scheduling/resources/controller"
)

// ResourceAdminRoutes mendaftarkan CRUD resource untuk group admin.
func ResourceAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := resourcectl.New(db, v)

	grp := r.Group("/school-resources")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Patch)
	grp.Delete("/:id", ctl.Delete)
}

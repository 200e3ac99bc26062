// file: internals/features/school/scheduling/bookings/route/staff_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingctl "schoolku_backend/internals/features/school/scheduling/bookings/controller"
	svc "schoolku_backend/internals/features/school/scheduling/bookings/service"
	"schoolku_backend/internals/features/school/scheduling/policy"
)

// BookingStaffRoutes mendaftarkan route booking untuk group teacher/staff.
func BookingStaffRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, resolver *policy.Resolver) {
	ctl := bookingctl.New(db, v, svc.New(db, resolver))

	grp := r.Group("/resource-bookings")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Post("/:id/confirm", ctl.Confirm)
	grp.Post("/:id/cancel", ctl.Cancel)
}

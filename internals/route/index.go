// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "schoolku_backend/internals/features/school/attendance/route"
	assignmentRoute "schoolku_backend/internals/features/school/scheduling/assignments/route"
	bookingRoute "schoolku_backend/internals/features/school/scheduling/bookings/route"
	"schoolku_backend/internals/features/school/scheduling/policy"
	resourceRoute "schoolku_backend/internals/features/school/scheduling/resources/route"
	middlewares "schoolku_backend/internals/middlewares"
	schoolkuMiddleware "schoolku_backend/internals/middlewares/auth_school"
	featuresMiddleware "schoolku_backend/internals/middlewares/features"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, resolver *policy.Resolver) {
	startTime = time.Now()

	v := validator.New()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// ===================== TEACHER/STAFF (per school) =====================
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/u",
		schoolkuMiddleware.AuthJWT(schoolkuMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		featuresMiddleware.IsSchoolStaff(),
	)

	// ===================== ADMIN (per school) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		schoolkuMiddleware.AuthJWT(schoolkuMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		featuresMiddleware.IsSchoolAdmin(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Resource routes...")
	resourceRoute.ResourceAdminRoutes(admin, db, v)

	log.Println("[INFO] Mounting Booking routes...")
	bookingRoute.BookingStaffRoutes(teacher.Group("", middlewares.BookingRateLimiter()), db, v, resolver)

	log.Println("[INFO] Mounting Assignment routes...")
	assignmentRoute.AssignmentAdminRoutes(admin, db, v, resolver)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceFactRoutes(teacher, db, v)
}

// file: internals/features/school/lookups/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lookupController "schoolku_backend/internals/features/school/lookups/controller"
)

// LookupUserRoutes mounts the public pick-list endpoints.
func LookupUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := lookupController.NewLookupController(db)

	r := user.Group("/lookups")
	r.Get("/foundations", ctl.Foundations)
	r.Get("/programs", ctl.Programs)
	r.Get("/academic-years", ctl.AcademicYears)
}

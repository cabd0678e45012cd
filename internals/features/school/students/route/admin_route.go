// file: internals/features/school/students/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "schoolku_backend/internals/features/school/students/controller"
	"schoolku_backend/internals/middlewares"
)

// StudentAdminRoutes mounts student CRUD and the roster upload on the
// admin group. The upload sits behind its own tighter rate limit.
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := studentController.NewStudentController(db, v)

	admin.Post("/schools/:school_code/students", ctl.Create)
	admin.Get("/schools/:school_code/students", ctl.ListBySchool)
	admin.Post("/schools/:school_code/students/upload", middlewares.UploadRateLimiter(), ctl.Upload)

	admin.Delete("/students/:student_id", ctl.Delete)
}

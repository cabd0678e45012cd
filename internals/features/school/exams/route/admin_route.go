// file: internals/features/school/exams/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examController "schoolku_backend/internals/features/school/exams/controller"
	"schoolku_backend/internals/middlewares"
)

// ExamAdminRoutes mounts exam CRUD, the marksheet upload, and the
// recalculation trigger on the admin group.
func ExamAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := examController.NewExamController(db, v)

	admin.Post("/schools/:school_code/exams", ctl.Create)
	admin.Get("/schools/:school_code/exams", ctl.ListBySchool)

	admin.Get("/exams/:exam_id", ctl.GetByID)
	admin.Delete("/exams/:exam_id", ctl.Delete)
	admin.Get("/exams/:exam_id/results", ctl.ListResults)
	admin.Post("/exams/:exam_id/results/upload", middlewares.UploadRateLimiter(), ctl.UploadResults)
	admin.Post("/exams/:exam_id/recalculate", ctl.Recalculate)
}

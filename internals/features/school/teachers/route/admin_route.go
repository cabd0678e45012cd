// file: internals/features/school/teachers/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "schoolku_backend/internals/features/school/teachers/controller"
)

// TeacherAdminRoutes mounts teacher and assignment CRUD on the admin group.
func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := teacherController.NewTeacherController(db, v)

	admin.Post("/schools/:school_code/teachers", ctl.Create)
	admin.Get("/schools/:school_code/teachers", ctl.ListBySchool)

	admin.Get("/teachers/:teacher_id", ctl.GetByID)
	admin.Delete("/teachers/:teacher_id", ctl.Delete)
	admin.Post("/teachers/:teacher_id/assignments", ctl.AddAssignment)
	admin.Delete("/teachers/:teacher_id/assignments/:assignment_id", ctl.DeleteAssignment)
}

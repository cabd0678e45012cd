// file: internals/features/school/classes/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "schoolku_backend/internals/features/school/classes/controller"
)

// ClassAdminRoutes mounts class CRUD on the admin group. Creation and
// listing are school-scoped; update and delete address the row directly.
func ClassAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := classController.NewClassController(db, v)

	admin.Post("/schools/:school_code/classes", ctl.Create)
	admin.Get("/schools/:school_code/classes", ctl.ListBySchool)
	admin.Put("/classes/:class_id", ctl.Update)
	admin.Delete("/classes/:class_id", ctl.Delete)
}

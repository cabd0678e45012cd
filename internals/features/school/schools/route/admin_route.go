// file: internals/features/school/schools/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "schoolku_backend/internals/features/school/schools/controller"
)

// SchoolAdminRoutes mounts school CRUD on the admin group.
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := schoolController.NewSchoolController(db, v, nil)

	r := admin.Group("/schools")
	r.Post("/", ctl.Create)
	r.Get("/", ctl.List)
	r.Get("/:school_code", ctl.GetByCode)
	r.Delete("/:school_code", ctl.Delete)
}

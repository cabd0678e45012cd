// file: internals/route/index.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	classRoute "schoolku_backend/internals/features/school/classes/route"
	examRoute "schoolku_backend/internals/features/school/exams/route"
	lookupRoute "schoolku_backend/internals/features/school/lookups/route"
	schoolRoute "schoolku_backend/internals/features/school/schools/route"
	studentRoute "schoolku_backend/internals/features/school/students/route"
	teacherRoute "schoolku_backend/internals/features/school/teachers/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	"schoolku_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every endpoint group:
//
//	/api       public session endpoints
//	/api/u     public lookups
//	/api/a     admin endpoints, JWT + admin role required
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	api := app.Group("/api")

	user := api.Group("/u")
	lookupRoute.LookupUserRoutes(user, db)

	admin := api.Group("/a",
		auth.AuthJWT(auth.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
		auth.OnlyAdmin(),
	)

	authRoute.AuthRoutes(api, admin, db, v, configs.JWTSecret)

	schoolRoute.SchoolAdminRoutes(admin, db, v)
	classRoute.ClassAdminRoutes(admin, db, v)
	teacherRoute.TeacherAdminRoutes(admin, db, v)
	studentRoute.StudentAdminRoutes(admin, db, v)
	examRoute.ExamAdminRoutes(admin, db, v)
}

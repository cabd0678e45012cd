// file: internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "schoolku_backend/internals/features/users/auth/controller"
	"schoolku_backend/internals/middlewares"
)

// AuthRoutes mounts the public session endpoints on the api group and
// the profile endpoint on the authenticated admin group.
func AuthRoutes(api fiber.Router, admin fiber.Router, db *gorm.DB, v *validator.Validate, secret string) {
	ctl := authController.NewAuthController(db, v, secret)

	api.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	api.Post("/refresh-token", ctl.Refresh)
	api.Post("/logout", ctl.Logout)

	admin.Get("/me", ctl.Me)
}

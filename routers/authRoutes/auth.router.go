package authRoutes

import (
	authController "github.com/DengXianqi/learning-tracker/controllers/auth"
	"github.com/DengXianqi/learning-tracker/middleware"
	authValidator "github.com/DengXianqi/learning-tracker/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up Google sign-in and session routes
func SetupAuthRoutes(app *fiber.App, ctrl *authController.AuthController) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/google", authValidator.GoogleLogin(), ctrl.GoogleLogin)
	authGroup.Get("/me", middleware.JWTMiddleware, ctrl.Me)
	authGroup.Post("/refresh", middleware.JWTMiddleware, ctrl.Refresh)
	authGroup.Post("/logout", middleware.JWTMiddleware, ctrl.Logout)
}

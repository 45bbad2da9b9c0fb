package goalRoutes

import (
	goalController "github.com/DengXianqi/learning-tracker/controllers/goal"
	"github.com/DengXianqi/learning-tracker/middleware"
	goalValidator "github.com/DengXianqi/learning-tracker/validators/goal"

	"github.com/gofiber/fiber/v2"
)

// SetupGoalRoutes sets up all goal routes; every route requires a session
func SetupGoalRoutes(app *fiber.App, ctrl *goalController.GoalController) {
	goalGroup := app.Group("/api/goals")

	goalGroup.Get("/", middleware.JWTMiddleware, goalValidator.ListGoals(), ctrl.GetGoals)
	goalGroup.Get("/stats", middleware.JWTMiddleware, ctrl.GetGoalStats)
	goalGroup.Get("/:id", middleware.JWTMiddleware, ctrl.GetGoal)
	goalGroup.Post("/", middleware.JWTMiddleware, goalValidator.CreateGoal(), ctrl.CreateGoal)
	goalGroup.Put("/:id", middleware.JWTMiddleware, goalValidator.UpdateGoal(), ctrl.UpdateGoal)
	goalGroup.Patch("/:id/status", middleware.JWTMiddleware, goalValidator.UpdateGoalStatus(), ctrl.UpdateGoalStatus)
	goalGroup.Delete("/:id", middleware.JWTMiddleware, ctrl.DeleteGoal)
}

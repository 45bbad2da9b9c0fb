package milestoneRoutes

import (
	milestoneController "github.com/DengXianqi/learning-tracker/controllers/milestone"
	"github.com/DengXianqi/learning-tracker/middleware"
	milestoneValidator "github.com/DengXianqi/learning-tracker/validators/milestone"

	"github.com/gofiber/fiber/v2"
)

// SetupMilestoneRoutes sets up all milestone routes; authorization always
// resolves through the parent goal
func SetupMilestoneRoutes(app *fiber.App, ctrl *milestoneController.MilestoneController) {
	milestoneGroup := app.Group("/api/milestones")

	// Goal-scoped routes before the bare :id routes
	milestoneGroup.Get("/goal/:goalId", middleware.JWTMiddleware, ctrl.GetMilestonesByGoal)
	milestoneGroup.Post("/goal/:goalId", middleware.JWTMiddleware, milestoneValidator.CreateMilestone(), ctrl.CreateMilestone)
	milestoneGroup.Put("/goal/:goalId/reorder", middleware.JWTMiddleware, milestoneValidator.Reorder(), ctrl.ReorderMilestones)

	milestoneGroup.Get("/:id", middleware.JWTMiddleware, ctrl.GetMilestone)
	milestoneGroup.Put("/:id", middleware.JWTMiddleware, milestoneValidator.UpdateMilestone(), ctrl.UpdateMilestone)
	milestoneGroup.Patch("/:id/complete", middleware.JWTMiddleware, ctrl.CompleteMilestone)
	milestoneGroup.Patch("/:id/uncomplete", middleware.JWTMiddleware, ctrl.UncompleteMilestone)
	milestoneGroup.Patch("/:id/toggle", middleware.JWTMiddleware, ctrl.ToggleMilestone)
	milestoneGroup.Delete("/:id", middleware.JWTMiddleware, ctrl.DeleteMilestone)
}

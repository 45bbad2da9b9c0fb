package goalController

import (
	"github.com/DengXianqi/learning-tracker/middleware"
	"github.com/DengXianqi/learning-tracker/models"
	"github.com/DengXianqi/learning-tracker/repository"
	"github.com/DengXianqi/learning-tracker/services/ownership"
	goalValidator "github.com/DengXianqi/learning-tracker/validators/goal"

	"github.com/gofiber/fiber/v2"
)

type GoalController struct {
	goals      *repository.GoalRepo
	milestones *repository.MilestoneRepo
	owners     *ownership.Resolver
}

func NewGoalController(goals *repository.GoalRepo, milestones *repository.MilestoneRepo, owners *ownership.Resolver) *GoalController {
	return &GoalController{goals: goals, milestones: milestones, owners: owners}
}

func (gc *GoalController) GetGoals(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedGoalList").(*goalValidator.ListGoalsRequest)
	if !ok {
		reqData = &goalValidator.ListGoalsRequest{}
	}

	goals, err := gc.goals.ListByUser(c.UserContext(), userID, repository.GoalFilter{
		Status: reqData.Status,
		Limit:  reqData.Limit,
		Offset: reqData.Offset,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goals fetched successfully!", fiber.Map{
		"goals": goals,
		"count": len(goals),
	})
}

func (gc *GoalController) GetGoalStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	byStatus, err := gc.goals.StatsByStatus(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}
	byCategory, err := gc.goals.StatsByCategory(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}
	recentActivity, err := gc.goals.RecentActivity(c.UserContext(), userID, 10)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"byStatus":       byStatus,
		"byCategory":     byCategory,
		"recentActivity": recentActivity,
	})
}

// GetGoal returns the goal with its milestones in display order.
func (gc *GoalController) GetGoal(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	goalID, err := c.ParamsInt("id")
	if err != nil || goalID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid goal ID!", nil)
	}

	goal, err := gc.goals.FindWithMilestones(c.UserContext(), uint(goalID))
	if err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}
	if goal.UserID != userID {
		return middleware.ErrorResponse(c, ownership.ErrForbidden, "Goal")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goal fetched successfully!", fiber.Map{
		"goal": goal,
	})
}

func (gc *GoalController) CreateGoal(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedGoal").(*goalValidator.CreateGoalRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	goal := models.Goal{
		UserID:      userID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Category:    reqData.Category,
		TargetDate:  reqData.ParsedTargetDate,
		Status:      reqData.Status,
	}
	if err := gc.goals.Create(c.UserContext(), &goal); err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}

	if len(reqData.Milestones) > 0 {
		seeds := make([]repository.MilestoneSeed, 0, len(reqData.Milestones))
		for _, m := range reqData.Milestones {
			seeds = append(seeds, repository.MilestoneSeed{Title: m.Title, Description: m.Description})
		}
		created, err := gc.milestones.BulkCreate(c.UserContext(), goal.ID, seeds)
		if err != nil {
			return middleware.ErrorResponse(c, err, "Milestone")
		}
		goal.Milestones = created
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Goal created successfully!", fiber.Map{
		"goal": goal,
	})
}

func (gc *GoalController) UpdateGoal(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	goalID, err := c.ParamsInt("id")
	if err != nil || goalID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid goal ID!", nil)
	}

	reqData, ok := c.Locals("validatedGoalUpdate").(*goalValidator.UpdateGoalRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Ownership check runs before any write.
	if err := gc.owners.AuthorizeGoal(c.UserContext(), uint(goalID), userID); err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}

	goal, err := gc.goals.Update(c.UserContext(), uint(goalID), repository.GoalUpdate{
		Title:       reqData.Title,
		Description: reqData.Description,
		Category:    reqData.Category,
		TargetDate:  reqData.ParsedTargetDate,
		Status:      reqData.Status,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goal updated successfully!", fiber.Map{
		"goal": goal,
	})
}

func (gc *GoalController) UpdateGoalStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	goalID, err := c.ParamsInt("id")
	if err != nil || goalID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid goal ID!", nil)
	}

	reqData, ok := c.Locals("validatedGoalStatus").(*goalValidator.UpdateGoalStatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := gc.owners.AuthorizeGoal(c.UserContext(), uint(goalID), userID); err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}

	goal, err := gc.goals.Update(c.UserContext(), uint(goalID), repository.GoalUpdate{Status: &reqData.Status})
	if err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goal status updated!", fiber.Map{
		"goal": goal,
	})
}

func (gc *GoalController) DeleteGoal(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	goalID, err := c.ParamsInt("id")
	if err != nil || goalID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid goal ID!", nil)
	}

	if err := gc.owners.AuthorizeGoal(c.UserContext(), uint(goalID), userID); err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}

	if err := gc.goals.Delete(c.UserContext(), uint(goalID)); err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goal deleted successfully!", nil)
}

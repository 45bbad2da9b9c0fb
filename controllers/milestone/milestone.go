package milestoneController

import (
	"github.com/DengXianqi/learning-tracker/middleware"
	"github.com/DengXianqi/learning-tracker/models"
	"github.com/DengXianqi/learning-tracker/repository"
	"github.com/DengXianqi/learning-tracker/services/ownership"
	milestoneValidator "github.com/DengXianqi/learning-tracker/validators/milestone"

	"github.com/gofiber/fiber/v2"
)

type MilestoneController struct {
	milestones *repository.MilestoneRepo
	owners     *ownership.Resolver
}

func NewMilestoneController(milestones *repository.MilestoneRepo, owners *ownership.Resolver) *MilestoneController {
	return &MilestoneController{milestones: milestones, owners: owners}
}

func (mc *MilestoneController) GetMilestonesByGoal(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	goalID, err := c.ParamsInt("goalId")
	if err != nil || goalID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid goal ID!", nil)
	}

	if err := mc.owners.AuthorizeGoal(c.UserContext(), uint(goalID), userID); err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}

	milestones, err := mc.milestones.ListByGoal(c.UserContext(), uint(goalID))
	if err != nil {
		return middleware.ErrorResponse(c, err, "Milestone")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Milestones fetched successfully!", fiber.Map{
		"milestones": milestones,
		"count":      len(milestones),
	})
}

func (mc *MilestoneController) GetMilestone(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	milestoneID, err := c.ParamsInt("id")
	if err != nil || milestoneID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid milestone ID!", nil)
	}

	if _, err := mc.owners.AuthorizeMilestone(c.UserContext(), uint(milestoneID), userID); err != nil {
		return middleware.ErrorResponse(c, err, "Milestone")
	}

	milestone, err := mc.milestones.FindByID(c.UserContext(), uint(milestoneID))
	if err != nil {
		return middleware.ErrorResponse(c, err, "Milestone")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Milestone fetched successfully!", fiber.Map{
		"milestone": milestone,
	})
}

func (mc *MilestoneController) CreateMilestone(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	goalID, err := c.ParamsInt("goalId")
	if err != nil || goalID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid goal ID!", nil)
	}

	reqData, ok := c.Locals("validatedMilestone").(*milestoneValidator.CreateMilestoneRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := mc.owners.AuthorizeGoal(c.UserContext(), uint(goalID), userID); err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}

	milestone := models.Milestone{
		GoalID:      uint(goalID),
		Title:       reqData.Title,
		Description: reqData.Description,
	}
	if err := mc.milestones.Create(c.UserContext(), &milestone, reqData.OrderIndex); err != nil {
		return middleware.ErrorResponse(c, err, "Milestone")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Milestone created successfully!", fiber.Map{
		"milestone": milestone,
	})
}

func (mc *MilestoneController) UpdateMilestone(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	milestoneID, err := c.ParamsInt("id")
	if err != nil || milestoneID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid milestone ID!", nil)
	}

	reqData, ok := c.Locals("validatedMilestoneUpdate").(*milestoneValidator.UpdateMilestoneRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, err := mc.owners.AuthorizeMilestone(c.UserContext(), uint(milestoneID), userID); err != nil {
		return middleware.ErrorResponse(c, err, "Milestone")
	}

	milestone, err := mc.milestones.Update(c.UserContext(), uint(milestoneID), repository.MilestoneUpdate{
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err, "Milestone")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Milestone updated successfully!", fiber.Map{
		"milestone": milestone,
	})
}

func (mc *MilestoneController) CompleteMilestone(c *fiber.Ctx) error {
	return mc.setCompleted(c, true)
}

func (mc *MilestoneController) UncompleteMilestone(c *fiber.Ctx) error {
	return mc.setCompleted(c, false)
}

func (mc *MilestoneController) setCompleted(c *fiber.Ctx, completed bool) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	milestoneID, err := c.ParamsInt("id")
	if err != nil || milestoneID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid milestone ID!", nil)
	}

	if _, err := mc.owners.AuthorizeMilestone(c.UserContext(), uint(milestoneID), userID); err != nil {
		return middleware.ErrorResponse(c, err, "Milestone")
	}

	var milestone *models.Milestone
	if completed {
		milestone, err = mc.milestones.Complete(c.UserContext(), uint(milestoneID))
	} else {
		milestone, err = mc.milestones.Uncomplete(c.UserContext(), uint(milestoneID))
	}
	if err != nil {
		return middleware.ErrorResponse(c, err, "Milestone")
	}

	message := "Milestone marked as incomplete!"
	if completed {
		message = "Milestone marked as complete!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"milestone": milestone,
	})
}

func (mc *MilestoneController) ToggleMilestone(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	milestoneID, err := c.ParamsInt("id")
	if err != nil || milestoneID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid milestone ID!", nil)
	}

	if _, err := mc.owners.AuthorizeMilestone(c.UserContext(), uint(milestoneID), userID); err != nil {
		return middleware.ErrorResponse(c, err, "Milestone")
	}

	milestone, err := mc.milestones.ToggleComplete(c.UserContext(), uint(milestoneID))
	if err != nil {
		return middleware.ErrorResponse(c, err, "Milestone")
	}

	message := "Milestone marked as incomplete!"
	if milestone.Completed {
		message = "Milestone marked as complete!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"milestone": milestone,
	})
}

func (mc *MilestoneController) DeleteMilestone(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	milestoneID, err := c.ParamsInt("id")
	if err != nil || milestoneID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid milestone ID!", nil)
	}

	if _, err := mc.owners.AuthorizeMilestone(c.UserContext(), uint(milestoneID), userID); err != nil {
		return middleware.ErrorResponse(c, err, "Milestone")
	}

	if err := mc.milestones.Delete(c.UserContext(), uint(milestoneID)); err != nil {
		return middleware.ErrorResponse(c, err, "Milestone")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Milestone deleted successfully!", nil)
}

// ReorderMilestones applies the caller-supplied permutation atomically and
// responds with the authoritative order re-read from the store.
func (mc *MilestoneController) ReorderMilestones(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	goalID, err := c.ParamsInt("goalId")
	if err != nil || goalID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid goal ID!", nil)
	}

	reqData, ok := c.Locals("validatedReorder").(*milestoneValidator.ReorderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := mc.owners.AuthorizeGoal(c.UserContext(), uint(goalID), userID); err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}

	if err := mc.milestones.Reorder(c.UserContext(), uint(goalID), reqData.MilestoneIDs); err != nil {
		return middleware.ErrorResponse(c, err, "Milestone")
	}

	milestones, err := mc.milestones.ListByGoal(c.UserContext(), uint(goalID))
	if err != nil {
		return middleware.ErrorResponse(c, err, "Milestone")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Milestones reordered successfully!", fiber.Map{
		"milestones": milestones,
	})
}

package milestoneValidator

import (
	"strings"

	"github.com/DengXianqi/learning-tracker/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateMilestoneRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  *int   `json:"orderIndex"`
}

type UpdateMilestoneRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"orderIndex"`
}

type ReorderRequest struct {
	MilestoneIDs []uint `json:"milestoneIds"`
}

func CreateMilestone() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateMilestoneRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 255 {
			errors["title"] = "Title must be less than 255 characters!"
		}

		if len(reqData.Description) > 1000 {
			errors["description"] = "Description must be less than 1000 characters!"
		}
		if reqData.OrderIndex != nil && *reqData.OrderIndex < 0 {
			errors["orderIndex"] = "Order index must be a positive integer!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMilestone", reqData)
		return c.Next()
	}
}

func UpdateMilestone() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateMilestoneRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil {
			trimmed := strings.TrimSpace(*reqData.Title)
			if trimmed == "" {
				errors["title"] = "Title cannot be empty!"
			} else if len(trimmed) > 255 {
				errors["title"] = "Title must be less than 255 characters!"
			}
			reqData.Title = &trimmed
		}

		if reqData.Description != nil && len(*reqData.Description) > 1000 {
			errors["description"] = "Description must be less than 1000 characters!"
		}
		if reqData.OrderIndex != nil && *reqData.OrderIndex < 0 {
			errors["orderIndex"] = "Order index must be a positive integer!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMilestoneUpdate", reqData)
		return c.Next()
	}
}

func Reorder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReorderRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// An empty array is a valid no-op; a missing field is not.
		if reqData.MilestoneIDs == nil {
			errors["milestoneIds"] = "milestoneIds must be an array!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}

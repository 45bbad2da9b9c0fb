package goalValidator

import (
	"strings"
	"time"

	"github.com/DengXianqi/learning-tracker/middleware"
	"github.com/DengXianqi/learning-tracker/models"

	"github.com/gofiber/fiber/v2"
)

type MilestoneSeed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CreateGoalRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	TargetDate  string          `json:"targetDate"`
	Status      string          `json:"status"`
	Milestones  []MilestoneSeed `json:"milestones"`

	ParsedTargetDate *time.Time `json:"-"`
}

type UpdateGoalRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	TargetDate  *string `json:"targetDate"`
	Status      *string `json:"status"`

	ParsedTargetDate *time.Time `json:"-"`
}

type UpdateGoalStatusRequest struct {
	Status string `json:"status"`
}

// defaultGoalPageSize caps list responses when the caller sends no limit.
const defaultGoalPageSize = 50

type ListGoalsRequest struct {
	Status string `query:"status"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// parseDate accepts a plain date or a full timestamp.
func parseDate(value string) (*time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, true
		}
	}
	return nil, false
}

func CreateGoal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateGoalRequest)

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

		if len(reqData.Description) > 2000 {
			errors["description"] = "Description must be less than 2000 characters!"
		}
		if len(reqData.Category) > 100 {
			errors["category"] = "Category must be less than 100 characters!"
		}

		if reqData.TargetDate != "" {
			parsed, ok := parseDate(reqData.TargetDate)
			if !ok {
				errors["targetDate"] = "Invalid date format!"
			}
			reqData.ParsedTargetDate = parsed
		}

		if reqData.Status != "" && !models.IsValidGoalStatus(reqData.Status) {
			errors["status"] = "Invalid status!"
		}

		for _, m := range reqData.Milestones {
			if strings.TrimSpace(m.Title) == "" {
				errors["milestones"] = "Every milestone needs a title!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGoal", reqData)
		return c.Next()
	}
}

func UpdateGoal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateGoalRequest)

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

		if reqData.Description != nil && len(*reqData.Description) > 2000 {
			errors["description"] = "Description must be less than 2000 characters!"
		}
		if reqData.Category != nil && len(*reqData.Category) > 100 {
			errors["category"] = "Category must be less than 100 characters!"
		}

		if reqData.TargetDate != nil && *reqData.TargetDate != "" {
			parsed, ok := parseDate(*reqData.TargetDate)
			if !ok {
				errors["targetDate"] = "Invalid date format!"
			}
			reqData.ParsedTargetDate = parsed
		}

		if reqData.Status != nil && !models.IsValidGoalStatus(*reqData.Status) {
			errors["status"] = "Invalid status!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGoalUpdate", reqData)
		return c.Next()
	}
}

func UpdateGoalStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateGoalStatusRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !models.IsValidGoalStatus(reqData.Status) {
			errors["status"] = "Invalid status!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGoalStatus", reqData)
		return c.Next()
	}
}

func ListGoals() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListGoalsRequest)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != "" && !models.IsValidGoalStatus(reqData.Status) {
			errors["status"] = "Invalid status!"
		}
		if reqData.Limit < 0 || reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if reqData.Offset < 0 {
			errors["offset"] = "Offset cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// An unset limit falls back to a bounded page size.
		if reqData.Limit == 0 {
			reqData.Limit = defaultGoalPageSize
		}

		c.Locals("validatedGoalList", reqData)
		return c.Next()
	}
}

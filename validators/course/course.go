package courseValidator

import (
	"github.com/DengXianqi/learning-tracker/middleware"

	"github.com/gofiber/fiber/v2"
)

type SearchCoursesRequest struct {
	Q        string `query:"q"`
	Provider string `query:"provider"`
	Level    string `query:"level"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

var validLevels = map[string]bool{
	"Beginner":     true,
	"Intermediate": true,
	"Advanced":     true,
	"All Levels":   true,
}

func SearchCourses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SearchCoursesRequest)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Q) > 100 {
			errors["q"] = "Search query must be less than 100 characters!"
		}
		if reqData.Level != "" && !validLevels[reqData.Level] {
			errors["level"] = "Invalid level!"
		}
		if reqData.Limit < 0 || reqData.Limit > 50 {
			errors["limit"] = "Limit must be between 1 and 50!"
		}
		if reqData.Offset < 0 {
			errors["offset"] = "Offset cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSearch", reqData)
		return c.Next()
	}
}

package authValidator

import (
	"strings"

	"github.com/DengXianqi/learning-tracker/middleware"

	"github.com/gofiber/fiber/v2"
)

type GoogleLoginRequest struct {
	Credential string `json:"credential"`
}

func GoogleLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GoogleLoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Credential) == "" {
			errors["credential"] = "Google credential is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

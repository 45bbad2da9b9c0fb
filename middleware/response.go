package middleware

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/DengXianqi/learning-tracker/repository"
	"github.com/DengXianqi/learning-tracker/services/ownership"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}

// ErrorResponse translates repository and ownership errors into the
// response taxonomy. Raw store errors never reach the caller.
func ErrorResponse(c *fiber.Ctx, err error, resource string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, resource+" not found!", nil)
	case errors.Is(err, ownership.ErrForbidden):
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this "+strings.ToLower(resource)+"!", nil)
	case errors.Is(err, repository.ErrDuplicate):
		return JsonResponse(c, fiber.StatusConflict, false, resource+" already exists!", nil)
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("Store timeout on %s: %v", resource, err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Request timed out!", nil)
	}
	log.Printf("Unhandled error on %s: %v", resource, err)
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}

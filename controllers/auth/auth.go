package authController

import (
	"log"
	"time"

	"github.com/DengXianqi/learning-tracker/config"
	"github.com/DengXianqi/learning-tracker/middleware"
	"github.com/DengXianqi/learning-tracker/repository"
	"github.com/DengXianqi/learning-tracker/utils"
	authValidator "github.com/DengXianqi/learning-tracker/validators/auth"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// googleTokenInfo is the subset of the tokeninfo response we consume.
type googleTokenInfo struct {
	Aud     string `json:"aud"`
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type AuthController struct {
	users  *repository.UserRepo
	client *resty.Client
}

func NewAuthController(users *repository.UserRepo) *AuthController {
	return &AuthController{
		users:  users,
		client: resty.New().SetTimeout(10 * time.Second),
	}
}

// GoogleLogin verifies a Google ID token, upserts the user record, and
// issues a session token. The verified identity is trusted unconditionally.
func (a *AuthController) GoogleLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.GoogleLoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var info googleTokenInfo
	resp, err := a.client.R().
		SetContext(c.UserContext()).
		SetQueryParam("id_token", reqData.Credential).
		SetResult(&info).
		Get(googleTokenInfoURL)
	if err != nil || !resp.IsSuccess() {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Google credential!", nil)
	}
	if info.Aud != config.AppConfig.GoogleClientID || info.Sub == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Google credential!", nil)
	}

	user, created, err := a.users.FindOrCreate(c.UserContext(), info.Sub, info.Email, info.Name, info.Picture)
	if err != nil {
		return middleware.ErrorResponse(c, err, "User")
	}

	if created {
		go func(email, name string) {
			if err := utils.SendWelcomeEmail(email, name); err != nil {
				log.Printf("Error sending welcome email to %s: %v", email, err)
			}
		}(user.Email, user.Name)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Authentication successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Me returns the authenticated user's profile with aggregate stats.
func (a *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := a.users.FindByID(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "User")
	}

	stats, err := a.users.Stats(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "User")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"user":  user,
		"stats": stats,
	})
}

// Refresh re-issues a token for a still-valid session.
func (a *AuthController) Refresh(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := a.users.FindByID(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "User")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token refreshed!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout is an acknowledgement; sessions are stateless.
func (a *AuthController) Logout(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully!", nil)
}

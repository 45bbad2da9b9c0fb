package main

import (
	"log"
	"time"

	"github.com/DengXianqi/learning-tracker/config"
	authController "github.com/DengXianqi/learning-tracker/controllers/auth"
	courseController "github.com/DengXianqi/learning-tracker/controllers/course"
	goalController "github.com/DengXianqi/learning-tracker/controllers/goal"
	milestoneController "github.com/DengXianqi/learning-tracker/controllers/milestone"
	"github.com/DengXianqi/learning-tracker/database"
	"github.com/DengXianqi/learning-tracker/middleware"
	"github.com/DengXianqi/learning-tracker/repository"
	"github.com/DengXianqi/learning-tracker/routers/authRoutes"
	"github.com/DengXianqi/learning-tracker/routers/courseRoutes"
	"github.com/DengXianqi/learning-tracker/routers/goalRoutes"
	"github.com/DengXianqi/learning-tracker/routers/milestoneRoutes"
	"github.com/DengXianqi/learning-tracker/services/courses"
	"github.com/DengXianqi/learning-tracker/services/ownership"
	"github.com/DengXianqi/learning-tracker/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	db := database.Connect()

	users := repository.NewUserRepo(db)
	goals := repository.NewGoalRepo(db)
	milestones := repository.NewMilestoneRepo(db)
	savedCourses := repository.NewSavedCourseRepo(db)
	owners := ownership.NewResolver(goals, milestones)
	catalog := courses.NewStaticCatalog()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.FrontendURL,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	authRoutes.SetupAuthRoutes(app, authController.NewAuthController(users))
	goalRoutes.SetupGoalRoutes(app, goalController.NewGoalController(goals, milestones, owners))
	milestoneRoutes.SetupMilestoneRoutes(app, milestoneController.NewMilestoneController(milestones, owners))
	courseRoutes.SetupCourseRoutes(app, courseController.NewCourseController(catalog, savedCourses, goals))

	// JSON 404 for anything unrouted
	app.Use(func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Route not found!", nil)
	})

	utils.StartProgressScheduler(db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

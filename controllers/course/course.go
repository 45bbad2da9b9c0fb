package courseController

import (
	"encoding/json"

	"github.com/DengXianqi/learning-tracker/middleware"
	"github.com/DengXianqi/learning-tracker/models"
	"github.com/DengXianqi/learning-tracker/repository"
	"github.com/DengXianqi/learning-tracker/services/courses"
	courseValidator "github.com/DengXianqi/learning-tracker/validators/course"

	"github.com/gofiber/fiber/v2"
)

type CourseController struct {
	catalog courses.Provider
	saved   *repository.SavedCourseRepo
	goals   *repository.GoalRepo
}

func NewCourseController(catalog courses.Provider, saved *repository.SavedCourseRepo, goals *repository.GoalRepo) *CourseController {
	return &CourseController{catalog: catalog, saved: saved, goals: goals}
}

// SearchCourses is open to anonymous callers.
func (cc *CourseController) SearchCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSearch").(*courseValidator.SearchCoursesRequest)
	if !ok {
		reqData = &courseValidator.SearchCoursesRequest{}
	}

	result := cc.catalog.Search(courses.SearchParams{
		Query:    reqData.Q,
		Provider: reqData.Provider,
		Level:    reqData.Level,
		Limit:    reqData.Limit,
		Offset:   reqData.Offset,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

func (cc *CourseController) GetCourse(c *fiber.Ctx) error {
	course, found := cc.catalog.GetByID(c.Params("id"))
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course": course,
	})
}

// GetRecommended suggests catalog courses matching the user's goal
// categories.
func (cc *CourseController) GetRecommended(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	categories, err := cc.goals.Categories(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Goal")
	}

	recommended := cc.catalog.Recommended(categories)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations fetched successfully!", fiber.Map{
		"courses": recommended,
		"basedOn": categories,
	})
}

// SaveCourse snapshots a catalog course into the user's saved list.
func (cc *CourseController) SaveCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	course, found := cc.catalog.GetByID(c.Params("id"))
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	skills, err := json.Marshal(course.Skills)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Course")
	}

	saved := models.SavedCourse{
		UserID:       userID,
		ExternalID:   course.ID,
		Title:        course.Title,
		Provider:     course.Provider,
		URL:          course.URL,
		ThumbnailURL: course.ThumbnailURL,
		Skills:       skills,
	}
	if err := cc.saved.Save(c.UserContext(), &saved); err != nil {
		return middleware.ErrorResponse(c, err, "Course")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course saved successfully!", fiber.Map{
		"course": course,
	})
}

func (cc *CourseController) GetSavedCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	saved, err := cc.saved.ListByUser(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err, "Course")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Saved courses fetched successfully!", fiber.Map{
		"savedCourses": saved,
		"count":        len(saved),
	})
}

func (cc *CourseController) UnsaveCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := cc.saved.DeleteByExternalID(c.UserContext(), userID, c.Params("id")); err != nil {
		return middleware.ErrorResponse(c, err, "Saved course")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course removed from saved list!", nil)
}

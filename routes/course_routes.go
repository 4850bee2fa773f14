package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meePwn1/maqsad-back/handlers"
	"github.com/meePwn1/maqsad-back/middleware"
)

func CourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	courses := api.Group("/courses", middleware.Protected(), middleware.AdminRequired())

	courses.Post("", handlers.CreateCourse)
	courses.Get("", handlers.GetCourses)
	courses.Patch("/:id", handlers.UpdateCourse)
	courses.Delete("/:id", handlers.DeleteCourse)
}

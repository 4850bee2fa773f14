package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meePwn1/maqsad-back/handlers"
	"github.com/meePwn1/maqsad-back/middleware"
)

func GroupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	groups := api.Group("/groups", middleware.Protected(), middleware.AdminRequired())

	groups.Post("", handlers.CreateGroup)
	groups.Get("", handlers.GetGroups)
	groups.Get("/:id/students", handlers.GetStudentsByGroup)
	groups.Patch("/:id", handlers.UpdateGroup)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meePwn1/maqsad-back/handlers"
	"github.com/meePwn1/maqsad-back/middleware"
	"github.com/meePwn1/maqsad-back/models"
)

func UserRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	users := api.Group("/users", middleware.Protected())

	anyStaff := middleware.RolesRequired(models.RoleAdmin, models.RoleManager, models.RoleCurator)
	users.Get("/me", anyStaff, handlers.GetMe)
	users.Patch("/profile", anyStaff, handlers.UpdateProfile)
	users.Patch("/password", anyStaff, handlers.ChangePassword)

	admin := middleware.AdminRequired()
	users.Post("/manager", admin, handlers.CreateManager)
	users.Post("/curator", admin, handlers.CreateCurator)
	users.Get("/managers", admin, handlers.GetManagers)
	users.Get("/curators", admin, handlers.GetCurators)
	users.Patch("/:id", admin, handlers.UpdateUserFromAdmin)
	users.Delete("/:id", admin, handlers.DeleteUser)
}

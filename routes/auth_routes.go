package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meePwn1/maqsad-back/handlers"
	"github.com/meePwn1/maqsad-back/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", handlers.Login)
	auth.Post("/refresh-token", handlers.RefreshToken)
	auth.Post("/logout", middleware.Protected(), handlers.Logout)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meePwn1/maqsad-back/handlers"
	"github.com/meePwn1/maqsad-back/middleware"
)

func ReferenceRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reasons := api.Group("/delete-reason", middleware.Protected(), middleware.AdminRequired())
	reasons.Post("", handlers.CreateDeleteReason)
	reasons.Get("", handlers.GetDeleteReasons)
	reasons.Patch("/:id", handlers.UpdateDeleteReason)
	reasons.Delete("/:id", handlers.DeleteDeleteReason)

	methods := api.Group("/payment-methods", middleware.Protected(), middleware.AdminRequired())
	methods.Post("", handlers.CreatePaymentMethod)
	methods.Get("", handlers.GetPaymentMethods)
	methods.Patch("/:id", handlers.UpdatePaymentMethod)
	methods.Delete("/:id", handlers.DeletePaymentMethod)
}

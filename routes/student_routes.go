package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meePwn1/maqsad-back/handlers"
	"github.com/meePwn1/maqsad-back/middleware"
)

func StudentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	students := api.Group("/students", middleware.Protected(), middleware.AdminRequired())

	students.Post("", handlers.CreateStudent)
	students.Get("/active", handlers.GetActiveStudents)
	students.Get("/:id", handlers.GetStudentByID)
	students.Patch("/:id", handlers.UpdateStudent)
	students.Patch("/:id/delete", handlers.DeleteStudent)

	students.Post("/:id/payments", handlers.CreatePayment)
	students.Put("/:id/payments/:paymentId", handlers.UpdatePayment)
	students.Delete("/:id/payments/:paymentId", handlers.DeletePayment)
}

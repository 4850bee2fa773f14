package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meePwn1/maqsad-back/database"
	"github.com/meePwn1/maqsad-back/models"
)

type CreatePaymentRequest struct {
	Amount          int64      `json:"amount" validate:"required,gt=0"`
	PaymentAt       *time.Time `json:"payment_at"`
	PaymentMethodID int        `json:"payment_method_id" validate:"required"`
}

func CreatePayment(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}

	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.DB.First(&models.Student{}, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	if err := database.DB.First(&models.PaymentMethod{}, "id = ?", req.PaymentMethodID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment method not found"})
	}

	payment := models.Payment{
		Amount:          req.Amount,
		PaymentAt:       time.Now(),
		PaymentMethodID: req.PaymentMethodID,
		StudentID:       studentID,
	}
	if req.PaymentAt != nil {
		payment.PaymentAt = *req.PaymentAt
	}

	if err := database.DB.Create(&payment).Error; err != nil {
		log.Printf("Failed to create payment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

type UpdatePaymentRequest struct {
	Amount          *int64     `json:"amount" validate:"omitempty,gt=0"`
	PaymentAt       *time.Time `json:"payment_at"`
	PaymentMethodID *int       `json:"payment_method_id"`
}

func UpdatePayment(c *fiber.Ctx) error {
	var req UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var payment models.Payment
	err := database.DB.
		Where("id = ? AND student_id = ?", c.Params("paymentId"), c.Params("id")).
		First(&payment).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	if req.PaymentMethodID != nil {
		if err := database.DB.First(&models.PaymentMethod{}, "id = ?", *req.PaymentMethodID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment method not found"})
		}
		payment.PaymentMethodID = *req.PaymentMethodID
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaymentAt != nil {
		payment.PaymentAt = *req.PaymentAt
	}

	if err := database.DB.Save(&payment).Error; err != nil {
		log.Printf("Failed to update payment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment"})
	}

	return c.JSON(payment)
}

func DeletePayment(c *fiber.Ctx) error {
	result := database.DB.
		Where("id = ? AND student_id = ?", c.Params("paymentId"), c.Params("id")).
		Delete(&models.Payment{})
	if result.Error != nil {
		log.Printf("Failed to delete payment: %v", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete payment"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

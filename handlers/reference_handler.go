package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/meePwn1/maqsad-back/database"
	"github.com/meePwn1/maqsad-back/models"
)

type ReferenceRequest struct {
	NameUz string `json:"name_uz" validate:"required"`
	NameRu string `json:"name_ru" validate:"required"`
}

type UpdateReferenceRequest struct {
	NameUz *string `json:"name_uz"`
	NameRu *string `json:"name_ru"`
}

func CreateDeleteReason(c *fiber.Ctx) error {
	var req ReferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	reason := models.DeleteReason{NameUz: req.NameUz, NameRu: req.NameRu}
	if err := database.DB.Create(&reason).Error; err != nil {
		log.Printf("Failed to create delete reason: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create delete reason"})
	}
	return c.Status(fiber.StatusCreated).JSON(reason)
}

func GetDeleteReasons(c *fiber.Ctx) error {
	var reasons []models.DeleteReason
	if err := database.DB.Find(&reasons).Error; err != nil {
		log.Printf("Failed to fetch delete reasons: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch delete reasons"})
	}
	return c.JSON(reasons)
}

func UpdateDeleteReason(c *fiber.Ctx) error {
	var reason models.DeleteReason
	if err := database.DB.First(&reason, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Delete reason not found"})
	}

	var req UpdateReferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if req.NameUz != nil {
		reason.NameUz = *req.NameUz
	}
	if req.NameRu != nil {
		reason.NameRu = *req.NameRu
	}

	if err := database.DB.Save(&reason).Error; err != nil {
		log.Printf("Failed to update delete reason: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update delete reason"})
	}
	return c.JSON(reason)
}

func DeleteDeleteReason(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.DeleteReason{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		log.Printf("Failed to delete delete reason: %v", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete delete reason"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Delete reason not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func CreatePaymentMethod(c *fiber.Ctx) error {
	var req ReferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	method := models.PaymentMethod{NameUz: req.NameUz, NameRu: req.NameRu}
	if err := database.DB.Create(&method).Error; err != nil {
		log.Printf("Failed to create payment method: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create payment method"})
	}
	return c.Status(fiber.StatusCreated).JSON(method)
}

func GetPaymentMethods(c *fiber.Ctx) error {
	var methods []models.PaymentMethod
	if err := database.DB.Find(&methods).Error; err != nil {
		log.Printf("Failed to fetch payment methods: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payment methods"})
	}
	return c.JSON(methods)
}

func UpdatePaymentMethod(c *fiber.Ctx) error {
	var method models.PaymentMethod
	if err := database.DB.First(&method, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment method not found"})
	}

	var req UpdateReferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if req.NameUz != nil {
		method.NameUz = *req.NameUz
	}
	if req.NameRu != nil {
		method.NameRu = *req.NameRu
	}

	if err := database.DB.Save(&method).Error; err != nil {
		log.Printf("Failed to update payment method: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment method"})
	}
	return c.JSON(method)
}

func DeletePaymentMethod(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.PaymentMethod{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		log.Printf("Failed to delete payment method: %v", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete payment method"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment method not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

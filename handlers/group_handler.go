package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/meePwn1/maqsad-back/database"
	"github.com/meePwn1/maqsad-back/models"
	"github.com/meePwn1/maqsad-back/services"
	"github.com/meePwn1/maqsad-back/utils"
	"gorm.io/gorm"
)

type GroupRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	LearningFormat string `json:"learning_format" validate:"required,oneof=ONLINE OFFLINE"`
	GroupColor     string `json:"group_color" validate:"required"`
}

func CreateGroup(c *fiber.Ctx) error {
	var req GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	group := models.Group{
		Name:           req.Name,
		LearningFormat: req.LearningFormat,
		GroupColor:     req.GroupColor,
	}
	if err := database.DB.Create(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Group name already exists"})
		}
		log.Printf("Failed to create group: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create group"})
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

func GetGroups(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	skip, safeLimit := utils.Paginate(page, limit)

	filter := services.GroupFilter{Search: strings.TrimSpace(c.Query("search"))}
	filter.From, filter.To = parseDateRange(c)

	var totalGroups int64
	if err := filter.Apply(database.DB.Model(&models.Group{})).Count(&totalGroups).Error; err != nil {
		log.Printf("Failed to count groups: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch groups"})
	}

	var groups []models.Group
	err := filter.Apply(database.DB.Model(&models.Group{})).
		Preload("Students").Preload("Students.Payments").
		Offset(skip).Limit(safeLimit).
		Find(&groups).Error
	if err != nil {
		log.Printf("Failed to fetch groups: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch groups"})
	}

	withFinance := make([]services.GroupWithFinance, 0, len(groups))
	for _, g := range groups {
		totals := services.CalculateTotalPaymentAndDebt(g.Students)
		withFinance = append(withFinance, services.GroupWithFinance{
			Group:         g,
			TotalPayment:  totals.TotalPayment,
			TotalDebt:     totals.TotalDebt,
			StudentsCount: len(g.Students),
		})
	}

	// Aggregates are derived, so ordering happens in memory.
	if dir := c.Query("debt"); dir != "" {
		services.SortGroupsByDebt(withFinance, dir)
	}
	if dir := c.Query("studentsCount"); dir != "" {
		services.SortGroupsByStudentsCount(withFinance, dir)
	}

	return c.JSON(fiber.Map{
		"data":       withFinance,
		"pagination": utils.BuildPaginationMeta(int(totalGroups), page, safeLimit),
	})
}

type UpdateGroupRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=2"`
	LearningFormat *string `json:"learning_format" validate:"omitempty,oneof=ONLINE OFFLINE"`
	GroupColor     *string `json:"group_color"`
}

func UpdateGroup(c *fiber.Ctx) error {
	var group models.Group
	if err := database.DB.First(&group, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
	}

	var req UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.LearningFormat != nil {
		group.LearningFormat = *req.LearningFormat
	}
	if req.GroupColor != nil {
		group.GroupColor = *req.GroupColor
	}

	if err := database.DB.Save(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Group name already exists"})
		}
		log.Printf("Failed to update group: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update group"})
	}

	return c.JSON(group)
}

package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meePwn1/maqsad-back/database"
	"github.com/meePwn1/maqsad-back/models"
	"github.com/meePwn1/maqsad-back/services"
	"github.com/meePwn1/maqsad-back/utils"
	"gorm.io/gorm"
)

var (
	errStudentNotFound      = errors.New("student not found")
	errDeleteReasonNotFound = errors.New("delete reason not found")
)

type CreateStudentRequest struct {
	FirstName   string     `json:"first_name" validate:"required"`
	LastName    string     `json:"last_name" validate:"required"`
	Phone       string     `json:"phone" validate:"required"`
	CoursePrice int64      `json:"course_price" validate:"gte=0"`
	AddedAt     *time.Time `json:"added_at"`
	CourseID    *uuid.UUID `json:"course_id"`
	GroupID     *uuid.UUID `json:"group_id"`
	ManagerID   *uuid.UUID `json:"manager_id"`
	CuratorID   *uuid.UUID `json:"curator_id"`
}

func CreateStudent(c *fiber.Ctx) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Every referenced id must resolve before the row is written.
	if req.CourseID != nil {
		if err := database.DB.First(&models.Course{}, "id = ?", *req.CourseID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		}
	}
	if req.GroupID != nil {
		if err := database.DB.First(&models.Group{}, "id = ?", *req.GroupID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
		}
	}
	if req.ManagerID != nil {
		if err := database.DB.First(&models.User{}, "id = ?", *req.ManagerID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Manager not found"})
		}
	}
	if req.CuratorID != nil {
		if err := database.DB.First(&models.User{}, "id = ?", *req.CuratorID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Curator not found"})
		}
	}

	student := models.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		CoursePrice: req.CoursePrice,
		AddedAt:     time.Now(),
		CourseID:    req.CourseID,
		GroupID:     req.GroupID,
		ManagerID:   req.ManagerID,
		CuratorID:   req.CuratorID,
	}
	if req.AddedAt != nil {
		student.AddedAt = *req.AddedAt
	}

	if err := database.DB.Create(&student).Error; err != nil {
		log.Printf("Failed to create student: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(fiber.StatusCreated).JSON(student)
}

func GetActiveStudents(c *fiber.Ctx) error {
	isDeleted := false
	return listStudents(c, services.StudentFilter{IsDeleted: &isDeleted})
}

// GetStudentsByGroup lists the active students of one group; wired under the
// group routes.
func GetStudentsByGroup(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid group id"})
	}
	if err := database.DB.First(&models.Group{}, "id = ?", groupID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
	}

	isDeleted := false
	return listStudents(c, services.StudentFilter{IsDeleted: &isDeleted, GroupID: &groupID})
}

func listStudents(c *fiber.Ctx, filter services.StudentFilter) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	skip, safeLimit := utils.Paginate(page, limit)

	filter.From, filter.To = parseDateRange(c)
	filter.Groups = parseUUIDList(c.Query("groups"))
	filter.Managers = parseUUIDList(c.Query("managers"))
	filter.Curators = parseUUIDList(c.Query("curators"))
	filter.Search = strings.TrimSpace(c.Query("search"))

	var students []models.Student
	err := filter.Apply(database.DB.Model(&models.Student{})).
		Preload("Course").Preload("Group").Preload("Manager").Preload("Curator").Preload("Payments").
		Offset(skip).Limit(safeLimit).
		Find(&students).Error
	if err != nil {
		log.Printf("Failed to fetch students: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	withFinance := make([]services.StudentWithFinance, 0, len(students))
	for _, s := range students {
		finances := services.CalculateStudentFinances(s)
		withFinance = append(withFinance, services.StudentWithFinance{
			Student:   s,
			TotalPaid: finances.TotalPaid,
			Debt:      finances.Debt,
		})
	}

	// Debt is derived, so the requested page is sorted in memory.
	if dir := c.Query("sortByDebt"); dir != "" {
		services.SortStudentsByDebt(withFinance, dir)
	}

	// Cohort totals cover the whole base set, not just the page.
	var cohort []models.Student
	err = filter.ApplyBase(database.DB.Model(&models.Student{})).
		Preload("Payments").
		Find(&cohort).Error
	if err != nil {
		log.Printf("Failed to fetch students for totals: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	totals := services.CalculateTotalPaymentAndDebt(cohort)

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"students": withFinance,
			"finance": fiber.Map{
				"totalPayment":       totals.TotalPayment,
				"totalDebt":          totals.TotalDebt,
				"totalStudentsCount": len(cohort),
			},
		},
		"pagination": utils.BuildPaginationMeta(len(cohort), page, safeLimit),
	})
}

func GetStudentByID(c *fiber.Ctx) error {
	var student models.Student
	err := database.DB.
		Preload("Course").Preload("Group").Preload("Manager").Preload("Curator").
		Preload("Payments").Preload("Payments.PaymentMethod").
		Preload("DeleteReason").Preload("Refund").
		First(&student, "id = ?", c.Params("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
		log.Printf("Failed to fetch student: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	finances := services.CalculateStudentFinances(student)
	return c.JSON(services.StudentWithFinance{
		Student:   student,
		TotalPaid: finances.TotalPaid,
		Debt:      finances.Debt,
	})
}

type UpdateStudentRequest struct {
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	Phone       *string    `json:"phone"`
	CoursePrice *int64     `json:"course_price" validate:"omitempty,gte=0"`
	AddedAt     *time.Time `json:"added_at"`
	CourseID    *uuid.UUID `json:"course_id"`
	GroupID     *uuid.UUID `json:"group_id"`
	ManagerID   *uuid.UUID `json:"manager_id"`
	CuratorID   *uuid.UUID `json:"curator_id"`
}

func UpdateStudent(c *fiber.Ctx) error {
	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.CoursePrice != nil {
		updates["course_price"] = *req.CoursePrice
	}
	if req.AddedAt != nil {
		updates["added_at"] = *req.AddedAt
	}
	if req.CourseID != nil {
		updates["course_id"] = *req.CourseID
	}
	if req.GroupID != nil {
		updates["group_id"] = *req.GroupID
	}
	if req.ManagerID != nil {
		updates["manager_id"] = *req.ManagerID
	}
	if req.CuratorID != nil {
		updates["curator_id"] = *req.CuratorID
	}

	if len(updates) > 0 {
		result := database.DB.Model(&models.Student{}).Where("id = ?", c.Params("id")).Updates(updates)
		if result.Error != nil {
			log.Printf("Failed to update student: %v", result.Error)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
		}
		if result.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
	}

	return GetStudentByID(c)
}

type DeleteStudentRequest struct {
	DeleteReasonID int     `json:"delete_reason_id" validate:"required"`
	IsRefund       bool    `json:"is_refund"`
	Amount         *int64  `json:"amount" validate:"omitempty,gt=0"`
	Comment        *string `json:"comment"`
}

// DeleteStudent soft-deletes a student and, when a refund is requested,
// creates the refund row in the same transaction. The transition is terminal.
func DeleteStudent(c *fiber.Ctx) error {
	var req DeleteStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.IsRefund && req.Amount == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Refund amount is required"})
	}

	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.DeleteReason{}, "id = ?", req.DeleteReasonID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errDeleteReasonNotFound
			}
			return err
		}

		result := tx.Model(&models.Student{}).Where("id = ?", studentID).Updates(map[string]interface{}{
			"is_deleted":       true,
			"deleted_at":       time.Now(),
			"is_refund":        req.IsRefund,
			"delete_reason_id": req.DeleteReasonID,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errStudentNotFound
		}

		if req.IsRefund {
			refund := models.Refund{
				StudentID: studentID,
				Amount:    *req.Amount,
				Comment:   req.Comment,
			}
			if err := tx.Create(&refund).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errDeleteReasonNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Delete reason not found"})
		case errors.Is(err, errStudentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		default:
			log.Printf("Failed to delete student: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student"})
		}
	}

	return GetStudentByID(c)
}

func parseUUIDList(raw string) []uuid.UUID {
	if raw == "" {
		return nil
	}
	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		if id, err := uuid.Parse(strings.TrimSpace(part)); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// parseDateRange reads the from/to query bounds; both must parse for the
// range to apply.
func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time) {
	from := parseDate(c.Query("from"))
	to := parseDate(c.Query("to"))
	if from == nil || to == nil {
		return nil, nil
	}
	return from, to
}

func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	return nil
}

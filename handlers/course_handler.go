package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meePwn1/maqsad-back/database"
	"github.com/meePwn1/maqsad-back/models"
	"github.com/meePwn1/maqsad-back/services"
	"github.com/meePwn1/maqsad-back/utils"
	"gorm.io/gorm"
)

var errCourseNotFound = errors.New("course not found")

const courseIconFolder = "courses"

type courseResponse struct {
	models.Course
	StudentsCount int `json:"students_count"`
}

func CreateCourse(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Course name is required"})
	}

	iconPath := ""
	if file, err := c.FormFile("icon"); err == nil {
		iconPath, err = services.SaveFile(file, courseIconFolder)
		if err != nil {
			return fileErrorResponse(c, err)
		}
	}

	course := models.Course{Name: name, Icon: iconPath}
	if err := database.DB.Create(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Course name already exists"})
		}
		log.Printf("Failed to create course: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

func GetCourses(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	skip, safeLimit := utils.Paginate(page, limit)

	var totalCourses int64
	if err := database.DB.Model(&models.Course{}).Count(&totalCourses).Error; err != nil {
		log.Printf("Failed to count courses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}

	var courses []models.Course
	err := database.DB.
		Preload("Students").
		Offset(skip).Limit(safeLimit).
		Find(&courses).Error
	if err != nil {
		log.Printf("Failed to fetch courses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}

	data := make([]courseResponse, 0, len(courses))
	for _, course := range courses {
		count := len(course.Students)
		course.Students = nil
		data = append(data, courseResponse{Course: course, StudentsCount: count})
	}

	return c.JSON(fiber.Map{
		"data":       data,
		"pagination": utils.BuildPaginationMeta(int(totalCourses), page, safeLimit),
	})
}

func UpdateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := database.DB.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if name := c.FormValue("name"); name != "" {
		course.Name = name
	}
	if file, err := c.FormFile("icon"); err == nil {
		newIcon, err := services.ReplaceFile(course.Icon, file, courseIconFolder)
		if err != nil {
			return fileErrorResponse(c, err)
		}
		course.Icon = newIcon
	}

	if err := database.DB.Save(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Course name already exists"})
		}
		log.Printf("Failed to update course: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update course"})
	}

	return c.JSON(course)
}

type DeleteCourseRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}

// DeleteCourse reassigns every student of the course to the replacement
// course and removes the row, all in one transaction.
func DeleteCourse(c *fiber.Ctx) error {
	var req DeleteCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	courseID := c.Params("id")
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Course{}, "id = ?", req.CourseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errCourseNotFound
			}
			return err
		}

		err := tx.Model(&models.Student{}).
			Where("course_id = ?", courseID).
			Update("course_id", req.CourseID).Error
		if err != nil {
			return err
		}

		result := tx.Delete(&models.Course{}, "id = ?", courseID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errCourseNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errCourseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		}
		log.Printf("Failed to delete course: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func fileErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidFileType):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported file type"})
	case errors.Is(err, services.ErrFileTooLarge):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File is too large"})
	default:
		log.Printf("Failed to save file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save file"})
	}
}

// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classDto "schoolku_backend/internals/features/school/classes/dto"
	classModel "schoolku_backend/internals/features/school/classes/model"
	schoolModel "schoolku_backend/internals/features/school/schools/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB, v *validator.Validate) *ClassController {
	return &ClassController{DB: db, Validate: v}
}

/* ===================== HANDLERS ===================== */

// POST /api/a/schools/:school_code/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("school_code")))
	db := ctl.DB.WithContext(c.UserContext())

	var school schoolModel.SchoolModel
	if err := db.First(&school, "school_code = ?", code).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "School not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch school")
	}

	var req classDto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(code)
	if err := db.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Class "+req.ClassGrade+"-"+req.ClassSection+" already exists for "+code)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}

	return helper.JsonCreated(c, "Class created", classDto.NewClassResponse(m))
}

// GET /api/a/schools/:school_code/classes
func (ctl *ClassController) ListBySchool(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("school_code")))
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&classModel.ClassModel{}).
		Where("class_school_code = ?", code)
	if grade := strings.TrimSpace(c.Query("grade")); grade != "" {
		q = q.Where("class_grade = ?", grade)
	}
	if program := strings.TrimSpace(c.Query("program")); program != "" {
		q = q.Where("class_program = ?", program)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count classes")
	}

	var ms []classModel.ClassModel
	if err := q.Order("class_grade ASC, class_section ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	return helper.JsonList(c, "Classes fetched", classDto.NewClassResponses(ms),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/a/classes/:class_id
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("class_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m classModel.ClassModel
	if err := db.First(&m, "class_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}

	var req classDto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyToModel(&m)
	if err := db.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Another class already uses that identity")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}

	return helper.JsonUpdated(c, "Class updated", classDto.NewClassResponse(&m))
}

// DELETE /api/a/classes/:class_id
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("class_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&classModel.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	return helper.JsonDeleted(c, "Class deleted", fiber.Map{"class_id": id})
}

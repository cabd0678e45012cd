// file: internals/features/school/schools/controller/school_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "schoolku_backend/internals/features/school/classes/model"
	schoolDto "schoolku_backend/internals/features/school/schools/dto"
	schoolModel "schoolku_backend/internals/features/school/schools/model"
	schoolService "schoolku_backend/internals/features/school/schools/service"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	helper "schoolku_backend/internals/helpers"
)

type SchoolController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	States   schoolService.StateTable
}

func NewSchoolController(db *gorm.DB, v *validator.Validate, states schoolService.StateTable) *SchoolController {
	if states == nil {
		states = schoolService.DefaultStateTable()
	}
	return &SchoolController{DB: db, Validate: v, States: states}
}

/* ===================== HANDLERS ===================== */

// POST /api/a/schools
func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	var req schoolDto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	code, err := schoolService.DeriveSchoolCode(ctl.States, req.SchoolState, req.SchoolAcademicYear, req.SchoolNumber)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not derive school code: "+err.Error())
	}
	// NN is the code's tail; store it alongside for filtering
	number := int(code[4]-'0')*10 + int(code[5]-'0')

	m := req.ToModel(code, number)
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "School "+code+" already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create school")
	}

	return helper.JsonCreated(c, "School created", schoolDto.NewSchoolResponse(m))
}

// GET /api/a/schools
func (ctl *SchoolController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&schoolModel.SchoolModel{})
	if state := strings.TrimSpace(c.Query("state")); state != "" {
		q = q.Where("LOWER(school_state) = LOWER(?)", state)
	}
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		q = q.Where("school_academic_year = ?", year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schools")
	}

	var ms []schoolModel.SchoolModel
	if err := q.Order("school_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schools")
	}

	return helper.JsonList(c, "Schools fetched", schoolDto.NewSchoolResponses(ms),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/schools/:school_code
func (ctl *SchoolController) GetByCode(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("school_code")))

	var m schoolModel.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "school_code = ?", code).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "School not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch school")
	}

	return helper.JsonOK(c, "School fetched", schoolDto.NewSchoolResponse(&m))
}

// DELETE /api/a/schools/:school_code
//
// Cascade is sequenced by the handler, not the store: teachers (with
// their assignments) first, then classes, then the school row. The
// chain stops at the first failure and the per-step report shows what
// was and was not removed, matching the store's non-transactional
// behavior instead of hiding it.
func (ctl *SchoolController) Delete(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("school_code")))
	db := ctl.DB.WithContext(c.UserContext())

	var m schoolModel.SchoolModel
	if err := db.First(&m, "school_code = ?", code).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "School not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch school")
	}

	steps := []helper.Step{
		{Name: "delete teachers", Run: func() error {
			if err := db.Where("assignment_school_code = ?", code).
				Delete(&teacherModel.TeacherAssignmentModel{}).Error; err != nil {
				return err
			}
			return db.Where("teacher_school_code = ?", code).
				Delete(&teacherModel.TeacherModel{}).Error
		}},
		{Name: "delete classes", Run: func() error {
			return db.Where("class_school_code = ?", code).
				Delete(&classModel.ClassModel{}).Error
		}},
		{Name: "delete school", Run: func() error {
			return db.Delete(&schoolModel.SchoolModel{}, "school_code = ?", code).Error
		}},
	}

	results, ok := helper.RunSteps(steps, true)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "School delete failed partway; see steps",
			"steps":   results,
		})
	}

	return helper.JsonDeleted(c, "School deleted", fiber.Map{
		"school_code": code,
		"steps":       results,
	})
}

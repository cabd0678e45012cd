// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	teacherDto "schoolku_backend/internals/features/school/teachers/dto"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	helper "schoolku_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{DB: db, Validate: v}
}

/* ===================== HANDLERS ===================== */

// POST /api/a/schools/:school_code/teachers
//
// The teacher row and its initial assignments are written in sequence.
// If an assignment insert fails the teacher row stays; the response
// reports which assignments made it in.
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("school_code")))
	db := ctl.DB.WithContext(c.UserContext())

	var req teacherDto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.TeacherSchoolCode = code
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := db.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Teacher "+req.TeacherCode+" already exists for "+code)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}

	saved := make([]teacherModel.TeacherAssignmentModel, 0, len(req.TeacherAssignments))
	for _, a := range req.TeacherAssignments {
		am := a.ToModel(m.TeacherID, code)
		if err := db.Create(am).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				continue // duplicate tuple, nothing to add
			}
			return c.Status(fiber.StatusCreated).JSON(fiber.Map{
				"success": true,
				"message": "Teacher created, but some assignments failed",
				"data":    teacherDto.NewTeacherResponse(m, saved),
			})
		}
		saved = append(saved, *am)
	}

	return helper.JsonCreated(c, "Teacher created", teacherDto.NewTeacherResponse(m, saved))
}

// GET /api/a/schools/:school_code/teachers
func (ctl *TeacherController) ListBySchool(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("school_code")))
	paging := helper.ResolvePaging(c, 50, 200)
	db := ctl.DB.WithContext(c.UserContext())

	q := db.Model(&teacherModel.TeacherModel{}).
		Where("teacher_school_code = ?", code)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}

	var ms []teacherModel.TeacherModel
	if err := q.Order("teacher_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}

	// one query for all assignments on this page
	ids := make([]uuid.UUID, 0, len(ms))
	for i := range ms {
		ids = append(ids, ms[i].TeacherID)
	}
	byTeacher := map[uuid.UUID][]teacherModel.TeacherAssignmentModel{}
	if len(ids) > 0 {
		var as []teacherModel.TeacherAssignmentModel
		if err := db.Where("assignment_teacher_id IN ?", ids).
			Order("assignment_class ASC, assignment_section ASC").
			Find(&as).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
		}
		for i := range as {
			byTeacher[as[i].AssignmentTeacherID] = append(byTeacher[as[i].AssignmentTeacherID], as[i])
		}
	}

	out := make([]teacherDto.TeacherResponse, 0, len(ms))
	for i := range ms {
		out = append(out, teacherDto.NewTeacherResponse(&ms[i], byTeacher[ms[i].TeacherID]))
	}

	return helper.JsonList(c, "Teachers fetched", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/teachers/:teacher_id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("teacher_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m teacherModel.TeacherModel
	if err := db.First(&m, "teacher_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	var as []teacherModel.TeacherAssignmentModel
	if err := db.Where("assignment_teacher_id = ?", id).
		Order("assignment_class ASC, assignment_section ASC").
		Find(&as).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	return helper.JsonOK(c, "Teacher fetched", teacherDto.NewTeacherResponse(&m, as))
}

// POST /api/a/teachers/:teacher_id/assignments
func (ctl *TeacherController) AddAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("teacher_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m teacherModel.TeacherModel
	if err := db.First(&m, "teacher_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	var req teacherDto.AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	am := req.ToModel(m.TeacherID, m.TeacherSchoolCode)
	if err := db.Create(am).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Assignment already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create assignment")
	}

	return helper.JsonCreated(c, "Assignment created", am)
}

// DELETE /api/a/teachers/:teacher_id/assignments/:assignment_id
func (ctl *TeacherController) DeleteAssignment(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(strings.TrimSpace(c.Params("teacher_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	assignmentID, err := uuid.Parse(strings.TrimSpace(c.Params("assignment_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("assignment_id = ? AND assignment_teacher_id = ?", assignmentID, teacherID).
		Delete(&teacherModel.TeacherAssignmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete assignment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}

	return helper.JsonDeleted(c, "Assignment deleted", fiber.Map{"assignment_id": assignmentID})
}

// DELETE /api/a/teachers/:teacher_id
//
// Assignments go first, then the teacher row. Stops on the first
// failure and reports the steps.
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("teacher_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m teacherModel.TeacherModel
	if err := db.First(&m, "teacher_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	steps := []helper.Step{
		{Name: "delete assignments", Run: func() error {
			return db.Where("assignment_teacher_id = ?", id).
				Delete(&teacherModel.TeacherAssignmentModel{}).Error
		}},
		{Name: "delete teacher", Run: func() error {
			return db.Delete(&teacherModel.TeacherModel{}, "teacher_id = ?", id).Error
		}},
	}

	results, ok := helper.RunSteps(steps, true)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Teacher delete failed partway; see steps",
			"steps":   results,
		})
	}

	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{
		"teacher_id": id,
		"steps":      results,
	})
}

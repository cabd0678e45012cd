// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	examDto "schoolku_backend/internals/features/school/exams/dto"
	studentDto "schoolku_backend/internals/features/school/students/dto"
	studentModel "schoolku_backend/internals/features/school/students/model"
	studentService "schoolku_backend/internals/features/school/students/service"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/spreadsheet"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validate: v}
}

/* ===================== HANDLERS ===================== */

// POST /api/a/schools/:school_code/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("school_code")))

	var req studentDto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.StudentSchoolCode = code
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Roll already taken in this class/section")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.JsonCreated(c, "Student created", m)
}

// GET /api/a/schools/:school_code/students
func (ctl *StudentController) ListBySchool(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("school_code")))
	paging := helper.ResolvePaging(c, 50, 500)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&studentModel.StudentModel{}).
		Where("student_school_code = ?", code)
	if class := strings.TrimSpace(c.Query("class")); class != "" {
		q = q.Where("student_class = ?", class)
	}
	if section := strings.TrimSpace(c.Query("section")); section != "" {
		q = q.Where("student_section = ?", section)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var ms []studentModel.StudentModel
	if err := q.Order("student_class ASC, student_section ASC, student_roll ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return helper.JsonList(c, "Students fetched", ms,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// DELETE /api/a/students/:student_id
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&studentModel.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"student_id": id})
}

// POST /api/a/schools/:school_code/students/upload
//
// Multipart field "file" carries a .csv or .xlsx roster. Columns are
// matched by header synonyms; class and section fall back to the
// "class"/"section" form fields when the sheet has no such columns.
// ?mode=insert skips rows whose natural key already exists; the
// default upsert refreshes them in place.
func (ctl *StudentController) Upload(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("school_code")))
	db := ctl.DB.WithContext(c.UserContext())

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing multipart field: file")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not open uploaded file")
	}
	defer f.Close()

	rows, err := spreadsheet.Rows(f, fh.Filename)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unreadable sheet: "+err.Error())
	}

	defaultClass := strings.TrimSpace(c.FormValue("class"))
	defaultSection := strings.TrimSpace(c.FormValue("section"))

	adapted, rowErrs, err := studentService.AdaptStudentRows(rows, defaultClass, defaultSection)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	mode := strings.ToLower(strings.TrimSpace(c.Query("mode", "upsert")))
	onConflict := clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_school_code"},
			{Name: "student_roll"},
			{Name: "student_class"},
			{Name: "student_section"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"student_name", "student_gender", "student_guardian_phone",
		}),
	}
	if mode == "insert" {
		onConflict = clause.OnConflict{DoNothing: true}
	}

	accepted := 0
	if len(adapted) > 0 {
		ms := make([]studentModel.StudentModel, 0, len(adapted))
		for _, r := range adapted {
			ms = append(ms, r.ToModel(code))
		}
		res := db.Clauses(onConflict).CreateInBatches(ms, 200)
		if res.Error != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store students")
		}
		accepted = int(res.RowsAffected)
	}

	if rowErrs == nil {
		rowErrs = []spreadsheet.RowError{}
	}
	return helper.JsonOK(c, "Upload processed", examDto.UploadReport{
		Accepted:  accepted,
		Dropped:   len(rowErrs),
		RowErrors: rowErrs,
	})
}

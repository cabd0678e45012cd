// file: internals/features/school/exams/controller/exam_controller.go
package controller

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	examDto "schoolku_backend/internals/features/school/exams/dto"
	examModel "schoolku_backend/internals/features/school/exams/model"
	examService "schoolku_backend/internals/features/school/exams/service"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/spreadsheet"
)

type ExamController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Procs    examService.ProcRunner
}

func NewExamController(db *gorm.DB, v *validator.Validate) *ExamController {
	return &ExamController{DB: db, Validate: v, Procs: examService.DBProcRunner{DB: db}}
}

/* ===================== HANDLERS ===================== */

// POST /api/a/schools/:school_code/exams
func (ctl *ExamController) Create(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("school_code")))

	var req examDto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.ExamSchoolCode = code
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Exam already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create exam")
	}

	return helper.JsonCreated(c, "Exam created", m)
}

// GET /api/a/schools/:school_code/exams
func (ctl *ExamController) ListBySchool(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("school_code")))
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&examModel.ExamModel{}).
		Where("exam_school_code = ?", code)
	if class := strings.TrimSpace(c.Query("class")); class != "" {
		q = q.Where("exam_class = ?", class)
	}
	if pattern := strings.TrimSpace(c.Query("pattern")); pattern != "" {
		q = q.Where("exam_pattern = ?", pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count exams")
	}

	var ms []examModel.ExamModel
	if err := q.Order("exam_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exams")
	}

	return helper.JsonList(c, "Exams fetched", ms,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/exams/:exam_id
func (ctl *ExamController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("exam_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	var m examModel.ExamModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "exam_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exam")
	}

	return helper.JsonOK(c, "Exam fetched", m)
}

// DELETE /api/a/exams/:exam_id
//
// Results first, then the exam row, stopping on the first failure.
func (ctl *ExamController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("exam_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m examModel.ExamModel
	if err := db.First(&m, "exam_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exam")
	}

	steps := []helper.Step{
		{Name: "delete results", Run: func() error {
			return db.Where("result_exam_id = ?", id).
				Delete(&examModel.ExamResultModel{}).Error
		}},
		{Name: "delete exam", Run: func() error {
			return db.Delete(&examModel.ExamModel{}, "exam_id = ?", id).Error
		}},
	}

	results, ok := helper.RunSteps(steps, true)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Exam delete failed partway; see steps",
			"steps":   results,
		})
	}

	return helper.JsonDeleted(c, "Exam deleted", fiber.Map{
		"exam_id": id,
		"steps":   results,
	})
}

// GET /api/a/exams/:exam_id/results
func (ctl *ExamController) ListResults(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("exam_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}
	paging := helper.ResolvePaging(c, 100, 500)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&examModel.ExamResultModel{}).
		Where("result_exam_id = ?", id)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count results")
	}

	var ms []examModel.ExamResultModel
	if err := q.Order("result_total DESC, result_roll ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch results")
	}

	return helper.JsonList(c, "Results fetched", ms,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/a/exams/:exam_id/results/upload
//
// Multipart field "file" carries the marksheet. Columns are positional
// (roll, name, then one column per subject); label rows at the top are
// skipped. The recalculation chain always runs after the write and its
// per-step outcome rides along in the report, failures included.
func (ctl *ExamController) UploadResults(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("exam_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}
	db := ctl.DB.WithContext(c.UserContext())

	var exam examModel.ExamModel
	if err := db.First(&exam, "exam_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exam")
	}

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

	adapted, rowErrs := examService.AdaptResultRows(rows, len(exam.ExamSubjects), maxTotalFor(&exam))

	mode := strings.ToLower(strings.TrimSpace(c.Query("mode", "insert")))
	onConflict := clause.OnConflict{DoNothing: true}
	if mode == "upsert" {
		onConflict = clause.OnConflict{
			Columns: []clause.Column{
				{Name: "result_exam_id"},
				{Name: "result_roll"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"result_student_name",
				"result_marks_1", "result_marks_2", "result_marks_3", "result_marks_4",
				"result_total", "result_percentage",
			}),
		}
	}

	accepted := 0
	if len(adapted) > 0 {
		ms := make([]examModel.ExamResultModel, 0, len(adapted))
		for _, r := range adapted {
			ms = append(ms, r.ToModel(exam.ExamID, exam.ExamSchoolCode, exam.ExamClass, exam.ExamSection))
		}
		res := db.Clauses(onConflict).CreateInBatches(ms, 200)
		if res.Error != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store results")
		}
		accepted = int(res.RowsAffected)
	}

	recalc := examService.RunRecalcChain(ctl.Procs, exam.ExamID, exam.ExamSchoolCode)

	if rowErrs == nil {
		rowErrs = []spreadsheet.RowError{}
	}
	return helper.JsonOK(c, "Upload processed", examDto.UploadReport{
		Accepted:  accepted,
		Dropped:   len(rowErrs),
		RowErrors: rowErrs,
		Recalc:    recalc,
	})
}

// POST /api/a/exams/:exam_id/recalculate
func (ctl *ExamController) Recalculate(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("exam_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	var exam examModel.ExamModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&exam, "exam_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exam")
	}

	results := examService.RunRecalcChain(ctl.Procs, exam.ExamID, exam.ExamSchoolCode)
	return helper.JsonOK(c, "Recalculation finished", fiber.Map{"steps": results})
}

// maxTotalFor sums the per-subject max marks; a sheet without declared
// maxima falls back to 100 per subject.
func maxTotalFor(exam *examModel.ExamModel) float64 {
	if len(exam.ExamSubjectMax) > 0 {
		var perSubject map[string]float64
		if err := sonic.Unmarshal(exam.ExamSubjectMax, &perSubject); err == nil && len(perSubject) > 0 {
			total := 0.0
			for _, v := range perSubject {
				total += v
			}
			return total
		}
	}
	return float64(len(exam.ExamSubjects)) * 100
}

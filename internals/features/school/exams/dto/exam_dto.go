// file: internals/features/school/exams/dto/exam_dto.go
package dto

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	examModel "schoolku_backend/internals/features/school/exams/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/spreadsheet"
)

/* ===================== REQUESTS ===================== */

type CreateExamRequest struct {
	ExamSchoolCode string     `json:"exam_school_code" validate:"required,len=6"`
	ExamProgram    string     `json:"exam_program" validate:"required,max=60"`
	ExamPattern    string     `json:"exam_pattern" validate:"required,max=60"`
	ExamClass      string     `json:"exam_class" validate:"required,max=20"`
	ExamSection    string     `json:"exam_section" validate:"required,max=10"`
	ExamDate       *time.Time `json:"exam_date" validate:"omitempty"`

	// Up to four subjects; max marks keyed by subject name
	ExamSubjects   []string       `json:"exam_subjects" validate:"required,min=1,max=4,dive,required"`
	ExamSubjectMax datatypes.JSON `json:"exam_subject_max" validate:"omitempty"`
}

func (r *CreateExamRequest) ToModel() *examModel.ExamModel {
	return &examModel.ExamModel{
		ExamSchoolCode: r.ExamSchoolCode,
		ExamProgram:    r.ExamProgram,
		ExamPattern:    r.ExamPattern,
		ExamClass:      r.ExamClass,
		ExamSection:    r.ExamSection,
		ExamDate:       r.ExamDate,
		ExamSubjects:   pq.StringArray(r.ExamSubjects),
		ExamSubjectMax: r.ExamSubjectMax,
	}
}

/* ===================== RESPONSES ===================== */

// UploadReport is the bulk-upload outcome: accepted rows, per-row drops,
// and (for result uploads) the recalculation step outcomes.
type UploadReport struct {
	Accepted  int                    `json:"accepted"`
	Dropped   int                    `json:"dropped"`
	RowErrors []spreadsheet.RowError `json:"row_errors"`
	Recalc    []helper.StepResult    `json:"recalc,omitempty"`
}

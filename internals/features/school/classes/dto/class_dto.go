// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	classModel "schoolku_backend/internals/features/school/classes/model"
)

/* ===================== REQUESTS ===================== */

type CreateClassRequest struct {
	ClassGrade      string  `json:"class_grade" validate:"required,max=20"`
	ClassSection    string  `json:"class_section" validate:"required,max=10"`
	ClassFoundation *string `json:"class_foundation" validate:"omitempty,max=60"`
	ClassProgram    *string `json:"class_program" validate:"omitempty,max=60"`
	ClassGroup      *string `json:"class_group" validate:"omitempty,max=60"`

	ClassStudentCount *int `json:"class_student_count" validate:"omitempty,min=0"`
}

// ToModel builds the row; the school code comes from the route, not the body.
func (r *CreateClassRequest) ToModel(schoolCode string) *classModel.ClassModel {
	m := &classModel.ClassModel{
		ClassSchoolCode: schoolCode,
		ClassGrade:      r.ClassGrade,
		ClassSection:    r.ClassSection,
		ClassFoundation: r.ClassFoundation,
		ClassProgram:    r.ClassProgram,
		ClassGroup:      r.ClassGroup,
	}
	if r.ClassStudentCount != nil {
		m.ClassStudentCount = *r.ClassStudentCount
	}
	return m
}

type UpdateClassRequest struct {
	ClassGrade      *string `json:"class_grade" validate:"omitempty,max=20"`
	ClassSection    *string `json:"class_section" validate:"omitempty,max=10"`
	ClassFoundation *string `json:"class_foundation" validate:"omitempty,max=60"`
	ClassProgram    *string `json:"class_program" validate:"omitempty,max=60"`
	ClassGroup      *string `json:"class_group" validate:"omitempty,max=60"`

	ClassStudentCount *int `json:"class_student_count" validate:"omitempty,min=0"`
}

func (r *UpdateClassRequest) ApplyToModel(m *classModel.ClassModel) {
	if r.ClassGrade != nil {
		m.ClassGrade = *r.ClassGrade
	}
	if r.ClassSection != nil {
		m.ClassSection = *r.ClassSection
	}
	if r.ClassFoundation != nil {
		m.ClassFoundation = r.ClassFoundation
	}
	if r.ClassProgram != nil {
		m.ClassProgram = r.ClassProgram
	}
	if r.ClassGroup != nil {
		m.ClassGroup = r.ClassGroup
	}
	if r.ClassStudentCount != nil {
		m.ClassStudentCount = *r.ClassStudentCount
	}
}

/* ===================== RESPONSES ===================== */

type ClassResponse struct {
	ClassID         uuid.UUID `json:"class_id"`
	ClassSchoolCode string    `json:"class_school_code"`
	ClassGrade      string    `json:"class_grade"`
	ClassSection    string    `json:"class_section"`
	ClassFoundation *string   `json:"class_foundation,omitempty"`
	ClassProgram    *string   `json:"class_program,omitempty"`
	ClassGroup      *string   `json:"class_group,omitempty"`

	ClassStudentCount int       `json:"class_student_count"`
	ClassCreatedAt    time.Time `json:"class_created_at"`
}

func NewClassResponse(m *classModel.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:           m.ClassID,
		ClassSchoolCode:   m.ClassSchoolCode,
		ClassGrade:        m.ClassGrade,
		ClassSection:      m.ClassSection,
		ClassFoundation:   m.ClassFoundation,
		ClassProgram:      m.ClassProgram,
		ClassGroup:        m.ClassGroup,
		ClassStudentCount: m.ClassStudentCount,
		ClassCreatedAt:    m.ClassCreatedAt,
	}
}

func NewClassResponses(ms []classModel.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewClassResponse(&ms[i]))
	}
	return out
}

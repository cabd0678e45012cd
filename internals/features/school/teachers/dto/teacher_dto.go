// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"github.com/google/uuid"

	teacherModel "schoolku_backend/internals/features/school/teachers/model"
)

/* ===================== REQUESTS ===================== */

type AssignmentRequest struct {
	AssignmentClass   string `json:"assignment_class" validate:"required,max=20"`
	AssignmentSection string `json:"assignment_section" validate:"required,max=10"`
	AssignmentSubject string `json:"assignment_subject" validate:"required,max=60"`
}

type CreateTeacherRequest struct {
	TeacherSchoolCode string  `json:"teacher_school_code" validate:"required,len=6"`
	TeacherCode       string  `json:"teacher_code" validate:"required,max=20"`
	TeacherName       string  `json:"teacher_name" validate:"required,min=2,max=120"`
	TeacherPhone      *string `json:"teacher_phone" validate:"omitempty,max=20"`
	TeacherEmail      *string `json:"teacher_email" validate:"omitempty,email,max=120"`

	// Optional initial (class, section, subject) assignments
	TeacherAssignments []AssignmentRequest `json:"teacher_assignments" validate:"omitempty,dive"`
}

func (r *CreateTeacherRequest) ToModel() *teacherModel.TeacherModel {
	return &teacherModel.TeacherModel{
		TeacherSchoolCode: r.TeacherSchoolCode,
		TeacherCode:       r.TeacherCode,
		TeacherName:       r.TeacherName,
		TeacherPhone:      r.TeacherPhone,
		TeacherEmail:      r.TeacherEmail,
	}
}

func (r *AssignmentRequest) ToModel(teacherID uuid.UUID, schoolCode string) *teacherModel.TeacherAssignmentModel {
	return &teacherModel.TeacherAssignmentModel{
		AssignmentTeacherID:  teacherID,
		AssignmentSchoolCode: schoolCode,
		AssignmentClass:      r.AssignmentClass,
		AssignmentSection:    r.AssignmentSection,
		AssignmentSubject:    r.AssignmentSubject,
	}
}

/* ===================== RESPONSES ===================== */

type TeacherResponse struct {
	teacherModel.TeacherModel
	TeacherAssignments []teacherModel.TeacherAssignmentModel `json:"teacher_assignments"`
}

func NewTeacherResponse(m *teacherModel.TeacherModel, assignments []teacherModel.TeacherAssignmentModel) TeacherResponse {
	if assignments == nil {
		assignments = []teacherModel.TeacherAssignmentModel{}
	}
	return TeacherResponse{TeacherModel: *m, TeacherAssignments: assignments}
}

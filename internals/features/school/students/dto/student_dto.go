// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	studentModel "schoolku_backend/internals/features/school/students/model"
)

/* ===================== REQUESTS ===================== */

type CreateStudentRequest struct {
	StudentSchoolCode    string  `json:"student_school_code" validate:"required,len=6"`
	StudentRoll          int     `json:"student_roll" validate:"required,min=1"`
	StudentName          string  `json:"student_name" validate:"required,min=2,max=120"`
	StudentClass         string  `json:"student_class" validate:"required,max=20"`
	StudentSection       string  `json:"student_section" validate:"required,max=10"`
	StudentGender        *string `json:"student_gender" validate:"omitempty,max=10"`
	StudentGuardianPhone *string `json:"student_guardian_phone" validate:"omitempty,max=20"`
}

func (r *CreateStudentRequest) ToModel() *studentModel.StudentModel {
	return &studentModel.StudentModel{
		StudentSchoolCode:    r.StudentSchoolCode,
		StudentRoll:          r.StudentRoll,
		StudentName:          r.StudentName,
		StudentClass:         r.StudentClass,
		StudentSection:       r.StudentSection,
		StudentGender:        r.StudentGender,
		StudentGuardianPhone: r.StudentGuardianPhone,
	}
}

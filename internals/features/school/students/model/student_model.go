// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	// Owner school
	StudentSchoolCode string `gorm:"type:varchar(6);not null;index;column:student_school_code;uniqueIndex:uq_students_roll" json:"student_school_code"`

	// Roll number: positive int, unique within school+class+section
	StudentRoll    int    `gorm:"not null;column:student_roll;uniqueIndex:uq_students_roll" json:"student_roll"`
	StudentClass   string `gorm:"type:varchar(20);not null;column:student_class;uniqueIndex:uq_students_roll" json:"student_class"`
	StudentSection string `gorm:"type:varchar(10);not null;column:student_section;uniqueIndex:uq_students_roll" json:"student_section"`

	StudentName          string  `gorm:"type:varchar(120);not null;column:student_name" json:"student_name"`
	StudentGender        *string `gorm:"type:varchar(10);column:student_gender" json:"student_gender,omitempty"`
	StudentGuardianPhone *string `gorm:"type:varchar(20);column:student_guardian_phone" json:"student_guardian_phone,omitempty"`

	// Audit
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

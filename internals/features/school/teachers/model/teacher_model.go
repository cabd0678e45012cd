// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`

	// Owner school
	TeacherSchoolCode string `gorm:"type:varchar(6);not null;index;column:teacher_school_code;uniqueIndex:uq_teachers_code" json:"teacher_school_code"`

	// Identity
	TeacherCode  string  `gorm:"type:varchar(20);not null;column:teacher_code;uniqueIndex:uq_teachers_code" json:"teacher_code"`
	TeacherName  string  `gorm:"type:varchar(120);not null;column:teacher_name" json:"teacher_name"`
	TeacherPhone *string `gorm:"type:varchar(20);column:teacher_phone" json:"teacher_phone,omitempty"`
	TeacherEmail *string `gorm:"type:varchar(120);column:teacher_email" json:"teacher_email,omitempty"`

	// Audit
	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt *time.Time     `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at,omitempty"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }

// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`

	// Owner school (natural key)
	ClassSchoolCode string `gorm:"type:varchar(6);not null;index;column:class_school_code;uniqueIndex:uq_classes_identity" json:"class_school_code"`

	// Identity within the school
	ClassGrade   string `gorm:"type:varchar(20);not null;column:class_grade;uniqueIndex:uq_classes_identity" json:"class_grade"`
	ClassSection string `gorm:"type:varchar(10);not null;column:class_section;uniqueIndex:uq_classes_identity" json:"class_section"`

	// Track info
	ClassFoundation *string `gorm:"type:varchar(60);column:class_foundation" json:"class_foundation,omitempty"`
	ClassProgram    *string `gorm:"type:varchar(60);column:class_program;uniqueIndex:uq_classes_identity" json:"class_program,omitempty"`
	ClassGroup      *string `gorm:"type:varchar(60);column:class_group" json:"class_group,omitempty"`

	ClassStudentCount int `gorm:"not null;default:0;column:class_student_count" json:"class_student_count"`

	// Audit
	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt *time.Time     `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at,omitempty"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

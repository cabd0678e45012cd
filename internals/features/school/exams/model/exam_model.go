// file: internals/features/school/exams/model/exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExamModel struct {
	// PK
	ExamID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_id" json:"exam_id"`

	// Owner school
	ExamSchoolCode string `gorm:"type:varchar(6);not null;index;column:exam_school_code" json:"exam_school_code"`

	// Identity
	ExamProgram string     `gorm:"type:varchar(60);not null;column:exam_program" json:"exam_program"`
	ExamPattern string     `gorm:"type:varchar(60);not null;column:exam_pattern" json:"exam_pattern"`
	ExamClass   string     `gorm:"type:varchar(20);not null;column:exam_class" json:"exam_class"`
	ExamSection string     `gorm:"type:varchar(10);not null;column:exam_section" json:"exam_section"`
	ExamDate    *time.Time `gorm:"type:date;column:exam_date" json:"exam_date,omitempty"`

	// Subject layout: ordered names + per-subject max marks
	ExamSubjects   pq.StringArray `gorm:"type:text[];column:exam_subjects" json:"exam_subjects"`
	ExamSubjectMax datatypes.JSON `gorm:"type:jsonb;column:exam_subject_max" json:"exam_subject_max,omitempty"`

	// Audit
	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt *time.Time     `gorm:"column:exam_updated_at;autoUpdateTime" json:"exam_updated_at,omitempty"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index" json:"exam_deleted_at,omitempty"`
}

func (ExamModel) TableName() string { return "exams" }

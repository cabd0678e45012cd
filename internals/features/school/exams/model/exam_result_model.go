// file: internals/features/school/exams/model/exam_result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// RankPlaceholder is what every rank field holds until the store-side
// recalculation procedures run.
const RankPlaceholder = "-"

type ExamResultModel struct {
	// PK
	ResultID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:result_id" json:"result_id"`

	// Natural key: one row per (exam, roll)
	ResultExamID     uuid.UUID `gorm:"type:uuid;not null;index;column:result_exam_id;uniqueIndex:uq_results_exam_roll" json:"result_exam_id"`
	ResultRoll       int       `gorm:"not null;column:result_roll;uniqueIndex:uq_results_exam_roll" json:"result_roll"`
	ResultSchoolCode string    `gorm:"type:varchar(6);not null;index;column:result_school_code" json:"result_school_code"`

	ResultStudentName string `gorm:"type:varchar(120);not null;column:result_student_name" json:"result_student_name"`
	ResultClass       string `gorm:"type:varchar(20);not null;column:result_class" json:"result_class"`
	ResultSection     string `gorm:"type:varchar(10);not null;column:result_section" json:"result_section"`

	// Scores for up to four subjects (unused slots stay 0)
	ResultMarks1 float64 `gorm:"not null;default:0;column:result_marks_1" json:"result_marks_1"`
	ResultMarks2 float64 `gorm:"not null;default:0;column:result_marks_2" json:"result_marks_2"`
	ResultMarks3 float64 `gorm:"not null;default:0;column:result_marks_3" json:"result_marks_3"`
	ResultMarks4 float64 `gorm:"not null;default:0;column:result_marks_4" json:"result_marks_4"`

	// Derived
	ResultTotal      float64 `gorm:"not null;default:0;column:result_total" json:"result_total"`
	ResultPercentage float64 `gorm:"not null;default:0;column:result_percentage" json:"result_percentage"`

	// Populated asynchronously by stored procedures; "-" until then
	ResultClassRank      string `gorm:"type:varchar(10);not null;default:'-';column:result_class_rank" json:"result_class_rank"`
	ResultSchoolRank     string `gorm:"type:varchar(10);not null;default:'-';column:result_school_rank" json:"result_school_rank"`
	ResultAllSchoolsRank string `gorm:"type:varchar(10);not null;default:'-';column:result_all_schools_rank" json:"result_all_schools_rank"`

	// Audit
	ResultCreatedAt time.Time  `gorm:"column:result_created_at;autoCreateTime" json:"result_created_at"`
	ResultUpdatedAt *time.Time `gorm:"column:result_updated_at;autoUpdateTime" json:"result_updated_at,omitempty"`
}

func (ExamResultModel) TableName() string { return "exam_results" }

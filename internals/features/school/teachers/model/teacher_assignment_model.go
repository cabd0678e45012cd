// file: internals/features/school/teachers/model/teacher_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherAssignmentModel links a teacher to a (class, section, subject) tuple.
type TeacherAssignmentModel struct {
	AssignmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignment_id" json:"assignment_id"`

	AssignmentTeacherID  uuid.UUID `gorm:"type:uuid;not null;index;column:assignment_teacher_id;uniqueIndex:uq_assignments_tuple" json:"assignment_teacher_id"`
	AssignmentSchoolCode string    `gorm:"type:varchar(6);not null;index;column:assignment_school_code" json:"assignment_school_code"`

	AssignmentClass   string `gorm:"type:varchar(20);not null;column:assignment_class;uniqueIndex:uq_assignments_tuple" json:"assignment_class"`
	AssignmentSection string `gorm:"type:varchar(10);not null;column:assignment_section;uniqueIndex:uq_assignments_tuple" json:"assignment_section"`
	AssignmentSubject string `gorm:"type:varchar(60);not null;column:assignment_subject;uniqueIndex:uq_assignments_tuple" json:"assignment_subject"`

	AssignmentCreatedAt time.Time `gorm:"column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
}

func (TeacherAssignmentModel) TableName() string { return "teacher_assignments" }

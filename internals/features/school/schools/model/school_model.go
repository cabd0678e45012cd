// file: internals/features/school/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SchoolModel struct {
	// PK
	SchoolID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`

	// Natural key: ABBR + YY + NN, derived. Uniqueness enforced by the store
	SchoolCode string `gorm:"type:varchar(6);unique;not null;column:school_code" json:"school_code"`

	// Identity
	SchoolName         string `gorm:"type:varchar(150);not null;column:school_name" json:"school_name"`
	SchoolState        string `gorm:"type:varchar(60);not null;column:school_state" json:"school_state"`
	SchoolAcademicYear string `gorm:"type:varchar(9);not null;column:school_academic_year" json:"school_academic_year"`
	SchoolNumber       int    `gorm:"not null;column:school_number" json:"school_number"`

	// Location
	SchoolArea     *string `gorm:"type:varchar(100);column:school_area" json:"school_area,omitempty"`
	SchoolDistrict *string `gorm:"type:varchar(100);column:school_district" json:"school_district,omitempty"`

	// Denormalized extras (legacy variant kept class/teacher snapshots here)
	SchoolMeta datatypes.JSON `gorm:"type:jsonb;column:school_meta" json:"school_meta,omitempty"`

	// Audit
	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt *time.Time     `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at,omitempty"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }

// file: internals/features/school/lookups/model/lookup_models.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* Reference tables for dropdowns: foundations, programs, academic years. */

type FoundationModel struct {
	FoundationID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:foundation_id" json:"foundation_id"`
	FoundationName      string    `gorm:"type:varchar(60);unique;not null;column:foundation_name" json:"foundation_name"`
	FoundationCreatedAt time.Time `gorm:"column:foundation_created_at;autoCreateTime" json:"foundation_created_at"`
}

func (FoundationModel) TableName() string { return "foundations" }

type ProgramModel struct {
	ProgramID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:program_id" json:"program_id"`
	ProgramName      string    `gorm:"type:varchar(60);unique;not null;column:program_name" json:"program_name"`
	ProgramCreatedAt time.Time `gorm:"column:program_created_at;autoCreateTime" json:"program_created_at"`
}

func (ProgramModel) TableName() string { return "programs" }

type AcademicYearModel struct {
	AcademicYearID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_year_id" json:"academic_year_id"`
	AcademicYearLabel     string    `gorm:"type:varchar(9);unique;not null;column:academic_year_label" json:"academic_year_label"`
	AcademicYearCreatedAt time.Time `gorm:"column:academic_year_created_at;autoCreateTime" json:"academic_year_created_at"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

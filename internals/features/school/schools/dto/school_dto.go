// file: internals/features/school/schools/dto/school_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	schoolModel "schoolku_backend/internals/features/school/schools/model"
)

/* ===================== REQUESTS ===================== */

type CreateSchoolRequest struct {
	SchoolName         string  `json:"school_name" validate:"required,min=2,max=150"`
	SchoolState        string  `json:"school_state" validate:"required"`
	SchoolAcademicYear string  `json:"school_academic_year" validate:"required"`
	SchoolNumber       string  `json:"school_number" validate:"required"`
	SchoolArea         *string `json:"school_area" validate:"omitempty,max=100"`
	SchoolDistrict     *string `json:"school_district" validate:"omitempty,max=100"`

	SchoolMeta datatypes.JSON `json:"school_meta,omitempty" validate:"omitempty"`
}

// ToModel builds the row; the derived code and parsed sequence number are
// supplied by the controller after derivation succeeds.
func (r *CreateSchoolRequest) ToModel(code string, number int) *schoolModel.SchoolModel {
	return &schoolModel.SchoolModel{
		SchoolCode:         code,
		SchoolName:         r.SchoolName,
		SchoolState:        r.SchoolState,
		SchoolAcademicYear: r.SchoolAcademicYear,
		SchoolNumber:       number,
		SchoolArea:         r.SchoolArea,
		SchoolDistrict:     r.SchoolDistrict,
		SchoolMeta:         r.SchoolMeta,
	}
}

/* ===================== RESPONSES ===================== */

type SchoolResponse struct {
	SchoolCode         string         `json:"school_code"`
	SchoolName         string         `json:"school_name"`
	SchoolState        string         `json:"school_state"`
	SchoolAcademicYear string         `json:"school_academic_year"`
	SchoolNumber       int            `json:"school_number"`
	SchoolArea         *string        `json:"school_area,omitempty"`
	SchoolDistrict     *string        `json:"school_district,omitempty"`
	SchoolMeta         datatypes.JSON `json:"school_meta,omitempty"`
	SchoolCreatedAt    time.Time      `json:"school_created_at"`
}

func NewSchoolResponse(m *schoolModel.SchoolModel) SchoolResponse {
	return SchoolResponse{
		SchoolCode:         m.SchoolCode,
		SchoolName:         m.SchoolName,
		SchoolState:        m.SchoolState,
		SchoolAcademicYear: m.SchoolAcademicYear,
		SchoolNumber:       m.SchoolNumber,
		SchoolArea:         m.SchoolArea,
		SchoolDistrict:     m.SchoolDistrict,
		SchoolMeta:         m.SchoolMeta,
		SchoolCreatedAt:    m.SchoolCreatedAt,
	}
}

func NewSchoolResponses(ms []schoolModel.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewSchoolResponse(&ms[i]))
	}
	return out
}

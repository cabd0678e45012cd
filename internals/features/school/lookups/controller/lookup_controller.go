// file: internals/features/school/lookups/controller/lookup_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lookupModel "schoolku_backend/internals/features/school/lookups/model"
	helper "schoolku_backend/internals/helpers"
)

// LookupController serves the small pick-list tables the portal's
// dropdowns are populated from.
type LookupController struct {
	DB *gorm.DB
}

func NewLookupController(db *gorm.DB) *LookupController {
	return &LookupController{DB: db}
}

// GET /api/u/lookups/foundations
func (ctl *LookupController) Foundations(c *fiber.Ctx) error {
	var ms []lookupModel.FoundationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("foundation_name ASC").Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch foundations")
	}
	return helper.JsonOK(c, "Foundations fetched", ms)
}

// GET /api/u/lookups/programs
func (ctl *LookupController) Programs(c *fiber.Ctx) error {
	var ms []lookupModel.ProgramModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("program_name ASC").Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch programs")
	}
	return helper.JsonOK(c, "Programs fetched", ms)
}

// GET /api/u/lookups/academic-years
func (ctl *LookupController) AcademicYears(c *fiber.Ctx) error {
	var ms []lookupModel.AcademicYearModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("academic_year_label DESC").Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch academic years")
	}
	return helper.JsonOK(c, "Academic years fetched", ms)
}

// file: internals/seeds/lookups/seed_lookups.go
package lookups

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	lookupModel "schoolku_backend/internals/features/school/lookups/model"
)

var foundationNames = []string{
	"Foundation A",
	"Foundation B",
	"Foundation C",
}

var programNames = []string{
	"Primary",
	"Secondary",
	"Senior Secondary",
}

var academicYearLabels = []string{
	"2023-2024",
	"2024-2025",
	"2025-2026",
}

// SeedLookups fills the pick-list tables. Existing rows are left alone.
func SeedLookups(db *gorm.DB) {
	skipDup := clause.OnConflict{DoNothing: true}

	for _, name := range foundationNames {
		if err := db.Clauses(skipDup).
			Create(&lookupModel.FoundationModel{FoundationName: name}).Error; err != nil {
			log.Printf("[SEED] foundation %q: %v", name, err)
		}
	}
	for _, name := range programNames {
		if err := db.Clauses(skipDup).
			Create(&lookupModel.ProgramModel{ProgramName: name}).Error; err != nil {
			log.Printf("[SEED] program %q: %v", name, err)
		}
	}
	for _, label := range academicYearLabels {
		if err := db.Clauses(skipDup).
			Create(&lookupModel.AcademicYearModel{AcademicYearLabel: label}).Error; err != nil {
			log.Printf("[SEED] academic year %q: %v", label, err)
		}
	}

	log.Println("✅ Lookup seeds done")
}

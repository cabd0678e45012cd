// file: internals/seeds/runner.go
package seeds

import (
	"gorm.io/gorm"

	"schoolku_backend/internals/seeds/lookups"
	"schoolku_backend/internals/seeds/users"
)

// Run executes every seeder. All of them are idempotent.
func Run(db *gorm.DB) {
	lookups.SeedLookups(db)
	users.SeedAdminUser(db)
}

// file: internals/seeds/users/seed_admin.go
package users

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authModel "schoolku_backend/internals/features/users/auth/model"
)

// SeedAdminUser creates the first admin account when the users table is
// empty. Credentials come from ADMIN_USERNAME / ADMIN_PASSWORD; without
// a password nothing is seeded.
func SeedAdminUser(db *gorm.DB) {
	var count int64
	if err := db.Model(&authModel.UserModel{}).Count(&count).Error; err != nil {
		log.Printf("[SEED] count users: %v", err)
		return
	}
	if count > 0 {
		return
	}

	username := configs.GetEnv("ADMIN_USERNAME", "admin")
	password := configs.GetEnv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("⚠️ ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED] hash admin password: %v", err)
		return
	}

	u := authModel.UserModel{
		UserUsername: username,
		UserPassword: string(hash),
		UserRole:     "admin",
		UserIsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Printf("[SEED] create admin user: %v", err)
		return
	}
	log.Printf("✅ Admin user %q seeded", username)
}

package seeds

import (
	"gorm.io/gorm"

	users "profoli_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	users.SeedDefaultAdmin(db)
}

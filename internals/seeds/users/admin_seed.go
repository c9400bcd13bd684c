package users

import (
	"log"

	"gorm.io/gorm"

	"profoli_backend/internals/configs"
	"profoli_backend/internals/constants"
	"profoli_backend/internals/features/users/auth/model"
	"profoli_backend/internals/features/users/auth/service"
)

// SeedDefaultAdmin garante que exista ao menos um usuário do painel.
// A senha inicial vem de ADMIN_PASSWORD; troque-a no primeiro acesso.
func SeedDefaultAdmin(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.UserModel{}).Count(&count).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	if count > 0 {
		return
	}

	username := configs.GetEnv("ADMIN_USERNAME", "admin")
	password := configs.GetEnv("ADMIN_PASSWORD", "admin123")

	hash, err := service.HashPassword(password)
	if err != nil {
		log.Printf("seed admin: %v", err)
		return
	}

	admin := model.UserModel{
		UserUsername: username,
		UserPassword: hash,
		UserRole:     constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	log.Printf("✅ Usuário admin %q criado", username)
}

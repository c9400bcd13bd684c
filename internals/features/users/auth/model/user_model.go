package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID        string    `gorm:"column:user_id;primaryKey;type:uuid"`
	UserUsername  string    `gorm:"column:user_username;type:varchar(50);uniqueIndex;not null"`
	UserPassword  string    `gorm:"column:user_password;type:varchar(100);not null"` // hash bcrypt
	UserRole      string    `gorm:"column:user_role;type:varchar(20);not null;default:admin"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == "" {
		m.UserID = uuid.NewString()
	}
	return nil
}

package database

import (
	"gorm.io/gorm"

	"elenyum-user/internal/feature/user"
)

// Migrate 建表并创建 email/phone 唯一索引
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&user.UserModel{})
}

package user

import (
	"time"

	"elenyum-user/internal/domain"
)

// UserModel is the storage mapping of domain.User. Validation rules live in validate.go.
type UserModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"size:200;not null"`
	Email    string `gorm:"size:180;not null;uniqueIndex:uniq_users_email"`
	Status   int    `gorm:"not null;default:10"`
	Phone    string `gorm:"size:20;not null;uniqueIndex:uniq_users_phone"`
	Password string `gorm:"size:255;not null"`
	Address  string `gorm:"size:255;not null"`

	CreatedAt time.Time  `gorm:"<-:create;not null;autoCreateTime"` // 只在插入时写入
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

func (UserModel) TableName() string { return "users" }

func FromDomain(u *domain.User) *UserModel {
	return &UserModel{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Status:    int(u.Status),
		Phone:     u.Phone,
		Password:  u.Password,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (m *UserModel) ToDomain() *domain.User {
	return &domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Status:    domain.Status(m.Status),
		Phone:     m.Phone,
		Password:  m.Password,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

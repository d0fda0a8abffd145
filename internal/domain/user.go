package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Status int

const (
	StatusNew       Status = 10
	StatusConfirmed Status = 20
	StatusBlocked   Status = 30
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusConfirmed, StatusBlocked:
		return true
	}
	return false
}

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusConfirmed:
		return "confirmed"
	case StatusBlocked:
		return "blocked"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// User is the plain user record. Storage mapping lives in feature/user.
type User struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Status    Status     `json:"status"`
	Phone     string     `json:"phone"`
	Password  string     `json:"-"` // bcrypt hash once persisted
	Address   string     `json:"address"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// NewUser builds a candidate record in its initial state.
func NewUser(now time.Time) *User {
	return &User{Status: StatusNew, CreatedAt: now.UTC()}
}

// ErrDuplicate is returned by repositories when a unique column collides.
var ErrDuplicate = errors.New("duplicate value")

// DuplicateError names the column that collided. It matches ErrDuplicate with errors.Is.
type DuplicateError struct {
	Field string
	Err   error
}

func (e *DuplicateError) Error() string {
	if e.Field == "" {
		return "duplicate value"
	}
	return "duplicate " + e.Field
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }
func (e *DuplicateError) Unwrap() error        { return e.Err }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// Violation is one failed field constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

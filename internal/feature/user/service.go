package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"elenyum-user/internal/domain"
	"elenyum-user/pkg/utils"
)

// PasswordHasher is the one-way credential hash used for registration and login.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hashed, plain string) bool
}

// ValidationError carries every violated field constraint.
type ValidationError struct {
	Violations []domain.Violation
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return "invalid user: " + strings.Join(fields, ", ")
}

// RegistrationInput is the wire shape of a registration payload.
type RegistrationInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

type Service struct {
	repo   domain.UserRepository
	hasher PasswordHasher
	log    *zap.Logger
	now    func() time.Time
}

func NewService(repo domain.UserRepository, hasher PasswordHasher, l *zap.Logger) *Service {
	if l == nil {
		l = zap.NewNop()
	}
	return &Service{repo: repo, hasher: hasher, log: l, now: time.Now}
}

// Register validates the candidate, hashes its password and persists it.
// Violations, including a unique index hit at commit time, come back as *ValidationError.
func (s *Service) Register(ctx context.Context, in RegistrationInput) (*domain.User, error) {
	u := domain.NewUser(s.now())
	u.Name = in.Name
	u.Email = in.Email
	u.Phone = in.Phone
	u.Password = in.Password
	u.Address = in.Address

	violations, err := Validate(ctx, u, s.repo)
	if err != nil {
		return nil, fmt.Errorf("validate user: %w", err)
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	hashed, err := s.hasher.Hash(u.Password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return nil, &ValidationError{Violations: []domain.Violation{{Field: "password", Message: MsgPasswordLong}}}
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u.Password = hashed

	if err := s.repo.Create(ctx, u); err != nil {
		var dup *domain.DuplicateError
		if errors.As(err, &dup) && dup.Field != "" {
			// 预检之后被并发注册抢先
			return nil, &ValidationError{Violations: []domain.Violation{{Field: dup.Field, Message: uniqueMessage(dup.Field)}}}
		}
		return nil, fmt.Errorf("persist user: %w", err)
	}
	s.log.Info("user registered", zap.Uint("user_id", u.ID))
	return u, nil
}

// Authenticate returns the user whose email and password match, or nil.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !s.hasher.Verify(u.Password, password) {
		return nil, nil
	}
	return u, nil
}

// Identity loads the user a session is bound to; nil when it no longer exists.
func (s *Service) Identity(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

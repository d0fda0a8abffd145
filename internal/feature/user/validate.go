package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"elenyum-user/internal/domain"
)

const (
	MsgNotBlank     = "This value should not be blank."
	MsgTooShort     = "This value is too short. It should have %s characters or more."
	MsgTooLong      = "This value is too long. It should have %s characters or less."
	MsgEmail        = "This value is not a valid email address."
	MsgChoice       = "The value you selected is not a valid choice."
	MsgInvalid      = "This value is not valid."
	MsgEmailInUse   = "Is already in use on that email."
	MsgPhoneInUse   = "Is already in use on that phone."
	MsgPasswordLong = "This value is too long. It should have 72 bytes or less."
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type fieldRule struct {
	field string
	rule  string
	value func(u *domain.User) any
}

// 长度按字符计（validator 对 string 的 min/max 用 rune 数）
var rules = []fieldRule{
	{"name", "required,min=3,max=200", func(u *domain.User) any { return u.Name }},
	{"email", "required,min=5,max=180,email", func(u *domain.User) any { return u.Email }},
	{"status", "required,oneof=10 20 30", func(u *domain.User) any { return int(u.Status) }},
	{"phone", "required,min=5,max=20", func(u *domain.User) any { return u.Phone }},
	{"password", "required", func(u *domain.User) any { return u.Password }},
	{"address", "required,min=20,max=255", func(u *domain.User) any { return u.Address }},
}

// UniquenessChecker answers whether a unique column value is already taken.
type UniquenessChecker interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

// Validate checks u against the field constraints and the uniqueness of email and phone.
// The returned error is only set when a uniqueness lookup fails.
func Validate(ctx context.Context, u *domain.User, uc UniquenessChecker) ([]domain.Violation, error) {
	var out []domain.Violation
	bad := map[string]bool{}
	for _, r := range rules {
		err := validate.Var(r.value(u), r.rule)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return nil, fmt.Errorf("validate %s: %w", r.field, err)
		}
		out = append(out, domain.Violation{Field: r.field, Message: message(verrs[0])})
		bad[r.field] = true
	}

	if uc == nil {
		return out, nil
	}
	// 唯一性只查格式已经合法的字段
	if !bad["email"] {
		taken, err := uc.ExistsByEmail(ctx, u.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			out = append(out, domain.Violation{Field: "email", Message: MsgEmailInUse})
		}
	}
	if !bad["phone"] {
		taken, err := uc.ExistsByPhone(ctx, u.Phone)
		if err != nil {
			return nil, err
		}
		if taken {
			out = append(out, domain.Violation{Field: "phone", Message: MsgPhoneInUse})
		}
	}
	return out, nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgNotBlank
	case "min":
		return fmt.Sprintf(MsgTooShort, fe.Param())
	case "max":
		return fmt.Sprintf(MsgTooLong, fe.Param())
	case "email":
		return MsgEmail
	case "oneof":
		return MsgChoice
	}
	return MsgInvalid
}

func uniqueMessage(field string) string {
	switch field {
	case "email":
		return MsgEmailInUse
	case "phone":
		return MsgPhoneInUse
	}
	return MsgInvalid
}

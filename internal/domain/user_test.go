package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	for _, s := range []Status{StatusNew, StatusConfirmed, StatusBlocked} {
		assert.True(t, s.Valid(), s.String())
	}
	assert.False(t, Status(0).Valid())
	assert.False(t, Status(15).Valid())
	assert.Equal(t, "blocked", StatusBlocked.String())
	assert.Equal(t, "status(15)", Status(15).String())
}

func TestNewUser(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	u := NewUser(time.Date(2024, 5, 1, 15, 0, 0, 0, loc))
	assert.Equal(t, StatusNew, u.Status)
	assert.Equal(t, time.UTC, u.CreatedAt.Location())
	assert.Equal(t, 12, u.CreatedAt.Hour())
	assert.Nil(t, u.UpdatedAt)
	assert.Zero(t, u.ID)
}

func TestDuplicateError(t *testing.T) {
	cause := errors.New("unique constraint failed: users.email")
	err := fmt.Errorf("wrap: %w", &DuplicateError{Field: "email", Err: cause})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.ErrorIs(t, err, cause)

	var dup *DuplicateError
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, "email", dup.Field)
	assert.Equal(t, "duplicate value", (&DuplicateError{}).Error())
}

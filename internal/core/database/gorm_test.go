package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elenyum-user/internal/feature/user"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	cases := []struct {
		name, in, user, pass, want string
	}{
		{"native untouched", "app:pw@tcp(db:3306)/users?parseTime=true", "", "", "app:pw@tcp(db:3306)/users?parseTime=true"},
		{"url", "mysql://app:pw@db:3306/users", "", "", "app:pw@tcp(db:3306)/users?charset=utf8mb4&parseTime=true"},
		{"jdbc params", "jdbc:mysql://db:3306/users?characterEncoding=latin1&useUnicode=true&useSSL=false", "root", "secret",
			"root:secret@tcp(db:3306)/users?charset=latin1&parseTime=true&tls=false"},
		{"query credentials", "mysql://db:3306/users?user=u&password=p", "", "", "u:p@tcp(db:3306)/users?charset=utf8mb4&parseTime=true"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeMySQLDSN(tc.in, tc.user, tc.pass))
		})
	}
}

func TestMaskDSN(t *testing.T) {
	assert.Equal(t, "app:****@tcp(db:3306)/users", maskDSN("app:pw@tcp(db:3306)/users"))
	assert.Equal(t, "tcp(db:3306)/users", maskDSN("tcp(db:3306)/users"))
}

func TestNewGorm_UnsupportedDriver(t *testing.T) {
	_, err := NewGorm(Opts{Driver: "oracle"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewGorm_SQLiteMigrate(t *testing.T) {
	db, err := NewGorm(Opts{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))
	m := db.WithContext(context.Background()).Migrator()
	assert.True(t, m.HasTable(&user.UserModel{}))
	assert.True(t, m.HasIndex(&user.UserModel{}, "uniq_users_email"))
	assert.True(t, m.HasIndex(&user.UserModel{}, "uniq_users_phone"))
}

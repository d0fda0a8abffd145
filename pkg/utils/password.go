package utils

import "golang.org/x/crypto/bcrypt"

// ErrPasswordTooLong bcrypt 只接受 72 字节以内的明文
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// BcryptHasher 单向加盐哈希；Cost 为 0 时用 bcrypt.DefaultCost
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h BcryptHasher) Verify(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// IsHashed 判断字符串是否像 bcrypt 哈希
func IsHashed(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}

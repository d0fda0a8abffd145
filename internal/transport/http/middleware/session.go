package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// KeySessionToken 本次请求内新签发的会话 token（Cookie 要到下个请求才带回来）
const KeySessionToken = "session_token"

type SessionCookie struct {
	Name   string
	MaxAge int // 秒
	Secure bool
}

// Token 优先取本次请求刚签发的 token，其次取 Cookie
func (s SessionCookie) Token(c *gin.Context) string {
	if t := c.GetString(KeySessionToken); t != "" {
		return t
	}
	t, err := c.Cookie(s.Name)
	if err != nil {
		return ""
	}
	return t
}

func (s SessionCookie) Set(c *gin.Context, token string) {
	c.Set(KeySessionToken, token)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, token, s.MaxAge, "/", "", s.Secure, true)
}

func (s SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, "", -1, "/", "", s.Secure, true)
}

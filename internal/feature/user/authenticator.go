package user

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpez "elenyum-user/internal/transport/http/ez"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Authenticator 处理 POST 登录请求里的 JSON 凭证：校验通过则开会话并写 Cookie，
// 没带凭证则直接放行，交给 Login 读现有会话
func (h *Handler) Authenticator() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost || c.Request.Body == nil {
			c.Next()
			return
		}
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			httpez.Abort(c, httpez.BadRequest("invalid login payload"))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		if len(bytes.TrimSpace(raw)) == 0 {
			c.Next()
			return
		}

		var cred credentials
		if err := json.Unmarshal(raw, &cred); err != nil {
			httpez.Abort(c, httpez.BadRequest("invalid login payload"))
			return
		}
		if cred.Email == "" || cred.Password == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		u, err := h.svc.Authenticate(ctx, cred.Email, cred.Password)
		if err != nil {
			httpez.Abort(c, httpez.Internal("internal error", err))
			return
		}
		if u == nil {
			logins.WithLabelValues("denied").Inc()
			httpez.Abort(c, httpez.Unauthorized(MsgInvalidCredentials))
			return
		}
		tok, err := h.sessions.Issue(ctx, u.ID)
		if err != nil {
			httpez.Abort(c, httpez.Internal("internal error", err))
			return
		}
		h.cookie.Set(c, tok)
		h.log.Info("session opened", zap.Uint("user_id", u.ID))
		c.Next()
	}
}

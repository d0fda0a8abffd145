package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpez "elenyum-user/internal/transport/http/ez"
	mdw "elenyum-user/internal/transport/http/middleware"
	resp "elenyum-user/internal/transport/http/response"
)

const (
	MsgMissingCredentials = "missing credentials"
	MsgInvalidCredentials = "invalid credentials"
	MsgSeeCookie          = "See session token in cookie"
)

// IdentityResolver maps a session token to the user id it is bound to.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (uint, bool, error)
}

// SessionIssuer opens and closes sessions; the authenticator and logout use it.
type SessionIssuer interface {
	IdentityResolver
	Issue(ctx context.Context, userID uint) (string, error)
	Revoke(ctx context.Context, token string) error
}

type Handler struct {
	svc      *Service
	sessions SessionIssuer
	cookie   mdw.SessionCookie
	log      *zap.Logger
}

func NewHandler(svc *Service, sessions SessionIssuer, cookie mdw.SessionCookie, l *zap.Logger) *Handler {
	if l == nil {
		l = zap.NewNop()
	}
	return &Handler{svc: svc, sessions: sessions, cookie: cookie, log: l}
}

// Mount 挂载 /user 下的接口
func (h *Handler) Mount(g *gin.RouterGroup) {
	login := g.Group("")
	login.Use(h.Authenticator())
	httpez.RegisterAction[struct{}, loginOut](login, httpez.Action[struct{}, loginOut]{
		Methods: []string{http.MethodGet, http.MethodPost},
		Path:    "/login",
		Binder:  httpez.BindNone,
		Handler: h.Login,
	})
	httpez.RegisterAction[RegistrationInput, resp.Body](g, httpez.Action[RegistrationInput, resp.Body]{
		Path:    "/registration",
		Binder:  httpez.BindJSON,
		Handler: h.Register,
	})
	httpez.RegisterAction[struct{}, resp.Body](g, httpez.Action[struct{}, resp.Body]{
		Path:    "/logout",
		Binder:  httpez.BindNone,
		Handler: h.Logout,
	})
}

type loginOut struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	User    string `json:"user"`
}

// Login 只读会话身份，不做凭证校验（由 Authenticator 完成）
func (h *Handler) Login(c *gin.Context, _ *struct{}) (loginOut, error) {
	ctx := c.Request.Context()
	id, ok, err := h.sessions.ResolveIdentity(ctx, h.cookie.Token(c))
	if err != nil {
		return loginOut{}, httpez.Internal("internal error", err)
	}
	if !ok {
		logins.WithLabelValues("denied").Inc()
		return loginOut{}, httpez.Unauthorized(MsgMissingCredentials)
	}
	u, err := h.svc.Identity(ctx, id)
	if err != nil {
		return loginOut{}, httpez.Internal("internal error", err)
	}
	if u == nil {
		logins.WithLabelValues("denied").Inc()
		return loginOut{}, httpez.Unauthorized(MsgMissingCredentials)
	}
	logins.WithLabelValues("ok").Inc()
	return loginOut{Code: http.StatusOK, Message: MsgSeeCookie, User: u.Email}, nil
}

func (h *Handler) Register(c *gin.Context, in *RegistrationInput) (resp.Body, error) {
	_, err := h.svc.Register(c.Request.Context(), *in)
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		registrations.WithLabelValues("invalid").Inc()
		fields := make([]string, 0, len(verr.Violations))
		for _, v := range verr.Violations {
			fields = append(fields, v.Field)
		}
		h.log.Warn("registration rejected", zap.Strings("fields", fields))
		return resp.Body{}, httpez.Invalid(verr.Violations)
	case err != nil:
		registrations.WithLabelValues("error").Inc()
		h.log.Error("registration failed", zap.Error(err))
		return resp.Body{}, httpez.Internal("internal error", err)
	}
	registrations.WithLabelValues("ok").Inc()
	return resp.OK(), nil
}

func (h *Handler) Logout(c *gin.Context, _ *struct{}) (resp.Body, error) {
	if tok := h.cookie.Token(c); tok != "" {
		if err := h.sessions.Revoke(c.Request.Context(), tok); err != nil {
			return resp.Body{}, httpez.Internal("internal error", err)
		}
	}
	h.cookie.Clear(c)
	return resp.OK(), nil
}

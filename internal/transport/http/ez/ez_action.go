package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"elenyum-user/internal/domain"
	resp "elenyum-user/internal/transport/http/response"
)

// 绑定方式
type Binder string

const (
	BindJSON Binder = "json"
	BindNone Binder = "none" // 不绑定，自己从 c 取
)

// AErr 动作错误：Status 是 HTTP 状态码，Body 决定响应体
type AErr struct {
	Status int
	Body   resp.Body
	Err    error
}

func (e *AErr) Error() string {
	switch {
	case e.Body.Message != "":
		return e.Body.Message
	case e.Err != nil:
		return e.Err.Error()
	case len(e.Body.Messages) > 0:
		return "validation failed"
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

// Malformed 请求体无法解析
func Malformed(err error) error {
	return &AErr{
		Status: http.StatusBadRequest,
		Body:   resp.Invalid([]domain.Violation{{Field: "body", Message: "malformed payload: " + err.Error()}}),
		Err:    err,
	}
}

func Invalid(v []domain.Violation) error {
	return &AErr{Status: http.StatusBadRequest, Body: resp.Invalid(v)}
}

func BadRequest(msg string) error {
	return &AErr{Status: http.StatusBadRequest, Body: resp.Error(http.StatusBadRequest, msg)}
}

// Unauthorized 401 只带 message
func Unauthorized(msg string) error {
	return &AErr{Status: http.StatusUnauthorized, Body: resp.Message(msg)}
}

func Internal(msg string, err error) error {
	return &AErr{Status: http.StatusInternalServerError, Body: resp.Error(http.StatusInternalServerError, msg), Err: err}
}

// 动作定义：I 入参，O 出参
type Action[I any, O any] struct {
	Methods []string // 默认 POST
	Path    string
	Binder  Binder
	Handler func(c *gin.Context, in *I) (O, error)
}

// RegisterAction 绑定入参、执行并统一映射错误
func RegisterAction[I any, O any](g gin.IRoutes, a Action[I, O]) {
	h := func(c *gin.Context) {
		var in I
		if a.Binder == BindJSON {
			if err := c.ShouldBindJSON(&in); err != nil {
				Abort(c, bindError(err))
				return
			}
		}
		out, err := a.Handler(c, &in)
		if err != nil {
			Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}

	methods := a.Methods
	if len(methods) == 0 {
		methods = []string{http.MethodPost}
	}
	for _, m := range methods {
		g.Handle(strings.ToUpper(m), a.Path, h)
	}
}

// Abort 把 error 写成响应；非 AErr 一律 500，原始错误挂到 c.Errors 给访问日志
func Abort(c *gin.Context, err error) {
	var ae *AErr
	if !errors.As(err, &ae) {
		ae = Internal("internal error", err).(*AErr)
	}
	if ae.Status >= http.StatusInternalServerError && ae.Err != nil {
		_ = c.Error(ae.Err)
	}
	c.AbortWithStatusJSON(ae.Status, ae.Body)
}

func bindError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &AErr{Status: http.StatusRequestEntityTooLarge, Body: resp.Error(http.StatusRequestEntityTooLarge, "request body too large"), Err: err}
	}
	return Malformed(err)
}

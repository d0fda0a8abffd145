package response

import (
	"net/http"

	"elenyum-user/internal/domain"
)

// Body 统一响应体；code 与 HTTP 状态码一致，登录失败只带 message
type Body struct {
	Code     int                `json:"code,omitempty"`
	Message  string             `json:"message,omitempty"`
	Messages []domain.Violation `json:"messages,omitempty"`
}

func OK() Body { return Body{Code: http.StatusOK} }

// Message 只带 message，不带 code
func Message(msg string) Body { return Body{Message: msg} }

func Error(code int, msg string) Body {
	if msg == "" {
		msg = http.StatusText(code)
	}
	return Body{Code: code, Message: msg}
}

func Invalid(violations []domain.Violation) Body {
	return Body{Code: http.StatusBadRequest, Messages: violations}
}

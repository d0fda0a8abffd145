package response

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elenyum-user/internal/domain"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestBodies(t *testing.T) {
	assert.JSONEq(t, `{"code":200}`, marshal(t, OK()))
	assert.JSONEq(t, `{"message":"missing credentials"}`, marshal(t, Message("missing credentials")))
	assert.JSONEq(t, `{"code":500,"message":"Internal Server Error"}`, marshal(t, Error(http.StatusInternalServerError, "")))
	assert.JSONEq(t,
		`{"code":400,"messages":[{"field":"email","message":"Is already in use on that email."}]}`,
		marshal(t, Invalid([]domain.Violation{{Field: "email", Message: "Is already in use on that email."}})),
	)
}

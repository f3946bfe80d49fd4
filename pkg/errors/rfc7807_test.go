package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIsComparesKind(t *testing.T) {
	err := Conflict.Explain("name taken").Wrap(fmt.Errorf("unique constraint"))

	assert.ErrorIs(t, err, Conflict)
	assert.NotErrorIs(t, err, NotFound)
	assert.ErrorIs(t, fmt.Errorf("register: %w", err), Conflict)
	assert.Equal(t, http.StatusConflict, err.StatusCode())
	assert.Equal(t, "[Conflict] name taken (unique constraint)", err.Error())
}

func TestExplainAndWithFieldCopy(t *testing.T) {
	base := Invalid.Explain("bad request")
	withField := base.WithField("required", "name", "name is required")

	assert.Empty(t, base.Fields)
	assert.Len(t, withField.Fields, 1)
	assert.Empty(t, Invalid.Message)
}

func TestNewDefaultsToInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, New("boom").StatusCode())
	assert.Equal(t, http.StatusInternalServerError, (&Error{Kind: "custom"}).StatusCode())
}

func TestToProblemDetails(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		status int
		typ    string
		detail string
	}{
		{name: "validation", err: Invalid.Explain("Request validation failed"), status: 400, typ: TypeValidationError, detail: "Request validation failed"},
		{name: "unauthorized", err: Unauthorized.Explain("invalid credentials"), status: 401, typ: TypeUnauthorized, detail: "invalid credentials"},
		{name: "not found", err: NotFound.Explain("creator 3 not found"), status: 404, typ: TypeNotFound, detail: "creator 3 not found"},
		{name: "conflict", err: Conflict.Explain("taken"), status: 409, typ: TypeConflict, detail: "taken"},
		{name: "internal hides message", err: Internal.Explain("pq: connection reset"), status: 500, typ: TypeInternalError, detail: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pd := tt.err.ToProblemDetails("/creator/register")
			assert.Equal(t, tt.status, pd.Status)
			assert.Equal(t, tt.typ, pd.Type)
			assert.Equal(t, tt.detail, pd.Detail)
			assert.Equal(t, "/creator/register", pd.Instance)
		})
	}
}

func TestProblemDetailsJSON(t *testing.T) {
	pd := Invalid.Explain("Request validation failed").
		WithField("required", "walletAddress", "walletAddress is required").
		ToProblemDetails("/creator/register").
		WithTraceID("abc").
		WithExtra("hint", "send a wallet")

	raw, err := json.Marshal(pd)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, TitleValidationError, body["title"])
	assert.EqualValues(t, 400, body["status"])
	assert.Equal(t, "abc", body["trace_id"])
	assert.Equal(t, "send a wallet", body["hint"])

	errs := body["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, map[string]interface{}{
		"field":   "walletAddress",
		"message": "walletAddress is required",
		"code":    "required",
	}, errs[0])
}

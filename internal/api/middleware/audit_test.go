package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractResource_Collection(t *testing.T) {
	resType, resID := extractResource("/api/v1/customers")
	assert.Equal(t, "customers", resType)
	assert.Empty(t, resID)
}

func TestExtractResource_WithID(t *testing.T) {
	resType, resID := extractResource("/api/v1/customers/42")
	assert.Equal(t, "customers", resType)
	assert.Equal(t, "42", resID)
}

func TestExtractResource_TrailingSlash(t *testing.T) {
	resType, resID := extractResource("/api/v1/customers/")
	assert.Equal(t, "customers", resType)
	assert.Empty(t, resID)
}

func TestSanitizeBody(t *testing.T) {
	sanitized := sanitizeBody([]byte(`{"name":"Ada","email":"ada@example.com"}`))

	var result map[string]any
	require.NoError(t, json.Unmarshal(sanitized, &result))
	assert.Equal(t, "Ada", result["name"])
	assert.Equal(t, "[REDACTED]", result["email"])
}

func TestSanitizeBody_NullEmailKept(t *testing.T) {
	sanitized := sanitizeBody([]byte(`{"email":null}`))
	assert.JSONEq(t, `{"email":null}`, string(sanitized))
}

func TestSanitizeBody_NotAnObject(t *testing.T) {
	assert.Equal(t, []byte(`[1,2]`), sanitizeBody([]byte(`[1,2]`)))
}

func auditRequest(t *testing.T, method, target, body string) (string, string) {
	t.Helper()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	var seenBody string
	h := Audit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seenBody = string(b)
		w.WriteHeader(http.StatusCreated)
	}))

	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r = r.WithContext(logger.WithContext(r.Context()))
	h.ServeHTTP(httptest.NewRecorder(), r)

	return buf.String(), seenBody
}

func TestAudit_LogsMutation(t *testing.T) {
	out, seenBody := auditRequest(t, http.MethodPost, "/api/v1/customers", `{"name":"Ada","email":"a@b.c"}`)

	assert.Equal(t, `{"name":"Ada","email":"a@b.c"}`, seenBody, "handler still sees the full body")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entry))
	assert.Equal(t, "audit", entry["message"])
	assert.Equal(t, "POST", entry["audit_method"])
	assert.Equal(t, "customers", entry["resource_type"])
	assert.Equal(t, float64(http.StatusCreated), entry["status"])
	assert.Equal(t, map[string]any{"name": "Ada", "email": "[REDACTED]"}, entry["request_body"])
}

func TestAudit_DeleteWithID(t *testing.T) {
	out, _ := auditRequest(t, http.MethodDelete, "/api/v1/customers/7", "")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entry))
	assert.Equal(t, "7", entry["resource_id"])
	assert.NotContains(t, entry, "request_body")
}

func TestAudit_SkipsReads(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		out, _ := auditRequest(t, method, "/api/v1/customers/1", "")
		assert.Empty(t, out, method)
	}
}

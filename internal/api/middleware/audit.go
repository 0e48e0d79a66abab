package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Audit logs every mutating request after it completes, with the resource,
// its id, the response status and a redacted copy of the body.
func Audit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			next.ServeHTTP(w, r)
			return
		}

		var bodyBytes []byte
		if r.Body != nil {
			bodyBytes, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		resourceType, resourceID := extractResource(r.URL.Path)

		event := zerolog.Ctx(r.Context()).Info().
			Str("audit_method", r.Method).
			Str("resource_type", resourceType).
			Int("status", sw.status)
		if resourceID != "" {
			event = event.Str("resource_id", resourceID)
		}
		if len(bodyBytes) > 0 && json.Valid(bodyBytes) {
			event = event.RawJSON("request_body", sanitizeBody(bodyBytes))
		}
		event.Msg("audit")
	})
}

// extractResource returns the last resource segment of an /api/v1 path and
// the id that follows it, if any.
//
//	/api/v1/customers    -> customers, ""
//	/api/v1/customers/42 -> customers, 42
func extractResource(path string) (string, string) {
	parts := strings.Split(strings.TrimPrefix(path, "/api/v1/"), "/")

	var resourceType, resourceID string
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i%2 == 0 {
			resourceType = part
			resourceID = ""
		} else {
			resourceID = part
		}
	}

	return resourceType, resourceID
}

// sensitiveFields are redacted from audit entries.
var sensitiveFields = map[string]bool{
	"email": true,
}

func sanitizeBody(body []byte) []byte {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return body
	}
	for k, v := range data {
		if sensitiveFields[k] && v != nil {
			data[k] = "[REDACTED]"
		}
	}
	sanitized, _ := json.Marshal(data)
	return sanitized
}

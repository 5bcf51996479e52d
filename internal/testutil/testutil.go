package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"bookswap/internal/platform/crypto"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateTestToken issues a valid one-hour access token for userID.
func GenerateTestToken(secret, userID string) string {
	token, _, _ := crypto.GenerateToken(secret, userID, time.Hour)
	return token
}

// GenerateExpiredToken issues a token that expired an hour ago.
func GenerateExpiredToken(secret, userID string) string {
	c := crypto.Claims{
		Sub: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	return token
}

// NewRequest builds a request with body encoded as JSON when non-nil.
func NewRequest(method, path string, body any) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	raw, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func NewRequestWithAuth(method, path string, body any, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// RecordHTTPResponse decodes the recorded envelope into a generic map.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	raw, _ := io.ReadAll(result.Body)

	var body map[string]any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   body,
	}
}

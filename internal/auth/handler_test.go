package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remetra/backend/internal/models"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	svc := NewService(newMockUserStore(), NewTokenCodec("test-secret"), nil, time.Hour)
	return NewHandler(svc)
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if header != nil {
		req.Header = header
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec := doJSON(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cret","dob":"1990-04-01","weight":64.5}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var u models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, "alice", u.Username)
	require.NotNil(t, u.DOB)
	assert.Equal(t, "1990-04-01", u.DOB.Format("2006-01-02"))

	// The hash must never leak through the JSON encoding.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestHandler_Register_Validation(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed body", `{`},
		{"missing fields", `{"username":"alice"}`},
		{"bad email", `{"username":"alice","email":"not-an-email","password":"pw"}`},
		{"bad dob", `{"username":"alice","email":"a@example.com","password":"pw","dob":"01/04/1990"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h.Register, http.MethodPost, "/api/auth/register", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_Register_Conflicts(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec := doJSON(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"pw"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"other@example.com","password":"pw"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "username")

	rec = doJSON(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"username":"bob","email":"alice@example.com","password":"pw"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}

func TestHandler_LoginAndMe(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec := doJSON(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cret"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"s3cret"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tok models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	assert.Equal(t, "bearer", tok.TokenType)
	assert.Equal(t, "alice", tok.Username)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+tok.AccessToken)
	rec = doJSON(t, h.Me, http.MethodGet, "/api/auth/me", "", header)
	require.Equal(t, http.StatusOK, rec.Code)

	var u models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, "alice", u.Username)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec := doJSON(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cret"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPassword := doJSON(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"wrong"}`, nil)
	unknownUser := doJSON(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"username":"ghost","password":"s3cret"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	// Both failure modes produce the same response body.
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestHandler_Me_Unauthorized(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	header := http.Header{}
	header.Set("Authorization", "Bearer bogus")
	rec := doJSON(t, h.Me, http.MethodGet, "/api/auth/me", "", header)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

package models

import "time"

// User represents a row in the PostgreSQL users table. The username is the
// primary identity; the password hash is never serialized.
type User struct {
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	DOB          *time.Time `json:"dob,omitempty"`
	Conditions   []string   `json:"conditions,omitempty"`
	Weight       *float64   `json:"weight,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// RegisterRequest is the JSON body for POST /api/auth/register.
// DOB, when present, is a "2006-01-02" date string.
type RegisterRequest struct {
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	DOB        string   `json:"dob,omitempty"`
	Conditions []string `json:"conditions,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
}

// LoginRequest is the JSON body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

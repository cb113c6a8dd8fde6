package models

import "time"

type Scene string

const (
	SceneWelcome       Scene = "welcome"
	SceneSignup        Scene = "signup"
	SceneResetPassword Scene = "reset_password"
	SceneVerifyEmail   Scene = "verify_email"
)

// Known reports whether s is one of the four supported scenes.
func (s Scene) Known() bool {
	switch s {
	case SceneWelcome, SceneSignup, SceneResetPassword, SceneVerifyEmail:
		return true
	}
	return false
}

type Language string

const (
	LangZhCN Language = "zh-CN"
	LangEnUS Language = "en-US"

	DefaultLanguage = LangEnUS
)

func (l Language) Known() bool {
	return l == LangZhCN || l == LangEnUS
}

// OrDefault falls back to en-US for empty or unknown values.
func (l Language) OrDefault() Language {
	if l.Known() {
		return l
	}
	return DefaultLanguage
}

// SendRequest is the body of the generic multi-scene endpoint.
type SendRequest struct {
	Scene      Scene             `json:"scene"`
	Email      string            `json:"email"`
	Language   Language          `json:"language,omitempty"`
	CustomData map[string]string `json:"customData,omitempty"`
}

// SignupRequest is the body of the dedicated signup endpoint.
// The verification link is generated server-side, never taken from the caller.
type SignupRequest struct {
	Email      string   `json:"email"`
	Username   string   `json:"username,omitempty"`
	Language   Language `json:"language,omitempty"`
	RedirectTo string   `json:"redirectTo,omitempty"`
}

// ResetPasswordRequest is the body of the dedicated reset endpoint.
type ResetPasswordRequest struct {
	Email      string   `json:"email"`
	Language   Language `json:"language,omitempty"`
	RedirectTo string   `json:"redirectTo,omitempty"`
}

// EmailTemplate is one row of the template store. The resolver only ever
// returns rows with Enabled=true.
type EmailTemplate struct {
	ID       string   `json:"id"`
	Scene    Scene    `json:"scene"`
	Language Language `json:"language"`
	Subject  string   `json:"subject"`
	Enabled  bool     `json:"enabled"`
}

type LogStatus string

const (
	StatusSent   LogStatus = "sent"
	StatusFailed LogStatus = "failed"
)

// EmailLogEntry records one send attempt. Written once, never updated.
type EmailLogEntry struct {
	ID              int64     `json:"id"`
	EmailTo         string    `json:"email_to"`
	Scene           Scene     `json:"scene"`
	Language        Language  `json:"language"`
	Status          LogStatus `json:"status"`
	ErrorMessage    string    `json:"error_message,omitempty"`
	ProviderEmailID string    `json:"provider_email_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// DeliveryResult carries the provider's answer for a single attempt.
// Exactly one of ID and Err is set.
type DeliveryResult struct {
	ID  string
	Err error
}

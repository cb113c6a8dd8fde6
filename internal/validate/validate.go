// Package validate checks request shape before any external call is made.
package validate

import (
	"fmt"
	"regexp"

	"SceneMail/internal/models"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether addr has a local@domain.tld shape.
func ValidEmail(addr string) bool {
	return emailRe.MatchString(addr)
}

// FieldError identifies the offending field of a rejected request.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// SendRequest validates the generic endpoint body: known scene, valid
// recipient, and the custom field the scene requires. An unknown or
// missing scene is an error here, never silently defaulted.
func SendRequest(req *models.SendRequest) *FieldError {
	if req.Scene == "" || req.Email == "" {
		return &FieldError{Field: "scene,email", Reason: "missing required parameters"}
	}
	if !req.Scene.Known() {
		return &FieldError{Field: "scene", Reason: fmt.Sprintf("unknown scene %q", req.Scene)}
	}
	if !ValidEmail(req.Email) {
		return &FieldError{Field: "email", Reason: "invalid email format"}
	}
	switch req.Scene {
	case models.SceneSignup, models.SceneVerifyEmail:
		if req.CustomData["verifyUrl"] == "" {
			return &FieldError{
				Field:  "verifyUrl",
				Reason: fmt.Sprintf("verifyUrl is required for %s scene", req.Scene),
			}
		}
	case models.SceneResetPassword:
		if req.CustomData["resetUrl"] == "" {
			return &FieldError{
				Field:  "resetUrl",
				Reason: "resetUrl is required for reset_password scene",
			}
		}
	}
	return nil
}

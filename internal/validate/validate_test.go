package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SceneMail/internal/models"
)

func TestValidEmail(t *testing.T) {
	valids := []string{
		"user@example.com",
		"first.last@sub.domain.co",
		"u+tag@example.io",
		"数字@example.cn",
	}
	for _, v := range valids {
		assert.True(t, ValidEmail(v), "expected valid: %q", v)
	}

	invalids := []string{
		"",
		"plain",
		"no-at.example.com",
		"two@@example.com",
		"user@nodot",
		"spaces in@example.com",
		"user@exam ple.com",
		"@example.com",
		"user@",
	}
	for _, v := range invalids {
		assert.False(t, ValidEmail(v), "expected invalid: %q", v)
	}
}

func TestSendRequest(t *testing.T) {
	cases := []struct {
		name      string
		req       models.SendRequest
		wantField string
	}{
		{
			name:      "missing scene and email",
			req:       models.SendRequest{},
			wantField: "scene,email",
		},
		{
			name:      "missing email",
			req:       models.SendRequest{Scene: models.SceneWelcome},
			wantField: "scene,email",
		},
		{
			name:      "unknown scene",
			req:       models.SendRequest{Scene: "newsletter", Email: "a@b.co"},
			wantField: "scene",
		},
		{
			name:      "bad email",
			req:       models.SendRequest{Scene: models.SceneWelcome, Email: "not-an-email"},
			wantField: "email",
		},
		{
			name:      "signup without verifyUrl",
			req:       models.SendRequest{Scene: models.SceneSignup, Email: "a@b.co"},
			wantField: "verifyUrl",
		},
		{
			name: "verify_email without verifyUrl",
			req: models.SendRequest{
				Scene:      models.SceneVerifyEmail,
				Email:      "a@b.co",
				CustomData: map[string]string{"name": "A"},
			},
			wantField: "verifyUrl",
		},
		{
			name:      "reset without resetUrl",
			req:       models.SendRequest{Scene: models.SceneResetPassword, Email: "a@b.co"},
			wantField: "resetUrl",
		},
		{
			name: "welcome needs no custom data",
			req:  models.SendRequest{Scene: models.SceneWelcome, Email: "a@b.co"},
		},
		{
			name: "signup with verifyUrl",
			req: models.SendRequest{
				Scene:      models.SceneSignup,
				Email:      "a@b.co",
				CustomData: map[string]string{"verifyUrl": "https://x.co/v?t=1"},
			},
		},
		{
			name: "reset with resetUrl",
			req: models.SendRequest{
				Scene:      models.SceneResetPassword,
				Email:      "a@b.co",
				CustomData: map[string]string{"resetUrl": "https://x.co/r?t=1"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fe := SendRequest(&tc.req)
			if tc.wantField == "" {
				require.Nil(t, fe)
				return
			}
			require.NotNil(t, fe)
			assert.Equal(t, tc.wantField, fe.Field)
			assert.NotEmpty(t, fe.Error())
		})
	}
}

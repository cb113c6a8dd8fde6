package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SceneMail/internal/models"
)

func baseProps() Props {
	return Props{
		Name:         "Alice",
		VerifyURL:    "https://app.example.com/verify?token=abc&lang=en-US",
		ResetURL:     "https://app.example.com/reset?token=def&lang=en-US",
		DashboardURL: "https://app.example.com/dashboard",
		LogoURL:      "https://cdn.example.com/logo.png",
		CompanyName:  "Acme",
		SupportEmail: "support@acme.io",
	}
}

func TestHTMLAllScenesAllLanguages(t *testing.T) {
	for _, scene := range []models.Scene{
		models.SceneWelcome,
		models.SceneSignup,
		models.SceneResetPassword,
		models.SceneVerifyEmail,
	} {
		for _, lang := range []models.Language{models.LangEnUS, models.LangZhCN} {
			html, err := HTML(scene, lang, baseProps())
			require.NoError(t, err, "%s/%s", scene, lang)
			assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
			assert.Contains(t, html, "mailto:support@acme.io")
			assert.Contains(t, html, "https://cdn.example.com/logo.png")
		}
	}
}

func TestHTMLDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		a, err := HTML(models.SceneSignup, models.LangZhCN, baseProps())
		require.NoError(t, err)
		b, err := HTML(models.SceneSignup, models.LangZhCN, baseProps())
		require.NoError(t, err)
		assert.Equal(t, a, b, "identical inputs must yield byte-identical HTML")
	}
}

func TestHTMLSceneContent(t *testing.T) {
	html, err := HTML(models.SceneSignup, models.LangEnUS, baseProps())
	require.NoError(t, err)
	assert.Contains(t, html, "Hello, Alice!")
	assert.Contains(t, html, "Complete Your Registration")
	assert.Contains(t, html, "https://app.example.com/verify?token=abc")

	html, err = HTML(models.SceneResetPassword, models.LangZhCN, baseProps())
	require.NoError(t, err)
	assert.Contains(t, html, "重置密码")
	assert.Contains(t, html, "https://app.example.com/reset?token=def")
	// Reset greeting is impersonal even when a name is set.
	assert.NotContains(t, html, "Alice")

	html, err = HTML(models.SceneWelcome, models.LangEnUS, baseProps())
	require.NoError(t, err)
	assert.Contains(t, html, "https://app.example.com/dashboard")
	assert.Contains(t, html, "Get Started")
}

func TestHTMLNameDefaults(t *testing.T) {
	p := baseProps()
	p.Name = ""
	html, err := HTML(models.SceneSignup, models.LangEnUS, p)
	require.NoError(t, err)
	assert.Contains(t, html, "Hello, User!")
}

func TestHTMLNoLogoOmitsImage(t *testing.T) {
	p := baseProps()
	p.LogoURL = ""
	html, err := HTML(models.SceneWelcome, models.LangEnUS, p)
	require.NoError(t, err)
	assert.NotContains(t, html, "<img")
}

func TestHTMLUnknownSceneFailsLoudly(t *testing.T) {
	_, err := HTML("newsletter", models.LangEnUS, baseProps())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newsletter")

	_, err = HTML(models.SceneWelcome, "fr-FR", baseProps())
	require.Error(t, err)
}

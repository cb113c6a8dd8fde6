// Package render turns (scene, language, props) into a complete HTML
// document. It is pure: no network, no storage, deterministic output.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"SceneMail/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Props is the merged data handed to a scene template. LogoURL,
// CompanyName and SupportEmail are defaulted by the caller from config;
// Name defaults to "User" here, matching the upstream template behavior.
type Props struct {
	Name         string
	VerifyURL    string
	ResetURL     string
	DashboardURL string
	LogoURL      string
	CompanyName  string
	SupportEmail string
}

type page struct {
	Logo         string
	Company      string
	Support      string
	Greeting     string
	VerifyURL    string
	ResetURL     string
	DashboardURL string
	T            text
}

// HTML renders the email body for one scene. A scene or language outside
// the declared enums is a programming error upstream and fails loudly.
func HTML(scene models.Scene, lang models.Language, p Props) (string, error) {
	byLang, ok := locales[scene]
	if !ok {
		return "", fmt.Errorf("render: no template for scene %q", scene)
	}
	t, ok := byLang[lang]
	if !ok {
		return "", fmt.Errorf("render: no %q copy for scene %q", lang, scene)
	}

	name := p.Name
	if name == "" {
		name = "User"
	}
	greeting := t.Greeting
	if scene == models.SceneWelcome || scene == models.SceneSignup {
		greeting = fmt.Sprintf(t.Greeting, name)
	}

	data := page{
		Logo:         p.LogoURL,
		Company:      p.CompanyName,
		Support:      p.SupportEmail,
		Greeting:     greeting,
		VerifyURL:    p.VerifyURL,
		ResetURL:     p.ResetURL,
		DashboardURL: p.DashboardURL,
		T:            t,
	}

	var body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&body, string(scene)+".html", data); err != nil {
		return "", fmt.Errorf("render: execute %s: %w", scene, err)
	}
	return body.String(), nil
}

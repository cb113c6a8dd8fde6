// Package dispatch runs the send pipeline shared by the three endpoints:
// validate, resolve template, provision the action link where the scene
// needs one, render, deliver, and record the attempt.
package dispatch

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"SceneMail/internal/audit"
	"SceneMail/internal/config"
	"SceneMail/internal/db"
	"SceneMail/internal/delivery"
	"SceneMail/internal/identity"
	"SceneMail/internal/metrics"
	"SceneMail/internal/models"
	"SceneMail/internal/render"
	"SceneMail/internal/validate"
)

// TemplateStore resolves the enabled template for a (scene, language)
// pair, returning db.ErrTemplateNotFound when no row matches.
type TemplateStore interface {
	GetTemplate(ctx context.Context, scene models.Scene, lang models.Language) (*models.EmailTemplate, error)
}

type Dispatcher struct {
	Cfg       *config.Config
	Templates TemplateStore
	Identity  identity.Provider
	Mailer    delivery.Mailer
	Audit     *audit.Logger
	Log       *zap.Logger
}

// Result is what a handler needs to build the success body.
type Result struct {
	EmailID  string
	Scene    models.Scene
	Language models.Language
}

// Generic handles the multi-scene endpoint. The action URL comes from the
// caller's customData; no link is provisioned here.
func (d *Dispatcher) Generic(ctx context.Context, req *models.SendRequest) (*Result, error) {
	if fe := validate.SendRequest(req); fe != nil {
		return nil, &Error{Kind: ErrValidation, Cause: fe}
	}

	lang := req.Language.OrDefault()

	tpl, err := d.resolveTemplate(ctx, req.Scene, lang)
	if err != nil {
		return nil, err
	}

	props := d.baseProps()
	if v := req.CustomData["name"]; v != "" {
		props.Name = v
	}
	if v := req.CustomData["verifyUrl"]; v != "" {
		props.VerifyURL = v
	}
	if v := req.CustomData["resetUrl"]; v != "" {
		props.ResetURL = v
	}
	if v := req.CustomData["logoUrl"]; v != "" {
		props.LogoURL = v
	}
	if v := req.CustomData["companyName"]; v != "" {
		props.CompanyName = v
	}
	if v := req.CustomData["supportEmail"]; v != "" {
		props.SupportEmail = v
	}

	html, err := render.HTML(req.Scene, lang, props)
	if err != nil {
		return nil, &Error{Kind: ErrRender, Cause: err}
	}

	id, err := d.deliver(ctx, req.Scene, lang, req.Email, tpl.Subject, html)
	if err != nil {
		return nil, err
	}

	return &Result{EmailID: id, Scene: req.Scene, Language: lang}, nil
}

// Signup handles the dedicated signup endpoint: the verification link is
// provisioned from the identity provider, never taken from the caller.
func (d *Dispatcher) Signup(ctx context.Context, req *models.SignupRequest) (*Result, error) {
	if !validate.ValidEmail(req.Email) {
		return nil, &Error{
			Kind:  ErrValidation,
			Cause: &validate.FieldError{Field: "email", Reason: "invalid email address"},
		}
	}

	lang := req.Language.OrDefault()

	tpl, err := d.resolveTemplate(ctx, models.SceneSignup, lang)
	if err != nil {
		return nil, err
	}

	redirect := req.RedirectTo
	if redirect == "" {
		redirect = strings.TrimRight(d.Cfg.AppURL, "/") + "/auth/callback"
	}

	link, err := d.Identity.GenerateLink(ctx, identity.LinkSignup, req.Email, redirect)
	if err != nil {
		return nil, &Error{Kind: ErrLinkGeneration, Cause: err}
	}

	props := d.baseProps()
	props.Name = req.Username
	props.VerifyURL = link + "?lang=" + string(lang)

	html, err := render.HTML(models.SceneSignup, lang, props)
	if err != nil {
		return nil, &Error{Kind: ErrRender, Cause: err}
	}

	id, err := d.deliver(ctx, models.SceneSignup, lang, req.Email, tpl.Subject, html)
	if err != nil {
		return nil, err
	}

	return &Result{EmailID: id, Scene: models.SceneSignup, Language: lang}, nil
}

// ResetPassword handles the dedicated reset endpoint. When the account
// does not exist the pipeline stops before link generation and reports
// success anyway: the caller must not be able to tell the two cases
// apart from the response. Nothing is logged to the audit store on that
// path.
func (d *Dispatcher) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) (*Result, error) {
	if !validate.ValidEmail(req.Email) {
		return nil, &Error{
			Kind:  ErrValidation,
			Cause: &validate.FieldError{Field: "email", Reason: "invalid email address"},
		}
	}

	lang := req.Language.OrDefault()

	exists, err := d.Identity.UserExists(ctx, req.Email)
	if err != nil {
		// A lookup failure collapses into the not-found path so the
		// response stays uniform.
		d.Log.Warn("account lookup failed during password reset",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		exists = false
	}
	if !exists {
		d.Log.Warn("password reset attempted for non-existent email",
			zap.String("email", req.Email),
		)
		return &Result{Scene: models.SceneResetPassword, Language: lang}, nil
	}

	tpl, err := d.resolveTemplate(ctx, models.SceneResetPassword, lang)
	if err != nil {
		return nil, err
	}

	redirect := req.RedirectTo
	if redirect == "" {
		redirect = strings.TrimRight(d.Cfg.AppURL, "/") + "/auth/reset-password"
	}

	link, err := d.Identity.GenerateLink(ctx, identity.LinkRecovery, req.Email, redirect)
	if err != nil {
		return nil, &Error{Kind: ErrLinkGeneration, Cause: err}
	}

	props := d.baseProps()
	props.ResetURL = link + "?lang=" + string(lang)

	html, err := render.HTML(models.SceneResetPassword, lang, props)
	if err != nil {
		return nil, &Error{Kind: ErrRender, Cause: err}
	}

	id, err := d.deliver(ctx, models.SceneResetPassword, lang, req.Email, tpl.Subject, html)
	if err != nil {
		return nil, err
	}

	return &Result{EmailID: id, Scene: models.SceneResetPassword, Language: lang}, nil
}

func (d *Dispatcher) resolveTemplate(ctx context.Context, scene models.Scene, lang models.Language) (*models.EmailTemplate, error) {
	tpl, err := d.Templates.GetTemplate(ctx, scene, lang)
	if errors.Is(err, db.ErrTemplateNotFound) {
		return nil, &Error{Kind: ErrTemplateNotFound, Cause: err}
	}
	if err != nil {
		return nil, &Error{Kind: ErrInternal, Cause: err}
	}
	return tpl, nil
}

func (d *Dispatcher) baseProps() render.Props {
	return render.Props{
		LogoURL:      d.Cfg.LogoURL,
		CompanyName:  d.Cfg.CompanyName,
		SupportEmail: d.Cfg.SupportEmail,
		DashboardURL: strings.TrimRight(d.Cfg.AppURL, "/") + "/dashboard",
	}
}

// deliver makes the single send attempt and records exactly one audit
// entry for it, success or failure. The audit write is awaited but its
// error never propagates.
func (d *Dispatcher) deliver(
	ctx context.Context,
	scene models.Scene,
	lang models.Language,
	to string,
	subject string,
	html string,
) (string, error) {

	id, err := d.Mailer.Send(ctx, delivery.Message{
		From:    d.Cfg.FromEmail,
		To:      to,
		Subject: subject,
		HTML:    html,
		ReplyTo: d.Cfg.SupportEmail,
	})

	if err != nil {
		metrics.EmailFailures.WithLabelValues(string(scene)).Inc()

		d.Log.Error("email send failed",
			zap.String("to", to),
			zap.String("scene", string(scene)),
			zap.Error(err),
		)

		d.Audit.Record(ctx, &models.EmailLogEntry{
			EmailTo:      to,
			Scene:        scene,
			Language:     lang,
			Status:       models.StatusFailed,
			ErrorMessage: err.Error(),
		})

		return "", &Error{Kind: ErrDelivery, Cause: err}
	}

	metrics.EmailsSent.WithLabelValues(string(scene)).Inc()

	d.Log.Info("email sent successfully",
		zap.String("to", to),
		zap.String("scene", string(scene)),
		zap.String("provider_email_id", id),
	)

	d.Audit.Record(ctx, &models.EmailLogEntry{
		EmailTo:         to,
		Scene:           scene,
		Language:        lang,
		Status:          models.StatusSent,
		ProviderEmailID: id,
	})

	return id, nil
}

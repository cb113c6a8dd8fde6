package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"SceneMail/internal/dispatch"
	"SceneMail/internal/models"
	"SceneMail/internal/validate"
)

type Handler struct {
	Dispatcher *dispatch.Dispatcher
	Log        *zap.Logger
}

// Router wires the three send endpoints plus the health probe. OPTIONS is
// answered by the CORS middleware; any other non-POST method gets a 405.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(corsMiddleware)

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed"})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/send", h.SendEmail)
	r.Post("/send-signup", h.SendSignup)
	r.Post("/send-reset-password", h.SendResetPassword)

	return r
}

type successBody struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EmailID   string `json:"emailId,omitempty"`
	Recipient string `json:"recipient,omitempty"`
	Email     string `json:"email,omitempty"`
	Timestamp string `json:"timestamp"`
}

type errorBody struct {
	Error    string            `json:"error"`
	Details  string            `json:"details,omitempty"`
	Scene    models.Scene      `json:"scene,omitempty"`
	Language models.Language   `json:"language,omitempty"`
	Required []string          `json:"required,omitempty"`
	Received map[string]string `json:"received,omitempty"`
}

// SendEmail is the generic multi-scene endpoint: the caller supplies the
// scene and any action URL in customData.
func (h *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req models.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid JSON body"})
		return
	}

	res, err := h.Dispatcher.Generic(r.Context(), &req)
	if err != nil {
		h.writeGenericError(w, &req, err)
		return
	}

	writeJSON(w, http.StatusOK, successBody{
		Success:   true,
		Message:   fmt.Sprintf("%s email sent successfully", res.Scene),
		EmailID:   res.EmailID,
		Recipient: req.Email,
		Timestamp: timestamp(),
	})
}

func (h *Handler) writeGenericError(w http.ResponseWriter, req *models.SendRequest, err error) {
	switch dispatch.KindOf(err) {

	case dispatch.ErrValidation:
		var fe *validate.FieldError
		if errors.As(err, &fe) {
			switch fe.Field {
			case "scene,email":
				writeJSON(w, http.StatusBadRequest, errorBody{
					Error:    "Missing required parameters",
					Required: []string{"scene", "email"},
					Received: map[string]string{
						"scene": string(req.Scene),
						"email": req.Email,
					},
				})
				return
			case "email":
				writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid email format"})
				return
			case "scene":
				writeJSON(w, http.StatusBadRequest, errorBody{
					Error: "Unknown scene",
					Scene: req.Scene,
				})
				return
			}
			writeJSON(w, http.StatusBadRequest, errorBody{Error: fe.Reason})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})

	case dispatch.ErrTemplateNotFound:
		writeJSON(w, http.StatusNotFound, errorBody{
			Error:    "Email template not found",
			Scene:    req.Scene,
			Language: req.Language.OrDefault(),
		})

	case dispatch.ErrRender:
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error:   "Failed to render email",
			Details: causeOf(err),
		})

	case dispatch.ErrDelivery:
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error:   "Failed to send email",
			Details: causeOf(err),
		})

	default:
		h.Log.Error("unexpected dispatch error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error:   "Internal server error",
			Details: causeOf(err),
		})
	}
}

// SendSignup is the dedicated signup endpoint; the verification link is
// generated server-side.
func (h *Handler) SendSignup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid JSON body"})
		return
	}

	res, err := h.Dispatcher.Signup(r.Context(), &req)
	if err != nil {
		h.writeDedicatedError(w, err, dedicatedMessages{
			link:     "Failed to generate verification link",
			delivery: "Failed to send verification email",
		}, false)
		return
	}

	writeJSON(w, http.StatusOK, successBody{
		Success:   true,
		Message:   signupSuccessMessage(res.Language),
		EmailID:   res.EmailID,
		Email:     req.Email,
		Timestamp: timestamp(),
	})
}

// SendResetPassword is the dedicated reset endpoint. Its success body is
// identical whether or not the account exists, and render failures carry
// no detail: the caller may be unauthenticated.
func (h *Handler) SendResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid JSON body"})
		return
	}

	res, err := h.Dispatcher.ResetPassword(r.Context(), &req)
	if err != nil {
		h.writeDedicatedError(w, err, dedicatedMessages{
			link:     "Failed to generate reset link",
			delivery: "Failed to send reset email",
		}, true)
		return
	}

	writeJSON(w, http.StatusOK, successBody{
		Success:   true,
		Message:   resetGenericMessage(res.Language),
		Timestamp: timestamp(),
	})
}

type dedicatedMessages struct {
	link     string
	delivery string
}

// writeDedicatedError maps pipeline failures for the two dedicated
// endpoints, where template absence is server misconfiguration (500, not
// 404). withholdRenderCause strips render diagnostics from the body.
func (h *Handler) writeDedicatedError(w http.ResponseWriter, err error, msgs dedicatedMessages, withholdRenderCause bool) {
	switch dispatch.KindOf(err) {

	case dispatch.ErrValidation:
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid email address"})

	case dispatch.ErrTemplateNotFound:
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Email template not found"})

	case dispatch.ErrLinkGeneration:
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error:   msgs.link,
			Details: causeOf(err),
		})

	case dispatch.ErrRender:
		body := errorBody{Error: "Failed to render email"}
		if !withholdRenderCause {
			body.Details = causeOf(err)
		}
		writeJSON(w, http.StatusInternalServerError, body)

	case dispatch.ErrDelivery:
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error:   msgs.delivery,
			Details: causeOf(err),
		})

	default:
		h.Log.Error("unexpected dispatch error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error:   "Internal server error",
			Details: causeOf(err),
		})
	}
}

func signupSuccessMessage(lang models.Language) string {
	if lang == models.LangZhCN {
		return "验证邮件已发送，请检查收件箱"
	}
	return "Verification email sent, please check your inbox"
}

func resetGenericMessage(lang models.Language) string {
	if lang == models.LangZhCN {
		return "如果该邮箱已注册，您将收到密码重置邮件。"
	}
	return "If the email is registered, you will receive a password reset email."
}

func causeOf(err error) string {
	var de *dispatch.Error
	if errors.As(err, &de) && de.Cause != nil {
		return de.Cause.Error()
	}
	return err.Error()
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

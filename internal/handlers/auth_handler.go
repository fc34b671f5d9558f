package handlers

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booking-web/internal/backend"
	"github.com/BruksfildServices01/booking-web/internal/i18n"
	"github.com/BruksfildServices01/booking-web/internal/middleware"
	"github.com/BruksfildServices01/booking-web/internal/session"
)

// ======================================================
// AUTH (both actor sides; the namespace comes from the
// request path, customer vs /appoint)
// ======================================================

type AuthHandler struct {
	backend *backend.Client
	store   *session.Store
	log     zerolog.Logger
}

func NewAuthHandler(bc *backend.Client, store *session.Store, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{backend: bc, store: store, log: log}
}

// --------- Requests ---------

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type signupForm struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Phone           string `form:"phone"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
	BusinessName    string `form:"business_name"`
}

// --------- Pages ---------

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageData(c, nil))
}

func (h *AuthHandler) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", pageData(c, nil))
}

// --------- Actions ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	_ = c.ShouldBind(&form)

	if fieldErrs := validateLogin(form, lang(c)); len(fieldErrs) > 0 {
		c.HTML(http.StatusOK, "login.html", pageData(c, gin.H{
			"FieldErrors": fieldErrs,
			"Email":       form.Email,
		}))
		return
	}

	resp, err := h.backend.Login(c.Request.Context(), backend.Credentials{
		Email:    strings.ToLower(strings.TrimSpace(form.Email)),
		Password: form.Password,
	})
	if err != nil {
		h.log.Warn().Err(err).Msg("login failed")
		c.HTML(http.StatusOK, "login.html", pageData(c, gin.H{
			"Alert": i18n.T(lang(c), "auth.failed"),
			"Email": form.Email,
		}))
		return
	}

	h.openSession(c, resp)
	c.Redirect(http.StatusSeeOther, dashboardPath(c))
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var form signupForm
	_ = c.ShouldBind(&form)

	if fieldErrs := validateSignup(form, lang(c)); len(fieldErrs) > 0 {
		c.HTML(http.StatusOK, "signup.html", pageData(c, gin.H{
			"FieldErrors": fieldErrs,
			"Form":        form,
		}))
		return
	}

	resp, err := h.backend.Register(c.Request.Context(), backend.Registration{
		Name:         strings.TrimSpace(form.Name),
		Email:        strings.ToLower(strings.TrimSpace(form.Email)),
		Phone:        strings.TrimSpace(form.Phone),
		Password:     form.Password,
		BusinessName: strings.TrimSpace(form.BusinessName),
	})
	if err != nil {
		h.log.Warn().Err(err).Msg("signup failed")
		c.HTML(http.StatusOK, "signup.html", pageData(c, gin.H{
			"Alert": i18n.T(lang(c), "error.generic"),
			"Form":  form,
		}))
		return
	}

	h.openSession(c, resp)
	c.Redirect(http.StatusSeeOther, dashboardPath(c))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	ns := c.GetString(middleware.ContextNamespace)
	sid := c.GetString(middleware.ContextSessionID)
	_ = h.store.Clear(c.Request.Context(), ns, sid)

	c.Redirect(http.StatusSeeOther, "/")
}

// --------- Helpers ---------

func (h *AuthHandler) openSession(c *gin.Context, resp *backend.AuthResponse) {
	ns := c.GetString(middleware.ContextNamespace)
	sid := c.GetString(middleware.ContextSessionID)

	actor := resp.Profile.Role
	if actor == "" {
		if ns == session.NamespaceAppoint {
			actor = "business"
		} else {
			actor = "customer"
		}
	}

	err := h.store.Put(c.Request.Context(), ns, sid, &session.Session{
		Token:   resp.Token,
		Actor:   actor,
		Profile: resp.Profile,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("store session failed")
	}
}

func dashboardPath(c *gin.Context) string {
	if c.GetString(middleware.ContextNamespace) == session.NamespaceAppoint {
		return "/appoint/dashboard"
	}
	return "/dashboard"
}

// Validation mirrors what the forms check before anything is submitted:
// required fields, email format, password confirmation match.

func validateLogin(form loginForm, lang string) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(form.Email) == "" {
		errs["email"] = i18n.T(lang, "auth.email_required")
	} else if !validEmail(form.Email) {
		errs["email"] = i18n.T(lang, "auth.email_invalid")
	}
	if form.Password == "" {
		errs["password"] = i18n.T(lang, "auth.password_required")
	}

	return errs
}

func validateSignup(form signupForm, lang string) map[string]string {
	errs := validateLogin(loginForm{Email: form.Email, Password: form.Password}, lang)

	if form.Password != "" && form.Password != form.ConfirmPassword {
		errs["confirm_password"] = i18n.T(lang, "auth.password_mismatch")
	}

	return errs
}

func validEmail(email string) bool {
	_, err := mail.ParseAddress(strings.TrimSpace(email))
	return err == nil
}

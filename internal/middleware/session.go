package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booking-web/internal/i18n"
	"github.com/BruksfildServices01/booking-web/internal/session"
)

const (
	ContextSession   = "session"
	ContextNamespace = "sessionNamespace"
	ContextSessionID = "sessionID"
	ContextVisitorID = "visitorID"
	ContextLang      = "lang"

	sessionCookie = "bw_sid"
	langCookie    = "bw_lang"

	cookieMaxAge = 365 * 24 * 60 * 60
)

// Routes where an unauthorized user may stay; redirecting from these would
// loop.
var authRoutes = map[string]bool{
	"/login":          true,
	"/signup":         true,
	"/appoint/login":  true,
	"/appoint/signup": true,
}

func IsAuthRoute(path string) bool {
	return authRoutes[strings.TrimRight(path, "/")]
}

// SessionMiddleware resolves the browser's session for the namespace the
// request path belongs to, plus its locale and anonymous visitor id. A
// stored token that has already expired is treated as no session at all;
// no point issuing a backend call that is guaranteed a 401.
func SessionMiddleware(store *session.Store, defaultLocale string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, cookieMaxAge, "/", "", false, true)
		}

		ns := session.NamespaceFromPath(c.Request.URL.Path)
		c.Set(ContextSessionID, sid)
		c.Set(ContextNamespace, ns)
		c.Set(ContextLang, resolveLang(c, defaultLocale))

		if visitorID, err := store.Visitor(c.Request.Context(), sid); err == nil {
			c.Set(ContextVisitorID, visitorID)
		} else {
			log.Warn().Err(err).Msg("visitor id lookup failed")
		}

		sess, err := store.Get(c.Request.Context(), ns, sid)
		if err == nil {
			if tokenExpired(sess.Token) {
				_ = store.Clear(c.Request.Context(), ns, sid)
			} else {
				c.Set(ContextSession, sess)
			}
		} else if err != session.ErrNoSession {
			log.Warn().Err(err).Msg("session lookup failed")
		}

		c.Next()
	}
}

// RequireSession guards dashboard routes. Without a live session the user
// is sent to signup, except on auth routes themselves.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextSession); ok {
			c.Next()
			return
		}

		if IsAuthRoute(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.Redirect(http.StatusFound, signupPath(c))
		c.Abort()
	}
}

// ForceLogout clears the acting namespace's session and redirects to
// signup. Handlers call it when the backend answers 401.
func ForceLogout(c *gin.Context, store *session.Store) {
	ns := c.GetString(ContextNamespace)
	sid := c.GetString(ContextSessionID)
	_ = store.Clear(c.Request.Context(), ns, sid)

	if IsAuthRoute(c.Request.URL.Path) {
		return
	}
	c.Redirect(http.StatusFound, signupPath(c))
	c.Abort()
}

// Current returns the resolved session, if any.
func Current(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

func signupPath(c *gin.Context) string {
	if c.GetString(ContextNamespace) == session.NamespaceAppoint {
		return "/appoint/signup"
	}
	return "/signup"
}

func resolveLang(c *gin.Context, def string) string {
	if lang := c.Query("lang"); lang != "" {
		lang = i18n.Normalize(lang)
		c.SetCookie(langCookie, lang, cookieMaxAge, "/", "", false, false)
		return lang
	}
	if lang, err := c.Cookie(langCookie); err == nil && lang != "" {
		return i18n.Normalize(lang)
	}
	return i18n.Normalize(def)
}

// tokenExpired inspects the stored backend token's exp claim without
// verifying the signature; the backend remains the verifier.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque tokens pass through; the backend decides.
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

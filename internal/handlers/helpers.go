package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-web/internal/middleware"
	"github.com/BruksfildServices01/booking-web/internal/session"
)

func lang(c *gin.Context) string {
	return c.GetString(middleware.ContextLang)
}

// token returns the acting session's bearer token, empty when anonymous.
func token(c *gin.Context) string {
	sess, ok := middleware.Current(c)
	if !ok {
		return ""
	}
	return sess.Token
}

func currentSession(c *gin.Context) *session.Session {
	sess, _ := middleware.Current(c)
	return sess
}

// pageData carries the fields every template expects, merged with
// page-specific values.
func pageData(c *gin.Context, extra gin.H) gin.H {
	data := gin.H{
		"Lang":      lang(c),
		"VisitorID": c.GetString(middleware.ContextVisitorID),
	}
	if sess := currentSession(c); sess != nil {
		data["Profile"] = sess.Profile
		data["Actor"] = sess.Actor
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

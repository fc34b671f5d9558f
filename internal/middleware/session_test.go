package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-web/internal/session"
)

func setupRouter(t *testing.T) (*gin.Engine, *session.Store) {
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store := session.NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	r := gin.New()
	r.Use(SessionMiddleware(store, "az", zerolog.Nop()))

	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }

	r.GET("/signup", ok)
	r.GET("/appoint/signup", ok)

	guarded := r.Group("/")
	guarded.Use(RequireSession())
	{
		guarded.GET("/dashboard", ok)
		guarded.GET("/appoint/dashboard", ok)
	}

	return r, store
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnonymousIsRedirectedToSignup(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/signup", w.Header().Get("Location"))
}

func TestAppointSideRedirectsToItsOwnSignup(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/appoint/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/appoint/signup", w.Header().Get("Location"))
}

func TestAuthRoutesNeverRedirect(t *testing.T) {
	r, _ := setupRouter(t)

	for _, path := range []string{"/signup", "/appoint/signup"} {
		w := get(r, path)
		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
	}
}

func TestLiveSessionPasses(t *testing.T) {
	r, store := setupRouter(t)

	require.NoError(t, store.Put(context.Background(), session.NamespaceCustomer, "sid-1",
		&session.Session{Token: "opaque-token", Actor: "customer"}))

	w := get(r, "/dashboard", &http.Cookie{Name: "bw_sid", Value: "sid-1"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExpiredTokenIsClearedAndRedirected(t *testing.T) {
	r, store := setupRouter(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	tok, err := expired.SignedString([]byte("whatever"))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, session.NamespaceCustomer, "sid-1",
		&session.Session{Token: tok, Actor: "customer"}))

	w := get(r, "/dashboard", &http.Cookie{Name: "bw_sid", Value: "sid-1"})
	assert.Equal(t, http.StatusFound, w.Code)

	_, err = store.Get(ctx, session.NamespaceCustomer, "sid-1")
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestSessionOfOtherNamespaceDoesNotLeak(t *testing.T) {
	r, store := setupRouter(t)

	// Logged in on the customer side only.
	require.NoError(t, store.Put(context.Background(), session.NamespaceCustomer, "sid-1",
		&session.Session{Token: "opaque-token", Actor: "customer"}))

	w := get(r, "/appoint/dashboard", &http.Cookie{Name: "bw_sid", Value: "sid-1"})
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestIsAuthRoute(t *testing.T) {
	assert.True(t, IsAuthRoute("/login"))
	assert.True(t, IsAuthRoute("/signup"))
	assert.True(t, IsAuthRoute("/appoint/login"))
	assert.True(t, IsAuthRoute("/appoint/signup/"))
	assert.False(t, IsAuthRoute("/dashboard"))
	assert.False(t, IsAuthRoute("/"))
}

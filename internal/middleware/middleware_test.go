package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSessions struct {
	session *domain.Session
}

func (f fakeSessions) Current() (domain.Session, bool) {
	if f.session == nil {
		return domain.Session{}, false
	}
	return *f.session, true
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newRouter(gate gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(quietLogger()))
	r.GET("/orders", gate, func(c *gin.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, session.UserID)
	})
	return r
}

func TestRequireSession_RedirectsToLogin(t *testing.T) {
	r := newRouter(RequireSession(fakeSessions{}, quietLogger()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders?page=2", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?next=%2Forders%3Fpage%3D2", w.Header().Get("Location"))

	var body struct {
		Status string
		Data   map[string]string
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Redirect", body.Status)
	assert.Equal(t, w.Header().Get("Location"), body.Data["redirect"])
}

func TestRequireSession_PassesSessionOn(t *testing.T) {
	r := newRouter(RequireSession(fakeSessions{session: &domain.Session{UserID: "7", Email: "a@b.co"}}, quietLogger()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7", w.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		name    string
		session *domain.Session
		want    int
	}{
		{"no session", nil, http.StatusSeeOther},
		{"customer", &domain.Session{UserID: "2", Email: "c@d.co"}, http.StatusForbidden},
		{"admin", &domain.Session{UserID: "1", Email: "admin@cyber.com", IsAdmin: true}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(RequireAdmin(fakeSessions{session: tc.session}, quietLogger()))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter(RequireSession(fakeSessions{session: &domain.Session{UserID: "7", Email: "a@b.co"}}, quietLogger()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

package middleware

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

const (
	RequestIDHeader = "X-Request-ID"
	sessionKey      = "session"
)

// SessionSource is the part of the session store the gates need.
type SessionSource interface {
	Current() (domain.Session, bool)
}

// RequestID keeps an incoming X-Request-ID or assigns a new one, and
// echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, reqID)
		c.Next()
	}
}

func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		entry := logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"remote_ip":  c.ClientIP(),
			"request_id": c.Writer.Header().Get(RequestIDHeader),
		})
		entry.Debug("Incoming request")

		c.Next()

		statusCode := c.Writer.Status()
		completed := entry.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  time.Since(startTime).Milliseconds(),
		})

		switch {
		case len(c.Errors) > 0:
			completed.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		case statusCode >= 500:
			completed.Error("Request completed with server error")
		case statusCode >= 400:
			completed.Warn("Request completed with client error")
		default:
			completed.Info("Request completed successfully")
		}
	}
}

// RequireSession sends visitors without a session to the login page and
// back to the requested page afterwards.
func RequireSession(sessions SessionSource, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessions.Current()
		if !ok {
			logger.Infof("Middleware: No session for %s, redirecting to login", c.Request.URL.Path)
			redirectToLogin(c)
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequireAdmin behaves like RequireSession and additionally refuses
// sessions without the admin flag.
func RequireAdmin(sessions SessionSource, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessions.Current()
		if !ok {
			logger.Infof("Middleware: No session for admin path %s, redirecting to login", c.Request.URL.Path)
			redirectToLogin(c)
			return
		}
		if !session.IsAdmin {
			logger.Warnf("Middleware: User %s is not an admin, denying %s", session.UserID, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"Status":  "Fail",
				"Message": domain.ErrNotAdmin.Error(),
			})
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// SessionFrom returns the session a gate stored on the context.
func SessionFrom(c *gin.Context) (domain.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return domain.Session{}, false
	}
	session, ok := v.(domain.Session)
	return session, ok
}

func redirectToLogin(c *gin.Context) {
	target := "/login?next=" + url.QueryEscape(c.Request.URL.RequestURI())
	c.Header("Location", target)
	c.AbortWithStatusJSON(http.StatusSeeOther, gin.H{
		"Status":  "Redirect",
		"Message": domain.ErrNotAuthenticated.Error(),
		"Data":    gin.H{"redirect": target},
	})
}

package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

type AuthHandler struct {
	useCase domain.AuthUseCase
	log     *logrus.Logger
}

func NewAuthHandler(uc domain.AuthUseCase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/verify-email", h.VerifyEmail)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", h.CurrentSession)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var creds domain.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		h.log.Warnf("Failed to bind JSON for login: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	session, err := h.useCase.Login(c.Request.Context(), creds)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), userMessage(err))
		return
	}
	SuccessResponse(c, http.StatusOK, "Logged in successfully", gin.H{
		"session":  session,
		"redirect": afterLogin(c.Query("next"), session),
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var reg domain.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		h.log.Warnf("Failed to bind JSON for register: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	session, err := h.useCase.Register(c.Request.Context(), reg)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), userMessage(err))
		return
	}
	SuccessResponse(c, http.StatusCreated, "Account created. Check your email to verify your address.", gin.H{
		"session":  session,
		"redirect": afterLogin(c.Query("next"), session),
	})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var body struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.useCase.VerifyEmail(c.Request.Context(), body.Token)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), userMessage(err))
		return
	}
	SuccessResponse(c, http.StatusOK, "Your email has been verified successfully!", gin.H{
		"user":     user,
		"redirect": "/login",
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.useCase.Logout()
	SuccessResponse(c, http.StatusOK, "Logged out", gin.H{"redirect": "/"})
}

func (h *AuthHandler) CurrentSession(c *gin.Context) {
	session, ok := h.useCase.CurrentSession()
	if !ok {
		SuccessResponse(c, http.StatusOK, "No active session", gin.H{"authenticated": false})
		return
	}
	SuccessResponse(c, http.StatusOK, "Session retrieved successfully", gin.H{
		"authenticated": true,
		"session":       session,
	})
}

// afterLogin returns next when it is a local path, otherwise the landing
// page for the session's role.
func afterLogin(next string, session domain.Session) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	if session.IsAdmin {
		return "/admin"
	}
	return "/"
}

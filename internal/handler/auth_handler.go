package handler

import (
	"net/http"

	"hospital-admin-backend/internal/service"
	"hospital-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie names the cookie carrying the opaque session token.
const SessionCookie = "session_id"

type AuthHandler struct {
	authService  *service.AuthService
	cookieMaxAge int
	cookieSecure bool
}

func NewAuthHandler(authService *service.AuthService, cookieMaxAge int, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handle dispatches /auth by the action query selector. Anything other than
// a POST with a known action is an invalid request, reported in-band.
func (h *AuthHandler) Handle(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		utils.ErrorResponse(c, "Invalid request")
		return
	}

	switch c.Query("action") {
	case "register":
		h.register(c)
	case "login":
		h.login(c)
	case "logout":
		h.logout(c)
	default:
		utils.ErrorResponse(c, "Invalid request")
	}
}

func (h *AuthHandler) register(c *gin.Context) {
	var req registerRequest
	// An unreadable body leaves the fields empty and fails the service's
	// presence validation with the contract message.
	_ = c.ShouldBindJSON(&req)

	err := h.authService.Register(service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		UserType: req.UserType,
		Name:     req.Name,
	})
	if err != nil {
		utils.ErrorResponse(c, err.Error())
		return
	}

	utils.MessageResponse(c, "User registered successfully")
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	_ = c.ShouldBindJSON(&req)

	// Carry the inbound cookie so login regenerates rather than stacks
	// sessions.
	priorToken, _ := c.Cookie(SessionCookie)

	result, err := h.authService.Login(req.Username, req.Password, priorToken)
	if err != nil {
		utils.ErrorResponse(c, err.Error())
		return
	}

	h.setSessionCookie(c, result.Token, h.cookieMaxAge)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    result.User,
	})
}

func (h *AuthHandler) logout(c *gin.Context) {
	token, _ := c.Cookie(SessionCookie)
	h.authService.Logout(token)
	h.setSessionCookie(c, "", -1)
	utils.MessageResponse(c, "Logged out successfully")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", h.cookieSecure, true)
}

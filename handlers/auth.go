package handlers

import (
	"net/http"

	"cabtour/middleware"
	"cabtour/services/auth"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves customer OTP sign-in and admin login.
type AuthHandler struct {
	Auth auth.AuthService
}

func NewAuthHandler(a auth.AuthService) *AuthHandler {
	return &AuthHandler{Auth: a}
}

func loginMeta(c *gin.Context) auth.LoginMeta {
	return auth.LoginMeta{IP: middleware.ClientIP(c), UserAgent: c.Request.UserAgent()}
}

// RequestOTPHandler handles POST /api/auth/otp/request.
func (h *AuthHandler) RequestOTPHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	issued, err := h.Auth.RequestOTP(c.Request.Context(), req.Email)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "A sign-in code has been sent to your email",
		"email":      issued.Email,
		"expiresIn":  issued.ExpiresIn,
		"resendWait": issued.ResendWait,
	})
}

// VerifyOTPHandler handles POST /api/auth/otp/verify.
func (h *AuthHandler) VerifyOTPHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		OTP   string `json:"otp" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.Auth.VerifyOTP(c.Request.Context(), req.Email, req.OTP, loginMeta(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AdminLoginHandler handles POST /api/admin/login.
func (h *AuthHandler) AdminLoginHandler(c *gin.Context) {
	var req struct {
		AdminID  string `json:"adminId" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.Auth.AdminLogin(c.Request.Context(), req.AdminID, req.Password, loginMeta(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

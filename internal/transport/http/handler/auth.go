package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postline/internal/app"
	"postline/internal/model"
	"postline/internal/transport/http/middleware"
	"postline/internal/transport/http/response"
)

type AuthHandler struct {
	userService *app.UserService
}

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=55"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Token     string `json:"token" binding:"required"`
	Password1 string `json:"password_1" binding:"required"`
	Password2 string `json:"password_2" binding:"required"`
}

func NewAuthHandler(userService *app.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) AccessToken(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.userService.Login(req.Username, req.Password)
	if err != nil {
		writeServiceError(c, err, "login failed")
		return
	}

	response.OK(c, gin.H{
		"access_token": result.Token,
		"token_type":   "Bearer",
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	err := h.userService.ResetPassword(c.Request.Context(), req.Token, req.Password1, req.Password2)
	if err != nil {
		writeServiceError(c, err, "reset password failed")
		return
	}

	response.OK(c, model.StatusMessage{Status: true, Message: "The password has been reset!"})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	if err := h.userService.Logout(c.Request.Context(), userID); err != nil {
		writeServiceError(c, err, "logout failed")
		return
	}

	response.OK(c, model.StatusMessage{Status: true, Message: "Logged out."})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"postline/internal/app"
	"postline/internal/model"
	"postline/internal/transport/http/middleware"
	"postline/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
}

type RegisterRequest struct {
	Username  string  `json:"username" binding:"required,max=55"`
	Password1 string  `json:"password_1" binding:"required"`
	Password2 string  `json:"password_2" binding:"required"`
	Biography *string `json:"biography" binding:"omitempty,max=200"`
}

type UserPatchRequest struct {
	Username  *string `json:"username" binding:"omitempty,max=55"`
	Biography *string `json:"biography" binding:"omitempty,max=200"`
}

func NewUserHandler(userService *app.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	user, err := h.userService.Register(app.RegisterInput{
		Username:  req.Username,
		Password1: req.Password1,
		Password2: req.Password2,
		Biography: req.Biography,
	})
	if err != nil {
		writeServiceError(c, err, "register failed")
		return
	}

	response.Created(c, user.Read())
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid user id")
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		writeServiceError(c, err, "fetch user failed")
		return
	}

	response.OK(c, user.Read())
}

func (h *UserHandler) Patch(c *gin.Context) {
	actingID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	targetID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid user id")
		return
	}

	var req UserPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	user, err := h.userService.Patch(actingID, targetID, app.UserPatch{
		Username:  req.Username,
		Biography: req.Biography,
	})
	if err != nil {
		writeServiceError(c, err, "patch user failed")
		return
	}

	response.OK(c, user.Read())
}

func (h *UserHandler) Delete(c *gin.Context) {
	actingID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	targetID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid user id")
		return
	}

	if err := h.userService.Delete(actingID, targetID); err != nil {
		writeServiceError(c, err, "delete user failed")
		return
	}

	response.OK(c, model.StatusMessage{Status: true, Message: "The user has been deleted!"})
}

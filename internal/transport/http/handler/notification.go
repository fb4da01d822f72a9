package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"postline/internal/app"
	"postline/internal/transport/http/middleware"
	"postline/internal/transport/http/response"
)

type NotificationHandler struct {
	notificationService *app.NotificationService
}

func NewNotificationHandler(notificationService *app.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	notifications, err := h.notificationService.List(userID, limit)
	if err != nil {
		writeServiceError(c, err, "list notifications failed")
		return
	}

	response.OK(c, notifications)
}

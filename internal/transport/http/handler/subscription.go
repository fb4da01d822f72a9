package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postline/internal/app"
	"postline/internal/model"
	"postline/internal/transport/http/middleware"
	"postline/internal/transport/http/response"
)

type SubscriptionHandler struct {
	subscriptionService *app.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *app.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) Add(c *gin.Context) {
	actingID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	sub, err := h.subscriptionService.Subscribe(actingID, c.Param("username"))
	if err != nil {
		writeServiceError(c, err, "add subscription failed")
		return
	}

	response.Created(c, sub)
}

func (h *SubscriptionHandler) Remove(c *gin.Context) {
	actingID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	if err := h.subscriptionService.Unsubscribe(actingID, c.Param("username")); err != nil {
		writeServiceError(c, err, "remove subscription failed")
		return
	}

	response.OK(c, model.StatusMessage{Status: true, Message: "The subscription has been removed!"})
}

func (h *SubscriptionHandler) List(c *gin.Context) {
	actingID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	subs, err := h.subscriptionService.List(actingID)
	if err != nil {
		writeServiceError(c, err, "list subscriptions failed")
		return
	}

	response.OK(c, subs)
}

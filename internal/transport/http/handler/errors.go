package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"postline/internal/app"
	"postline/internal/pkg/password"
	"postline/internal/transport/http/response"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Uniqueness and limit violations are served as 403 like the rest of the
// API's business refusals; self-subscription is a 409.
func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, password.ErrWeakPassword):
		response.Error(c, http.StatusBadRequest, response.CodeWeakPassword, err.Error())
	case errors.Is(err, app.ErrInvalidCredential):
		response.Error(c, http.StatusUnauthorized, response.CodeInvalidCredentials, err.Error())
	case errors.Is(err, app.ErrForbidden):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
	case errors.Is(err, app.ErrUserNotFound), errors.Is(err, app.ErrPostNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, app.ErrUsernameExists):
		response.Error(c, http.StatusForbidden, response.CodeUsernameExists, err.Error())
	case errors.Is(err, app.ErrPostTitleExists):
		response.Error(c, http.StatusForbidden, response.CodePostTitleExists, err.Error())
	case errors.Is(err, app.ErrSubscriptionExists):
		response.Error(c, http.StatusForbidden, response.CodeSubscriptionExists, err.Error())
	case errors.Is(err, app.ErrSubscriptionLimit):
		response.Error(c, http.StatusForbidden, response.CodeSubscriptionLimit, err.Error())
	case errors.Is(err, app.ErrSelfSubscription):
		response.Error(c, http.StatusConflict, response.CodeSelfSubscription, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, fallback)
	}
}

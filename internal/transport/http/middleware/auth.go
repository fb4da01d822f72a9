package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"postline/internal/model"
	"postline/internal/pkg/jwtutil"
	"postline/internal/transport/http/response"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// AuthDirectory resolves a token subject to a live user. A token whose
// user has been deleted since issuance must not authenticate.
type AuthDirectory interface {
	GetAuth(id uuid.UUID) (*model.UserAuth, error)
}

type TokenRevoker interface {
	IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error)
}

// AuthBearer gates every protected route: missing or undecodable tokens,
// revoked tokens and tokens for deleted users are all rejected before any
// handler runs.
func AuthBearer(secret string, directory AuthDirectory, revoker TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Error(c, 401, response.CodeUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Error(c, 401, response.CodeUnauthorized, "invalid authorization scheme")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Error(c, 401, response.CodeUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			response.Error(c, 401, response.CodeUnauthorized, "invalid token subject")
			c.Abort()
			return
		}

		if revoker != nil && claims.IssuedAt != nil {
			revoked, err := revoker.IsRevoked(c.Request.Context(), claims.Subject, claims.IssuedAt.Time)
			if err == nil && revoked {
				response.Error(c, 401, response.CodeUnauthorized, "token has been revoked")
				c.Abort()
				return
			}
		}

		auth, err := directory.GetAuth(userID)
		if err != nil || auth == nil {
			response.Error(c, 401, response.CodeUnauthorized, "user not found")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, auth.UUID)
		c.Set(ContextUsernameKey, auth.Username)
		c.Next()
	}
}

// CurrentUserID reads the authenticated identity the middleware stored.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"protoparts/internal/core/apperror"
	appctx "protoparts/internal/core/context"
)

// JWTValidator turns a bearer token into the caller's identity.
type JWTValidator interface {
	ValidateToken(tokenString string) (*appctx.UserContext, error)
}

// Auth rejects requests without a valid bearer token and stores the
// caller in the request context.
func Auth(validator JWTValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err == nil {
			var user *appctx.UserContext
			if user, err = validator.ValidateToken(token); err == nil {
				c.Request = c.Request.WithContext(appctx.WithUser(c.Request.Context(), user))
				c.Next()
				return
			}
			err = apperror.NewUnauthorized("invalid token").WithCause(err)
		}

		_ = c.Error(err)
		c.Abort()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", apperror.NewUnauthorized("missing authorization header")
	}
	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", apperror.NewUnauthorized("invalid authorization header format")
	}
	return token, nil
}

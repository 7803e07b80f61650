package middleware

import (
	"storefront/internal/auth"
	"storefront/internal/logger"
	"storefront/pkg/apperrors"
	"storefront/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - необязательная аутентификация по bearer-токену.
// Без заголовка запрос идет дальше анонимно: защищенные процедуры сами вернут UNAUTHENTICATED.
// Невалидный токен отклоняется сразу.
func AuthMiddleware(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenStr, ok := auth.BearerToken(header)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthenticatedError("Authorization header must be a bearer token"))
			return
		}

		caller, err := verifier.Verify(tokenStr)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "invalid session token", "error", err.Error())
			apperrors.HandleError(c, apperrors.NewUnauthenticatedError("Invalid session token").WithError(err))
			return
		}

		c.Set(string(contextkeys.CallerContextKey), caller)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), caller.UserID))
		c.Next()
	}
}

// GetCaller извлекает вызывающего из контекста; nil для анонимного запроса
func GetCaller(c *gin.Context) *auth.Caller {
	val, exists := c.Get(string(contextkeys.CallerContextKey))
	if !exists {
		return nil
	}

	caller, ok := val.(*auth.Caller)
	if !ok {
		return nil
	}
	return caller
}

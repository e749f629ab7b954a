package middleware

import (
	"github.com/gin-gonic/gin"

	"protoparts/internal/core/apperror"
	appctx "protoparts/internal/core/context"
	"protoparts/pkg/logger"
)

// ErrorHandler renders the last error attached to the context.
// Internal errors are logged in full and answered with a generic body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		ctx := c.Request.Context()
		err := c.Errors.Last().Err

		appErr, ok := apperror.AsAppError(err)
		if !ok {
			appErr = apperror.NewInternal(err)
		}

		if appErr.Code == apperror.CodeInternal {
			logger.Error(ctx, "unhandled error", "error", appErr.Err, "route", c.FullPath())
			appErr = apperror.New(apperror.CodeInternal, "Internal server error").
				WithDetail("request_id", appctx.GetRequestID(ctx))
		} else if appErr.Err != nil {
			logger.Warn(ctx, "request error", "code", appErr.Code, "cause", appErr.Err)
		}

		c.JSON(appErr.HTTPStatus, appErr)
	}
}

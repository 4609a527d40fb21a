package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-me/internal/model"
	"todo-me/pkg/log"
)

// RequestID propagates the caller's X-Request-ID, or a fresh uuid, into the request
// context and the response header, and logs the request once it completes.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)

		ctx := context.WithValue(c.Request.Context(), log.RequestIDKey, id)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()
		m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// Scope resolves the acting user from X-User-ID. There is no authentication; a missing
// header acts as model.DefaultUserID.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			userID = model.DefaultUserID
		}
		ctx := c.Request.Context()
		requestID, _ := ctx.Value(log.RequestIDKey).(string)

		sc := model.Scope{UserID: userID, RequestID: requestID}
		c.Request = c.Request.WithContext(model.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

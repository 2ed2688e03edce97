package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/backend"
	"github.com/Freeeeeet/skillbridge_gateway/internal/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ctxSessionID = "sessionID"
	ctxSession   = "session"
)

// authRequired проверяет гейтвейный JWT, поднимает сессию из redis и
// прокидывает токен бэкенда в контекст запроса. Дальше по цепочке
// backend.Client сам подставит его в Authorization.
func (ctl *Controller) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization required"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		sessionID, err := session.ParseSessionID([]byte(ctl.jwtSecret), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}

		sess, err := ctl.sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			if session.IsNotFound(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Session expired, please sign in again"})
				return
			}
			ctl.logger.Error("Failed to load session", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		c.Set(ctxSessionID, sessionID)
		c.Set(ctxSession, sess)
		c.Request = c.Request.WithContext(backend.WithToken(c.Request.Context(), sess.BackendToken))
		c.Next()
	}
}

// requireRole пускает дальше только пользователей с нужной ролью
func (ctl *Controller) requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		if sess == nil || sess.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// requestLogger логирует каждый запрос с латентностью
func (ctl *Controller) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctl.logger.Info("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func currentSession(c *gin.Context) *session.Session {
	val, ok := c.Get(ctxSession)
	if !ok {
		return nil
	}
	sess, ok := val.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

func currentSessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

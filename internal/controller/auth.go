package controller

import (
	"net/http"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// handleSignIn аутентифицирует пользователя через бэкенд и создаёт
// гейтвейную сессию: токен бэкенда остаётся в redis, наружу уходит
// наш собственный JWT.
func (ctl *Controller) handleSignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	user, backendToken, err := ctl.backend.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	sessionID := uuid.NewString()
	sess := session.Session{
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Role:         user.Role,
		BackendToken: backendToken,
		CreatedAt:    time.Now(),
	}
	if err := ctl.sessions.Save(c.Request.Context(), sessionID, sess); err != nil {
		ctl.logger.Error("Failed to save session", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := session.GenerateToken([]byte(ctl.jwtSecret), sessionID, ctl.sessionTTL)
	if err != nil {
		ctl.logger.Error("Failed to issue token", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	ctl.logger.Info("User signed in",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role),
	)
	respondOK(c, gin.H{"token": token, "user": user})
}

// handleSignOut удаляет сессию. Токен бэкенда умирает вместе с ней.
func (ctl *Controller) handleSignOut(c *gin.Context) {
	sessionID := currentSessionID(c)
	if err := ctl.sessions.Delete(c.Request.Context(), sessionID); err != nil {
		ctl.logger.Error("Failed to delete session", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondOK(c, gin.H{"signedOut": true})
}

// handleMe возвращает identity текущей сессии
func (ctl *Controller) handleMe(c *gin.Context) {
	sess := currentSession(c)
	respondOK(c, gin.H{
		"userId": sess.UserID,
		"email":  sess.Email,
		"name":   sess.Name,
		"role":   sess.Role,
	})
}

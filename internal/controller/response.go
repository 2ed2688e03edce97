package controller

import (
	"errors"
	"net/http"

	"github.com/Freeeeeet/skillbridge_gateway/internal/backend"
	"github.com/Freeeeeet/skillbridge_gateway/internal/schedule"
	"github.com/Freeeeeet/skillbridge_gateway/internal/service"
	"github.com/gin-gonic/gin"
)

// Все ответы гейтвея идут в одном конверте: success + data либо message.
// Тот же формат использует бэкенд, фронту не нужно различать источники.

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondServiceError раскладывает ошибки сервисного слоя по статусам.
// Тексты локальной валидации и сообщения бэкенда уходят наружу дословно.
func respondServiceError(c *gin.Context, err error) {
	if schedule.IsValidation(err) {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var remote *backend.RemoteError
	if errors.As(err, &remote) {
		respondError(c, remote.Status, remote.Message)
		return
	}

	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBookingNotCompleted),
		errors.Is(err, service.ErrAlreadyReviewed),
		errors.Is(err, service.ErrBadRating):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

package controller

import (
	"errors"
	"net/http"

	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
	"github.com/Freeeeeet/skillbridge_gateway/internal/service"
	"github.com/gin-gonic/gin"
)

type reviewRequest struct {
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// handleSubmitReview отправляет отзыв. Если бэкенд сообщил о
// дубликате, в ответе вместе с ошибкой уходит свежий список
// бронирований, чтобы клиент сразу показал актуальное состояние.
func (ctl *Controller) handleSubmitReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BookingID == "" {
		respondError(c, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	sess := currentSession(c)
	review, refreshed, err := ctl.reviews.Submit(c.Request.Context(), sess.UserID, model.ReviewRequest{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		if errors.Is(err, service.ErrAlreadyReviewed) && refreshed != nil {
			c.JSON(http.StatusConflict, gin.H{
				"success":  false,
				"message":  err.Error(),
				"bookings": refreshed,
			})
			return
		}
		respondServiceError(c, err)
		return
	}
	respondCreated(c, review)
}

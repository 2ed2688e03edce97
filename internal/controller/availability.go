package controller

import (
	"net/http"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/render"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleGetAvailability профиль репетитора с разобранными слотами
func (ctl *Controller) handleGetAvailability(c *gin.Context) {
	sess := currentSession(c)
	profile, slots, err := ctl.availability.Load(c.Request.Context(), sess.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"profile": profile, "slots": slots})
}

type addSlotRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// handleAddSlot добавляет окно доступности. Ошибки валидации уходят
// клиенту дословно, профиль в бэкенде при этом не трогается.
func (ctl *Controller) handleAddSlot(c *gin.Context) {
	var req addSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	sess := currentSession(c)
	slots, err := ctl.availability.AddSlot(c.Request.Context(), sess.UserID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, slots)
}

// handleRemoveSlot убирает окно по ID, неизвестный ID - no-op
func (ctl *Controller) handleRemoveSlot(c *gin.Context) {
	sess := currentSession(c)
	slots, err := ctl.availability.RemoveSlot(c.Request.Context(), sess.UserID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, slots)
}

// handleWeekImage PNG-сетка недели: доступность плюс бронирования.
// Параметр date задаёт любую дату внутри недели, по умолчанию сегодня.
func (ctl *Controller) handleWeekImage(c *gin.Context) {
	sess := currentSession(c)

	anchor := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid date")
			return
		}
		anchor = parsed
	}

	profile, slots, err := ctl.availability.Load(c.Request.Context(), sess.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	bookings, err := ctl.backend.FetchTutorBookings(c.Request.Context(), profile.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	png, err := render.WeekImage(anchor, slots, bookings)
	if err != nil {
		ctl.logger.Error("Failed to render week image", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

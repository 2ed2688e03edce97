package controller

import (
	"net/http"

	"github.com/Freeeeeet/skillbridge_gateway/internal/render"
	"github.com/gin-gonic/gin"
)

type flowSelectRequest struct {
	TutorID   string `json:"tutorId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// handleFlowSelectDate шаг 1: выбор даты. Смена даты сбрасывает
// выбранные времена.
func (ctl *Controller) handleFlowSelectDate(c *gin.Context) {
	var req flowSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TutorID == "" || req.Date == "" {
		respondError(c, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	flow := ctl.bookings.SelectDate(currentSessionID(c), req.TutorID, req.Date)
	respondOK(c, flow)
}

// handleFlowSelectStart шаг 2: выбор начала. Смена начала сбрасывает
// конец.
func (ctl *Controller) handleFlowSelectStart(c *gin.Context) {
	var req flowSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TutorID == "" || req.StartTime == "" {
		respondError(c, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	flow, err := ctl.bookings.SelectStart(currentSessionID(c), req.TutorID, req.StartTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, flow)
}

// handleFlowSelectEnd шаг 3: выбор конца, окно валидируется целиком
func (ctl *Controller) handleFlowSelectEnd(c *gin.Context) {
	var req flowSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TutorID == "" || req.EndTime == "" {
		respondError(c, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	flow, err := ctl.bookings.SelectEnd(currentSessionID(c), req.TutorID, req.EndTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, flow)
}

// handleFlowState текущее состояние флоу сессии
func (ctl *Controller) handleFlowState(c *gin.Context) {
	flow, ok := ctl.bookings.Flows().Get(currentSessionID(c))
	if !ok {
		respondOK(c, nil)
		return
	}
	respondOK(c, flow)
}

// handleEligibleEndTimes времена каталога, допустимые как конец окна
func (ctl *Controller) handleEligibleEndTimes(c *gin.Context) {
	respondOK(c, ctl.bookings.EligibleEndTimes(c.Query("start")))
}

// handleQuote длительность и цена готового окна плюс строка для
// экрана подтверждения
func (ctl *Controller) handleQuote(c *gin.Context) {
	window, err := ctl.bookings.Quote(c.Request.Context(), currentSessionID(c), c.Query("tutorId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"window": window, "summary": render.BookingSummary(*window)})
}

// handleSubmitBooking отправляет готовое окно в бэкенд
func (ctl *Controller) handleSubmitBooking(c *gin.Context) {
	sess := currentSession(c)
	booking, err := ctl.bookings.Submit(c.Request.Context(), currentSessionID(c), sess.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, booking)
}

// handleStudentBookings бронирования студента: будущие и прошедшие
func (ctl *Controller) handleStudentBookings(c *gin.Context) {
	sess := currentSession(c)
	upcoming, past, err := ctl.bookings.StudentBookings(c.Request.Context(), sess.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"upcoming": upcoming, "past": past})
}

// handleCancelBooking отмена бронирования
func (ctl *Controller) handleCancelBooking(c *gin.Context) {
	if err := ctl.bookings.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"cancelled": true})
}

// handleTutorBookings занятия репетитора
func (ctl *Controller) handleTutorBookings(c *gin.Context) {
	sess := currentSession(c)
	profile, _, err := ctl.availability.Load(c.Request.Context(), sess.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	bookings, err := ctl.backend.FetchTutorBookings(c.Request.Context(), profile.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, bookings)
}

// handleCompleteBooking пометить занятие завершённым
func (ctl *Controller) handleCompleteBooking(c *gin.Context) {
	booking, err := ctl.bookings.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, booking)
}

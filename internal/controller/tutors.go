package controller

import (
	"net/http"
	"strconv"

	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
	"github.com/gin-gonic/gin"
)

// handleListTutors каталог репетиторов, фильтры пробрасываются в бэкенд
func (ctl *Controller) handleListTutors(c *gin.Context) {
	filters := model.TutorFilters{
		CategoryID: c.Query("categoryId"),
		SubjectID:  c.Query("subjectId"),
		SortBy:     c.Query("sortBy"),
	}
	if v := c.Query("minRating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MinRating = rating
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MaxPrice = price
		}
	}

	tutors, err := ctl.backend.FetchTutors(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, tutors)
}

// handleGetTutor страница репетитора
func (ctl *Controller) handleGetTutor(c *gin.Context) {
	tutor, err := ctl.backend.FetchTutorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, tutor)
}

// handleListCategories таксономия категорий с предметами
func (ctl *Controller) handleListCategories(c *gin.Context) {
	categories, err := ctl.backend.FetchCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, categories)
}

type profileUpdateRequest struct {
	Bio          *string  `json:"bio"`
	PricePerHour *float64 `json:"pricePerHour"`
}

// handleUpdateProfile правка полей профиля репетитора, кроме
// availability - её меняют только slot-эндпоинты
func (ctl *Controller) handleUpdateProfile(c *gin.Context) {
	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	sess := currentSession(c)
	tutor, err := ctl.backend.UpdateTutorProfile(c.Request.Context(), model.TutorProfileUpdate{
		UserID:       sess.UserID,
		Bio:          req.Bio,
		PricePerHour: req.PricePerHour,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, tutor)
}

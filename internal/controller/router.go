package controller

import (
	"net/http"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router собирает gin-движок со всеми маршрутами гейтвея
func (ctl *Controller) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ctl.requestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Публичная часть: каталог и вход
	api.POST("/auth/sign-in", ctl.handleSignIn)
	api.GET("/tutors", ctl.handleListTutors)
	api.GET("/tutors/:id", ctl.handleGetTutor)
	api.GET("/categories", ctl.handleListCategories)

	// Всё остальное только с сессией
	authed := api.Group("")
	authed.Use(ctl.authRequired())
	{
		authed.POST("/auth/sign-out", ctl.handleSignOut)
		authed.GET("/me", ctl.handleMe)

		// Booking-флоу студента
		authed.POST("/bookings/flow/date", ctl.handleFlowSelectDate)
		authed.POST("/bookings/flow/start", ctl.handleFlowSelectStart)
		authed.POST("/bookings/flow/end", ctl.handleFlowSelectEnd)
		authed.GET("/bookings/flow", ctl.handleFlowState)
		authed.GET("/bookings/end-times", ctl.handleEligibleEndTimes)
		authed.GET("/bookings/quote", ctl.handleQuote)
		authed.POST("/bookings", ctl.handleSubmitBooking)
		authed.GET("/bookings", ctl.handleStudentBookings)
		authed.PATCH("/bookings/:id/cancel", ctl.handleCancelBooking)

		authed.POST("/reviews", ctl.handleSubmitReview)

		// Кабинет репетитора
		tutor := authed.Group("/tutor")
		tutor.Use(ctl.requireRole(model.RoleTutor))
		{
			tutor.GET("/availability", ctl.handleGetAvailability)
			tutor.POST("/availability/slots", ctl.handleAddSlot)
			tutor.DELETE("/availability/slots/:id", ctl.handleRemoveSlot)
			tutor.GET("/availability/week.png", ctl.handleWeekImage)
			tutor.GET("/bookings", ctl.handleTutorBookings)
			tutor.PATCH("/bookings/:id/complete", ctl.handleCompleteBooking)
			tutor.PATCH("/profile", ctl.handleUpdateProfile)
		}
	}

	return r
}

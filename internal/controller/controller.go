package controller

import (
	"context"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/backend"
	"github.com/Freeeeeet/skillbridge_gateway/internal/service"
	"github.com/Freeeeeet/skillbridge_gateway/internal/session"
	"go.uber.org/zap"
)

// SessionStore то, что контроллеру нужно от хранилища сессий
type SessionStore interface {
	Save(ctx context.Context, sessionID string, sess session.Session) error
	Get(ctx context.Context, sessionID string) (*session.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// Controller HTTP-слой гейтвея: маршруты, auth-мост и конверт ответов.
// Вся доменная логика живёт в сервисах, тут только транспорт.
type Controller struct {
	backend      *backend.Client
	sessions     SessionStore
	availability *service.AvailabilityService
	bookings     *service.BookingService
	reviews      *service.ReviewService
	jwtSecret    string
	sessionTTL   time.Duration
	logger       *zap.Logger
}

func NewController(
	backendClient *backend.Client,
	sessions SessionStore,
	availabilityService *service.AvailabilityService,
	bookingService *service.BookingService,
	reviewService *service.ReviewService,
	jwtSecret string,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		backend:      backendClient,
		sessions:     sessions,
		availability: availabilityService,
		bookings:     bookingService,
		reviews:      reviewService,
		jwtSecret:    jwtSecret,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

package service

import (
	"context"
	"errors"

	"github.com/Freeeeeet/skillbridge_gateway/internal/backend"
	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
	"go.uber.org/zap"
)

// Ошибки локальной валидации отзыва, тексты уходят пользователю как есть
var (
	ErrBookingNotFound     = errors.New("Booking not found")
	ErrBookingNotCompleted = errors.New("Only completed bookings can be reviewed")
	ErrAlreadyReviewed     = errors.New("You have already reviewed this booking")
	ErrBadRating           = errors.New("Please select a rating between 1 and 5")
)

// ReviewService отправка отзывов: локальная валидация, затем
// trust-but-verify к бэкенду. Дубликат на стороне сервера ремапится в
// фиксированное сообщение и инициирует перечитывание бронирований,
// чтобы локальное состояние сошлось с серверным.
type ReviewService struct {
	backend *backend.Client
	logger  *zap.Logger
}

func NewReviewService(client *backend.Client, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		backend: client,
		logger:  logger,
	}
}

// Submit отправляет отзыв студента. Возвращает созданный отзыв либо
// актуальный список бронирований, если сервер сообщил о дубликате.
func (s *ReviewService) Submit(ctx context.Context, studentID string, req model.ReviewRequest) (*model.Review, []model.Booking, error) {
	// Форма запроса проверяется раньше поиска бронирования
	if req.Rating < 1 || req.Rating > 5 {
		return nil, nil, ErrBadRating
	}

	bookings, err := s.backend.FetchStudentBookings(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}

	var target *model.Booking
	for i := range bookings {
		if bookings[i].ID == req.BookingID {
			target = &bookings[i]
			break
		}
	}

	// Проверки до отправки отзыва, первая сработавшая выигрывает
	switch {
	case target == nil:
		return nil, nil, ErrBookingNotFound
	case target.Status != model.BookingStatusCompleted:
		return nil, nil, ErrBookingNotCompleted
	case target.Review != nil:
		return nil, nil, ErrAlreadyReviewed
	}

	review, err := s.backend.CreateReview(ctx, req)
	if err != nil {
		if backend.IsDuplicateReview(err) {
			s.logger.Info("Duplicate review, reloading bookings",
				zap.String("booking_id", req.BookingID),
				zap.String("student_id", studentID),
			)
			// Сервер знает об отзыве, которого у нас нет: перечитываем
			// и отдаём свежий список для сверки
			refreshed, reloadErr := s.backend.FetchStudentBookings(ctx, studentID)
			if reloadErr != nil {
				s.logger.Warn("Failed to reload bookings after duplicate review", zap.Error(reloadErr))
			}
			return nil, refreshed, ErrAlreadyReviewed
		}
		return nil, nil, err
	}

	s.logger.Info("Review submitted",
		zap.String("booking_id", req.BookingID),
		zap.Int("rating", req.Rating),
	)
	return review, nil, nil
}

package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/backend"
	"github.com/Freeeeeet/skillbridge_gateway/internal/controller/state"
	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
	"github.com/Freeeeeet/skillbridge_gateway/internal/schedule"
	"go.uber.org/zap"
)

// BookingService ведёт booking-флоу студента: выбор даты и времени,
// расчёт цены, отправка в бэкенд. Конфликты слотов на стороне сервера -
// зона ответственности бэкенда, мы отдаём его сообщения дословно.
type BookingService struct {
	backend *backend.Client
	flows   *state.Manager
	logger  *zap.Logger
}

func NewBookingService(client *backend.Client, flows *state.Manager, logger *zap.Logger) *BookingService {
	return &BookingService{
		backend: client,
		flows:   flows,
		logger:  logger,
	}
}

// Flows отдаёт менеджер флоу (для janitor-а)
func (s *BookingService) Flows() *state.Manager {
	return s.flows
}

// SelectDate двигает флоу сессии на выбор даты
func (s *BookingService) SelectDate(sessionID, tutorID, date string) state.BookingFlow {
	return s.flows.SelectDate(sessionID, tutorID, date)
}

// SelectStart двигает флоу на выбор времени начала
func (s *BookingService) SelectStart(sessionID, tutorID, startTime string) (state.BookingFlow, error) {
	return s.flows.SelectStart(sessionID, tutorID, startTime)
}

// SelectEnd двигает флоу на выбор времени конца
func (s *BookingService) SelectEnd(sessionID, tutorID, endTime string) (state.BookingFlow, error) {
	return s.flows.SelectEnd(sessionID, tutorID, endTime)
}

// EligibleEndTimes времена каталога, доступные как конец окна для
// выбранного начала
func (s *BookingService) EligibleEndTimes(startTime string) []string {
	eligible := []string{}
	for slot := range schedule.EligibleEndTimes(startTime, schedule.Catalogue()) {
		eligible = append(eligible, slot)
	}
	return eligible
}

// Quote считает окно с длительностью и ценой для готового флоу
func (s *BookingService) Quote(ctx context.Context, sessionID, tutorID string) (*model.BookingWindow, error) {
	flow, ok := s.flows.Get(sessionID)
	if !ok || flow.TutorID != tutorID {
		return nil, schedule.ErrFieldsMissing
	}

	tutor, err := s.backend.FetchTutorByID(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	window, err := schedule.NewBookingWindow(flow.Date, flow.StartTime, flow.EndTime, tutor.PricePerHour)
	if err != nil {
		return nil, err
	}
	return &window, nil
}

// Submit отправляет готовое окно в бэкенд. Окно конвертируется в
// абсолютные инстанты один раз, прямо перед запросом, и после ответа
// выбрасывается. Никаких автоматических ретраев.
func (s *BookingService) Submit(ctx context.Context, sessionID, studentID string) (*model.Booking, error) {
	flow, err := s.flows.BeginSubmit(sessionID)
	if err != nil {
		return nil, err
	}

	start, err := schedule.CombineLocal(flow.Date, flow.StartTime)
	if err != nil {
		s.flows.Fail(sessionID, err.Error())
		return nil, fmt.Errorf("combine start instant: %w", err)
	}
	end, err := schedule.CombineLocal(flow.Date, flow.EndTime)
	if err != nil {
		s.flows.Fail(sessionID, err.Error())
		return nil, fmt.Errorf("combine end instant: %w", err)
	}

	booking, err := s.backend.CreateBooking(ctx, model.BookingRequest{
		StudentID: studentID,
		TutorID:   flow.TutorID,
		StartTime: start.Format(time.RFC3339),
		EndTime:   end.Format(time.RFC3339),
	})
	if err != nil {
		s.flows.Fail(sessionID, err.Error())
		return nil, err
	}

	s.flows.Confirm(sessionID)
	s.logger.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("student_id", studentID),
		zap.String("tutor_id", flow.TutorID),
		zap.String("date", flow.Date),
		zap.String("time", flow.StartTime+"-"+flow.EndTime),
	)

	// Попытка завершена, форма очищается
	s.flows.Clear(sessionID)
	return booking, nil
}

// StudentBookings бронирования студента, разложенные на будущие и
// прошедшие. Будущие по возрастанию старта, прошедшие по убыванию.
func (s *BookingService) StudentBookings(ctx context.Context, studentID string) (upcoming, past []model.Booking, err error) {
	bookings, err := s.backend.FetchStudentBookings(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	upcoming = []model.Booking{}
	past = []model.Booking{}
	for _, b := range bookings {
		if b.IsUpcoming(now) {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].StartTime.Before(upcoming[j].StartTime)
	})
	sort.Slice(past, func(i, j int) bool {
		return past[i].StartTime.After(past[j].StartTime)
	})
	return upcoming, past, nil
}

// Cancel отменяет бронирование
func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	if err := s.backend.CancelBooking(ctx, bookingID); err != nil {
		return err
	}
	s.logger.Info("Booking cancelled", zap.String("booking_id", bookingID))
	return nil
}

// Complete помечает занятие завершённым (действие репетитора)
func (s *BookingService) Complete(ctx context.Context, bookingID string) (*model.Booking, error) {
	booking, err := s.backend.CompleteBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Booking completed", zap.String("booking_id", bookingID))
	return booking, nil
}

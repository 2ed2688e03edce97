package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/skillbridge_gateway/internal/backend"
	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
	"github.com/Freeeeeet/skillbridge_gateway/internal/schedule"
	"go.uber.org/zap"
)

// AvailabilityService редактор доступности репетитора. Сам ничего не
// хранит: цикл работы - прочитать профиль из бэкенда, разобрать поле
// availability, применить правку, записать целиком обратно.
// Это last-write-wins: два одновременных редактора одного профиля
// молча перезапишут друг друга, версионного контроля у бэкенда нет.
type AvailabilityService struct {
	backend *backend.Client
	logger  *zap.Logger
}

func NewAvailabilityService(client *backend.Client, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		backend: client,
		logger:  logger,
	}
}

// Load возвращает профиль репетитора и разобранный список слотов.
// Отсутствие поля availability означает "слотов нет".
func (s *AvailabilityService) Load(ctx context.Context, userID string) (*model.TutorProfile, []model.AvailabilitySlot, error) {
	profile, err := s.backend.FetchTutorByUserID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load tutor profile: %w", err)
	}

	slots := schedule.Parse(profile.Availability)
	return profile, slots, nil
}

// Save сериализует слоты и записывает availability целиком
func (s *AvailabilityService) Save(ctx context.Context, userID string, slots []model.AvailabilitySlot) (*model.TutorProfile, error) {
	availability := schedule.Serialize(slots)

	profile, err := s.backend.UpdateTutorProfile(ctx, model.TutorProfileUpdate{
		UserID:       userID,
		Availability: availability,
	})
	if err != nil {
		return nil, fmt.Errorf("save availability: %w", err)
	}

	s.logger.Info("Availability saved",
		zap.String("user_id", userID),
		zap.Int("slot_count", len(slots)),
		zap.Int("date_count", len(availability)),
	)
	return profile, nil
}

// AddSlot добавляет слот: загрузка -> валидация -> полная запись.
// Ошибка валидации не доходит до сети, набор слотов в бэкенде при
// этом не меняется.
func (s *AvailabilityService) AddSlot(ctx context.Context, userID, date, startTime, endTime string) ([]model.AvailabilitySlot, error) {
	_, slots, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := schedule.AddSlot(slots, date, startTime, endTime)
	if err != nil {
		return nil, err
	}

	if _, err := s.Save(ctx, userID, updated); err != nil {
		return nil, err
	}

	s.logger.Info("Slot added",
		zap.String("user_id", userID),
		zap.String("date", date),
		zap.String("time", startTime+"-"+endTime),
	)
	return updated, nil
}

// RemoveSlot убирает слот по ID. Неизвестный ID - no-op, запись всё
// равно выполняется, содержимое не меняется.
func (s *AvailabilityService) RemoveSlot(ctx context.Context, userID, slotID string) ([]model.AvailabilitySlot, error) {
	_, slots, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := schedule.RemoveSlot(slots, slotID)
	if _, err := s.Save(ctx, userID, updated); err != nil {
		return nil, err
	}

	s.logger.Info("Slot removed",
		zap.String("user_id", userID),
		zap.String("slot_id", slotID),
	)
	return updated, nil
}

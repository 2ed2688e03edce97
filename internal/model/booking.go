package model

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"   // Ожидает подтверждения
	BookingStatusConfirmed BookingStatus = "CONFIRMED" // Подтверждено
	BookingStatusCompleted BookingStatus = "COMPLETED" // Занятие завершено
	BookingStatusCancelled BookingStatus = "CANCELLED" // Отменено
)

// BookingWindow временное окно предлагаемого занятия до отправки в бэкенд.
// Живёт только внутри booking-флоу: собирается из формы, один раз
// конвертируется в абсолютные ISO-инстанты и выбрасывается.
type BookingWindow struct {
	Date          string  `json:"date"` // "YYYY-MM-DD"
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours float64 `json:"durationHours"`
	TotalPrice    float64 `json:"totalPrice"`
}

// Booking запись о бронировании, как её возвращает бэкенд
type Booking struct {
	ID        string        `json:"id"`
	StudentID string        `json:"studentId"`
	TutorID   string        `json:"tutorId"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`

	// Заполняется бэкендом при выборке
	Review *Review       `json:"review,omitempty"`
	Tutor  *TutorProfile `json:"tutor,omitempty"`
}

// BookingRequest тело запроса создания бронирования.
// StartTime/EndTime - полные ISO-8601 инстанты (см. schedule.CombineLocal).
type BookingRequest struct {
	StudentID string `json:"studentId"`
	TutorID   string `json:"tutorId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// IsUpcoming активное бронирование в будущем
func (b *Booking) IsUpcoming(now time.Time) bool {
	return !b.StartTime.Before(now) && b.Status != BookingStatusCancelled
}

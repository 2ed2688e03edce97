package model

import (
	"encoding/json"
	"time"
)

const (
	RoleStudent = "STUDENT"
	RoleTutor   = "TUTOR"
	RoleAdmin   = "ADMIN"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Image     string    `json:"image,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// TutorProfile профиль репетитора, как его отдаёт бэкенд.
// Availability приходит в свободной форме (массив слотов либо карта
// дата -> диапазоны), поэтому тут сырой JSON - разбор только через
// schedule.Parse, неоднозначность не должна утекать дальше.
type TutorProfile struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	User         User            `json:"user"`
	Bio          string          `json:"bio,omitempty"`
	PricePerHour float64         `json:"pricePerHour"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"reviewCount"`
	Subjects     []Subject       `json:"subjects,omitempty"`
	Availability json.RawMessage `json:"availability,omitempty"`

	// Бронирования с отзывами, для страницы репетитора
	BookingsAsTutor []Booking `json:"bookingsAsTutor,omitempty"`
}

// TutorProfileUpdate частичное обновление профиля. Availability
// заменяется целиком (whole-field replacement), частичных патчей нет.
type TutorProfileUpdate struct {
	UserID       string          `json:"userId"`
	Bio          *string         `json:"bio,omitempty"`
	PricePerHour *float64        `json:"pricePerHour,omitempty"`
	Availability AvailabilityMap `json:"availability,omitempty"`
}

type Subject struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"categoryId"`
	Category   *Category `json:"category,omitempty"`
}

type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Subjects []Subject `json:"subjects,omitempty"`
}

// TutorFilters параметры фильтрации каталога репетиторов
type TutorFilters struct {
	CategoryID string
	SubjectID  string
	MinRating  float64
	MaxPrice   float64
	SortBy     string
}

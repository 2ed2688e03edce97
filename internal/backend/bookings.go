package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
)

// CreateBooking создаёт бронирование. Времена в запросе - полные
// ISO-8601 инстанты, собранные из даты и времени окна.
func (c *Client) CreateBooking(ctx context.Context, req model.BookingRequest) (*model.Booking, error) {
	var booking model.Booking
	if err := c.post(ctx, "/bookings", req, &booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &booking, nil
}

// FetchStudentBookings возвращает все бронирования студента
func (c *Client) FetchStudentBookings(ctx context.Context, studentID string) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.get(ctx, "/bookings/student/"+url.PathEscape(studentID), &bookings); err != nil {
		return nil, fmt.Errorf("fetch student bookings: %w", err)
	}
	return bookings, nil
}

// FetchTutorBookings возвращает все бронирования репетитора
func (c *Client) FetchTutorBookings(ctx context.Context, tutorID string) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.get(ctx, "/bookings/tutor/"+url.PathEscape(tutorID), &bookings); err != nil {
		return nil, fmt.Errorf("fetch tutor bookings: %w", err)
	}
	return bookings, nil
}

// CancelBooking отменяет бронирование
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	if err := c.patch(ctx, "/bookings/"+url.PathEscape(bookingID)+"/cancel", nil, nil); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	return nil
}

// CompleteBooking помечает занятие завершённым (действие репетитора)
func (c *Client) CompleteBooking(ctx context.Context, bookingID string) (*model.Booking, error) {
	var booking model.Booking
	if err := c.patch(ctx, "/bookings/"+url.PathEscape(bookingID)+"/complete", nil, &booking); err != nil {
		return nil, fmt.Errorf("complete booking: %w", err)
	}
	return &booking, nil
}

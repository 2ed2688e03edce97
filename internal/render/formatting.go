package render

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
)

// FormatPrice форматирует цену в долларах
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// FormatPriceShort форматирует цену без центов если они равны 0
func FormatPriceShort(price float64) string {
	if price == float64(int(price)) {
		return fmt.Sprintf("$%.0f", price)
	}
	return fmt.Sprintf("$%.2f", price)
}

// FormatDateLong форматирует дату в длинной форме для подтверждений
func FormatDateLong(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatTimeRange форматирует диапазон времени
func FormatTimeRange(startTime, endTime string) string {
	return fmt.Sprintf("%s - %s", startTime, endTime)
}

// FormatDuration форматирует длительность в часах
func FormatDuration(hours float64) string {
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%g hours", hours)
}

// BookingStatusLabel возвращает человекочитаемый статус бронирования
func BookingStatusLabel(status model.BookingStatus) string {
	labels := map[model.BookingStatus]string{
		model.BookingStatusPending:   "Pending",
		model.BookingStatusConfirmed: "Confirmed",
		model.BookingStatusCompleted: "Completed",
		model.BookingStatusCancelled: "Cancelled",
	}

	if label, ok := labels[status]; ok {
		return label
	}
	return "Unknown"
}

// BookingSummary собирает строку подтверждения для готового окна
func BookingSummary(window model.BookingWindow) string {
	day, err := time.Parse("2006-01-02", window.Date)
	if err != nil {
		return FormatTimeRange(window.StartTime, window.EndTime)
	}
	return fmt.Sprintf("%s, %s (%s) for %s",
		FormatDateLong(day),
		FormatTimeRange(window.StartTime, window.EndTime),
		FormatDuration(window.DurationHours),
		FormatPriceShort(window.TotalPrice),
	)
}

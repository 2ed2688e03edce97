package render_test

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
	"github.com/Freeeeeet/skillbridge_gateway/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekImage_ProducesValidPNG(t *testing.T) {
	anchor := time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local) // понедельник

	slots := []model.AvailabilitySlot{
		{ID: "2024-06-03-09:00-12:00", Date: "2024-06-03", StartTime: "09:00", EndTime: "12:00"},
		{ID: "2024-06-05-14:00-16:00", Date: "2024-06-05", StartTime: "14:00", EndTime: "16:00"},
	}
	bookings := []model.Booking{
		{
			ID:        "b1",
			Status:    model.BookingStatusConfirmed,
			StartTime: time.Date(2024, 6, 3, 10, 0, 0, 0, time.Local),
			EndTime:   time.Date(2024, 6, 3, 11, 0, 0, 0, time.Local),
		},
		{
			// Отменённые не рисуются, но и не ломают рендер
			ID:        "b2",
			Status:    model.BookingStatusCancelled,
			StartTime: time.Date(2024, 6, 4, 10, 0, 0, 0, time.Local),
			EndTime:   time.Date(2024, 6, 4, 11, 0, 0, 0, time.Local),
		},
	}

	data, err := render.WeekImage(anchor, slots, bookings)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1400, img.Bounds().Dx())
	assert.Equal(t, 900, img.Bounds().Dy())
}

func TestWeekImage_EmptyScheduleStillRenders(t *testing.T) {
	data, err := render.WeekImage(time.Now(), nil, nil)
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "$40.00", render.FormatPrice(40))
	assert.Equal(t, "$40", render.FormatPriceShort(40))
	assert.Equal(t, "$37.50", render.FormatPriceShort(37.5))
	assert.Equal(t, "1 hour", render.FormatDuration(1))
	assert.Equal(t, "3 hours", render.FormatDuration(3))
	assert.Equal(t, "Cancelled", render.BookingStatusLabel(model.BookingStatusCancelled))
}

func TestBookingSummary(t *testing.T) {
	summary := render.BookingSummary(model.BookingWindow{
		Date:          "2024-06-01",
		StartTime:     "09:00",
		EndTime:       "12:00",
		DurationHours: 3,
		TotalPrice:    120,
	})
	assert.Equal(t, "Saturday, June 1, 2024, 09:00 - 12:00 (3 hours) for $120", summary)
}

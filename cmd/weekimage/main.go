package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
	"github.com/Freeeeeet/skillbridge_gateway/internal/render"
	"github.com/Freeeeeet/skillbridge_gateway/internal/schedule"
)

// Утилита для локальной проверки рендера недельной сетки.
// Без аргументов рисует встроенный пример; с аргументом читает JSON
// поля availability (в любой из двух форм) и рисует его.
func main() {
	now := time.Now()
	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for monday.Weekday() != time.Monday {
		monday = monday.AddDate(0, 0, -1)
	}

	if len(os.Args) > 1 {
		raw, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Printf("Failed to read %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		slots := schedule.Parse(raw)
		writeImage(monday, slots, nil)
		return
	}

	day := func(offset int) string {
		return monday.AddDate(0, 0, offset).Format("2006-01-02")
	}

	slots := []model.AvailabilitySlot{
		{ID: day(0) + "-09:00-12:00", Date: day(0), StartTime: "09:00", EndTime: "12:00"},
		{ID: day(0) + "-14:00-16:00", Date: day(0), StartTime: "14:00", EndTime: "16:00"},
		{ID: day(1) + "-10:00-11:00", Date: day(1), StartTime: "10:00", EndTime: "11:00"},
		{ID: day(2) + "-09:00-10:00", Date: day(2), StartTime: "09:00", EndTime: "10:00"},
		{ID: day(4) + "-11:00-14:00", Date: day(4), StartTime: "11:00", EndTime: "14:00"},
	}

	bookings := []model.Booking{
		{
			ID:        "b1",
			Status:    model.BookingStatusConfirmed,
			StartTime: monday.Add(10 * time.Hour),
			EndTime:   monday.Add(11 * time.Hour),
		},
		{
			ID:        "b2",
			Status:    model.BookingStatusConfirmed,
			StartTime: monday.AddDate(0, 0, 4).Add(12 * time.Hour),
			EndTime:   monday.AddDate(0, 0, 4).Add(13 * time.Hour),
		},
	}

	writeImage(monday, slots, bookings)
}

func writeImage(monday time.Time, slots []model.AvailabilitySlot, bookings []model.Booking) {
	imageData, err := render.WeekImage(monday, slots, bookings)
	if err != nil {
		fmt.Printf("Failed to render week image: %v\n", err)
		os.Exit(1)
	}

	filename := "week.png"
	if err := os.WriteFile(filename, imageData, 0644); err != nil {
		fmt.Printf("Failed to write %s: %v\n", filename, err)
		os.Exit(1)
	}

	fmt.Printf("✅ Week image saved to %s\n", filename)
	fmt.Printf("📅 Week: %s - %s\n", monday.Format("02.01.2006"), monday.AddDate(0, 0, 6).Format("02.01.2006"))
	fmt.Printf("📊 Slots: %d, bookings: %d\n", len(slots), len(bookings))
}

package render

import (
	"bytes"
	"image/color"
	"strconv"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
	"github.com/Freeeeeet/skillbridge_gateway/internal/schedule"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Константы размеров и отступов
const (
	imageWidth       = 1400
	imageHeight      = 900
	headerHeight     = 100
	leftLabelsWidth  = 80
	legendWidth      = 120
	dayPaddingX      = 8
	minSlotHeight    = 8.0
	slotBorderRadius = 6.0
	shadowOffset     = 3.0
	totalDaysInWeek  = 7
	hourPaddingTop   = 2
	hourPaddingBot   = 2
	defaultMinHour   = 9
	defaultMaxHour   = 21
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
	hourLineColor  = color.NRGBA{150, 150, 150, 255}
	todayBgColor   = color.NRGBA{255, 99, 71, 125}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{220, 220, 220, 255}

	slotOpenColor   = color.RGBA{133, 193, 85, 220}
	slotBookedColor = color.RGBA{255, 182, 193, 255}
	slotShadowColor = color.RGBA{0, 0, 0, 20}
	slotTextColor   = color.RGBA{20, 24, 28, 230}

	legendItemColor = color.RGBA{70, 74, 78, 220}
)

// weekBounds содержит границы недели
type weekBounds struct {
	start time.Time
	end   time.Time
}

// hourRange содержит диапазон часов для отображения
type hourRange struct {
	start int
	end   int
	total int
}

// block один прямоугольник на сетке: окно доступности либо бронирование
type block struct {
	date      string
	startTime string
	endTime   string
	booked    bool
}

// WeekImage рисует сетку недели с окнами доступности репетитора и
// подтверждёнными бронированиями поверх них.
func WeekImage(anchor time.Time, slots []model.AvailabilitySlot, bookings []model.Booking) ([]byte, error) {
	week := normalizeToWeekBounds(anchor)
	today := normalizeToDay(time.Now())
	highlightToday := isTodayInWeek(today, week)

	blocks := collectBlocks(slots, bookings)
	blocksByDay := groupBlocksByDay(blocks)
	hours := calculateHourRange(blocks)

	dc := createCanvas()
	dayWidth := (imageWidth - leftLabelsWidth - legendWidth) / totalDaysInWeek
	dayHeight := imageHeight - headerHeight
	cellHeight := float64(dayHeight) / float64(hours.total)

	drawHeader(dc, week)
	drawHourLabels(dc, hours, cellHeight)
	drawDaysAndBlocks(dc, week, today, highlightToday, blocksByDay, hours, dayWidth, dayHeight, cellHeight)
	drawLegend(dc, dayWidth)

	return encodeImage(dc)
}

// collectBlocks сводит доступность и бронирования к одному виду
func collectBlocks(slots []model.AvailabilitySlot, bookings []model.Booking) []block {
	blocks := make([]block, 0, len(slots)+len(bookings))
	for _, slot := range slots {
		blocks = append(blocks, block{
			date:      slot.Date,
			startTime: slot.StartTime,
			endTime:   slot.EndTime,
		})
	}
	for _, b := range bookings {
		if b.Status == model.BookingStatusCancelled {
			continue
		}
		blocks = append(blocks, block{
			date:      b.StartTime.Format("2006-01-02"),
			startTime: b.StartTime.Format("15:04"),
			endTime:   b.EndTime.Format("15:04"),
			booked:    true,
		})
	}
	return blocks
}

// normalizeToWeekBounds нормализует дату к границам недели (Пн-Вс)
func normalizeToWeekBounds(date time.Time) weekBounds {
	normalized := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	daysSinceMonday := int(normalized.Weekday()) - 1
	if normalized.Weekday() == time.Sunday {
		daysSinceMonday = 6
	}

	start := normalized.AddDate(0, 0, -daysSinceMonday)
	end := start.AddDate(0, 0, 6)

	return weekBounds{start: start, end: end}
}

// normalizeToDay нормализует время к началу дня
func normalizeToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isTodayInWeek проверяет, попадает ли сегодня в отображаемую неделю
func isTodayInWeek(today time.Time, week weekBounds) bool {
	return !today.Before(week.start) && !today.After(week.end)
}

// groupBlocksByDay группирует блоки по дате
func groupBlocksByDay(blocks []block) map[string][]block {
	byDay := make(map[string][]block)
	for _, b := range blocks {
		byDay[b.date] = append(byDay[b.date], b)
	}
	return byDay
}

// calculateHourRange определяет диапазон часов для отображения
func calculateHourRange(blocks []block) hourRange {
	minHour := 24
	maxHour := 0

	for _, b := range blocks {
		startH := schedule.MinutesOfDay(b.startTime) / 60
		endMin := schedule.MinutesOfDay(b.endTime)
		endH := endMin / 60
		if endMin%60 > 0 {
			endH++
		}
		if startH < minHour {
			minHour = startH
		}
		if endH > maxHour {
			maxHour = endH
		}
	}

	if minHour == 24 {
		minHour = defaultMinHour
		maxHour = defaultMaxHour
	}

	startHour := minHour - hourPaddingTop
	endHour := maxHour + hourPaddingBot
	if startHour < 0 {
		startHour = 0
	}
	if endHour > 23 {
		endHour = 23
	}

	return hourRange{
		start: startHour,
		end:   endHour,
		total: endHour - startHour + 1,
	}
}

// createCanvas создает новый контекст рисования с фоном
func createCanvas() *gg.Context {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

// drawHeader рисует заголовок с названием месяца
func drawHeader(dc *gg.Context, week weekBounds) {
	startMonth := week.start.Month()
	endMonth := week.end.Month()

	title := startMonth.String()
	if startMonth != endMonth {
		title = startMonth.String() + " - " + endMonth.String()
	}

	dc.SetColor(textColor)
	w, h := dc.MeasureString(title)
	dc.DrawStringAnchored(title, w/2, float64(headerHeight)/8+h/2, 0, 0)
}

// drawHourLabels рисует колонку с часами слева
func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	dc.SetColor(hourLabelColor)

	for hIdx := 0; hIdx < hours.total; hIdx++ {
		actualHour := hours.start + hIdx
		y := float64(headerHeight) + float64(hIdx)*cellHeight
		dc.DrawStringAnchored(formatHourLabel(actualHour), float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

// drawDaysAndBlocks рисует все дни недели с блоками
func drawDaysAndBlocks(dc *gg.Context, week weekBounds, today time.Time, highlightToday bool,
	blocksByDay map[string][]block, hours hourRange, dayWidth, dayHeight int, cellHeight float64) {

	currentDate := week.start

	for dayIndex := 0; dayIndex < totalDaysInWeek; dayIndex++ {
		x := float64(leftLabelsWidth + dayIndex*dayWidth)
		y := float64(headerHeight)

		isToday := highlightToday && isSameDay(currentDate, today)

		drawDayBackground(dc, x, y, dayWidth, dayHeight, dayIndex, isToday)
		drawDayHeader(dc, currentDate, x, y, dayWidth)
		drawHourLines(dc, x, y, dayWidth, hours, cellHeight)

		dateKey := currentDate.Format("2006-01-02")
		for _, b := range blocksByDay[dateKey] {
			drawBlock(dc, b, x, y, dayWidth, hours, cellHeight)
		}

		currentDate = currentDate.AddDate(0, 0, 1)
	}
}

// isSameDay проверяет, являются ли две даты одним днем
func isSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// drawDayBackground рисует фон дня
func drawDayBackground(dc *gg.Context, x, y float64, dayWidth, dayHeight, dayIndex int, isToday bool) {
	if isToday {
		dc.SetColor(todayBgColor)
	} else if dayIndex%2 == 0 {
		dc.SetColor(evenDayColor)
	} else {
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, y, float64(dayWidth), float64(dayHeight))
	dc.Fill()
}

// drawDayHeader рисует название дня недели и дату
func drawDayHeader(dc *gg.Context, date time.Time, x, y float64, dayWidth int) {
	weekdayStr := date.Weekday().String()[:3]
	dateStr := date.Format("02.01")

	dc.SetColor(textColor)
	dc.DrawStringAnchored(dateStr, x+float64(dayWidth)/2, y, 0.5, -1)
	dc.DrawStringAnchored(weekdayStr, x+float64(dayWidth)/2, y, 0.5, -0.2)
}

// drawHourLines рисует горизонтальные линии часов
func drawHourLines(dc *gg.Context, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)

	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		hy := y + float64(hIdx)*cellHeight
		dc.DrawLine(x, hy, x+float64(dayWidth), hy)
		dc.Stroke()
	}
}

// drawBlock рисует один блок
func drawBlock(dc *gg.Context, b block, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	blockStart := float64(schedule.MinutesOfDay(b.startTime)) / 60.0
	blockEnd := float64(schedule.MinutesOfDay(b.endTime)) / 60.0

	blockY := y + (blockStart-float64(hours.start))*cellHeight
	blockHeight := (blockEnd - blockStart) * cellHeight
	if blockHeight < minSlotHeight {
		blockHeight = minSlotHeight
	}

	fillColor := slotOpenColor
	if b.booked {
		fillColor = slotBookedColor
	}
	blockWidth := float64(dayWidth) - float64(dayPaddingX*2)

	// Тень
	dc.SetColor(slotShadowColor)
	dc.DrawRoundedRectangle(x+dayPaddingX+shadowOffset, blockY+2+shadowOffset, blockWidth, blockHeight-4, slotBorderRadius)
	dc.Fill()

	// Основной блок
	dc.SetColor(fillColor)
	dc.DrawRoundedRectangle(x+float64(dayPaddingX), blockY+2, blockWidth, blockHeight-4, slotBorderRadius)
	dc.Fill()

	// Рамка
	dc.SetColor(darkenColor(fillColor, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x+float64(dayPaddingX), blockY+2, blockWidth, blockHeight-4, slotBorderRadius)
	dc.Stroke()

	// Текст времени
	dc.SetColor(slotTextColor)
	dc.DrawStringAnchored(b.startTime+" - "+b.endTime, x+float64(dayPaddingX)+8, blockY+8+10, 0, 0)
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// drawLegend рисует легенду справа
func drawLegend(dc *gg.Context, dayWidth int) {
	legendX := float64(leftLabelsWidth + totalDaysInWeek*dayWidth + 10)
	legendY := float64(imageHeight) - 100.0

	legendItems := []struct {
		Label string
		Clr   color.Color
	}{
		{"Available", slotOpenColor},
		{"Booked", slotBookedColor},
	}

	boxW := 20.0
	boxH := 14.0
	liX := legendX
	liY := legendY + 22

	for _, item := range legendItems {
		dc.SetColor(item.Clr)
		dc.DrawRoundedRectangle(liX, liY, boxW, boxH, 3)
		dc.Fill()

		dc.SetColor(legendItemColor)
		dc.DrawStringAnchored(item.Label, liX+boxW+8, liY+boxH/2+1, 0, 0.2)
		liY += boxH + 14
	}
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// формат часа с двумя цифрами
func formatHourLabel(h int) string {
	if h < 10 {
		return "0" + strconv.Itoa(h) + ":00"
	}
	return strconv.Itoa(h) + ":00"
}

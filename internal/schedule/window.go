package schedule

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
)

// Фиксированный каталог часовых слотов для booking-флоу, 09:00-21:00.
// Это конфигурационная константа, из бэкенда не выводится: смена рабочих
// часов репетиторов означает правку этого списка.
var catalogue = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
	"19:00", "20:00", "21:00",
}

// Catalogue возвращает копию каталога времён
func Catalogue() []string {
	out := make([]string, len(catalogue))
	copy(out, catalogue)
	return out
}

// CombineLocal склеивает дату и время "HH:MM" в инстант в локальной
// таймзоне процесса. Намеренно наивная комбинация без явного смещения -
// так делает исходный UI; переход на UTC это продуктовое решение,
// а не техническое (см. DESIGN.md).
func CombineLocal(date, hhmm string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02T15:04", date+"T"+hhmm, time.Local)
}

// ValidateWindow проверяет окно занятия перед отправкой бронирования.
// Сравнение идёт по полным инстантам (дата + время), а не по голым
// строкам времени - это авторитетная проверка и для программного
// использования, UI-фильтр (EligibleEndTimes) её не заменяет.
func ValidateWindow(date, startTime, endTime string) error {
	start, err := CombineLocal(date, startTime)
	if err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}
	end, err := CombineLocal(date, endTime)
	if err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}
	if !start.Before(end) {
		return ErrEndBeforeStart
	}
	return nil
}

// ComputePrice считает цену окна по целым часам. Каталог предлагает
// только времена вида "HH:00", поэтому берётся именно час: обобщение
// на дробные часы потребует пересмотра каталога.
func ComputePrice(startTime, endTime string, pricePerHour float64) float64 {
	hours := hourOf(endTime) - hourOf(startTime)
	return float64(hours) * pricePerHour
}

func hourOf(t string) int {
	h, _ := strconv.Atoi(strings.SplitN(t, ":", 2)[0])
	return h
}

// EligibleEndTimes отдаёт времена каталога строго позже startTime
// (лексикографически, формат с ведущими нулями это позволяет). Этим
// списком заполняется выбор времени окончания, так что окно с
// неположительной длительностью через UI собрать нельзя.
func EligibleEndTimes(startTime string, slots []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, slot := range slots {
			if slot <= startTime {
				continue
			}
			if !yield(slot) {
				return
			}
		}
	}
}

// NewBookingWindow собирает окно бронирования из полей формы:
// валидация плюс производные длительность и цена. Длительность
// считается в минутах (канонический вид), цена - через ComputePrice.
func NewBookingWindow(date, startTime, endTime string, pricePerHour float64) (model.BookingWindow, error) {
	if date == "" || startTime == "" || endTime == "" {
		return model.BookingWindow{}, ErrFieldsMissing
	}
	if err := ValidateWindow(date, startTime, endTime); err != nil {
		return model.BookingWindow{}, err
	}

	duration := float64(MinutesOfDay(endTime)-MinutesOfDay(startTime)) / 60
	return model.BookingWindow{
		Date:          date,
		StartTime:     startTime,
		EndTime:       endTime,
		DurationHours: duration,
		TotalPrice:    duration * pricePerHour,
	}, nil
}

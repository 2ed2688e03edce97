package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
)

// Parse восстанавливает плоский список слотов из поля availability.
// Бэкенд хранит его в свободной форме: либо уже плоский массив слотов,
// либо карта дата -> диапазоны. Кривой вход не ошибка - поле свободного
// формата, поэтому best-effort: всё, что не разобралось, даёт пустой
// список. Никогда не возвращает nil.
func Parse(raw json.RawMessage) []model.AvailabilitySlot {
	slots := []model.AvailabilitySlot{}

	data := bytes.TrimSpace(raw)
	if len(data) == 0 {
		return slots
	}

	switch data[0] {
	case '[':
		// Уже плоский список - пропускаем как есть
		var flat []model.AvailabilitySlot
		if err := json.Unmarshal(data, &flat); err != nil {
			return slots
		}
		return append(slots, flat...)
	case '{':
		var m model.AvailabilityMap
		if err := json.Unmarshal(data, &m); err != nil {
			return slots
		}
		// Порядок ключей карты не гарантирован, сортировка происходит
		// при мутациях (AddSlot), здесь она не нужна
		for date, ranges := range m {
			for i, r := range ranges {
				slots = append(slots, model.AvailabilitySlot{
					ID:        fmt.Sprintf("%s-%d", date, i),
					Date:      date,
					StartTime: r.StartTime,
					EndTime:   r.EndTime,
				})
			}
		}
		return slots
	default:
		return slots
	}
}

// Serialize сворачивает список слотов обратно в карту дата -> диапазоны
// для записи в бэкенд. Относительный порядок слотов внутри даты
// сохраняется, синтетический ID и дублирующая дата отбрасываются.
// Вход не мутируется.
func Serialize(slots []model.AvailabilitySlot) model.AvailabilityMap {
	availability := model.AvailabilityMap{}
	for _, slot := range slots {
		availability[slot.Date] = append(availability[slot.Date], slot.Range())
	}
	return availability
}

// MinutesOfDay переводит "HH:MM" в минуты с полуночи. Канонический вид
// для сравнения интервалов и всей арифметики длительностей.
func MinutesOfDay(t string) int {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// Overlaps проверяет пересекается ли кандидат с существующими слотами.
// Интервалы полуоткрытые [start, end): слоты, соприкасающиеся концами,
// пересечением не считаются. Слоты на разных датах не пересекаются
// никогда, независимо от времени.
func Overlaps(candidate model.AvailabilitySlot, existing []model.AvailabilitySlot) bool {
	candStart := MinutesOfDay(candidate.StartTime)
	candEnd := MinutesOfDay(candidate.EndTime)

	for _, slot := range existing {
		if slot.Date != candidate.Date {
			continue
		}
		if candStart < MinutesOfDay(slot.EndTime) && candEnd > MinutesOfDay(slot.StartTime) {
			return true
		}
	}
	return false
}

// AddSlot валидирует кандидата и возвращает новый список со вставленным
// слотом, отсортированный по (дата, время начала). Проверки в строгом
// порядке, первая сработавшая выигрывает. Исходный список не мутируется
// ни на одном пути.
func AddSlot(existing []model.AvailabilitySlot, date, startTime, endTime string) ([]model.AvailabilitySlot, error) {
	if date == "" || startTime == "" || endTime == "" {
		return nil, ErrFieldsMissing
	}

	// Лексикографическое сравнение валидно для "HH:MM" с ведущими нулями
	if startTime >= endTime {
		return nil, ErrEndBeforeStart
	}

	candidate := model.AvailabilitySlot{
		ID:        fmt.Sprintf("%s-%s-%s", date, startTime, endTime),
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}

	if Overlaps(candidate, existing) {
		return nil, ErrSlotOverlap
	}

	result := make([]model.AvailabilitySlot, 0, len(existing)+1)
	result = append(result, existing...)
	result = append(result, candidate)

	// Полная пересортировка, не вставка по месту: порядок отображения
	// должен быть детерминированным после любой серии добавлений
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].StartTime < result[j].StartTime
	})

	return result, nil
}

// RemoveSlot убирает слот по ID. Отсутствующий ID не ошибка (no-op),
// порядок оставшихся слотов сохраняется.
func RemoveSlot(existing []model.AvailabilitySlot, id string) []model.AvailabilitySlot {
	result := make([]model.AvailabilitySlot, 0, len(existing))
	for _, slot := range existing {
		if slot.ID != id {
			result = append(result, slot)
		}
	}
	return result
}

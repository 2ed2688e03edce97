package model

// TimeRange один диапазон времени внутри дня, в формате "HH:MM" (24 часа)
type TimeRange struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailabilitySlot слот доступности репетитора на конкретную дату.
// ID синтетический, нужен только для управления списком в UI,
// во внешнее представление не сериализуется.
type AvailabilitySlot struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // "YYYY-MM-DD"
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailabilityMap внешнее (персистентное) представление доступности:
// дата -> упорядоченный список диапазонов. Именно в этом виде поле
// availability уходит в бэкенд и приходит из него.
type AvailabilityMap map[string][]TimeRange

// Range возвращает диапазон слота без даты и ID
func (s AvailabilitySlot) Range() TimeRange {
	return TimeRange{StartTime: s.StartTime, EndTime: s.EndTime}
}

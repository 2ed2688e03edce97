package state

import (
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/schedule"
)

// Step шаг попытки бронирования
type Step string

const (
	StepIdle          Step = "idle"
	StepDateSelected  Step = "date_selected"
	StepStartSelected Step = "start_selected"
	StepReady         Step = "ready"
	StepSubmitting    Step = "submitting"
	StepConfirmed     Step = "confirmed"
	StepFailed        Step = "failed"
)

// BookingFlow состояние одной попытки бронирования у одного студента.
// Явная owned-state структура: вся арифметика интервалов живёт в
// schedule, флоу только двигает шаги и следит за причинной цепочкой
// дата -> начало -> конец: правка любого поля сбрасывает все поля
// строго после него.
type BookingFlow struct {
	TutorID   string    `json:"tutorId"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Step      Step      `json:"step"`
	LastError string    `json:"lastError,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewBookingFlow(tutorID string) *BookingFlow {
	return &BookingFlow{
		TutorID:   tutorID,
		Step:      StepIdle,
		UpdatedAt: time.Now(),
	}
}

func (f *BookingFlow) touch() {
	f.UpdatedAt = time.Now()
	f.LastError = ""
}

// SelectDate выбирает дату занятия. Сбрасывает время начала и конца.
func (f *BookingFlow) SelectDate(date string) {
	f.touch()
	f.Date = date
	f.StartTime = ""
	f.EndTime = ""
	if date == "" {
		f.Step = StepIdle
		return
	}
	f.Step = StepDateSelected
}

// SelectStart выбирает время начала. Сбрасывает ранее выбранный конец.
func (f *BookingFlow) SelectStart(startTime string) error {
	if f.Date == "" {
		return schedule.ErrFieldsMissing
	}
	f.touch()
	f.StartTime = startTime
	f.EndTime = ""
	if startTime == "" {
		f.Step = StepDateSelected
		return nil
	}
	f.Step = StepStartSelected
	return nil
}

// SelectEnd выбирает время конца; при прохождении валидации окно готово
// к отправке. Ошибка валидации не двигает шаг.
func (f *BookingFlow) SelectEnd(endTime string) error {
	if f.Date == "" || f.StartTime == "" {
		return schedule.ErrFieldsMissing
	}
	if endTime == "" {
		f.touch()
		f.EndTime = ""
		f.Step = StepStartSelected
		return nil
	}
	if err := schedule.ValidateWindow(f.Date, f.StartTime, endTime); err != nil {
		return err
	}
	f.touch()
	f.EndTime = endTime
	f.Step = StepReady
	return nil
}

// BeginSubmit переводит готовое окно в отправку
func (f *BookingFlow) BeginSubmit() error {
	if f.Step != StepReady {
		return schedule.ErrFieldsMissing
	}
	f.touch()
	f.Step = StepSubmitting
	return nil
}

// Confirm фиксирует успешное бронирование
func (f *BookingFlow) Confirm() {
	f.touch()
	f.Step = StepConfirmed
}

// Fail фиксирует отказ; окно остаётся заполненным, так что следующая
// правка любого поля вернёт флоу на соответствующий шаг
func (f *BookingFlow) Fail(message string) {
	f.UpdatedAt = time.Now()
	f.LastError = message
	f.Step = StepFailed
}

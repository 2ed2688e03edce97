package state_test

import (
	"testing"

	"github.com/Freeeeeet/skillbridge_gateway/internal/controller/state"
	"github.com/Freeeeeet/skillbridge_gateway/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyFlow(t *testing.T) *state.BookingFlow {
	t.Helper()
	f := state.NewBookingFlow("t1")
	f.SelectDate("2024-06-01")
	require.NoError(t, f.SelectStart("10:00"))
	require.NoError(t, f.SelectEnd("11:00"))
	require.Equal(t, state.StepReady, f.Step)
	return f
}

func TestFlow_HappyPath(t *testing.T) {
	f := state.NewBookingFlow("t1")
	assert.Equal(t, state.StepIdle, f.Step)

	f.SelectDate("2024-06-01")
	assert.Equal(t, state.StepDateSelected, f.Step)

	require.NoError(t, f.SelectStart("10:00"))
	assert.Equal(t, state.StepStartSelected, f.Step)

	require.NoError(t, f.SelectEnd("11:00"))
	assert.Equal(t, state.StepReady, f.Step)

	require.NoError(t, f.BeginSubmit())
	assert.Equal(t, state.StepSubmitting, f.Step)

	f.Confirm()
	assert.Equal(t, state.StepConfirmed, f.Step)
}

func TestFlow_StartResetsEnd(t *testing.T) {
	f := readyFlow(t)

	// Новый старт сбрасывает выбранный конец
	require.NoError(t, f.SelectStart("12:00"))
	assert.Equal(t, state.StepStartSelected, f.Step)
	assert.Empty(t, f.EndTime)
}

func TestFlow_DateResetsStartAndEnd(t *testing.T) {
	f := readyFlow(t)

	f.SelectDate("2024-06-02")
	assert.Equal(t, state.StepDateSelected, f.Step)
	assert.Empty(t, f.StartTime)
	assert.Empty(t, f.EndTime)
}

func TestFlow_RejectsInvertedWindow(t *testing.T) {
	f := state.NewBookingFlow("t1")
	f.SelectDate("2024-06-01")
	require.NoError(t, f.SelectStart("11:00"))

	err := f.SelectEnd("10:00")
	require.ErrorIs(t, err, schedule.ErrEndBeforeStart)
	// Неудачная валидация не двигает шаг и не записывает конец
	assert.Equal(t, state.StepStartSelected, f.Step)
	assert.Empty(t, f.EndTime)
}

func TestFlow_OutOfOrderSelection(t *testing.T) {
	f := state.NewBookingFlow("t1")

	require.ErrorIs(t, f.SelectStart("10:00"), schedule.ErrFieldsMissing)
	require.ErrorIs(t, f.SelectEnd("11:00"), schedule.ErrFieldsMissing)
	require.ErrorIs(t, f.BeginSubmit(), schedule.ErrFieldsMissing)
}

func TestFlow_FailedKeepsWindowAndRecovers(t *testing.T) {
	f := readyFlow(t)
	require.NoError(t, f.BeginSubmit())

	f.Fail("Tutor is busy at the requested time")
	assert.Equal(t, state.StepFailed, f.Step)
	assert.Equal(t, "Tutor is busy at the requested time", f.LastError)
	assert.Equal(t, "11:00", f.EndTime)

	// Правка поля после отказа возвращает флоу на нужный шаг
	require.NoError(t, f.SelectEnd("12:00"))
	assert.Equal(t, state.StepReady, f.Step)
	assert.Empty(t, f.LastError)
}

func TestManager_PerSessionIsolation(t *testing.T) {
	m := state.NewManager()

	m.SelectDate("sess-a", "t1", "2024-06-01")
	m.SelectDate("sess-b", "t1", "2024-06-02")

	a, ok := m.Get("sess-a")
	require.True(t, ok)
	assert.Equal(t, "2024-06-01", a.Date)

	b, ok := m.Get("sess-b")
	require.True(t, ok)
	assert.Equal(t, "2024-06-02", b.Date)

	// Смена репетитора начинает попытку заново
	fresh := m.SelectDate("sess-a", "t2", "2024-06-03")
	assert.Equal(t, "t2", fresh.TutorID)
	assert.Empty(t, fresh.StartTime)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	m := state.NewManager()
	m.SelectDate("sess", "t1", "2024-06-01")

	// Правка снимка не трогает хранимое состояние
	flow, ok := m.Get("sess")
	require.True(t, ok)
	flow.Date = "1999-01-01"

	stored, ok := m.Get("sess")
	require.True(t, ok)
	assert.Equal(t, "2024-06-01", stored.Date)
}

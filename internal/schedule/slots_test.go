package schedule_test

import (
	"encoding/json"
	"testing"

	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
	"github.com/Freeeeeet/skillbridge_gateway/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DateMap(t *testing.T) {
	raw := json.RawMessage(`{
		"2024-06-01": [
			{"startTime": "09:00", "endTime": "10:00"},
			{"startTime": "14:00", "endTime": "16:00"}
		],
		"2024-06-02": [
			{"startTime": "11:00", "endTime": "12:00"}
		]
	}`)

	slots := schedule.Parse(raw)
	require.Len(t, slots, 3)

	byID := map[string]model.AvailabilitySlot{}
	for _, s := range slots {
		byID[s.ID] = s
	}

	// ID синтезируется как дата-индекс, индекс внутри даты
	require.Contains(t, byID, "2024-06-01-0")
	require.Contains(t, byID, "2024-06-01-1")
	require.Contains(t, byID, "2024-06-02-0")
	assert.Equal(t, "09:00", byID["2024-06-01-0"].StartTime)
	assert.Equal(t, "16:00", byID["2024-06-01-1"].EndTime)
	assert.Equal(t, "2024-06-02", byID["2024-06-02-0"].Date)
}

func TestParse_FlatArrayPassthrough(t *testing.T) {
	raw := json.RawMessage(`[
		{"id": "x1", "date": "2024-06-01", "startTime": "09:00", "endTime": "10:00"}
	]`)

	slots := schedule.Parse(raw)
	require.Len(t, slots, 1)
	assert.Equal(t, "x1", slots[0].ID)
	assert.Equal(t, "2024-06-01", slots[0].Date)
}

func TestParse_MalformedInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"null", "null"},
		{"number", "42"},
		{"string", `"not availability"`},
		{"broken json", `{"2024-06-01": [`},
		{"broken array", `[{"date": 5}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots := schedule.Parse(json.RawMessage(tc.raw))
			require.NotNil(t, slots)
			assert.Empty(t, slots)
		})
	}
}

func TestSerialize_GroupsByDatePreservingOrder(t *testing.T) {
	slots := []model.AvailabilitySlot{
		{ID: "a", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00"},
		{ID: "b", Date: "2024-06-02", StartTime: "11:00", EndTime: "12:00"},
		{ID: "c", Date: "2024-06-01", StartTime: "14:00", EndTime: "15:00"},
	}

	m := schedule.Serialize(slots)
	require.Len(t, m, 2)
	require.Equal(t, []model.TimeRange{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "14:00", EndTime: "15:00"},
	}, m["2024-06-01"])
	require.Equal(t, []model.TimeRange{
		{StartTime: "11:00", EndTime: "12:00"},
	}, m["2024-06-02"])
}

func TestSerialize_Empty(t *testing.T) {
	m := schedule.Serialize(nil)
	require.NotNil(t, m)
	assert.Empty(t, m)
}

// Round-trip: parse(serialize(S)) эквивалентно S по содержимому
// (date, startTime, endTime), синтетические ID не сравниваются
func TestRoundTrip(t *testing.T) {
	original := []model.AvailabilitySlot{
		{ID: "1", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00"},
		{ID: "2", Date: "2024-06-01", StartTime: "14:00", EndTime: "16:00"},
		{ID: "3", Date: "2024-06-03", StartTime: "11:00", EndTime: "12:00"},
	}

	data, err := json.Marshal(schedule.Serialize(original))
	require.NoError(t, err)

	restored := schedule.Parse(data)
	require.Len(t, restored, len(original))

	type key struct{ date, start, end string }
	want := map[key]bool{}
	for _, s := range original {
		want[key{s.Date, s.StartTime, s.EndTime}] = true
	}
	for _, s := range restored {
		assert.True(t, want[key{s.Date, s.StartTime, s.EndTime}], "unexpected slot %+v", s)
	}
}

// Round-trip для плоской внешней формы
func TestRoundTrip_FlatForm(t *testing.T) {
	original := []model.AvailabilitySlot{
		{ID: "1", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00"},
		{ID: "2", Date: "2024-06-02", StartTime: "14:00", EndTime: "16:00"},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	restored := schedule.Parse(data)
	require.Equal(t, original, restored)
}

func TestOverlaps(t *testing.T) {
	existing := []model.AvailabilitySlot{
		{ID: "e", Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00"},
	}

	cases := []struct {
		name      string
		candidate model.AvailabilitySlot
		want      bool
	}{
		{
			"full overlap",
			model.AvailabilitySlot{Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00"},
			true,
		},
		{
			"partial overlap from middle",
			model.AvailabilitySlot{Date: "2024-06-01", StartTime: "10:30", EndTime: "11:30"},
			true,
		},
		{
			"candidate contains existing",
			model.AvailabilitySlot{Date: "2024-06-01", StartTime: "09:00", EndTime: "12:00"},
			true,
		},
		{
			"touching end is not overlap",
			model.AvailabilitySlot{Date: "2024-06-01", StartTime: "11:00", EndTime: "12:00"},
			false,
		},
		{
			"touching start is not overlap",
			model.AvailabilitySlot{Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00"},
			false,
		},
		{
			"same time, different date",
			model.AvailabilitySlot{Date: "2024-06-02", StartTime: "10:00", EndTime: "11:00"},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, schedule.Overlaps(tc.candidate, existing))
		})
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	pairs := []struct {
		a, b model.AvailabilitySlot
	}{
		{
			model.AvailabilitySlot{Date: "2024-06-01", StartTime: "10:00", EndTime: "12:00"},
			model.AvailabilitySlot{Date: "2024-06-01", StartTime: "11:00", EndTime: "13:00"},
		},
		{
			model.AvailabilitySlot{Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00"},
			model.AvailabilitySlot{Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00"},
		},
		{
			model.AvailabilitySlot{Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00"},
			model.AvailabilitySlot{Date: "2024-06-02", StartTime: "10:00", EndTime: "11:00"},
		},
	}

	for _, p := range pairs {
		got := schedule.Overlaps(p.a, []model.AvailabilitySlot{p.b})
		mirrored := schedule.Overlaps(p.b, []model.AvailabilitySlot{p.a})
		assert.Equal(t, got, mirrored, "overlap must be symmetric for %+v / %+v", p.a, p.b)
	}
}

func TestAddSlot_RejectsOverlapWithoutMutation(t *testing.T) {
	existing := []model.AvailabilitySlot{
		{ID: "e", Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00"},
	}

	result, err := schedule.AddSlot(existing, "2024-06-01", "10:30", "11:30")
	require.ErrorIs(t, err, schedule.ErrSlotOverlap)
	assert.Nil(t, result)

	// Исходная коллекция не изменилась после неудачной попытки
	require.Len(t, existing, 1)
	assert.Equal(t, "10:00", existing[0].StartTime)
}

func TestAddSlot_AcceptsAdjacent(t *testing.T) {
	existing := []model.AvailabilitySlot{
		{ID: "e", Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00"},
	}

	result, err := schedule.AddSlot(existing, "2024-06-01", "11:00", "12:00")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "2024-06-01-11:00-12:00", result[1].ID)
}

func TestAddSlot_ValidationOrder(t *testing.T) {
	existing := []model.AvailabilitySlot{
		{ID: "e", Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00"},
	}

	// Пустое поле побеждает всё остальное
	_, err := schedule.AddSlot(existing, "", "11:00", "10:00")
	require.ErrorIs(t, err, schedule.ErrFieldsMissing)

	// Порядок времени проверяется раньше пересечения
	_, err = schedule.AddSlot(existing, "2024-06-01", "11:00", "10:00")
	require.ErrorIs(t, err, schedule.ErrEndBeforeStart)

	// Равные времена тоже нарушение порядка
	_, err = schedule.AddSlot(existing, "2024-06-01", "10:00", "10:00")
	require.ErrorIs(t, err, schedule.ErrEndBeforeStart)

	assert.True(t, schedule.IsValidation(err))
}

func TestAddSlot_SortedAfterAdds(t *testing.T) {
	var (
		slots []model.AvailabilitySlot
		err   error
	)

	// Добавляем в обратном порядке
	slots, err = schedule.AddSlot(slots, "2024-06-02", "14:00", "15:00")
	require.NoError(t, err)
	slots, err = schedule.AddSlot(slots, "2024-06-01", "09:00", "10:00")
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, "2024-06-01", slots[0].Date)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "2024-06-02", slots[1].Date)
	assert.Equal(t, "14:00", slots[1].StartTime)

	// Внутри одной даты сортировка по времени начала
	slots, err = schedule.AddSlot(slots, "2024-06-01", "07:00", "08:00")
	require.NoError(t, err)
	assert.Equal(t, "07:00", slots[0].StartTime)
	assert.Equal(t, "09:00", slots[1].StartTime)
}

func TestRemoveSlot(t *testing.T) {
	existing := []model.AvailabilitySlot{
		{ID: "a", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00"},
		{ID: "b", Date: "2024-06-01", StartTime: "14:00", EndTime: "15:00"},
		{ID: "c", Date: "2024-06-02", StartTime: "11:00", EndTime: "12:00"},
	}

	result := schedule.RemoveSlot(existing, "b")
	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "c", result[1].ID)
}

func TestRemoveSlot_IdempotentOnMissingID(t *testing.T) {
	existing := []model.AvailabilitySlot{
		{ID: "a", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00"},
		{ID: "b", Date: "2024-06-01", StartTime: "14:00", EndTime: "15:00"},
	}

	result := schedule.RemoveSlot(existing, "no-such-id")
	require.Equal(t, existing, result)
}

func TestMinutesOfDay(t *testing.T) {
	assert.Equal(t, 0, schedule.MinutesOfDay("00:00"))
	assert.Equal(t, 9*60, schedule.MinutesOfDay("09:00"))
	assert.Equal(t, 14*60+30, schedule.MinutesOfDay("14:30"))
	assert.Equal(t, 0, schedule.MinutesOfDay("garbage"))
}

package state

import (
	"sync"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/schedule"
)

// Manager хранит активные booking-флоу по ID сессии. Указатели наружу
// не отдаются: каждый переход выполняется под мьютексом, а читатели
// получают копию снимка, чтобы избежать гонки с конкурентной правкой
// той же сессии.
type Manager struct {
	mu    sync.RWMutex
	flows map[string]*BookingFlow
}

func NewManager() *Manager {
	return &Manager{
		flows: make(map[string]*BookingFlow),
	}
}

// Get возвращает копию флоу сессии, если он есть
func (m *Manager) Get(sessionID string) (BookingFlow, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	flow, ok := m.flows[sessionID]
	if !ok {
		return BookingFlow{}, false
	}
	return *flow, true
}

// getOrCreate возвращает флоу сессии, создавая новый при отсутствии
// или смене репетитора. Вызывается только под взятым мьютексом.
func (m *Manager) getOrCreate(sessionID, tutorID string) *BookingFlow {
	if flow, ok := m.flows[sessionID]; ok && flow.TutorID == tutorID {
		return flow
	}
	flow := NewBookingFlow(tutorID)
	m.flows[sessionID] = flow
	return flow
}

// SelectDate выбирает дату занятия для сессии
func (m *Manager) SelectDate(sessionID, tutorID, date string) BookingFlow {
	m.mu.Lock()
	defer m.mu.Unlock()

	flow := m.getOrCreate(sessionID, tutorID)
	flow.SelectDate(date)
	return *flow
}

// SelectStart выбирает время начала для сессии
func (m *Manager) SelectStart(sessionID, tutorID, startTime string) (BookingFlow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	flow := m.getOrCreate(sessionID, tutorID)
	if err := flow.SelectStart(startTime); err != nil {
		return BookingFlow{}, err
	}
	return *flow, nil
}

// SelectEnd выбирает время конца для сессии
func (m *Manager) SelectEnd(sessionID, tutorID, endTime string) (BookingFlow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	flow := m.getOrCreate(sessionID, tutorID)
	if err := flow.SelectEnd(endTime); err != nil {
		return BookingFlow{}, err
	}
	return *flow, nil
}

// BeginSubmit переводит готовое окно сессии в отправку
func (m *Manager) BeginSubmit(sessionID string) (BookingFlow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	flow, ok := m.flows[sessionID]
	if !ok {
		return BookingFlow{}, schedule.ErrFieldsMissing
	}
	if err := flow.BeginSubmit(); err != nil {
		return BookingFlow{}, err
	}
	return *flow, nil
}

// Confirm фиксирует успешное бронирование сессии
func (m *Manager) Confirm(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if flow, ok := m.flows[sessionID]; ok {
		flow.Confirm()
	}
}

// Fail фиксирует отказ, окно сессии остаётся заполненным
func (m *Manager) Fail(sessionID, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if flow, ok := m.flows[sessionID]; ok {
		flow.Fail(message)
	}
}

// Clear удаляет флоу сессии
func (m *Manager) Clear(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.flows, sessionID)
}

// PurgeExpired удаляет флоу, не тронутые дольше maxAge, и возвращает
// сколько удалено. Брошенные попытки бронирования иначе копятся вечно.
func (m *Manager) PurgeExpired(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	purged := 0
	for id, flow := range m.flows {
		if flow.UpdatedAt.Before(cutoff) {
			delete(m.flows, id)
			purged++
		}
	}
	return purged
}

package state

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerPurgeExpired(t *testing.T) {
	m := NewManager()

	m.SelectDate("sess-old", "t1", "2024-06-01")
	m.SelectDate("sess-new", "t1", "2024-06-01")
	m.flows["sess-old"].UpdatedAt = time.Now().Add(-2 * time.Hour)

	purged := m.PurgeExpired(time.Hour)
	assert.Equal(t, 1, purged)

	_, ok := m.Get("sess-old")
	assert.False(t, ok)
	_, ok = m.Get("sess-new")
	assert.True(t, ok)
}

// Конкурентные правки и чтения одной сессии: переходы идут под
// мьютексом, читатели сериализуют копию, гонки быть не должно
// (проверяется под -race)
func TestManagerConcurrentSessionAccess(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			m.SelectDate("sess", "t1", "2024-06-01")
			if _, err := m.SelectStart("sess", "t1", "10:00"); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			flow, ok := m.Get("sess")
			if !ok {
				continue
			}
			if _, err := json.Marshal(flow); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	wg.Wait()

	flow, ok := m.Get("sess")
	require.True(t, ok)
	assert.Equal(t, "2024-06-01", flow.Date)
}

package app

import (
	"context"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/controller/state"
	"go.uber.org/zap"
)

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	flows    *state.Manager
	flowTTL  time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(flows *state.Manager, flowTTL time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		flows:    flows,
		flowTTL:  flowTTL,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")

	go s.runFlowCleanupTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runFlowCleanupTask периодически чистит брошенные booking-флоу
func (s *Scheduler) runFlowCleanupTask(ctx context.Context) {
	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.purgeFlows()
		case <-s.stopChan:
			s.logger.Info("Flow cleanup task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Flow cleanup task cancelled")
			return
		}
	}
}

// purgeFlows удаляет флоу, к которым давно не прикасались
func (s *Scheduler) purgeFlows() {
	purged := s.flows.PurgeExpired(s.flowTTL)
	if purged > 0 {
		s.logger.Info("Purged stale booking flows", zap.Int("count", purged))
	}
}

// Package scheduler tareas periódicas del servidor sobre gocron.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/jhoicas/bravo-menu-api/pkg/logger"
)

// PlanSweeper degrada los planes PRO vencidos; lo implementa *usecase.EntitlementUseCase.
type PlanSweeper interface {
	Sweep(ctx context.Context) (int64, error)
}

// Manager agrupa los trabajos programados en un único scheduler.
type Manager struct {
	scheduler gocron.Scheduler
	log       *logger.Logger

	mu      sync.Mutex
	started bool
}

// NewManager crea el scheduler en la zona horaria de los negocios.
func NewManager(loc *time.Location, log *logger.Logger) (*Manager, error) {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}
	return &Manager{scheduler: s, log: log.Component("scheduler")}, nil
}

// RegisterPlanReconciler barre los PRO vencidos cada `every`, empezando al arrancar.
// Si una pasada sigue corriendo la siguiente se reprograma.
func (m *Manager) RegisterPlanReconciler(job PlanSweeper, every time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(every),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), every)
			defer cancel()
			start := time.Now()
			n, err := job.Sweep(ctx)
			if err != nil {
				m.log.Error().Err(err).Msg("reconciliación de planes fallida")
				return
			}
			if n > 0 {
				m.log.Info().Int64("downgraded", n).Dur("duration", time.Since(start)).Msg("planes vencidos degradados")
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("plan-reconciler"),
	)
	if err != nil {
		return err
	}
	m.log.Info().Dur("interval", every).Msg("reconciliador de planes registrado")
	return nil
}

// Start arranca los trabajos. Llamarlo dos veces no tiene efecto.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return
	}
	m.scheduler.Start()
	m.started = true
	m.log.Info().Int("jobs", len(m.scheduler.Jobs())).Msg("scheduler iniciado")
}

// Stop espera a que terminen los trabajos en curso y detiene el scheduler.
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started {
		return nil
	}
	m.started = false
	return m.scheduler.Shutdown()
}

// Package scheduler tareas periódicas (refresco de tasas de cambio).
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/Graphi-api/pkg/logger"
)

// Refresher lo que el scheduler necesita del caso de uso de tasas.
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// Scheduler ejecuta el refresco de tasas según una expresión cron estándar (5 campos).
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	schedule  string
	timeout   time.Duration
	log       *logger.Logger
}

// New construye el scheduler. No arranca hasta Start.
func New(schedule string, refresher Refresher, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		refresher: refresher,
		schedule:  schedule,
		timeout:   2 * time.Minute,
		log:       logger.OrNop(log).Named("scheduler"),
	}
}

// Start registra la tarea y arranca el cron. Falla si la expresión es inválida.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.refreshRates); err != nil {
		return fmt.Errorf("schedule rates refresh %q: %w", s.schedule, err)
	}
	s.log.Info().Str("cron", s.schedule).Msg("scheduler iniciado")
	s.cron.Start()
	return nil
}

// Stop detiene el cron y espera a que termine la tarea en curso.
func (s *Scheduler) Stop() {
	s.log.Info().Msg("deteniendo scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refreshRates() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.refresher.Refresh(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("refresco de tasas falló")
		return
	}
	s.log.Debug().Int("rates", n).Msg("refresco programado de tasas")
}

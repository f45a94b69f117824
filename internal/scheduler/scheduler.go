package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
	"github.com/jhoicas/stockledger-api/pkg/logger"
)

const scanTimeout = 2 * time.Minute

// Scheduler ejecuta tareas programadas. Por ahora solo el barrido
// diario de stock bajo, que deja en el log los SKUs activos cuyo
// saldo está por debajo de su nivel mínimo.
type Scheduler struct {
	cron     *cron.Cron
	itemRepo repository.ItemRepository
	spec     string
	log      *logger.Logger
}

// New construye el scheduler. spec es la expresión cron estándar de 5
// campos; si viene vacía el scheduler no programa nada.
func New(spec string, itemRepo repository.ItemRepository, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		itemRepo: itemRepo,
		spec:     spec,
		log:      log,
	}
}

// Start programa y arranca las tareas.
func (s *Scheduler) Start() {
	if s.spec == "" {
		s.log.Info().Msg("scheduler desactivado (LOWSTOCK_CRON vacío)")
		return
	}

	if _, err := s.cron.AddFunc(s.spec, s.scanLowStock); err != nil {
		s.log.Error().Err(err).Str("spec", s.spec).Msg("programar barrido de stock bajo")
		return
	}

	s.log.Info().Str("spec", s.spec).Msg("scheduler iniciado")
	s.cron.Start()
}

// Stop detiene el scheduler y espera a que terminen los jobs en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler detenido")
}

func (s *Scheduler) scanLowStock() {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	items, err := s.itemRepo.List(ctx, repository.ItemFilter{Status: entity.ItemStatusActive})
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de stock bajo: listar items")
		return
	}

	low := 0
	for _, it := range items {
		if it.CurrentStock >= it.MinLvl {
			continue
		}
		low++
		s.log.Warn().
			Str("sku", it.SKU).
			Str("item", it.ItemName).
			Int64("current_stock", it.CurrentStock).
			Int64("min_lvl", it.MinLvl).
			Int64("reorder_qty", it.ReorderQty).
			Msg("stock por debajo del mínimo")
	}

	s.log.Info().Int("items", len(items)).Int("low", low).Msg("barrido de stock bajo completado")
}

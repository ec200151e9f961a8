package service

import (
	"context"
	"errors"
	"time"

	"github.com/fernando2902/peliculas-catalago/internal/apperror"
	"github.com/fernando2902/peliculas-catalago/internal/dto"
	"github.com/fernando2902/peliculas-catalago/internal/model"
	"github.com/fernando2902/peliculas-catalago/internal/store"
	"github.com/shopspring/decimal"
)

type CajaService interface {
	RegistrarEntrada(ctx context.Context, req dto.MovimientoRequest) (*model.Entrada, error)
	RegistrarSalida(ctx context.Context, req dto.MovimientoRequest) (*model.Salida, error)
	// CorteDelDia computes today's summary without persisting it (preview).
	CorteDelDia(ctx context.Context) (*model.CorteDiario, error)
	// RealizarCorte persists the summary for fecha, keyed by date. Source
	// collections are NOT reset: a repeated corte over the same range counts
	// the same records again.
	RealizarCorte(ctx context.Context, fecha time.Time) (*model.CorteDiario, error)
	ObtenerCorte(ctx context.Context, fecha string) (*model.CorteDiario, error)
	HistorialCortes(ctx context.Context) ([]model.CorteDiario, error)
}

type cajaService struct {
	store *store.Store
	now   func() time.Time
}

func NewCajaService(st *store.Store) CajaService {
	return &cajaService{store: st, now: time.Now}
}

// ── Movimientos manuales ──────────────────────────────────────────────────────

func (s *cajaService) RegistrarEntrada(ctx context.Context, req dto.MovimientoRequest) (*model.Entrada, error) {
	if err := validarMovimiento(req); err != nil {
		return nil, err
	}
	e := &model.Entrada{Fecha: s.now(), Motivo: req.Motivo, Cantidad: req.Cantidad}
	if err := s.store.Entradas().Add(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *cajaService) RegistrarSalida(ctx context.Context, req dto.MovimientoRequest) (*model.Salida, error) {
	if err := validarMovimiento(req); err != nil {
		return nil, err
	}
	sal := &model.Salida{Fecha: s.now(), Motivo: req.Motivo, Cantidad: req.Cantidad}
	if err := s.store.Salidas().Add(ctx, sal); err != nil {
		return nil, err
	}
	return sal, nil
}

func validarMovimiento(req dto.MovimientoRequest) error {
	if req.Motivo == "" {
		return apperror.NewValidation(map[string]string{"Motivo": "required"})
	}
	return montoPositivo("Cantidad", req.Cantidad)
}

// ── Corte de caja ─────────────────────────────────────────────────────────────

func (s *cajaService) CorteDelDia(ctx context.Context) (*model.CorteDiario, error) {
	return s.armarCorte(ctx, s.now())
}

func (s *cajaService) RealizarCorte(ctx context.Context, fecha time.Time) (*model.CorteDiario, error) {
	corte, err := s.armarCorte(ctx, fecha)
	if err != nil {
		return nil, err
	}
	// Put, not Add: a second corte for the same date replaces the first.
	if err := s.store.CortesDiarios().Put(ctx, corte); err != nil {
		return nil, err
	}
	return corte, nil
}

// armarCorte partitions the day's records over the inclusive range
// [00:00:00, 23:59:59.999999999] and derives the totals.
func (s *cajaService) armarCorte(ctx context.Context, fecha time.Time) (*model.CorteDiario, error) {
	inicio := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, fecha.Location())
	fin := inicio.Add(24*time.Hour - time.Nanosecond)

	ventas, err := s.store.Ventas().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	entradas, err := s.store.Entradas().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	salidas, err := s.store.Salidas().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	corte := &model.CorteDiario{
		Fecha:    inicio.Format(model.FechaCorte),
		Ventas:   []model.Venta{},
		Entradas: []model.Entrada{},
		Salidas:  []model.Salida{},
	}
	totVentas, totEntradas, totSalidas := decimal.Zero, decimal.Zero, decimal.Zero

	for _, v := range ventas {
		if dentroDelRango(v.Fecha, inicio, fin) {
			corte.Ventas = append(corte.Ventas, v)
			totVentas = totVentas.Add(v.Total)
		}
	}
	for _, e := range entradas {
		if dentroDelRango(e.Fecha, inicio, fin) {
			corte.Entradas = append(corte.Entradas, e)
			totEntradas = totEntradas.Add(e.Cantidad)
		}
	}
	for _, sal := range salidas {
		if dentroDelRango(sal.Fecha, inicio, fin) {
			corte.Salidas = append(corte.Salidas, sal)
			totSalidas = totSalidas.Add(sal.Cantidad)
		}
	}

	corte.Totales = model.TotalesCorte{
		Ventas:   totVentas,
		Entradas: totEntradas,
		Salidas:  totSalidas,
		Caja:     totVentas.Add(totEntradas).Sub(totSalidas),
	}
	return corte, nil
}

func dentroDelRango(t, inicio, fin time.Time) bool {
	return !t.Before(inicio) && !t.After(fin)
}

func (s *cajaService) ObtenerCorte(ctx context.Context, fecha string) (*model.CorteDiario, error) {
	return s.store.CortesDiarios().Get(ctx, fecha)
}

func (s *cajaService) HistorialCortes(ctx context.Context) ([]model.CorteDiario, error) {
	cortes, err := s.store.CortesDiarios().GetAll(ctx)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}
	return cortes, nil
}

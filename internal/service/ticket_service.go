package service

import (
	"context"
	"errors"

	"github.com/fernando2902/peliculas-catalago/internal/apperror"
	"github.com/fernando2902/peliculas-catalago/internal/model"
	"github.com/fernando2902/peliculas-catalago/internal/store"
)

type TicketConfigService interface {
	// ObtenerConfig returns the singleton, falling back to defaults when
	// none was ever saved.
	ObtenerConfig(ctx context.Context) (model.ConfigTicket, error)
	GuardarConfig(ctx context.Context, cfg model.ConfigTicket) error
}

type ticketConfigService struct {
	store *store.Store
}

func NewTicketConfigService(st *store.Store) TicketConfigService {
	return &ticketConfigService{store: st}
}

func (s *ticketConfigService) ObtenerConfig(ctx context.Context) (model.ConfigTicket, error) {
	cfg, err := s.store.ConfigTicket().Get(ctx, model.ConfigTicketID)
	if errors.Is(err, apperror.ErrNotFound) {
		return model.DefaultConfigTicket(), nil
	}
	if err != nil {
		return model.ConfigTicket{}, err
	}
	return *cfg, nil
}

// GuardarConfig clears the collection before writing so the store never holds
// more than the singleton, then persists cfg under the fixed key.
func (s *ticketConfigService) GuardarConfig(ctx context.Context, cfg model.ConfigTicket) error {
	if cfg.NombreTienda == "" {
		return apperror.NewValidation(map[string]string{"NombreTienda": "required"})
	}
	cfg.ID = model.ConfigTicketID
	if err := s.store.ConfigTicket().Clear(ctx); err != nil {
		return err
	}
	return s.store.ConfigTicket().Put(ctx, &cfg)
}

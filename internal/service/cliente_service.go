package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/fernando2902/peliculas-catalago/internal/apperror"
	"github.com/fernando2902/peliculas-catalago/internal/dto"
	"github.com/fernando2902/peliculas-catalago/internal/model"
	"github.com/fernando2902/peliculas-catalago/internal/store"
)

type ClienteService interface {
	AgregarCliente(ctx context.Context, req dto.ClienteRequest) (*model.Cliente, error)
	EliminarCliente(ctx context.Context, id uuid.UUID) error
	ObtenerCliente(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	ListarClientes(ctx context.Context) ([]model.Cliente, error)
}

type clienteService struct {
	store    *store.Store
	validate *validator.Validate
}

func NewClienteService(st *store.Store) ClienteService {
	return &clienteService{store: st, validate: validator.New()}
}

func (s *clienteService) AgregarCliente(ctx context.Context, req dto.ClienteRequest) (*model.Cliente, error) {
	if err := s.validate.Struct(req); err != nil {
		fields := map[string]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		return nil, apperror.NewValidation(fields)
	}

	c := &model.Cliente{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Telefono: req.Telefono,
		Puntos:   0,
	}
	if err := s.store.Clientes().Add(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clienteService) EliminarCliente(ctx context.Context, id uuid.UUID) error {
	return s.store.Clientes().Delete(ctx, id)
}

func (s *clienteService) ObtenerCliente(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	return s.store.Clientes().Get(ctx, id)
}

func (s *clienteService) ListarClientes(ctx context.Context) ([]model.Cliente, error) {
	return s.store.Clientes().GetAll(ctx)
}

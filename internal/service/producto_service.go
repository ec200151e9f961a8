package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fernando2902/peliculas-catalago/internal/apperror"
	"github.com/fernando2902/peliculas-catalago/internal/dto"
	"github.com/fernando2902/peliculas-catalago/internal/model"
	"github.com/fernando2902/peliculas-catalago/internal/store"
)

type ProductoService interface {
	AgregarProducto(ctx context.Context, req dto.ProductoRequest) (*model.Producto, error)
	EliminarProducto(ctx context.Context, id uuid.UUID) error
	ListarProductos(ctx context.Context) ([]model.Producto, error)

	AgregarProductoPuntos(ctx context.Context, req dto.ProductoPuntosRequest) (*model.ProductoPuntos, error)
	ListarProductosPuntos(ctx context.Context) ([]model.ProductoPuntos, error)
	// AjustarStock applies delta to the stock, floor 0.
	AjustarStock(ctx context.Context, id uuid.UUID, delta int) (*model.ProductoPuntos, error)
}

type productoService struct {
	store    *store.Store
	validate *validator.Validate
}

func NewProductoService(st *store.Store) ProductoService {
	return &productoService{store: st, validate: validator.New()}
}

// ── Productos de venta ────────────────────────────────────────────────────────

func (s *productoService) AgregarProducto(ctx context.Context, req dto.ProductoRequest) (*model.Producto, error) {
	if err := s.validarStruct(req); err != nil {
		return nil, err
	}
	if !req.Precio.IsPositive() {
		return nil, apperror.NewValidation(map[string]string{"Precio": "debe ser mayor a cero"})
	}
	p := &model.Producto{
		Nombre: req.Nombre,
		Precio: req.Precio,
		Imagen: req.Imagen,
	}
	if err := s.store.Productos().Add(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productoService) EliminarProducto(ctx context.Context, id uuid.UUID) error {
	return s.store.Productos().Delete(ctx, id)
}

func (s *productoService) ListarProductos(ctx context.Context) ([]model.Producto, error) {
	return s.store.Productos().GetAll(ctx)
}

// ── Productos de canje ────────────────────────────────────────────────────────

func (s *productoService) AgregarProductoPuntos(ctx context.Context, req dto.ProductoPuntosRequest) (*model.ProductoPuntos, error) {
	if err := s.validarStruct(req); err != nil {
		return nil, err
	}
	p := &model.ProductoPuntos{
		Nombre: req.Nombre,
		Puntos: req.Puntos,
		Stock:  req.Stock,
		Imagen: req.Imagen,
	}
	if err := s.store.ProductosPuntos().Add(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productoService) ListarProductosPuntos(ctx context.Context) ([]model.ProductoPuntos, error) {
	return s.store.ProductosPuntos().GetAll(ctx)
}

func (s *productoService) AjustarStock(ctx context.Context, id uuid.UUID, delta int) (*model.ProductoPuntos, error) {
	p, err := s.store.ProductosPuntos().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Stock += delta
	if p.Stock < 0 {
		p.Stock = 0
	}
	if err := s.store.ProductosPuntos().Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productoService) validarStruct(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}
	return apperror.NewValidation(fields)
}

// montoPositivo valida cantidades de dinero ingresadas manualmente.
func montoPositivo(campo string, monto decimal.Decimal) error {
	if !monto.IsPositive() {
		return apperror.NewValidation(map[string]string{campo: "debe ser mayor a cero"})
	}
	return nil
}

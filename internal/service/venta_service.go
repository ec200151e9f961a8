package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fernando2902/peliculas-catalago/internal/apperror"
	"github.com/fernando2902/peliculas-catalago/internal/model"
	"github.com/fernando2902/peliculas-catalago/internal/store"
)

type VentaService interface {
	// ProcesarVentaComun records an anonymous cash sale. Fails with
	// apperror.ErrMontoInsuficiente when efectivo < total; the cart is
	// cleared on success only.
	ProcesarVentaComun(ctx context.Context, carrito *Carrito, efectivo decimal.Decimal) (*model.Venta, error)
	// ProcesarVentaCliente additionally credits floor(total) puntos to the
	// client and freezes a snapshot of it into the sale.
	ProcesarVentaCliente(ctx context.Context, carrito *Carrito, efectivo decimal.Decimal, clienteID uuid.UUID) (*model.Venta, error)
	// RealizarCanje exchanges puntos for a redemption product: debits the
	// client, decrements stock by one, and appends a canje-typed venta with
	// the before/spent/after balance snapshot.
	RealizarCanje(ctx context.Context, clienteID, productoID uuid.UUID) (*model.Venta, error)
	ListarVentas(ctx context.Context) ([]model.Venta, error)
	HistorialCanjes(ctx context.Context) ([]model.Venta, error)
}

type ventaService struct {
	store *store.Store
	now   func() time.Time
}

func NewVentaService(st *store.Store) VentaService {
	return &ventaService{store: st, now: time.Now}
}

// ── Ventas ────────────────────────────────────────────────────────────────────

func (s *ventaService) ProcesarVentaComun(ctx context.Context, carrito *Carrito, efectivo decimal.Decimal) (*model.Venta, error) {
	venta, err := s.armarVenta(carrito, efectivo)
	if err != nil {
		return nil, err
	}
	venta.Tipo = model.VentaComun

	if err := s.store.Ventas().Add(ctx, venta); err != nil {
		return nil, err
	}
	carrito.Vaciar()
	return venta, nil
}

func (s *ventaService) ProcesarVentaCliente(ctx context.Context, carrito *Carrito, efectivo decimal.Decimal, clienteID uuid.UUID) (*model.Venta, error) {
	cliente, err := s.store.Clientes().Get(ctx, clienteID)
	if err != nil {
		return nil, err
	}

	venta, err := s.armarVenta(carrito, efectivo)
	if err != nil {
		return nil, err
	}

	cliente.Puntos += venta.PuntosGanados
	venta.Tipo = model.VentaCliente
	venta.Cliente = cliente.Snapshot()

	// Each collection persists independently; the caller sequences the
	// writes (see §5 of the data-layer contract).
	if err := s.store.Ventas().Add(ctx, venta); err != nil {
		return nil, err
	}
	if err := s.store.Clientes().Put(ctx, cliente); err != nil {
		return nil, err
	}
	carrito.Vaciar()
	return venta, nil
}

// armarVenta validates the payment and freezes the cart into a venta record.
// The cart itself is untouched; it only empties after a successful persist.
func (s *ventaService) armarVenta(carrito *Carrito, efectivo decimal.Decimal) (*model.Venta, error) {
	if carrito == nil || carrito.Vacio() {
		return nil, apperror.NewValidation(map[string]string{"carrito": "el carrito está vacío"})
	}
	total := carrito.Total()
	if efectivo.LessThan(total) {
		return nil, apperror.ErrMontoInsuficiente
	}
	return &model.Venta{
		Fecha:         s.now(),
		Productos:     carrito.Items(),
		Subtotal:      total,
		Total:         total,
		Efectivo:      efectivo,
		Cambio:        efectivo.Sub(total),
		PuntosGanados: carrito.PuntosAGanar(),
	}, nil
}

// ── Canjes ────────────────────────────────────────────────────────────────────

func (s *ventaService) RealizarCanje(ctx context.Context, clienteID, productoID uuid.UUID) (*model.Venta, error) {
	cliente, err := s.store.Clientes().Get(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	producto, err := s.store.ProductosPuntos().Get(ctx, productoID)
	if err != nil {
		return nil, err
	}

	if cliente.Puntos < producto.Puntos {
		return nil, apperror.ErrPuntosInsuficientes
	}
	if producto.Stock <= 0 {
		return nil, apperror.ErrSinStock
	}

	anteriores := cliente.Puntos
	cliente.Puntos -= producto.Puntos
	producto.Stock--

	canje := &model.Venta{
		Fecha:   s.now(),
		Tipo:    model.VentaCanje,
		Cliente: cliente.Snapshot(),
		Producto: &model.ItemCanje{
			ProductoID: producto.ID,
			Nombre:     producto.Nombre,
			Puntos:     producto.Puntos,
		},
		PuntosAnteriores: anteriores,
		PuntosGastados:   producto.Puntos,
		PuntosRestantes:  cliente.Puntos,
	}

	if err := s.store.Clientes().Put(ctx, cliente); err != nil {
		return nil, err
	}
	if err := s.store.ProductosPuntos().Put(ctx, producto); err != nil {
		return nil, err
	}
	if err := s.store.Ventas().Add(ctx, canje); err != nil {
		return nil, err
	}
	return canje, nil
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *ventaService) ListarVentas(ctx context.Context) ([]model.Venta, error) {
	return s.store.Ventas().GetAll(ctx)
}

func (s *ventaService) HistorialCanjes(ctx context.Context) ([]model.Venta, error) {
	ventas, err := s.store.Ventas().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	canjes := make([]model.Venta, 0)
	for _, v := range ventas {
		if v.Tipo == model.VentaCanje {
			canjes = append(canjes, v)
		}
	}
	return canjes, nil
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fernando2902/peliculas-catalago/internal/apperror"
	"github.com/fernando2902/peliculas-catalago/internal/model"
	"github.com/fernando2902/peliculas-catalago/internal/store"
)

// ReporteAlmacenamiento summarizes store usage: record counts per collection
// and the database file size in bytes.
type ReporteAlmacenamiento struct {
	Ventas          int64 `json:"ventas"`
	Entradas        int64 `json:"entradas"`
	Salidas         int64 `json:"salidas"`
	Productos       int64 `json:"productos"`
	Clientes        int64 `json:"clientes"`
	ProductosPuntos int64 `json:"productosPuntos"`
	TamanoArchivo   int64 `json:"tamanoArchivo"`
}

type RespaldoService interface {
	// ExportarTodo serializes every POS collection into one pretty-printed
	// JSON document, one top-level key per collection.
	ExportarTodo(ctx context.Context, w io.Writer) error
	// ImportarTodo replaces every POS collection with the document's
	// contents, preserving record keys. Fails fast on a non-object top
	// level; the whole reload runs in one transaction, so a failure leaves
	// the previous contents intact.
	ImportarTodo(ctx context.Context, r io.Reader) error
	EspacioAlmacenamiento(ctx context.Context) (*ReporteAlmacenamiento, error)
}

type respaldoService struct {
	store *store.Store
}

func NewRespaldoService(st *store.Store) RespaldoService {
	return &respaldoService{store: st}
}

func (s *respaldoService) ExportarTodo(ctx context.Context, w io.Writer) error {
	respaldo := model.Respaldo{}
	var err error
	if respaldo.Ventas, err = s.store.Ventas().GetAll(ctx); err != nil {
		return err
	}
	if respaldo.Entradas, err = s.store.Entradas().GetAll(ctx); err != nil {
		return err
	}
	if respaldo.Salidas, err = s.store.Salidas().GetAll(ctx); err != nil {
		return err
	}
	if respaldo.Productos, err = s.store.Productos().GetAll(ctx); err != nil {
		return err
	}
	if respaldo.Clientes, err = s.store.Clientes().GetAll(ctx); err != nil {
		return err
	}
	if respaldo.ProductosPuntos, err = s.store.ProductosPuntos().GetAll(ctx); err != nil {
		return err
	}
	if respaldo.CortesDiarios, err = s.store.CortesDiarios().GetAll(ctx); err != nil {
		return err
	}
	if respaldo.ConfigTicket, err = s.store.ConfigTicket().GetAll(ctx); err != nil {
		return err
	}

	data, err := json.MarshalIndent(respaldo, "", "  ")
	if err != nil {
		return fmt.Errorf("exportar respaldo: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func (s *respaldoService) ImportarTodo(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("leer archivo: %w", err)
	}

	// Shape check only: the top level must be an object, one key per
	// collection. Per-record completeness is the exporter's problem.
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return apperror.NewValidation(map[string]string{
			"respaldo": "el archivo no contiene un respaldo válido",
		})
	}

	var respaldo model.Respaldo
	if err := json.Unmarshal(data, &respaldo); err != nil {
		return apperror.NewValidation(map[string]string{
			"respaldo": "el archivo no contiene un respaldo válido",
		})
	}

	return s.store.Transaction(ctx, func(tx *store.Store) error {
		if err := cargarColeccion(ctx, tx.Ventas(), respaldo.Ventas); err != nil {
			return err
		}
		if err := cargarColeccion(ctx, tx.Entradas(), respaldo.Entradas); err != nil {
			return err
		}
		if err := cargarColeccion(ctx, tx.Salidas(), respaldo.Salidas); err != nil {
			return err
		}
		if err := cargarColeccion(ctx, tx.Productos(), respaldo.Productos); err != nil {
			return err
		}
		if err := cargarColeccion(ctx, tx.Clientes(), respaldo.Clientes); err != nil {
			return err
		}
		if err := cargarColeccion(ctx, tx.ProductosPuntos(), respaldo.ProductosPuntos); err != nil {
			return err
		}
		if err := cargarColeccion(ctx, tx.CortesDiarios(), respaldo.CortesDiarios); err != nil {
			return err
		}
		return cargarColeccion(ctx, tx.ConfigTicket(), respaldo.ConfigTicket)
	})
}

// cargarColeccion clears the collection and inserts the records one at a
// time, preserving their original keys.
func cargarColeccion[T any](ctx context.Context, col *store.Collection[T], records []T) error {
	if err := col.Clear(ctx); err != nil {
		return err
	}
	for i := range records {
		if err := col.Add(ctx, &records[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *respaldoService) EspacioAlmacenamiento(ctx context.Context) (*ReporteAlmacenamiento, error) {
	rep := &ReporteAlmacenamiento{TamanoArchivo: s.store.FileSize()}
	var err error
	if rep.Ventas, err = s.store.Ventas().Count(ctx); err != nil {
		return nil, err
	}
	if rep.Entradas, err = s.store.Entradas().Count(ctx); err != nil {
		return nil, err
	}
	if rep.Salidas, err = s.store.Salidas().Count(ctx); err != nil {
		return nil, err
	}
	if rep.Productos, err = s.store.Productos().Count(ctx); err != nil {
		return nil, err
	}
	if rep.Clientes, err = s.store.Clientes().Count(ctx); err != nil {
		return nil, err
	}
	if rep.ProductosPuntos, err = s.store.ProductosPuntos().Count(ctx); err != nil {
		return nil, err
	}
	return rep, nil
}

// Package store implements the embedded record store shared by the catálogo
// and POS applications. Collections are SQLite tables managed by GORM; schema
// creation is idempotent (AutoMigrate creates missing collections and
// advisory lookup indexes, and is a no-op when they already exist).
package store

import (
	"context"
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fernando2902/peliculas-catalago/internal/model"
)

// Store owns every collection. Single process, single writer; per-operation
// atomicity comes from SQLite, multi-record guarantees only where a caller
// opens an explicit transaction.
type Store struct {
	db   *gorm.DB
	path string
}

// Open opens (creating if absent) the database at path and ensures the
// schema. Safe to call on every startup.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Movie{},
		&model.Venta{},
		&model.Entrada{},
		&model.Salida{},
		&model.Producto{},
		&model.Cliente{},
		&model.ProductoPuntos{},
		&model.ConfigTicket{},
		&model.CorteDiario{},
	); err != nil {
		return nil, fmt.Errorf("migrar esquema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// DB exposes the underlying handle so services can open transactions.
func (s *Store) DB() *gorm.DB { return s.db }

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// FileSize reports the on-disk size of the database, 0 when it cannot be
// determined (e.g. in-memory databases).
func (s *Store) FileSize() int64 {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// Transaction runs fn against a Store bound to a single transaction. Used by
// bulk import for its all-or-nothing clear+reload.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, path: s.path})
	})
}

// Typed collection accessors. Key column defaults to id; cortesDiarios uses
// its natural fecha key.

func (s *Store) Movies() *Collection[model.Movie] { return newCollection[model.Movie](s.db, "id") }

func (s *Store) Ventas() *Collection[model.Venta] { return newCollection[model.Venta](s.db, "id") }

func (s *Store) Entradas() *Collection[model.Entrada] {
	return newCollection[model.Entrada](s.db, "id")
}

func (s *Store) Salidas() *Collection[model.Salida] { return newCollection[model.Salida](s.db, "id") }

func (s *Store) Productos() *Collection[model.Producto] {
	return newCollection[model.Producto](s.db, "id")
}

func (s *Store) Clientes() *Collection[model.Cliente] {
	return newCollection[model.Cliente](s.db, "id")
}

func (s *Store) ProductosPuntos() *Collection[model.ProductoPuntos] {
	return newCollection[model.ProductoPuntos](s.db, "id")
}

func (s *Store) ConfigTicket() *Collection[model.ConfigTicket] {
	return newCollection[model.ConfigTicket](s.db, "id")
}

func (s *Store) CortesDiarios() *Collection[model.CorteDiario] {
	return newCollection[model.CorteDiario](s.db, "fecha")
}

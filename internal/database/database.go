// Package database owns the single storage handle shared by every request.
package database

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Collection names.
const (
	Boards = "boards"
	Lists  = "lists"
	Cards  = "cards"
)

// Accessor lazily opens one connection pool and hands the same handle to
// every caller for the lifetime of the process.
type Accessor struct {
	dsn  string
	open func(dsn string) (*gorm.DB, error)

	once sync.Once
	db   *gorm.DB
	err  error
}

func NewAccessor(dsn string) *Accessor {
	return &Accessor{dsn: dsn, open: openPostgres}
}

func openPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

// DB returns the shared handle, opening it on first use. A failed open is
// remembered; the process is expected to exit on it.
func (a *Accessor) DB() (*gorm.DB, error) {
	a.once.Do(func() {
		a.db, a.err = a.open(a.dsn)
		if a.err != nil {
			a.err = fmt.Errorf("failed to connect to DB: %w", a.err)
		}
	})
	return a.db, a.err
}

// Collection returns a query scoped to one of Boards, Lists or Cards.
func (a *Accessor) Collection(ctx context.Context, name string) (*gorm.DB, error) {
	switch name {
	case Boards, Lists, Cards:
	default:
		return nil, fmt.Errorf("unknown collection %q", name)
	}
	db, err := a.DB()
	if err != nil {
		return nil, err
	}
	return db.WithContext(ctx).Table(name), nil
}

// Status describes the database for the health endpoint.
type Status struct {
	Version     string           `json:"version"`
	Collections map[string]int64 `json:"collections"`
}

// Status pings the database and reports its version and document counts.
func (a *Accessor) Status(ctx context.Context) (Status, error) {
	db, err := a.DB()
	if err != nil {
		return Status{}, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return Status{}, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return Status{}, fmt.Errorf("ping: %w", err)
	}

	status := Status{Collections: make(map[string]int64, 3)}
	if err := db.WithContext(ctx).Raw("SELECT version()").Scan(&status.Version).Error; err != nil {
		return Status{}, fmt.Errorf("version: %w", err)
	}
	for _, name := range []string{Boards, Lists, Cards} {
		coll, err := a.Collection(ctx, name)
		if err != nil {
			return Status{}, err
		}
		var n int64
		if err := coll.Count(&n).Error; err != nil {
			return Status{}, fmt.Errorf("count %s: %w", name, err)
		}
		status.Collections[name] = n
	}
	return status, nil
}

// Close releases the pool if it was ever opened.
func (a *Accessor) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

package repository

import (
	"fmt"

	"database/sql"

	"github.com/am-nutrition/storefront/internal/config"
	"github.com/am-nutrition/storefront/internal/telemetry"

	_ "github.com/lib/pq"
)

type Repository struct {
	DB       *sql.DB
	Products ProductRepository
	Orders   OrderRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := telemetry.OpenDB("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:       db,
		Products: NewProductRepo(db),
		Orders:   NewOrderRepo(db),
	}, nil
}

func (r *Repository) Close() error {
	return r.DB.Close()
}

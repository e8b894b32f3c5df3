package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Repository is the single concrete store over the postgres pool. Handlers
// consume it through the narrow per-entity interfaces they declare.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

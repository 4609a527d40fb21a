package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"todo-me/internal/project/repository"
	"todo-me/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a SQLite-backed Repository for projects. Run Migrate on db first.
func New(db *sqlx.DB, l log.Logger) *implRepository {
	if db == nil {
		panic("project/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped prefix for log lines.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("project/repository/sqlite.%s", method)
}

package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	pkgSqlite "todo-me/pkg/sqlite"
)

var migrations = []pkgSqlite.Migration{
	{
		Version: 1,
		SQL: `
CREATE TABLE IF NOT EXISTS projects (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	parent_id   TEXT REFERENCES projects(id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	name_key    TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	color       TEXT NOT NULL DEFAULT '',
	archived    INTEGER NOT NULL DEFAULT 0 CHECK(archived IN (0, 1)),
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_user_parent_name
	ON projects(user_id, COALESCE(parent_id, ''), name_key);
CREATE INDEX IF NOT EXISTS idx_projects_parent_id ON projects(parent_id);
`,
	},
}

// Migrate creates or upgrades the project schema.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	return pkgSqlite.Migrate(ctx, db, migrations)
}

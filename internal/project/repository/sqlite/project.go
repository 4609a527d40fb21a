package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"todo-me/internal/model"
	repo "todo-me/internal/project/repository"
)

const projectColumns = `id, user_id, parent_id, name, description, color, archived, created_at, updated_at`

type projectRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	ParentID    sql.NullString `db:"parent_id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Color       string         `db:"color"`
	Archived    bool           `db:"archived"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (row projectRow) toModel() model.Project {
	return model.Project{
		ID:          row.ID,
		UserID:      row.UserID,
		ParentID:    row.ParentID.String,
		Name:        row.Name,
		Description: row.Description,
		Color:       row.Color,
		Archived:    row.Archived,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// CreateProject inserts a new project row and returns the created entity.
func (r *implRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (model.Project, error) {
	now := time.Now().UTC()
	p := model.Project{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		ParentID:    opt.ParentID,
		Name:        opt.Name,
		Description: opt.Description,
		Color:       opt.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (id, user_id, parent_id, name, name_key, description, color, archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`,
		p.ID, p.UserID, nullString(p.ParentID), p.Name, nameKey(p.Name), p.Description, p.Color, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.Project{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProject"), err)
		return model.Project{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return p, nil
}

// GetOneProject retrieves a single project matching every set filter.
// Root projects sort first, then older ones, so a bare name prefers the top of the tree.
func (r *implRepository) GetOneProject(ctx context.Context, opt repo.GetOneProjectOptions) (model.Project, error) {
	where, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(
		`SELECT %s FROM projects WHERE %s ORDER BY parent_id IS NOT NULL, created_at, id LIMIT 1`,
		projectColumns, where,
	)

	var row projectRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProject"), err)
		return model.Project{}, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return row.toModel(), nil
}

// ListProjects returns a user's projects ordered by name.
func (r *implRepository) ListProjects(ctx context.Context, opt repo.ListProjectsOptions) ([]model.Project, error) {
	where, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE %s ORDER BY name_key, created_at`, projectColumns, where)

	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProjects"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	projects := make([]model.Project, len(rows))
	for i, row := range rows {
		projects[i] = row.toModel()
	}
	return projects, nil
}

// nameKey folds a name for comparison. SQLite's NOCASE only folds ASCII.
func nameKey(name string) string {
	return strings.ToLower(name)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

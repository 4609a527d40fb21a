package sqlite

import (
	"strings"

	repo "todo-me/internal/project/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneProject.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneProjectOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if opt.Name != "" {
		conditions = append(conditions, "name_key = ?")
		args = append(args, nameKey(opt.Name))
	}
	if opt.ByParent {
		if opt.ParentID == "" {
			conditions = append(conditions, "parent_id IS NULL")
		} else {
			conditions = append(conditions, "parent_id = ?")
			args = append(args, opt.ParentID)
		}
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds WHERE clause + args for ListProjects.
func (r *implRepository) buildListQuery(opt repo.ListProjectsOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if !opt.IncludeArchived {
		conditions = append(conditions, "archived = 0")
	}
	return strings.Join(conditions, " AND "), args
}

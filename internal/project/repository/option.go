package repository

// CreateProjectOptions holds parameters for inserting a new project.
type CreateProjectOptions struct {
	UserID      string
	ParentID    string
	Name        string
	Description string
	Color       string
}

// GetOneProjectOptions holds filter parameters for fetching a single project.
// All set fields are applied as AND conditions.
type GetOneProjectOptions struct {
	ID     string
	UserID string
	// Name is compared case-insensitively.
	Name string
	// ByParent restricts the match to children of ParentID; an empty ParentID means root projects.
	ByParent bool
	ParentID string
}

// ListProjectsOptions holds filter parameters for listing projects.
type ListProjectsOptions struct {
	UserID          string
	IncludeArchived bool
}

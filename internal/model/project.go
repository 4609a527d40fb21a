package model

import "time"

// Project groups tasks. Projects nest through ParentID; an empty ParentID is a root project.
type Project struct {
	ID          string
	UserID      string
	ParentID    string
	Name        string
	Description string
	Color       string
	Archived    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsRoot reports whether the project has no parent.
func (p Project) IsRoot() bool {
	return p.ParentID == ""
}

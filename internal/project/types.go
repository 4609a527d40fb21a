package project

import "todo-me/internal/model"

// MaxNameLength bounds project names.
const MaxNameLength = 255

// --- UseCase Inputs ---

type CreateInput struct {
	Name        string
	Description string
	Color       string
	ParentID    string
}

type ListInput struct {
	IncludeArchived bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Project model.Project
}

type ListOutput struct {
	Projects []model.Project
}

type DetailOutput struct {
	Project model.Project
	// Path is the chain of names from the root down to this project.
	Path []string
}

package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"todo-me/internal/project/repository"
	projectSqlite "todo-me/internal/project/repository/sqlite"
	"todo-me/pkg/log"
	"todo-me/pkg/sqlite"
)

func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	db, err := sqlite.Connect(sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := projectSqlite.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return projectSqlite.New(db, log.NewNop())
}

func TestCreateAndGetProject(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	work, err := r.CreateProject(ctx, repository.CreateProjectOptions{UserID: "u1", Name: "Work", Color: "#ff0000"})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	if work.ID == "" || work.CreatedAt.IsZero() {
		t.Fatalf("expected ID and timestamps, got %+v", work)
	}

	reports, err := r.CreateProject(ctx, repository.CreateProjectOptions{UserID: "u1", ParentID: work.ID, Name: "Reports"})
	if err != nil {
		t.Fatalf("CreateProject(child) error = %v", err)
	}

	t.Run("By ID", func(t *testing.T) {
		got, err := r.GetOneProject(ctx, repository.GetOneProjectOptions{ID: reports.ID, UserID: "u1"})
		if err != nil {
			t.Fatalf("GetOneProject() error = %v", err)
		}
		if got.Name != "Reports" || got.ParentID != work.ID || got.Archived {
			t.Errorf("unexpected project: %+v", got)
		}
	})

	t.Run("Name Is Case Insensitive", func(t *testing.T) {
		got, err := r.GetOneProject(ctx, repository.GetOneProjectOptions{UserID: "u1", Name: "WORK"})
		if err != nil {
			t.Fatalf("GetOneProject() error = %v", err)
		}
		if got.ID != work.ID || got.Color != "#ff0000" {
			t.Errorf("expected Work, got %+v", got)
		}
	})

	t.Run("Root Filter", func(t *testing.T) {
		got, err := r.GetOneProject(ctx, repository.GetOneProjectOptions{UserID: "u1", Name: "reports", ByParent: true})
		if err != nil {
			t.Fatalf("GetOneProject() error = %v", err)
		}
		if got.ID != "" {
			t.Errorf("expected no root named reports, got %+v", got)
		}

		got, err = r.GetOneProject(ctx, repository.GetOneProjectOptions{UserID: "u1", Name: "reports", ByParent: true, ParentID: work.ID})
		if err != nil {
			t.Fatalf("GetOneProject() error = %v", err)
		}
		if got.ID != reports.ID {
			t.Errorf("expected Reports under Work, got %+v", got)
		}
	})

	t.Run("Other User Does Not Match", func(t *testing.T) {
		got, err := r.GetOneProject(ctx, repository.GetOneProjectOptions{UserID: "u2", Name: "work"})
		if err != nil {
			t.Fatalf("GetOneProject() error = %v", err)
		}
		if got.ID != "" {
			t.Errorf("expected not found, got %+v", got)
		}
	})

	t.Run("Duplicate Name Under Same Parent", func(t *testing.T) {
		_, err := r.CreateProject(ctx, repository.CreateProjectOptions{UserID: "u1", Name: "work"})
		if !errors.Is(err, repository.ErrDuplicate) {
			t.Errorf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("Same Name For Another User", func(t *testing.T) {
		if _, err := r.CreateProject(ctx, repository.CreateProjectOptions{UserID: "u2", Name: "Work"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestGetOneProject_UnicodeName(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	cafe, err := r.CreateProject(ctx, repository.CreateProjectOptions{UserID: "u1", Name: "Café"})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	for _, name := range []string{"Café", "café", "CAFÉ"} {
		got, err := r.GetOneProject(ctx, repository.GetOneProjectOptions{UserID: "u1", Name: name})
		if err != nil {
			t.Fatalf("GetOneProject(%q) error = %v", name, err)
		}
		if got.ID != cafe.ID || got.Name != "Café" {
			t.Errorf("GetOneProject(%q) = %+v, want Café", name, got)
		}
	}

	if _, err := r.CreateProject(ctx, repository.CreateProjectOptions{UserID: "u1", Name: "CAFÉ"}); !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate for CAFÉ, got %v", err)
	}
}

func TestListProjects(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	for _, name := range []string{"zeta", "Alpha", "beta"} {
		if _, err := r.CreateProject(ctx, repository.CreateProjectOptions{UserID: "u1", Name: name}); err != nil {
			t.Fatalf("CreateProject(%s) error = %v", name, err)
		}
	}
	if _, err := r.CreateProject(ctx, repository.CreateProjectOptions{UserID: "u2", Name: "other"}); err != nil {
		t.Fatalf("CreateProject(other) error = %v", err)
	}

	got, err := r.ListProjects(ctx, repository.ListProjectsOptions{UserID: "u1"})
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	want := []string{"Alpha", "beta", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("expected %d projects, got %d", len(want), len(got))
	}
	for i, p := range got {
		if p.Name != want[i] {
			t.Errorf("projects[%d] = %q, want %q", i, p.Name, want[i])
		}
	}
}

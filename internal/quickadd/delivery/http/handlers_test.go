package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"todo-me/internal/model"
	"todo-me/internal/quickadd"
	quickaddHTTP "todo-me/internal/quickadd/delivery/http"
	"todo-me/pkg/log"
	"todo-me/pkg/nlparse"
)

type mockUseCase struct {
	gotScope model.Scope
	gotInput quickadd.ParseInput
	out      quickadd.ParseOutput
	err      error
}

func (m *mockUseCase) Parse(ctx context.Context, sc model.Scope, input quickadd.ParseInput) (quickadd.ParseOutput, error) {
	m.gotScope = sc
	m.gotInput = input
	return m.out, m.err
}

func serve(t *testing.T, uc quickadd.UseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	ctx := model.SetScopeToContext(req.Context(), model.Scope{UserID: "alice"})
	c.Request = req.WithContext(ctx)

	quickaddHTTP.New(log.NewNop(), uc).Parse(c)
	return w
}

func TestParse(t *testing.T) {
	date := time.Date(2026, 10, 20, 17, 0, 0, 0, time.UTC)
	uc := &mockUseCase{out: quickadd.ParseOutput{
		Title:    "Buy milk",
		Timezone: "UTC",
		Date:     &nlparse.DateResult{Date: date, Time: "17:00", HasTime: true, OriginalText: "tomorrow at 5pm", Start: 9, End: 24},
		Priority: &nlparse.PriorityResult{Priority: 1, Valid: true, OriginalText: "p1", Start: 25, End: 27},
		Project:  &nlparse.ProjectResult{OriginalText: "#garden", Path: []string{"garden"}, Start: 28, End: 35},
		Highlights: []quickadd.Highlight{
			{Kind: quickadd.KindDate, Text: "tomorrow at 5pm", Start: 9, End: 24},
		},
		Warnings: []string{quickadd.WarningUnknownProject},
	}}

	w := serve(t, uc, `{"text":"Buy milk tomorrow at 5pm p1 #garden","start_of_week":1,"date_format":"dmy","now":"2026-10-19T15:30:00Z"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}

	if uc.gotScope.UserID != "alice" {
		t.Errorf("scope user = %q", uc.gotScope.UserID)
	}
	if uc.gotInput.StartOfWeek == nil || *uc.gotInput.StartOfWeek != 1 {
		t.Errorf("StartOfWeek = %v", uc.gotInput.StartOfWeek)
	}
	if uc.gotInput.DateFormat != "dmy" {
		t.Errorf("DateFormat = %q", uc.gotInput.DateFormat)
	}
	if !uc.gotInput.Now.Equal(time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)) {
		t.Errorf("Now = %v", uc.gotInput.Now)
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Title string `json:"title"`
			Date  struct {
				Date     string `json:"date"`
				DateTime string `json:"datetime"`
				Time     string `json:"time"`
			} `json:"date"`
			Project struct {
				Found bool    `json:"found"`
				ID    *string `json:"id"`
				Name  string  `json:"name"`
			} `json:"project"`
			Warnings []string `json:"warnings"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Success || body.Data.Title != "Buy milk" {
		t.Errorf("body = %+v", body)
	}
	if body.Data.Date.Date != "2026-10-20" || body.Data.Date.DateTime != "2026-10-20T17:00:00Z" || body.Data.Date.Time != "17:00" {
		t.Errorf("date = %+v", body.Data.Date)
	}
	if body.Data.Project.Found || body.Data.Project.ID != nil || body.Data.Project.Name != "garden" {
		t.Errorf("project = %+v", body.Data.Project)
	}
	if len(body.Data.Warnings) != 1 || body.Data.Warnings[0] != quickadd.WarningUnknownProject {
		t.Errorf("warnings = %v", body.Data.Warnings)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ucErr    error
		wantCode int
	}{
		{name: "malformed json", body: `{"text":`, wantCode: http.StatusBadRequest},
		{name: "missing text", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "empty input", body: `{"text":"  "}`, ucErr: quickadd.ErrEmptyInput, wantCode: http.StatusUnprocessableEntity},
		{name: "invalid options", body: `{"text":"x","timezone":"Mars/Base"}`, ucErr: quickadd.ErrInvalidOptions, wantCode: http.StatusUnprocessableEntity},
		{name: "lookup failure", body: `{"text":"x #work"}`, ucErr: context.DeadlineExceeded, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, &mockUseCase{err: tt.ucErr}, tt.body)
			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d, body = %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

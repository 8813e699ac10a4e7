package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/linity/todo-api/internal/core/domain"
	"github.com/linity/todo-api/internal/core/ports"
)

type stubTodoService struct {
	listFn   func(ctx context.Context, owner string, filter ports.TodoFilter) ([]*domain.Todo, error)
	createFn func(ctx context.Context, owner, title string, completed bool) (*domain.Todo, error)
	getFn    func(ctx context.Context, owner string, id int64) (*domain.Todo, error)
	updateFn func(ctx context.Context, owner string, id int64, patch ports.TodoPatch) (*domain.Todo, error)
	deleteFn func(ctx context.Context, owner string, id int64) error
}

func (s *stubTodoService) List(ctx context.Context, owner string, filter ports.TodoFilter) ([]*domain.Todo, error) {
	return s.listFn(ctx, owner, filter)
}

func (s *stubTodoService) Create(ctx context.Context, owner, title string, completed bool) (*domain.Todo, error) {
	return s.createFn(ctx, owner, title, completed)
}

func (s *stubTodoService) Get(ctx context.Context, owner string, id int64) (*domain.Todo, error) {
	return s.getFn(ctx, owner, id)
}

func (s *stubTodoService) Update(ctx context.Context, owner string, id int64, patch ports.TodoPatch) (*domain.Todo, error) {
	return s.updateFn(ctx, owner, id, patch)
}

func (s *stubTodoService) Delete(ctx context.Context, owner string, id int64) error {
	return s.deleteFn(ctx, owner, id)
}

// newTodoContext builds an authenticated context the way the session
// middleware would leave it: with the owner's username already set.
func newTodoContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("username", "alice")
	return c, rec
}

func TestListForwardsFilter(t *testing.T) {
	var gotOwner string
	var gotFilter ports.TodoFilter
	svc := &stubTodoService{
		listFn: func(_ context.Context, owner string, filter ports.TodoFilter) ([]*domain.Todo, error) {
			gotOwner = owner
			gotFilter = filter
			return []*domain.Todo{{ID: 1, Title: "buy milk", Completed: true, OwnerID: 7}}, nil
		},
	}
	h := NewTodoHandler(svc)

	c, rec := newTodoContext(t, http.MethodGet, "/todos?completed=true&search=milk", "")
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if gotOwner != "alice" {
		t.Errorf("expected owner %q, got %q", "alice", gotOwner)
	}
	if gotFilter.Completed == nil || !*gotFilter.Completed {
		t.Errorf("expected completed filter true, got %+v", gotFilter.Completed)
	}
	if gotFilter.Search != "milk" {
		t.Errorf("expected search %q, got %q", "milk", gotFilter.Search)
	}

	var resp []todoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Title != "buy milk" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestListNoFilter(t *testing.T) {
	svc := &stubTodoService{
		listFn: func(_ context.Context, _ string, filter ports.TodoFilter) ([]*domain.Todo, error) {
			if filter.Completed != nil || filter.Search != "" {
				t.Errorf("expected empty filter, got %+v", filter)
			}
			return []*domain.Todo{}, nil
		},
	}
	h := NewTodoHandler(svc)

	c, rec := newTodoContext(t, http.MethodGet, "/todos", "")
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// empty list renders as [], never null
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %s", got)
	}
}

func TestListBadCompletedValue(t *testing.T) {
	svc := &stubTodoService{
		listFn: func(context.Context, string, ports.TodoFilter) ([]*domain.Todo, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewTodoHandler(svc)

	c, _ := newTodoContext(t, http.MethodGet, "/todos?completed=banana", "")
	err := h.List(c)
	assertHandlerHTTPError(t, err, http.StatusBadRequest)
}

func TestCreateDefaultsToIncomplete(t *testing.T) {
	svc := &stubTodoService{
		createFn: func(_ context.Context, owner, title string, completed bool) (*domain.Todo, error) {
			if owner != "alice" || title != "buy milk" || completed {
				t.Errorf("unexpected args: %s %s %v", owner, title, completed)
			}
			return &domain.Todo{ID: 1, Title: title, Completed: completed, OwnerID: 7}, nil
		},
	}
	h := NewTodoHandler(svc)

	c, rec := newTodoContext(t, http.MethodPost, "/todos", `{"title":"buy milk"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp todoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != 1 || resp.Completed {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCreateMissingTitle(t *testing.T) {
	svc := &stubTodoService{
		createFn: func(context.Context, string, string, bool) (*domain.Todo, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewTodoHandler(svc)

	c, _ := newTodoContext(t, http.MethodPost, "/todos", `{"completed":true}`)
	err := h.Create(c)
	assertHandlerHTTPError(t, err, http.StatusBadRequest)
}

func TestCreateOwnerAccountGone(t *testing.T) {
	svc := &stubTodoService{
		createFn: func(context.Context, string, string, bool) (*domain.Todo, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewTodoHandler(svc)

	c, _ := newTodoContext(t, http.MethodPost, "/todos", `{"title":"buy milk"}`)
	err := h.Create(c)
	assertHandlerHTTPError(t, err, http.StatusUnauthorized)
}

func TestGetNotFound(t *testing.T) {
	svc := &stubTodoService{
		getFn: func(context.Context, string, int64) (*domain.Todo, error) {
			return nil, domain.ErrTodoNotFound
		},
	}
	h := NewTodoHandler(svc)

	c, _ := newTodoContext(t, http.MethodGet, "/todos/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	err := h.Get(c)
	assertHandlerHTTPError(t, err, http.StatusNotFound)
}

func TestGetInvalidID(t *testing.T) {
	svc := &stubTodoService{
		getFn: func(context.Context, string, int64) (*domain.Todo, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewTodoHandler(svc)

	c, _ := newTodoContext(t, http.MethodGet, "/todos/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	err := h.Get(c)
	assertHandlerHTTPError(t, err, http.StatusBadRequest)
}

func TestUpdatePartialPatch(t *testing.T) {
	var gotPatch ports.TodoPatch
	svc := &stubTodoService{
		updateFn: func(_ context.Context, owner string, id int64, patch ports.TodoPatch) (*domain.Todo, error) {
			if owner != "alice" || id != 42 {
				t.Errorf("unexpected args: %s %d", owner, id)
			}
			gotPatch = patch
			return &domain.Todo{ID: 42, Title: "buy milk", Completed: true, OwnerID: 7}, nil
		},
	}
	h := NewTodoHandler(svc)

	c, rec := newTodoContext(t, http.MethodPut, "/todos/42", `{"completed":true}`)
	c.SetParamNames("id")
	c.SetParamValues("42")
	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if gotPatch.Title != nil {
		t.Errorf("expected nil title in patch, got %q", *gotPatch.Title)
	}
	if gotPatch.Completed == nil || !*gotPatch.Completed {
		t.Errorf("expected completed=true in patch, got %+v", gotPatch.Completed)
	}
}

func TestUpdateEmptyPatch(t *testing.T) {
	svc := &stubTodoService{
		updateFn: func(_ context.Context, _ string, _ int64, patch ports.TodoPatch) (*domain.Todo, error) {
			if patch.Title != nil || patch.Completed != nil {
				t.Errorf("expected empty patch, got %+v", patch)
			}
			return &domain.Todo{ID: 42, Title: "unchanged", OwnerID: 7}, nil
		},
	}
	h := NewTodoHandler(svc)

	// an empty body is a valid no-op update
	c, rec := newTodoContext(t, http.MethodPut, "/todos/42", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("42")
	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := &stubTodoService{
		updateFn: func(context.Context, string, int64, ports.TodoPatch) (*domain.Todo, error) {
			return nil, domain.ErrTodoNotFound
		},
	}
	h := NewTodoHandler(svc)

	c, _ := newTodoContext(t, http.MethodPut, "/todos/42", `{"title":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("42")
	err := h.Update(c)
	assertHandlerHTTPError(t, err, http.StatusNotFound)
}

func TestDeleteSuccess(t *testing.T) {
	var gotID int64
	svc := &stubTodoService{
		deleteFn: func(_ context.Context, owner string, id int64) error {
			if owner != "alice" {
				t.Errorf("expected owner %q, got %q", "alice", owner)
			}
			gotID = id
			return nil
		},
	}
	h := NewTodoHandler(svc)

	c, rec := newTodoContext(t, http.MethodDelete, "/todos/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", rec.Code)
	}
	if gotID != 42 {
		t.Errorf("expected id 42, got %d", gotID)
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc := &stubTodoService{
		deleteFn: func(context.Context, string, int64) error {
			return domain.ErrTodoNotFound
		},
	}
	h := NewTodoHandler(svc)

	c, _ := newTodoContext(t, http.MethodDelete, "/todos/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	err := h.Delete(c)
	assertHandlerHTTPError(t, err, http.StatusNotFound)
}

func TestHandlersRejectMissingIdentity(t *testing.T) {
	h := NewTodoHandler(&stubTodoService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec) // no username set

	err := h.List(c)
	assertHandlerHTTPError(t, err, http.StatusUnauthorized)
}

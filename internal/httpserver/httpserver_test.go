package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"shopping-list/config"
	"shopping-list/internal/middleware"
	"shopping-list/internal/model"
	"shopping-list/internal/notification"
	"shopping-list/internal/shoppinglist"
	"shopping-list/internal/shoppinglist/projection"
	"shopping-list/pkg/log"
)

type stubUseCase struct {
	loading bool
}

func (s *stubUseCase) Load(ctx context.Context) error  { return nil }
func (s *stubUseCase) Close(ctx context.Context) error { return nil }
func (s *stubUseCase) Add(ctx context.Context, in shoppinglist.AddItemInput) (model.ShoppingItem, error) {
	return model.ShoppingItem{}, nil
}
func (s *stubUseCase) Edit(ctx context.Context, in shoppinglist.EditItemInput) (model.ShoppingItem, error) {
	return model.ShoppingItem{}, nil
}
func (s *stubUseCase) Delete(ctx context.Context, id string) error { return nil }
func (s *stubUseCase) Toggle(ctx context.Context, id string) (model.ShoppingItem, error) {
	return model.ShoppingItem{}, nil
}
func (s *stubUseCase) Import(ctx context.Context, in shoppinglist.ImportInput) (shoppinglist.ImportOutput, error) {
	return shoppinglist.ImportOutput{}, nil
}
func (s *stubUseCase) Export(ctx context.Context, in shoppinglist.ExportInput) (string, error) {
	return "", nil
}
func (s *stubUseCase) List(ctx context.Context, in shoppinglist.ListItemsInput) (shoppinglist.ListItemsOutput, error) {
	return shoppinglist.ListItemsOutput{}, nil
}
func (s *stubUseCase) Stats(ctx context.Context) projection.Stats { return projection.Stats{} }
func (s *stubUseCase) State(ctx context.Context) shoppinglist.StateOutput {
	return shoppinglist.StateOutput{Loading: s.loading}
}
func (s *stubUseCase) Notifications(ctx context.Context) []notification.Notification { return nil }
func (s *stubUseCase) DismissError(ctx context.Context)                              {}
func (s *stubUseCase) DismissNotification(ctx context.Context, id string) error {
	return nil
}

func newTestServer(t *testing.T, uc shoppinglist.UseCase) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "test",
		Middleware:     middleware.New(l, config.RateLimitConfig{}),
		ShoppingListUC: uc,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func get(srv *HTTPServer, path string) int {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w.Code
}

func TestSystemRoutes(t *testing.T) {
	uc := &stubUseCase{loading: true}
	srv := newTestServer(t, uc)

	if code := get(srv, "/health"); code != http.StatusOK {
		t.Errorf("/health: expected 200, got %d", code)
	}
	if code := get(srv, "/live"); code != http.StatusOK {
		t.Errorf("/live: expected 200, got %d", code)
	}
	if code := get(srv, "/ready"); code != http.StatusServiceUnavailable {
		t.Errorf("/ready while loading: expected 503, got %d", code)
	}

	uc.loading = false
	if code := get(srv, "/ready"); code != http.StatusOK {
		t.Errorf("/ready: expected 200, got %d", code)
	}
}

func TestDomainRoutes(t *testing.T) {
	srv := newTestServer(t, &stubUseCase{})
	if code := get(srv, "/api/v1/shopping-list/items"); code != http.StatusOK {
		t.Errorf("expected 200, got %d", code)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode}); err == nil {
		t.Error("expected error without a usecase")
	}
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode, ShoppingListUC: &stubUseCase{}}); err == nil {
		t.Error("expected error without a port")
	}
}

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authhttp "github.com/akovalyov/authcore/internal/auth/http"
	"github.com/akovalyov/authcore/internal/auth/identity"
	"github.com/akovalyov/authcore/internal/common/clock"
	userdomain "github.com/akovalyov/authcore/internal/user/domain"
)

func newMiddlewareFixture(t *testing.T, lookup *mockUserLookup) (*identity.Resolver, string) {
	t.Helper()

	mockClock := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	svc := newTokenService(t, mockClock)
	resolver := identity.NewResolver(svc, lookup, newTestLogger(t))

	raw, err := svc.IssueAccessToken("user-123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return resolver, raw
}

func TestRequireUser_MissingAuthorization(t *testing.T) {
	resolver, _ := newMiddlewareFixture(t, &mockUserLookup{})

	handler := authhttp.RequireUser(resolver, newTestLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireUser_InvalidToken(t *testing.T) {
	resolver, _ := newMiddlewareFixture(t, &mockUserLookup{})

	handler := authhttp.RequireUser(resolver, newTestLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireUser_InactiveUser(t *testing.T) {
	lookup := &mockUserLookup{
		findByIDFunc: func(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
			return userdomain.User{ID: id, IsActive: false}, nil
		},
	}
	resolver, raw := newMiddlewareFixture(t, lookup)

	handler := authhttp.RequireUser(resolver, newTestLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestRequireUser_Success(t *testing.T) {
	lookup := &mockUserLookup{
		findByIDFunc: func(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
			return activeUser(string(id)), nil
		},
	}
	resolver, raw := newMiddlewareFixture(t, lookup)

	var gotUser userdomain.User
	handler := authhttp.RequireUser(resolver, newTestLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := authhttp.UserFromContext(r.Context())
		if !ok {
			t.Error("expected user in context")
		}
		gotUser = user
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUser.ID != "user-123" {
		t.Errorf("expected user-123 in context, got %s", gotUser.ID)
	}
}

func TestRequireSuperuser_Denied(t *testing.T) {
	lookup := &mockUserLookup{
		findByIDFunc: func(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
			return activeUser(string(id)), nil
		},
	}
	resolver, raw := newMiddlewareFixture(t, lookup)

	handler := authhttp.RequireSuperuser(resolver, newTestLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
	req.Header.Set("Authorization", "Bearer "+raw)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

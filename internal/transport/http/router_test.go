package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"portfolio/internal/domain"
	"portfolio/internal/observability/metrics"
	"portfolio/internal/service/impl"
	"portfolio/internal/store"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	metrics.MustRegister("portfolio-test")
	os.Exit(m.Run())
}

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Portfolio{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	st := store.New(db)
	pw := impl.NewPasswordServiceArgon2id()
	ts := impl.NewTokenServiceHS256(impl.TokenConfig{
		Issuer:     "http://localhost:3002",
		Audience:   "portfolio-client",
		AccessTTL:  time.Hour,
		SigningKey: []byte("test-secret"),
	})
	users := impl.NewUserServiceImpl(st, pw, ts)
	portfolios := impl.NewPortfolioServiceImpl(st)

	return NewRouter(users, portfolios, ts, RouterConfig{})
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, out
}

func registerAndLogin(t *testing.T, h http.Handler, email string) string {
	t.Helper()

	rec, out := do(t, h, http.MethodPost, "/auth/register", "", map[string]any{
		"email":    email,
		"password": "password123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	data := out["data"].(map[string]any)
	token, _ := data["accessToken"].(string)
	if token == "" {
		t.Fatal("register response carries no access token")
	}
	return token
}

func TestHealthz(t *testing.T) {
	h := setupRouter(t)
	rec, _ := do(t, h, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthz: got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRegisterEnvelopeShape(t *testing.T) {
	h := setupRouter(t)

	rec, out := do(t, h, http.MethodPost, "/auth/register", "", map[string]any{
		"email":    "shape@example.com",
		"password": "password123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if out["statusCode"] != float64(http.StatusCreated) {
		t.Fatalf("statusCode: got %v", out["statusCode"])
	}
	if out["message"] != "Operation successfully!" {
		t.Fatalf("message: got %v", out["message"])
	}
	if ts, _ := out["timestamp"].(string); ts == "" {
		t.Fatal("timestamp missing")
	}

	data := out["data"].(map[string]any)
	user := data["user"].(map[string]any)
	if user["email"] != "shape@example.com" {
		t.Fatalf("user email: got %v", user["email"])
	}
	if _, leaked := user["password"]; leaked {
		t.Fatal("password must never be serialized")
	}
	if data["expiresIn"] != float64(3600) {
		t.Fatalf("expiresIn: got %v", data["expiresIn"])
	}
}

func TestLoginAndMe(t *testing.T) {
	h := setupRouter(t)
	registerAndLogin(t, h, "me@example.com")

	rec, out := do(t, h, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "me@example.com",
		"password": "password123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	token := out["data"].(map[string]any)["accessToken"].(string)

	rec, out = do(t, h, http.MethodGet, "/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if out["data"].(map[string]any)["email"] != "me@example.com" {
		t.Fatalf("me: wrong identity: %v", out["data"])
	}

	rec, _ = do(t, h, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "me@example.com",
		"password": "wrong-password",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", rec.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	h := setupRouter(t)

	for _, tc := range []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"garbage", "not-a-jwt"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec, out := do(t, h, http.MethodGet, "/portfolios/", tc.token, nil)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if out["error"] != http.StatusText(http.StatusUnauthorized) {
				t.Fatalf("error field: got %v", out["error"])
			}
		})
	}
}

func TestPortfolioLifecycle(t *testing.T) {
	h := setupRouter(t)
	token := registerAndLogin(t, h, "lifecycle@example.com")

	rec, out := do(t, h, http.MethodPost, "/portfolios/", token, map[string]any{
		"name": "Lifecycle",
		"slug": "lifecycle-portfolio",
		"sections": []map[string]any{
			{"id": "hero-1", "type": "hero", "order": 0, "visible": true, "data": map[string]any{"title": "Hi"}},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	id := out["data"].(map[string]any)["id"].(string)

	rec, out = do(t, h, http.MethodGet, "/portfolios/", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	if got := len(out["data"].([]any)); got != 1 {
		t.Fatalf("list: expected 1 portfolio, got %d", got)
	}

	rec, _ = do(t, h, http.MethodGet, "/portfolios/"+id, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	// Unpublished portfolios never surface on the public path.
	public := "/portfolios/public?slug=lifecycle-portfolio&name=Lifecycle"
	rec, _ = do(t, h, http.MethodGet, public, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("public unpublished: expected 404, got %d", rec.Code)
	}

	rec, out = do(t, h, http.MethodPatch, "/portfolios/"+id+"/publish", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("publish: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if out["data"].(map[string]any)["published"] != true {
		t.Fatal("publish toggle did not flip the flag")
	}

	rec, out = do(t, h, http.MethodGet, public, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("public published: expected 200, got %d", rec.Code)
	}
	// The 404 hit above already moved the counter once.
	if views := out["data"].(map[string]any)["views"].(float64); views != 2 {
		t.Fatalf("views: expected 2, got %v", views)
	}

	rec, out = do(t, h, http.MethodDelete, "/portfolios/"+id, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	if out["data"].(map[string]any)["status"] != string(domain.StatusDeleted) {
		t.Fatalf("delete must return the tombstoned record: %v", out["data"])
	}

	rec, _ = do(t, h, http.MethodGet, "/portfolios/"+id, token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestCrossUserAccessIsForbidden(t *testing.T) {
	h := setupRouter(t)
	aliceToken := registerAndLogin(t, h, "alice@example.com")
	bobToken := registerAndLogin(t, h, "bob@example.com")

	rec, out := do(t, h, http.MethodPost, "/portfolios/", aliceToken, map[string]any{
		"name": "Alice", "slug": "alice-portfolio",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rec.Code)
	}
	id := out["data"].(map[string]any)["id"].(string)

	for _, tc := range []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, "/portfolios/" + id, nil},
		{http.MethodPatch, "/portfolios/" + id, map[string]any{"name": "Hijacked"}},
		{http.MethodDelete, "/portfolios/" + id, nil},
		{http.MethodPatch, "/portfolios/" + id + "/publish", nil},
	} {
		rec, _ := do(t, h, tc.method, tc.path, bobToken, tc.body)
		if rec.Code != http.StatusForbidden {
			t.Errorf("%s %s: expected 403, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestValidationErrorEnvelope(t *testing.T) {
	h := setupRouter(t)

	rec, out := do(t, h, http.MethodPost, "/auth/register", "", map[string]any{
		"email":    "not-an-email",
		"password": "password123",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if out["error"] != http.StatusText(http.StatusBadRequest) {
		t.Fatalf("error field: got %v", out["error"])
	}
	if msg, _ := out["message"].(string); msg == "" || msg == "Database operation failed" {
		t.Fatalf("validation message must survive sanitization, got %q", msg)
	}
}

func TestDuplicateEmailConflict(t *testing.T) {
	h := setupRouter(t)
	registerAndLogin(t, h, "dup@example.com")

	rec, _ := do(t, h, http.MethodPost, "/auth/register", "", map[string]any{
		"email":    "dup@example.com",
		"password": "password123",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestUserProfileRoutes(t *testing.T) {
	h := setupRouter(t)
	token := registerAndLogin(t, h, "profile@example.com")

	rec, out := do(t, h, http.MethodPatch, "/users/profile", token, map[string]any{
		"name": "Profiled",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if out["data"].(map[string]any)["name"] != "Profiled" {
		t.Fatalf("name not applied: %v", out["data"])
	}

	rec, out = do(t, h, http.MethodGet, "/users/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	if out["data"].(map[string]any)["email"] != "profile@example.com" {
		t.Fatalf("profile email: %v", out["data"])
	}

	rec, _ = do(t, h, http.MethodDelete, "/users/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}

	// The account is tombstoned: the still-valid token resolves to nothing.
	rec, _ = do(t, h, http.MethodGet, "/users/profile", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestInvalidPortfolioID(t *testing.T) {
	h := setupRouter(t)
	token := registerAndLogin(t, h, "badid@example.com")

	rec, _ := do(t, h, http.MethodGet, "/portfolios/not-a-uuid", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Interiores-api/internal/application/usecase"
	"github.com/jhoicas/Interiores-api/internal/domain/budget"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Interiores-api/internal/interfaces/http"
)

// memUsers repositorio de usuarios en memoria.
type memUsers struct {
	mu    sync.Mutex
	items map[string]*entity.User
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.items == nil {
		m.items = map[string]*entity.User{}
	}
	cp := *u
	m.items[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.items[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Update(ctx context.Context, u *entity.User) error { return m.Create(ctx, u) }

func (m *memUsers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *memUsers) List(_ context.Context, _ repository.UserFilter) ([]*entity.User, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.User, 0, len(m.items))
	for _, u := range m.items {
		cp := *u
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (m *memUsers) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items), nil
}

// quotaLimiter deja pasar n peticiones por clave.
type quotaLimiter struct {
	mu   sync.Mutex
	n    int
	seen map[string]int
}

func (q *quotaLimiter) Allow(_ context.Context, key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.seen == nil {
		q.seen = map[string]int{}
	}
	q.seen[key]++
	return q.seen[key] <= q.n
}

// newAPI monta el router completo; solo auth y calculadora tienen dependencias reales.
func newAPI(limiter apphttp.RateLimiter) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       testAuthUC(&memUsers{}),
		CalculatorUC: usecase.NewCalculatorUseCase(budget.DefaultRateTable()),
		Cookie:       apphttp.CookieOptions{Name: testCookie},
		LoginLimiter: limiter,
	})
	return app
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

const registerBody = `{"email":"Ana@Example.com","password":"secreto123","name":"Ana"}`

func TestRouter_RegisterMeLogout(t *testing.T) {
	app := newAPI(nil)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", strings.NewReader(registerBody))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ck := sessionCookie(resp)
	require.NotNil(t, ck, "el registro abre sesión")
	assert.True(t, ck.HttpOnly)
	assert.NotEmpty(t, ck.Value)
	env := decode(t, resp)
	assert.True(t, env.Success)

	resp = doRequest(t, app, http.MethodGet, "/api/auth/me", nil, withCookie(ck.Value))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &me))
	assert.Equal(t, "ana@example.com", me.Email)
	assert.Equal(t, "CUSTOMER", me.Role)

	resp = doRequest(t, app, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cleared := sessionCookie(resp)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestRouter_RegisterDuplicadoYLoginFallido(t *testing.T) {
	app := newAPI(nil)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", strings.NewReader(registerBody))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/auth/register", strings.NewReader(registerBody))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", decode(t, resp).Code)

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"ana@example.com","password":"incorrecta"}`))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decode(t, resp).Code)

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"ana@example.com","password":"secreto123"}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, sessionCookie(resp))
}

func TestRouter_RegisterValidacion(t *testing.T) {
	resp := doRequest(t, newAPI(nil), http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"no-es-email","password":"corta"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env := decode(t, resp)
	assert.Equal(t, "VALIDATION", env.Code)
	fields := map[string]bool{}
	for _, f := range env.Errors {
		fields[f.Field] = true
	}
	assert.True(t, fields["email"])
	assert.True(t, fields["password"])
	assert.True(t, fields["name"])
}

func TestRouter_LoginLimitado(t *testing.T) {
	app := newAPI(&quotaLimiter{n: 2})
	body := `{"email":"nadie@example.com","password":"secreto123"}`
	for i := 0; i < 2; i++ {
		resp := doRequest(t, app, http.MethodPost, "/api/auth/login", strings.NewReader(body))
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	}
	resp := doRequest(t, app, http.MethodPost, "/api/auth/login", strings.NewReader(body))
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "RATE_LIMITED", decode(t, resp).Code)

	// El registro no pasa por el limitador.
	resp = doRequest(t, app, http.MethodPost, "/api/auth/register", strings.NewReader(registerBody))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRouter_Calculadora(t *testing.T) {
	app := newAPI(nil)

	resp := doRequest(t, app, http.MethodPost, "/api/calculator/estimate",
		strings.NewReader(`{"dimensions":{"length":10,"width":10},"roomType":"KITCHEN"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var est struct {
		TotalCost    string `json:"totalCost"`
		TimeEstimate int    `json:"timeEstimate"`
	}
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &est))
	assert.Equal(t, "10050", est.TotalCost)
	assert.Equal(t, 21, est.TimeEstimate)

	resp = doRequest(t, app, http.MethodPost, "/api/calculator/estimate",
		strings.NewReader(`{"dimensions":{"length":0,"width":10},"roomType":"KITCHEN"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/calculator/rates", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_PermisosPorRuta(t *testing.T) {
	app := newAPI(nil)
	customer := withBearer(tokenForRole(t, entity.RoleCustomer))
	designer := withBearer(tokenForRole(t, entity.RoleDesigner))

	cases := []struct {
		name   string
		method string
		path   string
		opts   []reqOpt
		want   int
	}{
		{"crear categoría anónimo", http.MethodPost, "/api/categories", nil, http.StatusUnauthorized},
		{"crear categoría cliente", http.MethodPost, "/api/categories", []reqOpt{customer}, http.StatusForbidden},
		{"crear producto diseñador", http.MethodPost, "/api/products", []reqOpt{designer}, http.StatusForbidden},
		{"pedidos anónimo", http.MethodGet, "/api/orders", nil, http.StatusUnauthorized},
		{"borrar pedido cliente", http.MethodDelete, "/api/orders/00000000-0000-4000-8000-000000000009", []reqOpt{customer}, http.StatusForbidden},
		{"listar usuarios diseñador", http.MethodGet, "/api/users", []reqOpt{designer}, http.StatusForbidden},
		{"subir imagen cliente", http.MethodPost, "/api/upload", []reqOpt{customer}, http.StatusForbidden},
		{"crear idea cliente", http.MethodPost, "/api/design-ideas", []reqOpt{customer}, http.StatusForbidden},
		{"panel diseñador", http.MethodGet, "/api/admin/dashboard", []reqOpt{designer}, http.StatusForbidden},
		{"asesorías anónimo", http.MethodGet, "/api/consultations/availability", nil, http.StatusUnauthorized},
		{"checkout anónimo", http.MethodPost, "/api/checkout", nil, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, tc.method, tc.path, nil, tc.opts...)
			defer resp.Body.Close()
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestRouter_IDNoUUIDEs400(t *testing.T) {
	resp := doRequest(t, newAPI(nil), http.MethodGet, "/api/products/mesa-roble", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env := decode(t, resp)
	assert.Equal(t, "VALIDATION", env.Code)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "id", env.Errors[0].Field)
}

func TestRouter_RutaInexistente(t *testing.T) {
	resp := doRequest(t, newAPI(nil), http.MethodGet, "/api/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode(t, resp).Code)
}

package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Interiores-api/internal/application/ports"
	"github.com/jhoicas/Interiores-api/internal/application/usecase"
	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
)

// store estado compartido por todos los repos en memoria.
type store struct {
	mu            sync.Mutex
	categories    map[string]*entity.Category
	products      map[string]*entity.Product
	orders        map[string]*entity.Order
	consultations map[string]*entity.Consultation
	reviews       map[string]*entity.Review
	addresses     map[string]*entity.Address
	users         map[string]*entity.User
}

func newStore() *store {
	return &store{
		categories:    map[string]*entity.Category{},
		products:      map[string]*entity.Product{},
		orders:        map[string]*entity.Order{},
		consultations: map[string]*entity.Consultation{},
		reviews:       map[string]*entity.Review{},
		addresses:     map[string]*entity.Address{},
		users:         map[string]*entity.User{},
	}
}

func paginate[T any](all []T, p repository.Page) []T {
	if p.Skip >= len(all) {
		return []T{}
	}
	end := len(all)
	if p.Take > 0 && p.Skip+p.Take < end {
		end = p.Skip + p.Take
	}
	return all[p.Skip:end]
}

// fakeTx serializa las transacciones con un mutex (equivale al lock de la franja en Postgres).
type fakeTx struct {
	mu    sync.Mutex
	repos usecase.TxRepos
}

func (f *fakeTx) Run(_ context.Context, fn func(usecase.TxRepos) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f.repos)
}

type fixture struct {
	st            *store
	tx            *fakeTx
	categories    *memCategories
	products      *memProducts
	orders        *memOrders
	consultations *memConsultations
	reviews       *memReviews
	addresses     *memAddresses
	users         *memUsers
}

func newFixture() *fixture {
	st := newStore()
	f := &fixture{
		st:            st,
		categories:    &memCategories{st},
		products:      &memProducts{st},
		orders:        &memOrders{st},
		consultations: &memConsultations{st},
		reviews:       &memReviews{st},
		addresses:     &memAddresses{st},
		users:         &memUsers{st},
	}
	f.tx = &fakeTx{repos: usecase.TxRepos{
		Categories:    f.categories,
		Products:      f.products,
		Orders:        f.orders,
		Consultations: f.consultations,
		Reviews:       f.reviews,
	}}
	return f
}

// --- categorías ---

type memCategories struct{ st *store }

func (m *memCategories) Create(_ context.Context, c *entity.Category) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	cp := *c
	m.st.categories[c.ID] = &cp
	return nil
}

func (m *memCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	if c, ok := m.st.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *memCategories) GetForUpdate(ctx context.Context, id string) (*entity.Category, error) {
	return m.GetByID(ctx, id)
}

func (m *memCategories) GetByName(_ context.Context, name string) (*entity.Category, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	for _, c := range m.st.categories {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCategories) Update(ctx context.Context, c *entity.Category) error { return m.Create(ctx, c) }

func (m *memCategories) Delete(_ context.Context, id string) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	delete(m.st.categories, id)
	return nil
}

func (m *memCategories) List(_ context.Context, f repository.CategoryFilter) ([]*entity.Category, int, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	var all []*entity.Category
	for _, c := range m.st.categories {
		if f.ParentID != nil {
			if *f.ParentID == "" && c.ParentID != nil {
				continue
			}
			if *f.ParentID != "" && (c.ParentID == nil || *c.ParentID != *f.ParentID) {
				continue
			}
		}
		cp := *c
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, f.Page), len(all), nil
}

func (m *memCategories) ListChildren(ctx context.Context, parentID string) ([]*entity.Category, error) {
	list, _, err := m.List(ctx, repository.CategoryFilter{ParentID: &parentID})
	return list, err
}

func (m *memCategories) CountChildren(ctx context.Context, id string) (int, error) {
	list, err := m.ListChildren(ctx, id)
	return len(list), err
}

// --- productos ---

type memProducts struct{ st *store }

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	cp := *p
	m.st.products[p.ID] = &cp
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	if p, ok := m.st.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *memProducts) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return m.GetByID(ctx, id)
}

func (m *memProducts) Update(ctx context.Context, p *entity.Product) error { return m.Create(ctx, p) }

func (m *memProducts) Delete(_ context.Context, id string) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	delete(m.st.products, id)
	return nil
}

func (m *memProducts) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	var all []*entity.Product
	for _, p := range m.st.products {
		if f.CategoryID != "" && !contains(p.CategoryIDs, f.CategoryID) {
			continue
		}
		if f.MinPrice != nil && p.EffectivePrice().LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.EffectivePrice().GreaterThan(*f.MaxPrice) {
			continue
		}
		cp := *p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, f.Page), len(all), nil
}

func (m *memProducts) SetCategories(_ context.Context, productID string, ids []string) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	if p, ok := m.st.products[productID]; ok {
		p.CategoryIDs = append([]string(nil), ids...)
	}
	return nil
}

func (m *memProducts) Count(context.Context) (int, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	return len(m.st.products), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// --- pedidos ---

type memOrders struct{ st *store }

func (m *memOrders) Create(_ context.Context, o *entity.Order) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	m.st.orders[o.ID] = &cp
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*entity.Order, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	if o, ok := m.st.orders[id]; ok {
		cp := *o
		cp.Items = append([]entity.OrderItem(nil), o.Items...)
		return &cp, nil
	}
	return nil, nil
}

func (m *memOrders) Update(ctx context.Context, o *entity.Order) error { return m.Create(ctx, o) }

func (m *memOrders) Delete(_ context.Context, id string) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	delete(m.st.orders, id)
	return nil
}

func (m *memOrders) List(_ context.Context, f repository.OrderFilter) ([]*entity.Order, int, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	var all []*entity.Order
	for _, o := range m.st.orders {
		if f.UserID != "" && o.UserID != f.UserID {
			continue
		}
		if f.Status != nil && o.Status != *f.Status {
			continue
		}
		cp := *o
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, f.Page), len(all), nil
}

func (m *memOrders) Recent(ctx context.Context, limit int) ([]*entity.Order, error) {
	list, _, err := m.List(ctx, repository.OrderFilter{Page: repository.Page{Take: limit}})
	return list, err
}

func (m *memOrders) Count(context.Context) (int, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	return len(m.st.orders), nil
}

func (m *memOrders) Revenue(context.Context) (decimal.Decimal, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	sum := decimal.Zero
	for _, o := range m.st.orders {
		if o.PaymentStatus == entity.PaymentCompleted && o.Status != entity.OrderCancelled {
			sum = sum.Add(o.Total)
		}
	}
	return sum, nil
}

// --- asesorías ---

type memConsultations struct{ st *store }

func (m *memConsultations) Create(_ context.Context, c *entity.Consultation) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	cp := *c
	m.st.consultations[c.ID] = &cp
	return nil
}

func (m *memConsultations) GetByID(_ context.Context, id string) (*entity.Consultation, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	if c, ok := m.st.consultations[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *memConsultations) Update(ctx context.Context, c *entity.Consultation) error {
	return m.Create(ctx, c)
}

func (m *memConsultations) Delete(_ context.Context, id string) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	delete(m.st.consultations, id)
	return nil
}

func (m *memConsultations) List(_ context.Context, f repository.ConsultationFilter) ([]*entity.Consultation, int, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	var all []*entity.Consultation
	for _, c := range m.st.consultations {
		if f.UserID != "" && c.UserID != f.UserID {
			continue
		}
		if f.Status != nil && c.Status != *f.Status {
			continue
		}
		if f.Type != nil && c.Type != *f.Type {
			continue
		}
		cp := *c
		all = append(all, &cp)
	}
	return paginate(all, f.Page), len(all), nil
}

func (m *memConsultations) CountSlot(_ context.Context, q repository.SlotQuery) (int, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	n := 0
	for _, c := range m.st.consultations {
		if c.ID == q.ExcludeID || c.Status == entity.ConsultationCancelled {
			continue
		}
		if c.Time == q.Time && c.Type == q.Type && !c.Date.Before(q.DayStart) && c.Date.Before(q.DayEnd) {
			n++
		}
	}
	return n, nil
}

func (m *memConsultations) CountByDay(_ context.Context, start, end time.Time, typ entity.ConsultationType) (map[string]int, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	out := map[string]int{}
	for _, c := range m.st.consultations {
		if c.Status == entity.ConsultationCancelled || c.Type != typ {
			continue
		}
		if !c.Date.Before(start) && c.Date.Before(end) {
			out[c.Time]++
		}
	}
	return out, nil
}

func (m *memConsultations) LockSlot(context.Context, string) error { return nil }

func (m *memConsultations) CountByStatus(_ context.Context, s entity.ConsultationStatus) (int, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	n := 0
	for _, c := range m.st.consultations {
		if c.Status == s {
			n++
		}
	}
	return n, nil
}

// --- reseñas ---

type memReviews struct{ st *store }

func (m *memReviews) Create(_ context.Context, r *entity.Review) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	for _, ex := range m.st.reviews {
		if ex.ID != r.ID && ex.UserID == r.UserID && ex.ProductID == r.ProductID {
			return domain.ErrDuplicate
		}
	}
	cp := *r
	m.st.reviews[r.ID] = &cp
	return nil
}

func (m *memReviews) GetByID(_ context.Context, id string) (*entity.Review, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	if r, ok := m.st.reviews[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (m *memReviews) GetByUserAndProduct(_ context.Context, userID, productID string) (*entity.Review, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	for _, r := range m.st.reviews {
		if r.UserID == userID && r.ProductID == productID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memReviews) Update(ctx context.Context, r *entity.Review) error { return m.Create(ctx, r) }

func (m *memReviews) Delete(_ context.Context, id string) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	delete(m.st.reviews, id)
	return nil
}

func (m *memReviews) ListByProduct(_ context.Context, productID string, p repository.Page) ([]*entity.Review, int, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	var all []*entity.Review
	for _, r := range m.st.reviews {
		if r.ProductID == productID {
			cp := *r
			all = append(all, &cp)
		}
	}
	return paginate(all, p), len(all), nil
}

func (m *memReviews) AverageRating(ctx context.Context, productID string) (float64, int, error) {
	list, n, _ := m.ListByProduct(ctx, productID, repository.Page{})
	if n == 0 {
		return 0, 0, nil
	}
	sum := 0
	for _, r := range list {
		sum += r.Rating
	}
	return float64(sum) / float64(n), n, nil
}

// --- direcciones y usuarios ---

type memAddresses struct{ st *store }

func (m *memAddresses) Create(_ context.Context, a *entity.Address) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	cp := *a
	m.st.addresses[a.ID] = &cp
	return nil
}

func (m *memAddresses) GetByID(_ context.Context, id string) (*entity.Address, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	if a, ok := m.st.addresses[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (m *memAddresses) ListByUser(_ context.Context, userID string) ([]*entity.Address, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	var out []*entity.Address
	for _, a := range m.st.addresses {
		if a.UserID == userID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memAddresses) Delete(_ context.Context, id string) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	delete(m.st.addresses, id)
	return nil
}

func (m *memAddresses) ClearDefault(_ context.Context, userID string) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	for _, a := range m.st.addresses {
		if a.UserID == userID {
			a.IsDefault = false
		}
	}
	return nil
}

type memUsers struct{ st *store }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	cp := *u
	m.st.users[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	if u, ok := m.st.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	for _, u := range m.st.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Update(ctx context.Context, u *entity.User) error { return m.Create(ctx, u) }

func (m *memUsers) Delete(_ context.Context, id string) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	delete(m.st.users, id)
	return nil
}

func (m *memUsers) List(_ context.Context, f repository.UserFilter) ([]*entity.User, int, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	var all []*entity.User
	for _, u := range m.st.users {
		if f.Role != nil && u.Role != *f.Role {
			continue
		}
		cp := *u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Email < all[j].Email })
	return paginate(all, f.Page), len(all), nil
}

func (m *memUsers) Count(context.Context) (int, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	return len(m.st.users), nil
}

// --- puertos externos ---

type fakeGateway struct {
	err    error
	calls  int
	amount decimal.Decimal
}

func (g *fakeGateway) CreatePaymentIntent(_ context.Context, amount decimal.Decimal, currency string, meta map[string]string) (*ports.PaymentIntent, error) {
	g.calls++
	g.amount = amount
	if g.err != nil {
		return nil, g.err
	}
	return &ports.PaymentIntent{ID: "pi_test_" + meta["order_id"], ClientSecret: "secret", Amount: amount, Currency: currency}, nil
}

type fakeMedia struct {
	objects map[string][]byte
}

func (f *fakeMedia) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[key] = buf.Bytes()
	return nil
}

func (f *fakeMedia) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeMedia) PublicURL(key string) string { return "https://cdn.test/" + key }

type fakeReceipts struct{}

func (fakeReceipts) Generate(order *entity.Order, c ports.ReceiptCustomer) ([]byte, error) {
	if order == nil {
		return nil, errors.New("pedido nil")
	}
	return []byte("%PDF-" + order.ID + "-" + c.Email), nil
}

// memCache caché en memoria que cuenta aciertos e invalidaciones.
type memCache struct {
	mu           sync.Mutex
	data         map[string]interface{}
	hits         int
	invalidation int
}

func (c *memCache) key(q interface{}) string {
	b, _ := json.Marshal(q)
	return string(b)
}

func (c *memCache) Get(_ context.Context, q interface{}, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[c.key(q)]
	if !ok {
		return false, nil
	}
	c.hits++
	b, _ := json.Marshal(v)
	return true, json.Unmarshal(b, dest)
}

func (c *memCache) Set(_ context.Context, q interface{}, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = map[string]interface{}{}
	}
	c.data[c.key(q)] = value
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
	c.invalidation++
	return nil
}

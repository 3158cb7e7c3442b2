package http_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/vales-api/internal/domain"
	"github.com/jhoicas/vales-api/internal/domain/entity"
	"github.com/jhoicas/vales-api/internal/domain/repository"
)

// ── Locales ──────────────────────────────────────────────────────────────────

type memStores struct {
	mu     sync.Mutex
	byID   map[int64]*entity.Store
	nextID int64
}

func newMemStores() *memStores {
	return &memStores{byID: make(map[int64]*entity.Store)}
}

func (r *memStores) Create(_ context.Context, s *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Login == s.Login {
			return domain.ErrConflict
		}
	}
	r.nextID++
	s.ID = r.nextID
	s.CreatedAt = time.Now()
	c := *s
	r.byID[s.ID] = &c
	return nil
}

func (r *memStores) GetByID(_ context.Context, id int64) (*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	c := *s
	return &c, nil
}

func (r *memStores) GetByLogin(_ context.Context, login string) (*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.byID {
		if s.Login == login {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memStores) List(context.Context) ([]*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Store, 0, len(r.byID))
	for _, s := range r.byID {
		c := *s
		c.PasswordHash = ""
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memStores) Update(_ context.Context, s *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *s
	r.byID[s.ID] = &c
	return nil
}

func (r *memStores) name(id int64) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.byID[id]; ok {
		return s.Name
	}
	return ""
}

// ── Vales ────────────────────────────────────────────────────────────────────

type memVouchers struct {
	mu       sync.Mutex
	stores   *memStores
	rows     map[int64]*entity.Voucher
	nextID   int64
	nextItem int64
}

func newMemVouchers(stores *memStores) *memVouchers {
	return &memVouchers{stores: stores, rows: make(map[int64]*entity.Voucher)}
}

func (m *memVouchers) view(v *entity.Voucher) *entity.Voucher {
	c := *v
	c.Items = append([]entity.VoucherItem(nil), v.Items...)
	c.OriginStoreName = m.stores.name(c.OriginStoreID)
	c.DestinationStoreName = m.stores.name(c.DestinationStoreID)
	return &c
}

func (m *memVouchers) Create(_ context.Context, v *entity.Voucher) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	v.ID = m.nextID
	v.CreatedAt = time.Now()
	if v.State == "" {
		v.State = entity.VoucherStatePending
	}
	c := *v
	m.rows[v.ID] = &c
	return nil
}

func (m *memVouchers) items(voucherID int64, descriptions []string) []entity.VoucherItem {
	out := make([]entity.VoucherItem, 0, len(descriptions))
	for _, d := range descriptions {
		m.nextItem++
		out = append(out, entity.VoucherItem{ID: m.nextItem, VoucherID: voucherID, Description: d})
	}
	return out
}

func (m *memVouchers) AddItems(_ context.Context, voucherID int64, descriptions []string) ([]entity.VoucherItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[voucherID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	added := m.items(voucherID, descriptions)
	v.Items = append(v.Items, added...)
	return added, nil
}

func (m *memVouchers) ReplaceItems(_ context.Context, voucherID int64, descriptions []string) ([]entity.VoucherItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[voucherID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	v.Items = m.items(voucherID, descriptions)
	return append([]entity.VoucherItem(nil), v.Items...), nil
}

func (m *memVouchers) GetByID(_ context.Context, id int64) (*entity.Voucher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return m.view(v), nil
}

func (m *memVouchers) GetByIDForOrigin(_ context.Context, id, originStoreID int64) (*entity.Voucher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[id]
	if !ok || v.OriginStoreID != originStoreID {
		return nil, nil
	}
	return m.view(v), nil
}

func (m *memVouchers) List(_ context.Context, f entity.VoucherFilter) ([]*entity.Voucher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Voucher, 0, len(m.rows))
	for _, v := range m.rows {
		if f.DateFrom != nil && v.Date.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && v.Date.After(*f.DateTo) {
			continue
		}
		if f.OriginStoreID != 0 && v.OriginStoreID != f.OriginStoreID {
			continue
		}
		if f.DestinationStoreID != 0 && v.DestinationStoreID != f.DestinationStoreID {
			continue
		}
		if f.StoreID != 0 && v.OriginStoreID != f.StoreID && v.DestinationStoreID != f.StoreID {
			continue
		}
		if f.State != "" && v.State != f.State {
			continue
		}
		out = append(out, m.view(v))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *memVouchers) Update(_ context.Context, v *entity.Voucher) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[v.ID]
	if !ok {
		return domain.ErrNotFound
	}
	row.Date = v.Date
	row.DestinationStoreID = v.DestinationStoreID
	row.ResponsiblePerson = v.ResponsiblePerson
	row.State = v.State
	return nil
}

func (m *memVouchers) MarkSettled(_ context.Context, id, originStoreID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[id]
	if !ok || v.OriginStoreID != originStoreID {
		return false, nil
	}
	v.State = entity.VoucherStateSettled
	return true, nil
}

func (m *memVouchers) Delete(_ context.Context, id, originStoreID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[id]
	if !ok || v.OriginStoreID != originStoreID {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

// directTx ejecuta fn sobre el mismo repositorio, sin rollback.
type directTx struct {
	repo *memVouchers
}

func (t directTx) Run(_ context.Context, fn func(vouchers repository.VoucherRepository) error) error {
	return fn(t.repo)
}

// ── Revocación ───────────────────────────────────────────────────────────────

type memRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func newMemRevoker() *memRevoker {
	return &memRevoker{revoked: make(map[string]time.Duration)}
}

func (r *memRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[jti] = ttl
	return nil
}

func (r *memRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.revoked[jti]
	return ok, nil
}

// ── PDF ──────────────────────────────────────────────────────────────────────

type stubPDF struct{}

func (stubPDF) GenerateVoucherPDF(context.Context, *entity.Voucher) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

package ledger_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/vales-api/internal/domain"
	"github.com/jhoicas/vales-api/internal/domain/entity"
	"github.com/jhoicas/vales-api/internal/domain/repository"
)

// ── Locales ──────────────────────────────────────────────────────────────────

type stubStores struct {
	names map[int64]string
}

func (s *stubStores) Create(context.Context, *entity.Store) error { return errors.New("no soportado") }
func (s *stubStores) Update(context.Context, *entity.Store) error { return errors.New("no soportado") }

func (s *stubStores) GetByID(_ context.Context, id int64) (*entity.Store, error) {
	name, ok := s.names[id]
	if !ok {
		return nil, nil
	}
	return &entity.Store{ID: id, Name: name}, nil
}

func (s *stubStores) GetByLogin(context.Context, string) (*entity.Store, error) { return nil, nil }

func (s *stubStores) List(context.Context) ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(s.names))
	for id, name := range s.names {
		out = append(out, &entity.Store{ID: id, Name: name})
	}
	return out, nil
}

// ── Vales en memoria ─────────────────────────────────────────────────────────

// memLedger simula las tablas vales + items_mercaderia.
type memLedger struct {
	mu           sync.Mutex
	names        map[int64]string
	rows         map[int64]*entity.Voucher
	nextVoucher  int64
	nextItem     int64
	failAddItems bool
}

func newMemLedger(names map[int64]string) *memLedger {
	return &memLedger{names: names, rows: make(map[int64]*entity.Voucher)}
}

func cloneVoucher(v *entity.Voucher) *entity.Voucher {
	c := *v
	c.Items = append([]entity.VoucherItem(nil), v.Items...)
	return &c
}

func (m *memLedger) enriched(v *entity.Voucher) *entity.Voucher {
	c := cloneVoucher(v)
	c.OriginStoreName = m.names[c.OriginStoreID]
	c.DestinationStoreName = m.names[c.DestinationStoreID]
	return c
}

func (m *memLedger) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *memLedger) snapshot() (map[int64]*entity.Voucher, int64, int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := make(map[int64]*entity.Voucher, len(m.rows))
	for id, v := range m.rows {
		rows[id] = cloneVoucher(v)
	}
	return rows, m.nextVoucher, m.nextItem
}

func (m *memLedger) restore(rows map[int64]*entity.Voucher, nextVoucher, nextItem int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = rows
	m.nextVoucher = nextVoucher
	m.nextItem = nextItem
}

func (m *memLedger) Create(_ context.Context, v *entity.Voucher) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextVoucher++
	v.ID = m.nextVoucher
	v.CreatedAt = time.Now()
	if v.State == "" {
		v.State = entity.VoucherStatePending
	}
	m.rows[v.ID] = cloneVoucher(v)
	return nil
}

func (m *memLedger) insertItems(voucherID int64, descriptions []string) []entity.VoucherItem {
	items := make([]entity.VoucherItem, 0, len(descriptions))
	for _, d := range descriptions {
		m.nextItem++
		items = append(items, entity.VoucherItem{ID: m.nextItem, VoucherID: voucherID, Description: d})
	}
	return items
}

func (m *memLedger) AddItems(_ context.Context, voucherID int64, descriptions []string) ([]entity.VoucherItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAddItems {
		return nil, errors.New("violación de restricción en items_mercaderia")
	}
	v, ok := m.rows[voucherID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	items := m.insertItems(voucherID, descriptions)
	v.Items = append(v.Items, items...)
	return items, nil
}

func (m *memLedger) ReplaceItems(_ context.Context, voucherID int64, descriptions []string) ([]entity.VoucherItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[voucherID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	v.Items = m.insertItems(voucherID, descriptions)
	return append([]entity.VoucherItem(nil), v.Items...), nil
}

func (m *memLedger) GetByID(_ context.Context, id int64) (*entity.Voucher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return m.enriched(v), nil
}

func (m *memLedger) GetByIDForOrigin(_ context.Context, id, originStoreID int64) (*entity.Voucher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[id]
	if !ok || v.OriginStoreID != originStoreID {
		return nil, nil
	}
	return m.enriched(v), nil
}

func (m *memLedger) List(_ context.Context, f entity.VoucherFilter) ([]*entity.Voucher, error) {
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
		out = append(out, m.enriched(v))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *memLedger) Update(_ context.Context, v *entity.Voucher) error {
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

func (m *memLedger) MarkSettled(_ context.Context, id, originStoreID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[id]
	if !ok || v.OriginStoreID != originStoreID {
		return false, nil
	}
	v.State = entity.VoucherStateSettled
	return true, nil
}

func (m *memLedger) Delete(_ context.Context, id, originStoreID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[id]
	if !ok || v.OriginStoreID != originStoreID {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

// memTx restaura el estado previo si fn falla, como un Rollback.
type memTx struct {
	db *memLedger
}

func (t memTx) Run(_ context.Context, fn func(vouchers repository.VoucherRepository) error) error {
	rows, nv, ni := t.db.snapshot()
	if err := fn(t.db); err != nil {
		t.db.restore(rows, nv, ni)
		return err
	}
	return nil
}

// ── PDF ──────────────────────────────────────────────────────────────────────

type stubPDF struct {
	got *entity.Voucher
}

func (s *stubPDF) GenerateVoucherPDF(_ context.Context, v *entity.Voucher) ([]byte, error) {
	s.got = v
	return []byte("%PDF-1.3 stub"), nil
}

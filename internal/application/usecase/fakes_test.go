package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type memMenuRepo struct {
	items map[string]*entity.MenuItem
	err   error
}

func newMemMenuRepo() *memMenuRepo {
	return &memMenuRepo{items: make(map[string]*entity.MenuItem)}
}

func (m *memMenuRepo) Create(_ context.Context, it *entity.MenuItem) error {
	if m.err != nil {
		return m.err
	}
	cp := *it
	m.items[it.ID] = &cp
	return nil
}

func (m *memMenuRepo) GetByID(_ context.Context, id string) (*entity.MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	it, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (m *memMenuRepo) List(_ context.Context) ([]*entity.MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*entity.MenuItem, 0, len(m.items))
	for _, it := range m.items {
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (m *memMenuRepo) Update(_ context.Context, it *entity.MenuItem) error {
	if m.err != nil {
		return m.err
	}
	cp := *it
	m.items[it.ID] = &cp
	return nil
}

func (m *memMenuRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.items, id)
	return nil
}

func (m *memMenuRepo) CountByCategory(_ context.Context, category string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := 0
	for _, it := range m.items {
		if it.Category == category {
			n++
		}
	}
	return n, nil
}

type memCategoryRepo struct {
	cats []*entity.Category
	err  error
}

func (m *memCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*entity.Category, len(m.cats))
	copy(out, m.cats)
	return out, nil
}

func (m *memCategoryRepo) Create(_ context.Context, cat *entity.Category) error {
	if m.err != nil {
		return m.err
	}
	cp := *cat
	m.cats = append(m.cats, &cp)
	return nil
}

func (m *memCategoryRepo) Delete(_ context.Context, name string) error {
	if m.err != nil {
		return m.err
	}
	for i, c := range m.cats {
		if c.Name == name {
			m.cats = append(m.cats[:i], m.cats[i+1:]...)
			return nil
		}
	}
	return nil
}

type memOrderRepo struct {
	orders map[string]*entity.Order
	seq    []string
	err    error
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*entity.Order)}
}

func (m *memOrderRepo) Create(_ context.Context, o *entity.Order) error {
	if m.err != nil {
		return m.err
	}
	cp := *o
	m.orders[o.ID] = &cp
	m.seq = append(m.seq, o.ID)
	return nil
}

func (m *memOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *memOrderRepo) List(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	// Más reciente primero.
	out := make([]*entity.Order, 0, len(m.seq))
	for i := len(m.seq) - 1; i >= 0; i-- {
		cp := *m.orders[m.seq[i]]
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *memOrderRepo) UpdateStatus(_ context.Context, id, status string, updatedAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	if o, ok := m.orders[id]; ok {
		o.Status = status
		o.UpdatedAt = updatedAt
	}
	return nil
}

type memCustomerRepo struct {
	customers []*entity.Customer
	err       error
}

func (m *memCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*entity.Customer, len(m.customers))
	copy(out, m.customers)
	return out, nil
}

func (m *memCustomerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCustomerRepo) SetBlocked(_ context.Context, email string, blocked bool, updatedAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	for _, c := range m.customers {
		if c.Email == email {
			c.Blocked = blocked
			c.UpdatedAt = updatedAt
		}
	}
	return nil
}

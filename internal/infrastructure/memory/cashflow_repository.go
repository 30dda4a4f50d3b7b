package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/domain/entity"
)

// IncomeRepository penyimpanan pemasukan dalam memori.
type IncomeRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Income
}

// NewIncomeRepository membuat repository kosong.
func NewIncomeRepository() *IncomeRepository {
	return &IncomeRepository{items: make(map[string]entity.Income)}
}

func (r *IncomeRepository) Create(in *entity.Income) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if in.ID == "" {
		in.ID = uuid.New().String()
	}
	if _, exists := r.items[in.ID]; exists {
		return domain.ErrDuplicate
	}
	r.items[in.ID] = *in
	return nil
}

func (r *IncomeRepository) GetByID(id string) (*entity.Income, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (r *IncomeRepository) Update(in *entity.Income) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[in.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[in.ID] = *in
	return nil
}

func (r *IncomeRepository) List() ([]*entity.Income, error) {
	return r.ListByRange(time.Time{}, maxDate)
}

// ListByRange mengembalikan pemasukan dengan from <= Date <= to, terbaru dulu.
func (r *IncomeRepository) ListByRange(from, to time.Time) ([]*entity.Income, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Income, 0, len(r.items))
	for _, v := range r.items {
		if v.Date.Before(from) || v.Date.After(to) {
			continue
		}
		cp := v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *IncomeRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// ExpenseRepository penyimpanan pengeluaran dalam memori.
type ExpenseRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Expense
}

// NewExpenseRepository membuat repository kosong.
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{items: make(map[string]entity.Expense)}
}

func (r *ExpenseRepository) Create(ex *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ex.ID == "" {
		ex.ID = uuid.New().String()
	}
	if _, exists := r.items[ex.ID]; exists {
		return domain.ErrDuplicate
	}
	r.items[ex.ID] = *ex
	return nil
}

func (r *ExpenseRepository) GetByID(id string) (*entity.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (r *ExpenseRepository) Update(ex *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[ex.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[ex.ID] = *ex
	return nil
}

func (r *ExpenseRepository) List() ([]*entity.Expense, error) {
	return r.ListByRange(time.Time{}, maxDate)
}

// ListByRange mengembalikan pengeluaran dengan from <= Date <= to, terbaru dulu.
func (r *ExpenseRepository) ListByRange(from, to time.Time) ([]*entity.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Expense, 0, len(r.items))
	for _, v := range r.items {
		if v.Date.Before(from) || v.Date.After(to) {
			continue
		}
		cp := v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *ExpenseRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// maxDate batas atas praktis untuk List tanpa filter.
var maxDate = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
